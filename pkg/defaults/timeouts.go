// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package defaults

import "time"

// Handler timeouts for HTTP request processing.
const (
	// BMIHandlerTimeout is the timeout for a single BMI request, including
	// reading the request body.
	BMIHandlerTimeout = 10 * time.Second

	// CacheMaxAge is the default Cache-Control max-age for GET results.
	// Results are a pure function of the query string.
	CacheMaxAge = 5 * time.Minute
)

// Request limits.
const (
	// MaxBodyBytes caps the size of a POST /v1/bmi body.
	MaxBodyBytes int64 = 16 << 10
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading the entire request.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// Server network defaults.
const (
	// ServerPort is the default listen port.
	ServerPort = 8080

	// CORSMaxAge is the preflight cache duration in seconds.
	CORSMaxAge = 3600
)
