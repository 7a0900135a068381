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

// Package defaults provides centralized configuration constants for the BMI API.
//
// This package defines timeout values, request limits, and other defaults
// used across the codebase. Centralizing these values ensures consistency
// and makes tuning easier.
//
// # Categories
//
//   - Handler timeouts: For HTTP request processing
//   - Request limits: For bounding request bodies
//   - Server timeouts: For HTTP server configuration
//
// # Usage
//
//	ctx, cancel := context.WithTimeout(r.Context(), defaults.BMIHandlerTimeout)
//	defer cancel()
//
// # Guidelines
//
// Handler timeouts should be shorter than ServerWriteTimeout so the handler
// can still write an error response before the connection is cut.
package defaults
