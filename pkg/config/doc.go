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

// Package config loads the optional YAML configuration file of the BMI API
// and watches it for changes.
//
// All fields are optional; missing values keep their defaults:
//
//	server:
//	  address: ""
//	  port: 8080
//	  read_timeout: 10s
//	  write_timeout: 30s
//	  idle_timeout: 120s
//	  shutdown_timeout: 30s
//	  cache_max_age: 5m
//	  cors:
//	    allowed_origins: ["*"]
//	logging:
//	  level: info
//
// Precedence, lowest first: defaults, file, environment (PORT, LOG_LEVEL,
// SHUTDOWN_TIMEOUT_SECONDS), command line flags. Flags are applied by the
// caller.
//
// Watch reloads the file on change. A reload that fails to parse or validate
// is logged and ignored, so the previous configuration stays active.
package config
