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

// Package api wires the BMI service together and runs it.
//
// Usage:
//
//	if err := api.Serve(ctx, api.Options{ConfigPath: "bmi.yaml"}); err != nil {
//	    log.Fatalf("server error: %v", err)
//	}
//
// # Architecture
//
// The API layer is responsible for:
//   - Resolving configuration from defaults, file, environment and options
//   - Configuring structured logging with application name and version
//   - Setting up the /v1/bmi handler and the informational page
//   - Reloading log level and CORS origins when the config file changes
//   - Delegating server lifecycle management to pkg/server
//
// # Endpoints
//
// Application Endpoints:
//   - GET /v1/bmi  - Assess from query parameters
//   - POST /v1/bmi - Assess from a JSON or YAML body
//   - GET /        - Informational page
//
// System Endpoints:
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// Example curl commands:
//
//	curl "http://localhost:8080/v1/bmi?weight_kg=70&height_cm=175"
//
//	curl -X POST http://localhost:8080/v1/bmi \
//	  -H "Content-Type: application/yaml" \
//	  --data-binary $'units: imperial\nweight: 154\nheight: 69\n'
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/bmi-api/pkg/api.version=1.0.0'"
package api
