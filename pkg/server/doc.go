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

// Package server provides the reusable HTTP server behind the BMI API.
//
// # Architecture
//
// The server is stateless apart from its readiness flag and the runtime
// adjustable CORS origin list. Key components:
//
//   - Request ID tracking (X-Request-Id, UUID validated)
//   - API version negotiation via vendor MIME types
//   - CORS with preflight handling
//   - Panic recovery for resilience
//   - Prometheus RED metrics
//   - Graceful shutdown handling
//   - Health and readiness probes for Kubernetes
//
// # Usage
//
//	s := server.New(
//	    server.WithName("bmid"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/bmi": calc.HandleBMI,
//	    }),
//	)
//
//	if err := s.Run(ctx); err != nil {
//	    slog.Error("server exited", "error", err)
//	}
//
// Options are applied in order; WithConfig replaces the whole Config, so pass
// it before WithHandler or WithPage.
//
// # Endpoints
//
//	GET /health   liveness probe, always {"status":"ok"}
//	GET /ready    readiness probe, 503 while starting or shutting down
//	GET /metrics  Prometheus metrics
//	GET /         HTML page when configured, otherwise a JSON route listing
//
// Application handlers are wrapped in the middleware chain, outermost first:
// metrics, CORS, API version, request ID, panic recovery, logging.
//
// # Error Responses
//
// All errors share one body:
//
//	{
//	  "error": "weight_kg must be between 20 and 300",
//	  "code": "INVALID_REQUEST",
//	  "details": {"field": "weight_kg", "value": 500},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-01-01T00:00:00Z",
//	  "retryable": false
//	}
//
// # Configuration
//
// Environment variables read by NewConfig:
//
//	PORT                      listen port (default 8080)
//	SHUTDOWN_TIMEOUT_SECONDS  graceful shutdown timeout (default 30)
package server
