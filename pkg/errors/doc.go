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

// Package errors provides structured error types for better observability
// and programmatic error handling across the service.
//
// Validation failures are returned as ErrCodeInvalidRequest errors; the HTTP
// layer maps that code to 400 and everything else to 500.
//
// Example usage:
//
//	err := errors.NewWithContext(
//	    errors.ErrCodeInvalidRequest,
//	    "weight_kg must be between 20 and 300",
//	    map[string]any{
//	        "field": "weight_kg",
//	        "min":   20,
//	        "max":   300,
//	    },
//	)
//
//	if errors.IsBadRequest(err) {
//	    // client error
//	}
package errors
