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

// Package calculator serves the /v1/bmi endpoint.
//
// GET reads the query string:
//
//	GET /v1/bmi?weight_kg=70&height_cm=175
//	GET /v1/bmi?weight_lb=154&height_in=69
//
// POST reads a JSON or YAML body, selected by Content-Type:
//
//	POST /v1/bmi
//	{"units": "metric", "weight": 70, "height": 175}
//
// Both return:
//
//	{
//	  "bmi": 22.86,
//	  "category": "Normal weight",
//	  "inputs": {"weight_kg": 70, "height_cm": 175, "units": "metric"},
//	  "healthy_weight_range_kg": [56.66, 76.26],
//	  "notes": ["Adult BMI categories per WHO"]
//	}
//
// The response is YAML when the Accept header asks for it. Validation
// failures are 400 INVALID_REQUEST; any other failure is a 500 with the
// message "Internal error".
package calculator
