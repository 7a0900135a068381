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

// Package normalizer validates raw BMI requests and converts them into a
// single canonical representation: weight in kilograms and height in meters.
//
// Two input shapes are supported:
//
//   - QueryForm: string pairs from a query string, either
//     (weight_kg, height_cm) or (weight_lb, height_in). The metric pair wins
//     when both are present.
//   - BodyForm: a decoded {units, weight, height} record from a JSON or YAML
//     request body. The declared units select the validation rules.
//
// Validation runs on the original units before any conversion:
//
//	units     weight           height
//	metric    [20, 300] kg     [100, 250] cm
//	imperial  [44, 660] lb     [39, 98] in
//
// Bounds are inclusive; NaN and infinities always fail. Imperial values are
// converted with the constants from pkg/bmi and rounded to two decimals;
// metric values pass through unrounded.
//
// Every failure is a *errors.StructuredError with ErrCodeInvalidRequest.
// There is no internal-error path in this package.
//
// Usage:
//
//	in, err := normalizer.ParseQuery(r.URL.Query())
//	if err != nil {
//	    // 400
//	}
//	result := bmi.Assess(in.WeightKg, in.HeightM)
package normalizer
