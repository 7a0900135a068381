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

package normalizer

// Units identifies the unit system a request was expressed in.
type Units string

const (
	UnitsMetric   Units = "metric"
	UnitsImperial Units = "imperial"
)

// String returns the units tag.
func (u Units) String() string {
	return string(u)
}

// IsValid reports whether u is a supported unit system.
func (u Units) IsValid() bool {
	return u == UnitsMetric || u == UnitsImperial
}

// Query parameter and echo field names.
const (
	FieldWeightKg = "weight_kg"
	FieldHeightCm = "height_cm"
	FieldWeightLb = "weight_lb"
	FieldHeightIn = "height_in"
)

// Input is a validated request in canonical units.
type Input struct {
	// WeightKg is the weight in kilograms.
	WeightKg float64

	// HeightM is the height in meters.
	HeightM float64

	// Echo reports what was received, in the caller's original units.
	Echo Echo
}

// Echo carries the original field names and values plus the resolved units.
// Only the fields of the resolved unit system are set.
type Echo struct {
	WeightKg *float64 `json:"weight_kg,omitempty" yaml:"weight_kg,omitempty"`
	HeightCm *float64 `json:"height_cm,omitempty" yaml:"height_cm,omitempty"`
	WeightLb *float64 `json:"weight_lb,omitempty" yaml:"weight_lb,omitempty"`
	HeightIn *float64 `json:"height_in,omitempty" yaml:"height_in,omitempty"`
	Units    Units    `json:"units" yaml:"units"`
}
