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

import "github.com/NVIDIA/bmi-api/pkg/bmi"

// Normalize validates weight and height given in units and converts them to
// kilograms and meters.
func Normalize(units Units, weight, height float64) (*Input, error) {
	limits, ok := LimitsFor(units)
	if !ok {
		return nil, errInvalidUnits()
	}

	if err := limits.Check(weight, height); err != nil {
		return nil, err
	}

	if units == UnitsImperial {
		return &Input{
			WeightKg: bmi.Round2(bmi.LbToKg(weight)),
			HeightM:  bmi.Round2(bmi.InchesToMeters(height)),
			Echo: Echo{
				WeightLb: &weight,
				HeightIn: &height,
				Units:    UnitsImperial,
			},
		}, nil
	}

	return &Input{
		WeightKg: weight,
		HeightM:  bmi.CmToMeters(height),
		Echo: Echo{
			WeightKg: &weight,
			HeightCm: &height,
			Units:    UnitsMetric,
		},
	}, nil
}
