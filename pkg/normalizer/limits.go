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

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"

	cnserrors "github.com/NVIDIA/bmi-api/pkg/errors"
)

// Bounds is an inclusive [Min, Max] interval.
type Bounds struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// rule renders the bounds as a validator tag.
func (b Bounds) rule() string {
	return fmt.Sprintf("gte=%g,lte=%g", b.Min, b.Max)
}

// Limits holds the accepted ranges for one unit system, keyed by the
// field names used in that system.
type Limits struct {
	Units       Units  `json:"units" yaml:"units"`
	WeightField string `json:"weightField" yaml:"weightField"`
	Weight      Bounds `json:"weight" yaml:"weight"`
	HeightField string `json:"heightField" yaml:"heightField"`
	Height      Bounds `json:"height" yaml:"height"`
}

var (
	metricLimits = Limits{
		Units:       UnitsMetric,
		WeightField: FieldWeightKg,
		Weight:      Bounds{Min: 20, Max: 300},
		HeightField: FieldHeightCm,
		Height:      Bounds{Min: 100, Max: 250},
	}

	imperialLimits = Limits{
		Units:       UnitsImperial,
		WeightField: FieldWeightLb,
		Weight:      Bounds{Min: 44, Max: 660},
		HeightField: FieldHeightIn,
		Height:      Bounds{Min: 39, Max: 98},
	}

	// validate is safe for concurrent use and caches parsed rules.
	validate = validator.New()
)

// LimitsFor returns the limits for the given units. Unknown units return
// false.
func LimitsFor(u Units) (Limits, bool) {
	switch u {
	case UnitsMetric:
		return metricLimits, true
	case UnitsImperial:
		return imperialLimits, true
	default:
		return Limits{}, false
	}
}

// AllLimits returns the limits of every supported unit system.
func AllLimits() []Limits {
	return []Limits{metricLimits, imperialLimits}
}

// Check validates weight and height expressed in l's units.
func (l Limits) Check(weight, height float64) error {
	if !isFinite(weight) || !isFinite(height) {
		return cnserrors.BadRequest("Inputs must be finite numbers")
	}
	if err := checkBounds(l.WeightField, weight, l.Weight); err != nil {
		return err
	}
	return checkBounds(l.HeightField, height, l.Height)
}

func checkBounds(field string, value float64, b Bounds) error {
	if err := validate.Var(value, b.rule()); err != nil {
		return cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("%s must be between %g and %g", field, b.Min, b.Max),
			map[string]any{
				"field": field,
				"value": value,
				"min":   b.Min,
				"max":   b.Max,
			})
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
