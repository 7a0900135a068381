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

package bmi

import "math"

// Category is a WHO adult BMI classification.
type Category string

const (
	CategoryUnderweight Category = "Underweight"
	CategoryNormal      Category = "Normal weight"
	CategoryOverweight  Category = "Overweight"
	CategoryObesity     Category = "Obesity"
)

// String returns the display name of the category.
func (c Category) String() string {
	return string(c)
}

// Category thresholds. Each value is the inclusive lower bound of the next band.
const (
	NormalThreshold     = 18.5
	OverweightThreshold = 25.0
	ObesityThreshold    = 30.0
)

// Healthy range BMI bounds.
const (
	HealthyMinBMI = 18.5
	HealthyMaxBMI = 24.9
)

// Categories returns all categories in ascending BMI order.
func Categories() []Category {
	return []Category{
		CategoryUnderweight,
		CategoryNormal,
		CategoryOverweight,
		CategoryObesity,
	}
}

// Result is the outcome of a BMI assessment.
type Result struct {
	// BMI is the body mass index rounded to two decimals.
	BMI float64 `json:"bmi" yaml:"bmi"`

	// Category is derived from the rounded BMI.
	Category Category `json:"category" yaml:"category"`

	// HealthyRange is the [min, max] healthy weight in kilograms for the height.
	HealthyRange [2]float64 `json:"healthy_weight_range_kg" yaml:"healthy_weight_range_kg"`
}

// Round2 rounds n to two decimal places, half away from zero.
func Round2(n float64) float64 {
	return math.Round(n*100) / 100
}

// ComputeBMI returns weightKg / heightM² rounded to two decimals.
func ComputeBMI(weightKg, heightM float64) float64 {
	return Round2(weightKg / (heightM * heightM))
}

// Categorize maps a BMI value to its WHO category.
func Categorize(bmi float64) Category {
	switch {
	case bmi < NormalThreshold:
		return CategoryUnderweight
	case bmi < OverweightThreshold:
		return CategoryNormal
	case bmi < ObesityThreshold:
		return CategoryOverweight
	default:
		return CategoryObesity
	}
}

// HealthyWeightRangeKg returns the weight interval in kilograms whose BMI
// falls within [HealthyMinBMI, HealthyMaxBMI] for the given height.
func HealthyWeightRangeKg(heightM float64) (minKg, maxKg float64) {
	minKg = Round2(HealthyMinBMI * heightM * heightM)
	maxKg = Round2(HealthyMaxBMI * heightM * heightM)
	return minKg, maxKg
}

// Assess computes the BMI once, classifies the rounded value and attaches
// the healthy weight range for the height.
func Assess(weightKg, heightM float64) Result {
	value := ComputeBMI(weightKg, heightM)
	minKg, maxKg := HealthyWeightRangeKg(heightM)

	return Result{
		BMI:          value,
		Category:     Categorize(value),
		HealthyRange: [2]float64{minKg, maxKg},
	}
}
