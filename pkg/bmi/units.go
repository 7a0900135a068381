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

// Conversion constants. These are exact by definition and must not be
// replaced with approximations or rounding will drift.
const (
	// KgPerLb is the number of kilograms in one avoirdupois pound.
	KgPerLb = 0.45359237

	// CmPerInch is the number of centimeters in one inch.
	CmPerInch = 2.54

	// CmPerMeter is the number of centimeters in one meter.
	CmPerMeter = 100
)

// CmToMeters converts centimeters to meters.
func CmToMeters(heightCm float64) float64 {
	return heightCm / CmPerMeter
}

// LbToKg converts pounds to kilograms.
func LbToKg(weightLb float64) float64 {
	return weightLb * KgPerLb
}

// KgToLb converts kilograms to pounds.
func KgToLb(weightKg float64) float64 {
	return weightKg / KgPerLb
}

// CmToInches converts centimeters to inches.
func CmToInches(heightCm float64) float64 {
	return heightCm / CmPerInch
}

// InchesToCm converts inches to centimeters.
func InchesToCm(heightIn float64) float64 {
	return heightIn * CmPerInch
}

// InchesToMeters converts inches to meters.
func InchesToMeters(heightIn float64) float64 {
	return InchesToCm(heightIn) / CmPerMeter
}
