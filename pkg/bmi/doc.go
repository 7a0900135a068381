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

// Package bmi implements the unit conversions and Body Mass Index arithmetic
// used by the BMI API.
//
// All functions are pure and deterministic. Inputs are expected to be
// validated and finite; see pkg/normalizer for the validation layer.
//
// # Rounding
//
// Every value reported with two decimals (BMI, both ends of the healthy
// weight range, and imperial values converted to metric) goes through Round2,
// which rounds half away from zero on the value scaled by 100.
//
// # Categories
//
// Categories follow the adult WHO thresholds, lower bound inclusive:
//
//	bmi < 18.5          Underweight
//	18.5 <= bmi < 25    Normal weight
//	25 <= bmi < 30      Overweight
//	bmi >= 30           Obesity
//
// Assess classifies the rounded BMI it returns, so a reported value of 25.00
// is always "Overweight" even when the raw quotient was 24.996.
//
// # Usage
//
//	r := bmi.Assess(70, bmi.CmToMeters(175))
//	fmt.Println(r.BMI, r.Category) // 22.86 Normal weight
package bmi
