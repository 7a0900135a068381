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
	"math"
	"net/url"
	"strconv"
	"strings"

	cnserrors "github.com/NVIDIA/bmi-api/pkg/errors"
)

// QueryForm is the query-string input shape. Empty fields are absent.
type QueryForm struct {
	WeightKg string
	HeightCm string
	WeightLb string
	HeightIn string
}

// QueryFormFromValues extracts the recognized parameters from values.
// Only the first value of a repeated parameter is used.
func QueryFormFromValues(values url.Values) QueryForm {
	return QueryForm{
		WeightKg: values.Get(FieldWeightKg),
		HeightCm: values.Get(FieldHeightCm),
		WeightLb: values.Get(FieldWeightLb),
		HeightIn: values.Get(FieldHeightIn),
	}
}

// HasMetric reports whether both metric parameters are present.
func (q QueryForm) HasMetric() bool {
	return q.WeightKg != "" && q.HeightCm != ""
}

// HasImperial reports whether both imperial parameters are present.
func (q QueryForm) HasImperial() bool {
	return q.WeightLb != "" && q.HeightIn != ""
}

// Normalize parses and validates the form. The metric pair takes precedence
// when both pairs are present.
func (q QueryForm) Normalize() (*Input, error) {
	switch {
	case q.HasMetric():
		return normalizePair(UnitsMetric, FieldWeightKg, q.WeightKg, FieldHeightCm, q.HeightCm)
	case q.HasImperial():
		return normalizePair(UnitsImperial, FieldWeightLb, q.WeightLb, FieldHeightIn, q.HeightIn)
	default:
		return nil, cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
			"Provide either (weight_kg,height_cm) or (weight_lb,height_in)",
			map[string]any{
				"accepted": [][]string{
					{FieldWeightKg, FieldHeightCm},
					{FieldWeightLb, FieldHeightIn},
				},
			})
	}
}

// ParseQuery normalizes query-string input.
func ParseQuery(values url.Values) (*Input, error) {
	return QueryFormFromValues(values).Normalize()
}

func normalizePair(units Units, weightField, weightRaw, heightField, heightRaw string) (*Input, error) {
	weight, err := parseNumber(weightField, weightRaw)
	if err != nil {
		return nil, err
	}

	height, err := parseNumber(heightField, heightRaw)
	if err != nil {
		return nil, err
	}

	return Normalize(units, weight, height)
}

// parseNumber parses a finite decimal number, ignoring surrounding spaces.
// Hexadecimal forms are rejected.
func parseNumber(field, raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || isHex(s) || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
			field+" must be a number",
			map[string]any{
				"field": field,
				"value": raw,
			})
	}
	return n, nil
}

func isHex(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")
}
