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

package calculator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label values for bmi_validation_failures_total.
const (
	sourceQuery = "query"
	sourceBody  = "body"
)

var (
	// Assessment metrics
	assessmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bmi_assessments_total",
			Help: "Total number of successful BMI assessments",
		},
		[]string{"units", "category"},
	)

	bmiValue = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "bmi_value",
			Help:    "Distribution of computed BMI values",
			Buckets: []float64{16, 17, 18.5, 25, 30, 35, 40},
		},
	)

	// Validation metrics
	validationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bmi_validation_failures_total",
			Help: "Total number of rejected BMI requests by input source",
		},
		[]string{"source"},
	)
)
