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

package api

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/NVIDIA/bmi-api/pkg/bmi"
	"github.com/NVIDIA/bmi-api/pkg/normalizer"
)

//go:embed templates/index.html.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html.tmpl"))

// PageData is rendered into the informational page.
type PageData struct {
	Name       string
	Version    string
	Route      string
	Categories []CategoryRow
	Limits     []normalizer.Limits
	Note       string
}

// CategoryRow describes one BMI band.
type CategoryRow struct {
	Category bmi.Category
	Range    string
}

// categoryRows lists the bands in ascending order.
func categoryRows() []CategoryRow {
	return []CategoryRow{
		{Category: bmi.CategoryUnderweight, Range: fmt.Sprintf("below %g", bmi.NormalThreshold)},
		{Category: bmi.CategoryNormal, Range: fmt.Sprintf("%g up to %g", bmi.NormalThreshold, bmi.OverweightThreshold)},
		{Category: bmi.CategoryOverweight, Range: fmt.Sprintf("%g up to %g", bmi.OverweightThreshold, bmi.ObesityThreshold)},
		{Category: bmi.CategoryObesity, Range: fmt.Sprintf("%g and above", bmi.ObesityThreshold)},
	}
}

// RenderPage renders the informational page once at startup.
func RenderPage(name, version string) ([]byte, error) {
	data := PageData{
		Name:       name,
		Version:    version,
		Route:      bmiRoute,
		Categories: categoryRows(),
		Limits:     normalizer.AllLimits(),
		Note:       "Adult BMI categories per WHO",
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	return buf.Bytes(), nil
}
