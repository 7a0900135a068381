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
	"encoding/json"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	cnserrors "github.com/NVIDIA/bmi-api/pkg/errors"
	"github.com/NVIDIA/bmi-api/pkg/serializer"
)

func invalidBodyMessage(f serializer.Format) string {
	if f == serializer.FormatYAML {
		return "Invalid YAML body"
	}
	return "Invalid JSON body"
}

// BodyForm is the structured body input shape. Field values are kept
// untyped until Normalize checks them.
type BodyForm struct {
	Units  any
	Weight any
	Height any
}

// DecodeBody reads and decodes a body payload. A payload that decodes to
// something other than an object yields an empty BodyForm.
func DecodeBody(body io.Reader, format serializer.Format) (*BodyForm, error) {
	if body == nil {
		return nil, cnserrors.BadRequest(invalidBodyMessage(format))
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeInvalidRequest, invalidBodyMessage(format), err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, cnserrors.BadRequest(invalidBodyMessage(format))
	}

	var raw any
	switch format {
	case serializer.FormatYAML:
		err = yaml.Unmarshal(data, &raw)
	default:
		err = json.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeInvalidRequest, invalidBodyMessage(format), err)
	}

	fields, _ := raw.(map[string]any)
	return &BodyForm{
		Units:  fields["units"],
		Weight: fields["weight"],
		Height: fields["height"],
	}, nil
}

// Normalize type-checks the form and validates it against the limits of the
// declared units.
func (b *BodyForm) Normalize() (*Input, error) {
	s, _ := b.Units.(string)
	units := Units(s)
	if !units.IsValid() {
		return nil, errInvalidUnits()
	}

	weight, weightOK := asNumber(b.Weight)
	height, heightOK := asNumber(b.Height)
	if !weightOK || !heightOK {
		return nil, cnserrors.BadRequest(`"weight" and "height" must be numbers`)
	}

	return Normalize(units, weight, height)
}

// ParseBody decodes and normalizes a request body.
func ParseBody(body io.Reader, contentType string) (*Input, error) {
	form, err := DecodeBody(body, serializer.FormatFromContentType(contentType))
	if err != nil {
		return nil, err
	}
	return form.Normalize()
}

// asNumber accepts the numeric types produced by the JSON and YAML decoders.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

func errInvalidUnits() error {
	return cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
		`Missing/invalid "units": "metric" | "imperial"`,
		map[string]any{
			"accepted": []Units{UnitsMetric, UnitsImperial},
		})
}
