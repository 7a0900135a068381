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

package serializer

import "strings"

// Format represents a wire format for request and response bodies.
type Format string

const (
	// FormatJSON is application/json
	FormatJSON Format = "json"
	// FormatYAML is application/yaml
	FormatYAML Format = "yaml"
)

// IsUnknown reports whether f is not a supported format.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatJSON, FormatYAML:
		return false
	default:
		return true
	}
}

// ContentType returns the media type written for f.
func (f Format) ContentType() string {
	if f == FormatYAML {
		return "application/yaml"
	}
	return "application/json"
}

// SupportedFormats returns a list of all supported formats.
func SupportedFormats() []string {
	return []string{
		string(FormatJSON),
		string(FormatYAML),
	}
}

// mediaType lowercases a header value and strips parameters such as charset.
func mediaType(v string) string {
	mt := strings.ToLower(strings.TrimSpace(v))
	if idx := strings.Index(mt, ";"); idx != -1 {
		mt = strings.TrimSpace(mt[:idx])
	}
	return mt
}

func isYAMLMediaType(mt string) bool {
	switch mt {
	case "application/x-yaml", "application/yaml", "text/yaml":
		return true
	default:
		return false
	}
}

// FormatFromContentType selects a format from a Content-Type header.
// Empty and unrecognized media types are treated as JSON.
func FormatFromContentType(contentType string) Format {
	if isYAMLMediaType(mediaType(contentType)) {
		return FormatYAML
	}
	return FormatJSON
}

// FormatFromAccept selects a response format from an Accept header. The first
// listed media type that maps to a supported format wins; JSON is the default.
func FormatFromAccept(accept string) Format {
	for _, part := range strings.Split(accept, ",") {
		mt := mediaType(part)
		switch {
		case isYAMLMediaType(mt):
			return FormatYAML
		case mt == "application/json", mt == "*/*", strings.HasSuffix(mt, "+json"):
			return FormatJSON
		}
	}
	return FormatJSON
}
