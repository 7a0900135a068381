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

// Package serializer writes HTTP response bodies and negotiates body formats.
//
// Two formats are supported:
//   - JSON: the default for requests and responses
//   - YAML: selected with application/yaml, application/x-yaml or text/yaml
//
// Usage:
//
//	serializer.RespondJSON(w, http.StatusOK, data)
//
//	format := serializer.FormatFromAccept(r.Header.Get("Accept"))
//	serializer.Respond(w, http.StatusOK, format, data)
//
// Responses are fully encoded before headers are written, so an encoding
// failure produces a clean 500 instead of a truncated body.
package serializer
