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

package server

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/NVIDIA/bmi-api/pkg/defaults"
)

var (
	corsAllowedMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	corsAllowedHeaders = []string{"Accept", "Content-Type", "X-Request-Id"}
	corsExposedHeaders = []string{"X-Request-Id", "X-API-Version"}
)

// SetAllowedOrigins replaces the CORS origin list. It is safe to call while
// the server is handling requests.
func (s *Server) SetAllowedOrigins(origins []string) {
	o := slices.Clone(origins)
	s.origins.Store(&o)
}

// AllowedOrigins returns the current CORS origin list.
func (s *Server) AllowedOrigins() []string {
	if o := s.origins.Load(); o != nil {
		return slices.Clone(*o)
	}
	return nil
}

// corsMiddleware adds Cross-Origin Resource Sharing headers and answers
// preflight OPTIONS requests with 204.
func (s *Server) corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var allowed []string
		if o := s.origins.Load(); o != nil {
			allowed = *o
		}

		origin := r.Header.Get("Origin")
		originAllowed := false

		switch {
		case slices.Contains(allowed, "*"):
			w.Header().Set("Access-Control-Allow-Origin", "*")
			originAllowed = true
		case origin != "" && slices.Contains(allowed, origin):
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
			originAllowed = true
		}

		if originAllowed {
			w.Header().Set("Access-Control-Expose-Headers", strings.Join(corsExposedHeaders, ", "))
		}

		// Handle preflight OPTIONS request
		if r.Method == http.MethodOptions {
			corsPreflights.WithLabelValues(strconv.FormatBool(originAllowed)).Inc()
			if originAllowed {
				w.Header().Set("Access-Control-Allow-Methods", strings.Join(corsAllowedMethods, ", "))
				w.Header().Set("Access-Control-Allow-Headers", strings.Join(corsAllowedHeaders, ", "))
				w.Header().Set("Access-Control-Max-Age", strconv.Itoa(defaults.CORSMaxAge))
			}
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	}
}
