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
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/NVIDIA/bmi-api/pkg/bmi"
	"github.com/NVIDIA/bmi-api/pkg/defaults"
	cnserrors "github.com/NVIDIA/bmi-api/pkg/errors"
	"github.com/NVIDIA/bmi-api/pkg/normalizer"
	"github.com/NVIDIA/bmi-api/pkg/serializer"
	"github.com/NVIDIA/bmi-api/pkg/server"
)

const (
	// NoteWHO is attached to every result.
	NoteWHO = "Adult BMI categories per WHO"

	// internalErrorMessage is the only message clients see for non-validation
	// failures; the cause goes to details and the log.
	internalErrorMessage = "Internal error"
)

// Response is the body of a successful /v1/bmi request.
type Response struct {
	BMI                  float64         `json:"bmi" yaml:"bmi"`
	Category             bmi.Category    `json:"category" yaml:"category"`
	Inputs               normalizer.Echo `json:"inputs" yaml:"inputs"`
	HealthyWeightRangeKg [2]float64      `json:"healthy_weight_range_kg" yaml:"healthy_weight_range_kg"`
	Notes                []string        `json:"notes" yaml:"notes"`
}

// NewResponse assesses a normalized input.
func NewResponse(in *normalizer.Input) Response {
	result := bmi.Assess(in.WeightKg, in.HeightM)
	return Response{
		BMI:                  result.BMI,
		Category:             result.Category,
		Inputs:               in.Echo,
		HealthyWeightRangeKg: result.HealthyRange,
		Notes:                []string{NoteWHO},
	}
}

// Handler serves GET and POST /v1/bmi.
type Handler struct {
	// CacheMaxAge is the Cache-Control max-age for GET results. Zero
	// disables caching.
	CacheMaxAge time.Duration

	// MaxBodyBytes caps POST bodies. Zero uses defaults.MaxBodyBytes.
	MaxBodyBytes int64

	// Timeout bounds a single request, including the body read. Zero uses
	// defaults.BMIHandlerTimeout.
	Timeout time.Duration
}

// NewHandler returns a Handler with default limits.
func NewHandler() *Handler {
	return &Handler{
		CacheMaxAge:  defaults.CacheMaxAge,
		MaxBodyBytes: defaults.MaxBodyBytes,
		Timeout:      defaults.BMIHandlerTimeout,
	}
}

// HandleBMI processes BMI requests from the query string (GET) or the body
// (POST). Any other method is rejected with 405.
func (h *Handler) HandleBMI(w http.ResponseWriter, r *http.Request) {
	// Add request-scoped timeout
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout())
	defer cancel()

	var (
		in     *normalizer.Input
		err    error
		source string
	)

	switch r.Method {
	case http.MethodGet:
		source = sourceQuery
		in, err = normalizer.ParseQuery(r.URL.Query())
	case http.MethodPost:
		source = sourceBody
		if r.Body == nil {
			r.Body = http.NoBody
		}
		body := http.MaxBytesReader(w, r.Body, h.maxBodyBytes())
		defer body.Close()
		in, err = normalizer.ParseBody(&contextReader{ctx: ctx, r: body}, r.Header.Get("Content-Type"))
	default:
		server.WriteMethodNotAllowed(w, r, http.MethodGet, http.MethodPost)
		return
	}

	if err != nil {
		h.writeError(w, r, source, err)
		return
	}

	resp := NewResponse(in)

	slog.Debug("bmi assessed",
		"requestID", server.RequestIDFromContext(r.Context()),
		"units", in.Echo.Units,
		"bmi", resp.BMI,
		"category", resp.Category,
	)

	assessmentsTotal.WithLabelValues(in.Echo.Units.String(), string(resp.Category)).Inc()
	bmiValue.Observe(resp.BMI)

	// Set caching headers
	if r.Method == http.MethodGet && h.CacheMaxAge > 0 {
		w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(h.CacheMaxAge.Seconds())))
	} else {
		w.Header().Set("Cache-Control", "no-store")
	}

	format := serializer.FormatFromAccept(r.Header.Get("Accept"))
	serializer.Respond(w, http.StatusOK, format, resp)
}

// writeError reports validation failures as 400 and everything else as an
// opaque 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, source string, err error) {
	if cnserrors.IsBadRequest(err) {
		validationFailures.WithLabelValues(source).Inc()
		server.WriteErrorFromErr(w, r, err, internalErrorMessage, nil)
		return
	}

	slog.Error("bmi request failed",
		"requestID", server.RequestIDFromContext(r.Context()),
		"source", source,
		"error", err,
	)
	server.WriteError(w, r, http.StatusInternalServerError, cnserrors.ErrCodeInternal,
		internalErrorMessage, true, map[string]any{"error": err.Error()})
}

func (h *Handler) timeout() time.Duration {
	if h.Timeout > 0 {
		return h.Timeout
	}
	return defaults.BMIHandlerTimeout
}

func (h *Handler) maxBodyBytes() int64 {
	if h.MaxBodyBytes > 0 {
		return h.MaxBodyBytes
	}
	return defaults.MaxBodyBytes
}

// contextReader fails reads once ctx is done, so an aborted or timed out
// request stops consuming its body.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
