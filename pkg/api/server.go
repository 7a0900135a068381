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
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/NVIDIA/bmi-api/pkg/calculator"
	"github.com/NVIDIA/bmi-api/pkg/config"
	"github.com/NVIDIA/bmi-api/pkg/defaults"
	"github.com/NVIDIA/bmi-api/pkg/logging"
	"github.com/NVIDIA/bmi-api/pkg/server"
)

const (
	name           = "bmid"
	versionDefault = "dev"

	// bmiRoute is the only application endpoint.
	bmiRoute = "/v1/bmi"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/NVIDIA/bmi-api/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Options carries command line overrides. Zero values defer to the config
// file, the environment and defaults, in that order.
type Options struct {
	// ConfigPath is an optional YAML config file, watched for changes.
	ConfigPath string

	// Port overrides the listen port when positive.
	Port int

	// LogLevel overrides the log level when set.
	LogLevel string
}

// apply overlays the options on cfg.
func (o Options) apply(cfg *config.Config) {
	if o.Port > 0 {
		cfg.Server.Port = o.Port
	}
	if o.LogLevel != "" {
		cfg.Logging.Level = o.LogLevel
	}
}

// Serve starts the API server and blocks until shutdown.
// It configures logging, sets up routes, and handles graceful shutdown.
// Returns an error if the server fails to start or encounters a fatal error.
func Serve(ctx context.Context, opts Options) error {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	logging.SetDefaultStructuredLoggerWithLevel(name, version, cfg.Logging.Level)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"config", opts.ConfigPath,
	)

	s, err := newServer(cfg)
	if err != nil {
		return err
	}

	var tasks []func(context.Context) error
	if opts.ConfigPath != "" {
		tasks = append(tasks, func(ctx context.Context) error {
			return config.Watch(ctx, opts.ConfigPath, func(c *config.Config) {
				applyReload(s, c, opts)
			})
		})
	}

	if err := s.Run(ctx, tasks...); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// resolveConfig merges defaults, the config file, the environment and opts.
func resolveConfig(opts Options) (*config.Config, error) {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	cfg.ApplyEnv()
	opts.apply(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newServer builds the server with the BMI route and the rendered page.
func newServer(cfg *config.Config) (*server.Server, error) {
	page, err := RenderPage(name, version)
	if err != nil {
		return nil, err
	}

	calc := &calculator.Handler{
		CacheMaxAge:  cfg.Server.CacheMaxAge,
		MaxBodyBytes: defaults.MaxBodyBytes,
		Timeout:      defaults.BMIHandlerTimeout,
	}

	routes := map[string]http.HandlerFunc{
		bmiRoute: calc.HandleBMI,
	}

	return server.New(
		server.WithConfig(serverConfig(cfg)),
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(routes),
		server.WithPage(page),
	), nil
}

// serverConfig maps the file configuration onto server.Config.
func serverConfig(cfg *config.Config) *server.Config {
	sc := server.NewConfig()
	sc.Address = cfg.Server.Address
	sc.Port = cfg.Server.Port
	sc.AllowedOrigins = cfg.Server.CORS.AllowedOrigins
	sc.ReadTimeout = cfg.Server.ReadTimeout
	sc.WriteTimeout = cfg.Server.WriteTimeout
	sc.IdleTimeout = cfg.Server.IdleTimeout
	sc.ShutdownTimeout = cfg.Server.ShutdownTimeout
	return sc
}

// applyReload applies the settings that can change without a restart.
// Options still take precedence over the reloaded file.
func applyReload(s *server.Server, cfg *config.Config, opts Options) {
	opts.apply(cfg)

	logging.SetLevel(cfg.Logging.Level)
	s.SetAllowedOrigins(cfg.Server.CORS.AllowedOrigins)

	slog.Info("configuration applied",
		"logLevel", cfg.Logging.Level,
		"allowedOrigins", cfg.Server.CORS.AllowedOrigins,
	)
}
