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

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/bmi-api/pkg/defaults"
	"github.com/NVIDIA/bmi-api/pkg/logging"
)

// Environment variables that override file values.
const (
	EnvPort            = "PORT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT_SECONDS"
)

// Config is the parsed configuration file.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Address is the interface to bind; empty binds all interfaces.
	Address string `yaml:"address"`

	// Port is the listen port (default 8080).
	Port int `yaml:"port"`

	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// CacheMaxAge is the Cache-Control max-age sent with GET results.
	// Zero disables caching.
	CacheMaxAge time.Duration `yaml:"cache_max_age"`

	// CORS controls cross-origin access.
	CORS CORSConfig `yaml:"cors"`
}

// CORSConfig holds cross-origin settings.
type CORSConfig struct {
	// AllowedOrigins lists origins allowed to call the API. "*" allows all.
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
}

// Default returns a Config pre-populated with default values.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            defaults.ServerPort,
			ReadTimeout:     defaults.ServerReadTimeout,
			WriteTimeout:    defaults.ServerWriteTimeout,
			IdleTimeout:     defaults.ServerIdleTimeout,
			ShutdownTimeout: defaults.ServerShutdownTimeout,
			CacheMaxAge:     defaults.CacheMaxAge,
			CORS: CORSConfig{
				AllowedOrigins: []string{"*"},
			},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads and parses the config file at path. Missing fields are filled
// with defaults before validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %q: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML config data over the defaults and validates it.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides values from the environment. Invalid values are ignored.
func (c *Config) ApplyEnv() {
	if portStr := os.Getenv(EnvPort); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil && port > 0 && port <= 65535 {
			c.Server.Port = port
		}
	}

	// Allow customization of shutdown timeout to match K8s eviction grace period
	if shutdownStr := os.Getenv(EnvShutdownTimeout); shutdownStr != "" {
		if seconds, err := strconv.Atoi(shutdownStr); err == nil && seconds > 0 {
			c.Server.ShutdownTimeout = time.Duration(seconds) * time.Second
		}
	}

	if lvl := os.Getenv(logging.EnvLogLevel); logging.IsValidLogLevel(lvl) {
		c.Logging.Level = lvl
	}
}

// Validate checks structural constraints on the configuration.
func (c *Config) Validate() error {
	s := c.Server
	if s.Port <= 0 || s.Port > 65535 {
		return fmt.Errorf("server.port %d is out of range [1, 65535]", s.Port)
	}

	durations := map[string]time.Duration{
		"server.read_timeout":     s.ReadTimeout,
		"server.write_timeout":    s.WriteTimeout,
		"server.idle_timeout":     s.IdleTimeout,
		"server.shutdown_timeout": s.ShutdownTimeout,
		"server.cache_max_age":    s.CacheMaxAge,
	}
	for name, d := range durations {
		if d < 0 {
			return fmt.Errorf("%s must not be negative", name)
		}
	}

	for i, origin := range s.CORS.AllowedOrigins {
		if strings.TrimSpace(origin) == "" {
			return fmt.Errorf("server.cors.allowed_origins[%d] is empty", i)
		}
	}

	if c.Logging.Level != "" && !logging.IsValidLogLevel(c.Logging.Level) {
		return fmt.Errorf("logging.level %q unknown: want debug|info|warn|error", c.Logging.Level)
	}
	return nil
}
