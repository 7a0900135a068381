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

package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// EnvLogLevel is the environment variable consulted by SetDefaultStructuredLogger.
const EnvLogLevel = "LOG_LEVEL"

// level backs the default logger so it can be changed after startup.
var level = new(slog.LevelVar)

// ParseLogLevel converts a level name to a slog.Level. Unknown or empty
// values yield slog.LevelInfo.
func ParseLogLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsValidLogLevel reports whether s names a supported level.
func IsValidLogLevel(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "info", "warn", "warning", "error":
		return true
	default:
		return false
	}
}

// NewStructuredLogger returns a JSON logger writing to stderr at a fixed level.
func NewStructuredLogger(module, version, lvl string) *slog.Logger {
	return newLogger(os.Stderr, module, version, ParseLogLevel(lvl))
}

// SetDefaultStructuredLogger installs the default logger with the level
// taken from LOG_LEVEL.
func SetDefaultStructuredLogger(module, version string) {
	SetDefaultStructuredLoggerWithLevel(module, version, os.Getenv(EnvLogLevel))
}

// SetDefaultStructuredLoggerWithLevel installs the default logger with an
// explicit level. The level can be changed later with SetLevel.
func SetDefaultStructuredLoggerWithLevel(module, version, lvl string) {
	level.Set(ParseLogLevel(lvl))
	slog.SetDefault(newLogger(os.Stderr, module, version, level))
}

// SetLevel changes the level of the default logger.
func SetLevel(lvl string) {
	level.Set(ParseLogLevel(lvl))
}

// Level returns the current level of the default logger.
func Level() slog.Level {
	return level.Level()
}

// NewLogLogger returns a standard library logger that writes through the
// default slog logger at the given level.
func NewLogLogger(lvl slog.Level) *log.Logger {
	return slog.NewLogLogger(slog.Default().Handler(), lvl)
}

func newLogger(w io.Writer, module, version string, lvl slog.Leveler) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl.Level() <= slog.LevelDebug,
		ReplaceAttr: shortenSource,
	})
	return slog.New(h).With(
		slog.String("module", module),
		slog.String("version", version),
	)
}

// shortenSource trims source file paths to their base name.
func shortenSource(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.SourceKey {
		return a
	}
	if src, ok := a.Value.Any().(*slog.Source); ok {
		src.File = filepath.Base(src.File)
	}
	return a
}
