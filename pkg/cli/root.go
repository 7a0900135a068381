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

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/bmi-api/pkg/api"
	"github.com/NVIDIA/bmi-api/pkg/logging"
)

const (
	name           = "bmid"
	versionDefault = "dev"

	// envConfig names the config file when --config is not given.
	envConfig = "BMI_CONFIG"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"

	// serve is replaced in tests.
	serve = api.Serve
)

// Execute runs the root command with the process arguments and exits
// non-zero on failure. This is called by main.main().
func Execute() {
	if err := newRootCmd().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:    name,
		Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Usage:   "Body Mass Index HTTP API",
		Description: `Serves GET and POST /v1/bmi, an informational page at /, and
/health, /ready and /metrics for operations.

Settings are resolved from defaults, the optional config file, the
environment and finally these flags.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   fmt.Sprintf("Path to YAML config file, watched for changes (env: %s)", envConfig),
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Listen port (env: PORT)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: debug, info, warn, error (env: LOG_LEVEL)",
				Validator: func(lvl string) error {
					if !logging.IsValidLogLevel(lvl) {
						return fmt.Errorf("invalid log level %q", lvl)
					}
					return nil
				},
			},
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "Load environment variables from a dotenv file before reading the environment",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts, err := optionsFromCmd(cmd)
			if err != nil {
				return err
			}
			return serve(ctx, opts)
		},
	}
}

// optionsFromCmd loads the env file, if any, and collects flag overrides.
// Environment variables other than BMI_CONFIG are read later by the config
// layer, so the env file has to be loaded first.
func optionsFromCmd(cmd *cli.Command) (api.Options, error) {
	if envFile := cmd.String("env-file"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return api.Options{}, fmt.Errorf("failed to load env file %q: %w", envFile, err)
		}
	}

	opts := api.Options{
		ConfigPath: cmd.String("config"),
		Port:       int(cmd.Int("port")),
		LogLevel:   cmd.String("log-level"),
	}
	if opts.ConfigPath == "" {
		opts.ConfigPath = os.Getenv(envConfig)
	}

	if opts.Port < 0 || opts.Port > 65535 {
		return api.Options{}, fmt.Errorf("invalid port %d", opts.Port)
	}

	return opts, nil
}
