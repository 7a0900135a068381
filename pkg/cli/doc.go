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

// Package cli implements the command line of the bmid server.
//
// # Usage
//
//	bmid [--config FILE] [--port N] [--log-level LEVEL] [--env-file FILE]
//
// # Flags
//
//	--config     YAML config file, watched for changes (env: BMI_CONFIG)
//	--port       listen port (env: PORT)
//	--log-level  debug, info, warn or error (env: LOG_LEVEL)
//	--env-file   dotenv file loaded before the environment is read
//
// Precedence, lowest first: defaults, config file, environment, flags.
// Variables from --env-file never replace ones already set in the process
// environment.
//
// # Examples
//
//	bmid --port 9090 --log-level debug
//	bmid --config /etc/bmi/config.yaml --env-file .env
package cli
