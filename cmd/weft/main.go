// Copyright 2025 Weft Data
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

package main

import (
	"github.com/weftdata/weft/internal/cli"
	"github.com/weftdata/weft/internal/commands/auth"
	"github.com/weftdata/weft/internal/commands/automation"
	"github.com/weftdata/weft/internal/commands/connector"
	"github.com/weftdata/weft/internal/commands/pipeline"
	"github.com/weftdata/weft/internal/commands/project"
	"github.com/weftdata/weft/internal/commands/sqlcmd"
	versioncmd "github.com/weftdata/weft/internal/commands/version"
)

// Version information (injected via ldflags at build time)
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	// Set version information from build-time ldflags
	cli.SetVersion(version, commit, buildDate)

	// Create root command and add subcommands
	rootCmd := cli.NewRootCommand()

	// Platform resources
	rootCmd.AddCommand(project.NewCommand())
	rootCmd.AddCommand(connector.NewCommand())
	rootCmd.AddCommand(pipeline.NewCommand())
	rootCmd.AddCommand(automation.NewCommand())

	// Discovery queries
	rootCmd.AddCommand(sqlcmd.NewCommand())

	// Authentication and version
	rootCmd.AddCommand(auth.NewCommand())
	rootCmd.AddCommand(versioncmd.NewVersionCommand())

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		cli.HandleExitError(err)
	}
}
