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

package cli

import (
	"github.com/spf13/cobra"

	"github.com/weftdata/weft/internal/commands/shared"
)

// SetVersion sets the version information (called from main)
func SetVersion(v, c, b string) {
	shared.SetVersion(v, c, b)
}

// NewRootCommand creates the root Cobra command for weft
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weft",
		Short: "Weft - data integration from the terminal",
		Long: `Weft is the command-line client for the Weft data-integration platform.
It browses projects, connectors, pipelines and automations, validates
connector configurations locally, and runs ad-hoc discovery queries.

Run 'weft auth status' to check your token.
Run 'weft connector list' to browse the connector registry.`,
		SilenceUsage:  true, // Don't show usage on errors
		SilenceErrors: true, // We handle errors ourselves for proper exit codes
	}

	// "did you mean" suggestions for mistyped subcommands
	cmd.SuggestionsMinimumDistance = 2

	// Get flag pointers from shared package
	verbose, quiet, json, jq, config := shared.FlagPointers()

	// Add global flags
	cmd.PersistentFlags().BoolVarP(verbose, "verbose", "v", false, "Enable verbose output")
	cmd.PersistentFlags().BoolVarP(quiet, "quiet", "q", false, "Suppress non-error output")
	cmd.PersistentFlags().BoolVar(json, "json", false, "Output in JSON format")
	cmd.PersistentFlags().StringVar(jq, "jq", "", "Filter JSON output with a jq expression (implies --json)")
	cmd.PersistentFlags().StringVar(config, "config", "", "Path to config file (default: ~/.config/weft/config.yaml)")

	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		// --jq without --json would silently do nothing
		if *jq != "" {
			*json = true
		}
	}

	return cmd
}

// GetVersion returns version information
func GetVersion() (string, string, string) {
	return shared.GetVersion()
}

// HandleExitError handles exit errors with proper exit codes
func HandleExitError(err error) {
	shared.HandleExitError(err)
}
