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

package connector

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/weftdata/weft/internal/api"
	"github.com/weftdata/weft/internal/commands/shared"
	"github.com/weftdata/weft/internal/output"
	"github.com/weftdata/weft/pkg/discovery"
)

// NewCommand creates the connector command group
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "connector",
		Short: "Browse and inspect the connector registry",
		Long: `Connectors are the source and destination types pipelines are built on.
Each connector declares the wizard screens its pipeline setup requires;
weft derives the discovery pattern (single-phase or two-phase) from them.

See also: weft pipeline create`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newListCommand())
	cmd.AddCommand(newGetCommand())
	cmd.AddCommand(newInspectCommand())

	return cmd
}

func newListCommand() *cobra.Command {
	var noCache bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available connector types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := shared.NewAPIClient()
			if err != nil {
				return shared.NewInvalidConfigError("loading configuration", err)
			}

			var connectors []api.Connector

			responseCache, cacheErr := shared.NewResponseCache(cfg.CacheTTL)
			cached := false
			if cacheErr == nil && !noCache {
				cached, _ = responseCache.Get("connectors", &connectors)
			}

			if !cached {
				connectors, err = client.ListConnectors(cmd.Context())
				if err != nil {
					return shared.NewAPIFailureError("listing connectors", err)
				}
				if cacheErr == nil {
					// Cache failures are not worth failing the command for.
					_ = responseCache.Put("connectors", connectors)
				}
			}

			if shared.GetJSON() {
				type listResponse struct {
					shared.JSONResponse
					Connectors []api.Connector `json:"connectors"`
				}
				return output.EmitJSON(listResponse{
					JSONResponse: shared.NewResponse("connector list"),
					Connectors:   connectors,
				})
			}

			table := output.NewTable("TYPE", "NAME", "PATTERN", "ACTIVE")
			for _, c := range connectors {
				table.AddRow(c.Type, c.ConnectorName,
					discovery.Classify(c.Screens()).String(),
					fmt.Sprintf("%t", c.Active))
			}
			return table.Write(cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Bypass the local response cache")

	return cmd
}

func newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <type>",
		Short: "Show one connector type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := shared.NewAPIClient()
			if err != nil {
				return shared.NewInvalidConfigError("loading configuration", err)
			}

			connector, err := client.GetConnector(cmd.Context(), args[0])
			if err != nil {
				return shared.NewAPIFailureError("fetching connector", err)
			}

			if shared.GetJSON() {
				type getResponse struct {
					shared.JSONResponse
					Connector *api.Connector `json:"connector"`
				}
				return output.EmitJSON(getResponse{
					JSONResponse: shared.NewResponse("connector get"),
					Connector:    connector,
				})
			}

			printConnector(cmd, connector)
			return nil
		},
	}
}

func newInspectCommand() *cobra.Command {
	var (
		filePath string
		strict   bool
	)

	cmd := &cobra.Command{
		Use:   "inspect [type]",
		Short: "Validate a connector configuration and report its discovery pattern",
		Long: `Inspect runs the discovery-pattern validator against a connector
configuration, either fetched from the registry by type or loaded from a
local JSON file with --file.

Errors make the configuration invalid and set a non-zero exit code.
Warnings flag pattern inconsistencies (conflicting markers, incomplete
lakehouse discovery, orphaned screens) without invalidating it.`,
		Example: `  # Example 1: Inspect a registry connector
  weft connector inspect snowflake

  # Example 2: Inspect a local configuration before submitting it
  weft connector inspect --file connector.json

  # Example 3: Fail on the first invalid configuration at load time
  weft connector inspect --file connector.json --strict`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadTarget(cmd, args, filePath)
			if err != nil {
				return err
			}

			if strict {
				if err := discovery.AssertValidConfig(cfg); err != nil {
					return shared.NewInvalidConfigError(err.Error(), nil)
				}
			}

			result := discovery.ValidateConnectorConfig(cfg)
			pattern := discovery.Classify(cfg.Screens())

			if shared.GetJSON() {
				type inspectResponse struct {
					shared.JSONResponse
					ConnectorName string                      `json:"connector_name"`
					Pattern       string                      `json:"pattern"`
					Result        *discovery.ValidationResult `json:"result"`
				}
				resp := inspectResponse{
					JSONResponse:  shared.NewResponse("connector inspect"),
					ConnectorName: cfg.ConnectorName,
					Pattern:       pattern.String(),
					Result:        result,
				}
				resp.Success = result.Valid
				if err := output.EmitJSON(resp); err != nil {
					return err
				}
				if !result.Valid {
					return &shared.ExitError{Code: shared.ExitInvalidConfig, Message: ""}
				}
				return nil
			}

			cmd.Printf("Connector: %s\n", cfg.ConnectorName)
			cmd.Printf("Pattern:   %s\n", pattern)

			if result.Valid && len(result.Warnings) == 0 {
				cmd.Println(shared.RenderOK("configuration is valid"))
				return nil
			}

			for _, e := range result.Errors {
				cmd.Println(shared.RenderError(e))
			}
			for _, w := range result.Warnings {
				cmd.Println(shared.RenderWarn(w))
			}

			if !result.Valid {
				return &shared.ExitError{
					Code:    shared.ExitInvalidConfig,
					Message: "connector configuration is invalid",
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Load the configuration from a local JSON file")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail fast with aggregated errors (load-time assertion)")

	return cmd
}

// loadTarget resolves the configuration to inspect: a local file with
// --file, otherwise the registry entry for the given type.
func loadTarget(cmd *cobra.Command, args []string, filePath string) (*discovery.ConnectorConfig, error) {
	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, shared.NewInvalidInputError("reading configuration file", err)
		}
		var cfg discovery.ConnectorConfig
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, shared.NewInvalidInputError("parsing configuration file", err)
		}
		return &cfg, nil
	}

	if len(args) == 0 {
		return nil, shared.NewInvalidInputError("a connector type or --file is required", nil)
	}

	client, _, err := shared.NewAPIClient()
	if err != nil {
		return nil, shared.NewInvalidConfigError("loading configuration", err)
	}
	connector, err := client.GetConnector(cmd.Context(), args[0])
	if err != nil {
		return nil, shared.NewAPIFailureError("fetching connector", err)
	}
	return &connector.ConnectorConfig, nil
}

func printConnector(cmd *cobra.Command, connector *api.Connector) {
	cmd.Printf("Type:        %s\n", connector.Type)
	cmd.Printf("Name:        %s\n", connector.ConnectorName)
	if connector.Description != "" {
		cmd.Printf("Description: %s\n", connector.Description)
	}
	cmd.Printf("Active:      %t\n", connector.Active)

	screens := connector.Screens()
	names := make([]string, len(screens))
	for i, s := range screens {
		names[i] = s.String()
	}
	cmd.Printf("Screens:     %s\n", strings.Join(names, ", "))
	cmd.Printf("Pattern:     %s\n", discovery.Classify(screens))
}
