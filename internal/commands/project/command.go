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

package project

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/weftdata/weft/internal/api"
	"github.com/weftdata/weft/internal/commands/shared"
	"github.com/weftdata/weft/internal/output"
)

// NewCommand creates the project command group
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage platform projects",
		Long: `Projects are the top-level containers for pipelines and automations.

See also: weft pipeline, weft automation`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newListCommand())
	cmd.AddCommand(newGetCommand())

	return cmd
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects visible to the current token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := shared.NewAPIClient()
			if err != nil {
				return shared.NewInvalidConfigError("loading configuration", err)
			}

			projects, err := client.ListProjects(cmd.Context())
			if err != nil {
				return shared.NewAPIFailureError("listing projects", err)
			}

			if shared.GetJSON() {
				type listResponse struct {
					shared.JSONResponse
					Projects []api.Project `json:"projects"`
				}
				return output.EmitJSON(listResponse{
					JSONResponse: shared.NewResponse("project list"),
					Projects:     projects,
				})
			}

			table := output.NewTable("ID", "NAME", "CREATED")
			for _, p := range projects {
				table.AddRow(p.ID, p.Name, p.CreatedAt.Format(time.DateOnly))
			}
			return table.Write(cmd.OutOrStdout())
		},
	}
}

func newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := shared.NewAPIClient()
			if err != nil {
				return shared.NewInvalidConfigError("loading configuration", err)
			}

			project, err := client.GetProject(cmd.Context(), args[0])
			if err != nil {
				return shared.NewAPIFailureError("fetching project", err)
			}

			if shared.GetJSON() {
				type getResponse struct {
					shared.JSONResponse
					Project *api.Project `json:"project"`
				}
				return output.EmitJSON(getResponse{
					JSONResponse: shared.NewResponse("project get"),
					Project:      project,
				})
			}

			cmd.Printf("ID:      %s\n", project.ID)
			cmd.Printf("Name:    %s\n", project.Name)
			cmd.Printf("Created: %s\n", project.CreatedAt.Format(time.RFC3339))
			return nil
		},
	}
}
