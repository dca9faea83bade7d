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

package pipeline

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/weftdata/weft/internal/api"
	"github.com/weftdata/weft/internal/commands/shared"
	"github.com/weftdata/weft/internal/output"
)

// NewCommand creates the pipeline command group
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pipeline",
		Short: "Manage data pipelines",
		Long: `Pipelines move data from a source connector into a destination.

See also: weft connector, weft project`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newListCommand())
	cmd.AddCommand(newGetCommand())
	cmd.AddCommand(newDeleteCommand())

	return cmd
}

func newListCommand() *cobra.Command {
	var projectID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pipelines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := shared.NewAPIClient()
			if err != nil {
				return shared.NewInvalidConfigError("loading configuration", err)
			}
			if projectID == "" {
				projectID = cfg.DefaultProject
			}

			pipelines, err := client.ListPipelines(cmd.Context(), projectID)
			if err != nil {
				return shared.NewAPIFailureError("listing pipelines", err)
			}

			if shared.GetJSON() {
				type listResponse struct {
					shared.JSONResponse
					Pipelines []api.Pipeline `json:"pipelines"`
				}
				return output.EmitJSON(listResponse{
					JSONResponse: shared.NewResponse("pipeline list"),
					Pipelines:    pipelines,
				})
			}

			table := output.NewTable("ID", "NAME", "CONNECTOR", "STATUS", "CREATED")
			for _, p := range pipelines {
				table.AddRow(p.ID, p.Name, p.Connector, p.Status,
					p.CreatedAt.Format(time.DateOnly))
			}
			return table.Write(cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&projectID, "project", "p", "", "Scope to a project (defaults to the configured project)")

	return cmd
}

func newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one pipeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := shared.NewAPIClient()
			if err != nil {
				return shared.NewInvalidConfigError("loading configuration", err)
			}

			pipeline, err := client.GetPipeline(cmd.Context(), args[0])
			if err != nil {
				return shared.NewAPIFailureError("fetching pipeline", err)
			}

			if shared.GetJSON() {
				type getResponse struct {
					shared.JSONResponse
					Pipeline *api.Pipeline `json:"pipeline"`
				}
				return output.EmitJSON(getResponse{
					JSONResponse: shared.NewResponse("pipeline get"),
					Pipeline:     pipeline,
				})
			}

			cmd.Printf("ID:        %s\n", pipeline.ID)
			cmd.Printf("Name:      %s\n", pipeline.Name)
			cmd.Printf("Project:   %s\n", pipeline.ProjectID)
			cmd.Printf("Connector: %s\n", pipeline.Connector)
			cmd.Printf("Status:    %s\n", pipeline.Status)
			cmd.Printf("Created:   %s\n", pipeline.CreatedAt.Format(time.RFC3339))
			return nil
		},
	}
}

func newDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a pipeline",
		Long: `Delete removes a pipeline from the platform. Prompts for confirmation
unless --force is given; non-interactive use requires --force.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			if !force {
				if !output.IsTTY() {
					return shared.NewInvalidInputError("refusing to delete without --force in a non-interactive session", nil)
				}

				confirmed := false
				form := huh.NewForm(huh.NewGroup(
					huh.NewConfirm().
						Title(fmt.Sprintf("Delete pipeline %s?", id)).
						Description("This cannot be undone.").
						Value(&confirmed),
				))
				if err := form.Run(); err != nil {
					return shared.NewInvalidInputError("confirmation aborted", err)
				}
				if !confirmed {
					cmd.Println("Aborted.")
					return nil
				}
			}

			client, _, err := shared.NewAPIClient()
			if err != nil {
				return shared.NewInvalidConfigError("loading configuration", err)
			}

			if err := client.DeletePipeline(cmd.Context(), id); err != nil {
				return shared.NewAPIFailureError("deleting pipeline", err)
			}

			if shared.GetJSON() {
				type deleteResponse struct {
					shared.JSONResponse
					ID string `json:"id"`
				}
				return output.EmitJSON(deleteResponse{
					JSONResponse: shared.NewResponse("pipeline delete"),
					ID:           id,
				})
			}

			cmd.Println(shared.RenderOK("deleted " + id))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")

	return cmd
}
