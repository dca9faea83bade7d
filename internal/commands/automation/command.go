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

package automation

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/spf13/cobra"

	"github.com/weftdata/weft/internal/api"
	"github.com/weftdata/weft/internal/commands/shared"
	"github.com/weftdata/weft/internal/output"
)

// NewCommand creates the automation command group
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "automation",
		Short: "Manage platform automations",
		Long: `Automations run scheduled or event-driven actions inside a project.

See also: weft project`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newListCommand())
	cmd.AddCommand(newSetActiveCommand("enable", true))
	cmd.AddCommand(newSetActiveCommand("disable", false))

	return cmd
}

func newListCommand() *cobra.Command {
	var (
		projectID  string
		filterExpr string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List automations",
		Long: `List shows a project's automations. The --filter flag takes a boolean
expression evaluated per automation with the fields id, name, project_id,
active and schedule in scope.`,
		Example: `  # Example 1: List every automation in the configured project
  weft automation list

  # Example 2: Only active, scheduled automations
  weft automation list --filter 'active && schedule != ""'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := shared.NewAPIClient()
			if err != nil {
				return shared.NewInvalidConfigError("loading configuration", err)
			}
			if projectID == "" {
				projectID = cfg.DefaultProject
			}

			var program *vm.Program
			if filterExpr != "" {
				program, err = compileFilter(filterExpr)
				if err != nil {
					return shared.NewInvalidInputError("compiling --filter expression", err)
				}
			}

			automations, err := client.ListAutomations(cmd.Context(), projectID)
			if err != nil {
				return shared.NewAPIFailureError("listing automations", err)
			}

			if program != nil {
				automations, err = applyFilter(program, automations)
				if err != nil {
					return shared.NewInvalidInputError("evaluating --filter expression", err)
				}
			}

			if shared.GetJSON() {
				type listResponse struct {
					shared.JSONResponse
					Automations []api.Automation `json:"automations"`
				}
				return output.EmitJSON(listResponse{
					JSONResponse: shared.NewResponse("automation list"),
					Automations:  automations,
				})
			}

			table := output.NewTable("ID", "NAME", "ACTIVE", "SCHEDULE")
			for _, a := range automations {
				table.AddRow(a.ID, a.Name, fmt.Sprintf("%t", a.Active), a.Schedule)
			}
			return table.Write(cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&projectID, "project", "p", "", "Scope to a project (defaults to the configured project)")
	cmd.Flags().StringVar(&filterExpr, "filter", "", "Boolean expression to filter automations")

	return cmd
}

// filterEnv declares the fields in scope for --filter expressions. Compiling
// against it makes unknown variables and non-boolean expressions fail up
// front instead of per row.
var filterEnv = map[string]any{
	"id":         "",
	"name":       "",
	"project_id": "",
	"active":     false,
	"schedule":   "",
}

func compileFilter(expression string) (*vm.Program, error) {
	return expr.Compile(expression, expr.Env(filterEnv), expr.AsBool())
}

func applyFilter(program *vm.Program, automations []api.Automation) ([]api.Automation, error) {
	var kept []api.Automation
	for _, a := range automations {
		env := map[string]any{
			"id":         a.ID,
			"name":       a.Name,
			"project_id": a.ProjectID,
			"active":     a.Active,
			"schedule":   a.Schedule,
		}
		result, err := expr.Run(program, env)
		if err != nil {
			return nil, err
		}
		if keep, ok := result.(bool); ok && keep {
			kept = append(kept, a)
		}
	}
	return kept, nil
}

func newSetActiveCommand(verb string, active bool) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " <id>",
		Short: capitalize(verb) + " an automation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := shared.NewAPIClient()
			if err != nil {
				return shared.NewInvalidConfigError("loading configuration", err)
			}

			automation, err := client.SetAutomationActive(cmd.Context(), args[0], active)
			if err != nil {
				return shared.NewAPIFailureError(verb+" automation", err)
			}

			if shared.GetJSON() {
				type setResponse struct {
					shared.JSONResponse
					Automation *api.Automation `json:"automation"`
				}
				return output.EmitJSON(setResponse{
					JSONResponse: shared.NewResponse("automation " + verb),
					Automation:   automation,
				})
			}

			cmd.Println(shared.RenderOK(fmt.Sprintf("%s is now %s", automation.Name, statusWord(automation.Active))))
			return nil
		},
	}
}

func statusWord(active bool) string {
	if active {
		return "enabled"
	}
	return "disabled"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
