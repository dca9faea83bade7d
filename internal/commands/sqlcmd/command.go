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

// Package sqlcmd implements `weft sql`: ad-hoc discovery queries against a
// project's connected sources plus the local query history.
package sqlcmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/weftdata/weft/internal/api"
	"github.com/weftdata/weft/internal/commands/shared"
	"github.com/weftdata/weft/internal/history"
	"github.com/weftdata/weft/internal/output"
)

// NewCommand creates the sql command group
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sql",
		Short: "Run discovery queries",
		Long: `Run ad-hoc SQL against a project's connected sources. Executed queries
are recorded in a local history database.

See also: weft sql history`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newQueryCommand())
	cmd.AddCommand(newHistoryCommand())

	return cmd
}

func newQueryCommand() *cobra.Command {
	var (
		projectID string
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "query <statement>",
		Short: "Execute one SQL statement",
		Example: `  # Example 1: Query the configured project
  weft sql query 'select count(*) from orders'

  # Example 2: Query a specific project, JSON output
  weft sql query -p proj-42 'select 1' --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			statement := args[0]

			client, cfg, err := shared.NewAPIClient()
			if err != nil {
				return shared.NewInvalidConfigError("loading configuration", err)
			}
			if projectID == "" {
				projectID = cfg.DefaultProject
			}
			if projectID == "" {
				return shared.NewInvalidInputError("a project is required (use --project or set default_project)", nil)
			}

			cacheKey := "query:" + projectID + ":" + statement
			responseCache, cacheErr := shared.NewResponseCache(cfg.CacheTTL)

			var result *api.QueryResult
			cached := false
			if cacheErr == nil && !noCache {
				cached, _ = responseCache.Get(cacheKey, &result)
			}

			if !cached {
				result, err = client.RunQuery(cmd.Context(), projectID, statement)
				if err != nil {
					return shared.NewAPIFailureError("running query", err)
				}
				if cacheErr == nil {
					_ = responseCache.Put(cacheKey, result)
				}

				// History is best-effort; a broken local database must not
				// hide the query result. Cached replays are not re-recorded.
				if store, err := shared.OpenHistory(); err == nil {
					_, _ = store.Record(cmd.Context(), projectID, statement, result.RowCount, result.Duration)
					store.Close()
				}
			}

			if shared.GetJSON() {
				type queryResponse struct {
					shared.JSONResponse
					Result *api.QueryResult `json:"result"`
				}
				return output.EmitJSON(queryResponse{
					JSONResponse: shared.NewResponse("sql query"),
					Result:       result,
				})
			}

			table := output.NewTable(result.Columns...)
			for _, row := range result.Rows {
				cells := make([]string, len(row))
				for i, v := range row {
					cells[i] = formatCell(v)
				}
				table.AddRow(cells...)
			}
			if err := table.Write(cmd.OutOrStdout()); err != nil {
				return err
			}
			cmd.Printf("\n%d row(s) in %s\n", result.RowCount, result.Duration)
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectID, "project", "p", "", "Project to query (defaults to the configured project)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Bypass the local response cache")

	return cmd
}

func newHistoryCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently executed queries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := shared.OpenHistory()
			if err != nil {
				return shared.NewInvalidConfigError("opening query history", err)
			}
			defer store.Close()

			entries, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("reading query history: %w", err)
			}

			if shared.GetJSON() {
				type historyResponse struct {
					shared.JSONResponse
					Entries []history.Entry `json:"entries"`
				}
				return output.EmitJSON(historyResponse{
					JSONResponse: shared.NewResponse("sql history"),
					Entries:      entries,
				})
			}

			table := output.NewTable("EXECUTED", "PROJECT", "ROWS", "DURATION", "STATEMENT")
			for _, e := range entries {
				table.AddRow(
					e.ExecutedAt.Local().Format(time.DateTime),
					e.ProjectID,
					fmt.Sprintf("%d", e.RowCount),
					e.Duration.String(),
					truncate(e.Statement, 60),
				)
			}
			return table.Write(cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum entries to show")

	return cmd
}

func formatCell(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case string:
		return val
	case float64:
		// JSON numbers decode as float64; keep integers readable.
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%g", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
