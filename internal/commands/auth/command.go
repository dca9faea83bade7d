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

package auth

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/weftdata/weft/internal/commands/shared"
	"github.com/weftdata/weft/internal/config"
	"github.com/weftdata/weft/internal/output"
	"github.com/weftdata/weft/internal/token"
)

// NewCommand creates the auth command group
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "auth",
		Short:         "Inspect authentication state",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newStatusCommand())

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show where the active token comes from and what it grants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(shared.GetConfigPath())
			if err != nil {
				return shared.NewInvalidConfigError("loading configuration", err)
			}

			bearer, source := token.Resolve("", cfg)

			type statusReport struct {
				Source  string   `json:"source"`
				Present bool     `json:"present"`
				Subject string   `json:"subject,omitempty"`
				Org     string   `json:"org,omitempty"`
				Scopes  []string `json:"scopes,omitempty"`
				Expires string   `json:"expires,omitempty"`
				Expired bool     `json:"expired,omitempty"`
				Opaque  bool     `json:"opaque,omitempty"`
			}
			report := statusReport{
				Source:  string(source),
				Present: bearer != "",
			}

			if bearer != "" {
				claims, err := token.Inspect(bearer)
				if err != nil {
					report.Opaque = true
				} else {
					report.Subject = claims.Subject
					report.Org = claims.Org
					report.Scopes = claims.Scopes
					if claims.ExpiresAt != nil {
						report.Expires = claims.ExpiresAt.Format(time.RFC3339)
						report.Expired = claims.Expired(time.Now())
					}
				}
			}

			if shared.GetJSON() {
				type statusResponse struct {
					shared.JSONResponse
					Auth statusReport `json:"auth"`
				}
				return output.EmitJSON(statusResponse{
					JSONResponse: shared.NewResponse("auth status"),
					Auth:         report,
				})
			}

			if !report.Present {
				cmd.Println(shared.RenderWarn("no token configured"))
				cmd.Println("Set WEFT_API_TOKEN or add `token:` to " + displayConfigPath())
				return nil
			}

			cmd.Printf("Source:  %s\n", report.Source)
			if report.Opaque {
				cmd.Println("Token:   present (opaque, not a JWT)")
				return nil
			}
			if report.Subject != "" {
				cmd.Printf("Subject: %s\n", report.Subject)
			}
			if report.Org != "" {
				cmd.Printf("Org:     %s\n", report.Org)
			}
			if len(report.Scopes) > 0 {
				cmd.Printf("Scopes:  %s\n", strings.Join(report.Scopes, ", "))
			}
			if report.Expires != "" {
				if report.Expired {
					cmd.Println(shared.RenderError("token expired " + report.Expires))
				} else {
					cmd.Printf("Expires: %s\n", report.Expires)
				}
			}
			return nil
		},
	}
}

func displayConfigPath() string {
	if path, err := config.Path(); err == nil {
		return path
	}
	return "the weft config file"
}
