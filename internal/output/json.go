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

package output

import (
	"encoding/json"
	"io"
	"os"

	"github.com/weftdata/weft/internal/commands/shared"
)

// EmitJSON marshals a response to indented JSON on stdout. When a jq filter
// expression is set via the global --jq flag, the response is passed through
// it first.
func EmitJSON(response interface{}) error {
	return EmitJSONTo(os.Stdout, response)
}

// EmitJSONTo marshals a response to indented JSON on the given writer.
func EmitJSONTo(w io.Writer, response interface{}) error {
	if expr := shared.GetJQ(); expr != "" {
		filtered, err := applyFilter(expr, response)
		if err != nil {
			return err
		}
		response = filtered
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(response)
}

// EmitJSONError emits a JSON error envelope for a command.
func EmitJSONError(command string, errors []shared.JSONError) error {
	type errorResponse struct {
		shared.JSONResponse
		Errors []shared.JSONError `json:"errors"`
	}

	resp := errorResponse{
		JSONResponse: shared.JSONResponse{
			Version: "1.0",
			Command: command,
			Success: false,
		},
		Errors: errors,
	}

	return EmitJSON(resp)
}
