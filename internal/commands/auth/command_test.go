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
	"bytes"
	"path/filepath"
	"testing"

	"github.com/weftdata/weft/internal/commands/shared"
)

func runStatus(t *testing.T) string {
	t.Helper()

	// Point at an absent config file so only the environment feeds the
	// status report.
	shared.SetConfigPathForTest(filepath.Join(t.TempDir(), "config.yaml"))
	t.Cleanup(func() { shared.SetConfigPathForTest("") })

	cmd := NewCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"status"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("auth status failed: %v", err)
	}
	return buf.String()
}

func TestStatusNoToken(t *testing.T) {
	t.Setenv("WEFT_API_TOKEN", "")

	out := runStatus(t)
	if !bytes.Contains([]byte(out), []byte("no token configured")) {
		t.Errorf("expected missing-token message, got: %s", out)
	}
}

func TestStatusOpaqueTokenFromEnv(t *testing.T) {
	t.Setenv("WEFT_API_TOKEN", "wft_not_a_jwt")

	out := runStatus(t)
	if !bytes.Contains([]byte(out), []byte("environment")) {
		t.Errorf("expected environment source, got: %s", out)
	}
	if !bytes.Contains([]byte(out), []byte("opaque")) {
		t.Errorf("expected opaque token note, got: %s", out)
	}
}
