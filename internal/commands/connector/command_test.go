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
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/weftdata/weft/internal/commands/shared"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "connector.json")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func runInspect(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(append([]string{"inspect"}, args...))
	err := cmd.Execute()
	return buf.String(), err
}

func TestInspectValidFile(t *testing.T) {
	path := writeConfigFile(t, `{
		"connectorName": "Databricks",
		"pipelineRequiredScreens": [102, 103],
		"active": true
	}`)

	out, err := runInspect(t, "--file", path)
	if err != nil {
		t.Fatalf("inspect failed: %v", err)
	}
	if !bytes.Contains([]byte(out), []byte("two-phase")) {
		t.Errorf("expected two-phase pattern in output, got: %s", out)
	}
	if !bytes.Contains([]byte(out), []byte("configuration is valid")) {
		t.Errorf("expected valid message, got: %s", out)
	}
}

func TestInspectSinglePhaseFile(t *testing.T) {
	path := writeConfigFile(t, `{
		"connectorName": "Snowflake",
		"pipelineRequiredScreens": [101, 103]
	}`)

	out, err := runInspect(t, "--file", path)
	if err != nil {
		t.Fatalf("inspect failed: %v", err)
	}
	if !bytes.Contains([]byte(out), []byte("single-phase")) {
		t.Errorf("expected single-phase pattern in output, got: %s", out)
	}
}

func TestInspectInvalidFileExitCode(t *testing.T) {
	path := writeConfigFile(t, `{
		"connectorName": "",
		"pipelineRequiredScreens": [101]
	}`)

	out, err := runInspect(t, "--file", path)
	if err == nil {
		t.Fatalf("expected error for invalid configuration, output: %s", out)
	}

	var exitErr *shared.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected ExitError, got %T: %v", err, err)
	}
	if exitErr.Code != shared.ExitInvalidConfig {
		t.Errorf("expected exit code %d, got %d", shared.ExitInvalidConfig, exitErr.Code)
	}
	if !bytes.Contains([]byte(out), []byte("Missing or empty connectorName")) {
		t.Errorf("expected connectorName error in output, got: %s", out)
	}
}

func TestInspectWarningsDoNotFail(t *testing.T) {
	// Conflicting markers warn but stay valid.
	path := writeConfigFile(t, `{
		"connectorName": "Hybrid",
		"pipelineRequiredScreens": [101, 102]
	}`)

	out, err := runInspect(t, "--file", path)
	if err != nil {
		t.Fatalf("inspect failed: %v", err)
	}
	if !bytes.Contains([]byte(out), []byte("precedence")) {
		t.Errorf("expected conflict warning in output, got: %s", out)
	}
}

func TestInspectStrict(t *testing.T) {
	path := writeConfigFile(t, `{
		"connectorName": "Broken",
		"pipelineRequiredScreens": "not-a-list"
	}`)

	_, err := runInspect(t, "--file", path, "--strict")
	if err == nil {
		t.Fatal("expected strict inspect to fail")
	}

	var exitErr *shared.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected ExitError, got %T: %v", err, err)
	}
	if exitErr.Code != shared.ExitInvalidConfig {
		t.Errorf("expected exit code %d, got %d", shared.ExitInvalidConfig, exitErr.Code)
	}
	if !bytes.Contains([]byte(exitErr.Message), []byte("Invalid connector configuration")) {
		t.Errorf("expected aggregated assertion message, got: %s", exitErr.Message)
	}
}

func TestInspectMalformedFile(t *testing.T) {
	path := writeConfigFile(t, `{not json`)

	_, err := runInspect(t, "--file", path)
	var exitErr *shared.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected ExitError, got %T: %v", err, err)
	}
	if exitErr.Code != shared.ExitInvalidInput {
		t.Errorf("expected exit code %d, got %d", shared.ExitInvalidInput, exitErr.Code)
	}
}

func TestInspectRequiresTarget(t *testing.T) {
	_, err := runInspect(t)
	var exitErr *shared.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected ExitError, got %T: %v", err, err)
	}
	if exitErr.Code != shared.ExitInvalidInput {
		t.Errorf("expected exit code %d, got %d", shared.ExitInvalidInput, exitErr.Code)
	}
}
