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
	"bytes"
	"errors"
	"testing"

	"github.com/weftdata/weft/internal/commands/shared"
)

func TestNewCommand(t *testing.T) {
	cmd := NewCommand()

	if cmd.Use != "pipeline" {
		t.Errorf("expected use 'pipeline', got %q", cmd.Use)
	}

	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"list", "get", "delete"} {
		if !names[want] {
			t.Errorf("expected %q subcommand to be registered", want)
		}
	}
}

func TestDeleteHasForceFlag(t *testing.T) {
	cmd := NewCommand()
	for _, sub := range cmd.Commands() {
		if sub.Name() != "delete" {
			continue
		}
		if sub.Flags().Lookup("force") == nil {
			t.Error("force flag not registered on delete")
		}
		return
	}
	t.Fatal("delete subcommand not found")
}

func TestDeleteRefusesNonInteractiveWithoutForce(t *testing.T) {
	// Test output is never a TTY, so an unforced delete must bail before
	// touching the API.
	t.Setenv("TERM", "dumb")

	cmd := NewCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"delete", "pipe-1"})

	err := cmd.Execute()
	var exitErr *shared.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected ExitError, got %T: %v", err, err)
	}
	if exitErr.Code != shared.ExitInvalidInput {
		t.Errorf("expected exit code %d, got %d", shared.ExitInvalidInput, exitErr.Code)
	}
}
