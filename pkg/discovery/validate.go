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

package discovery

import (
	"fmt"
	"math"
	"strings"
)

// ConnectorConfig is one connector type's wizard requirements as served by
// the platform's connector registry.
//
// PipelineRequiredScreens is deliberately loose-typed: the registry payload
// is plain JSON and malformed entries (a string where an array belongs)
// must be reportable by the validator rather than fail decoding. Unknown
// fields in the payload are ignored.
type ConnectorConfig struct {
	ConnectorName           string `json:"connectorName"`
	PipelineRequiredScreens any    `json:"pipelineRequiredScreens"`
	Active                  bool   `json:"active"`
}

// ValidationResult aggregates everything the validator found. Errors make
// the configuration invalid; warnings never do.
type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// ValidateConnectorConfig runs all structural and pattern-consistency
// checks against a connector configuration. It never fails itself: every
// problem is returned as data. Checks accumulate: a configuration with
// several independent problems reports all of them, not just the first.
//
// The one short-circuit is a nil configuration, which is reported as a
// single top-level error with no further checks.
func ValidateConnectorConfig(cfg *ConnectorConfig) *ValidationResult {
	result := &ValidationResult{
		Errors:   []string{},
		Warnings: []string{},
	}

	if cfg == nil {
		result.Errors = append(result.Errors, "Configuration is null or undefined")
		result.Valid = false
		return result
	}

	if cfg.ConnectorName == "" {
		result.Errors = append(result.Errors, "Missing or empty connectorName")
	}

	screens, ok := normalizeScreens(cfg.PipelineRequiredScreens, result)
	if ok {
		checkScreenIDs(screens, result)
	}

	result.Valid = len(result.Errors) == 0
	return result
}

// AssertValidConfig is the fail-fast guard used at configuration-load time.
// It returns nil for valid configurations (warnings included) and otherwise
// a single error carrying every individual validation error, so the caller
// gets full diagnostic detail in one shot.
func AssertValidConfig(cfg *ConnectorConfig) error {
	result := ValidateConnectorConfig(cfg)
	if result.Valid {
		return nil
	}
	return fmt.Errorf("Invalid connector configuration: %s", strings.Join(result.Errors, "; "))
}

// Screens returns the well-formed screen IDs of the configuration, in
// declaration order. Malformed entries are dropped; callers that care about
// them run the validator.
func (c *ConnectorConfig) Screens() []Screen {
	if c == nil {
		return nil
	}
	elems, ok := normalizeScreens(c.PipelineRequiredScreens, &ValidationResult{})
	if !ok {
		return nil
	}
	screens := make([]Screen, 0, len(elems))
	for _, elem := range elems {
		if id, ok := screenID(elem); ok {
			screens = append(screens, id)
		}
	}
	return screens
}

// normalizeScreens checks the shape of the screen list and returns the raw
// elements when it really is a sequence. A missing or malformed list is an
// error, and in the malformed case the element and pattern checks are
// skipped, there is nothing valid to iterate.
func normalizeScreens(raw any, result *ValidationResult) ([]any, bool) {
	switch v := raw.(type) {
	case nil:
		result.Errors = append(result.Errors, "Missing pipelineRequiredScreens array")
		return nil, false
	case []any:
		return v, true
	case []Screen:
		elems := make([]any, len(v))
		for i, s := range v {
			elems[i] = s
		}
		return elems, true
	case []int:
		elems := make([]any, len(v))
		for i, s := range v {
			elems[i] = s
		}
		return elems, true
	default:
		result.Errors = append(result.Errors, "pipelineRequiredScreens is not an array")
		return nil, false
	}
}

// checkScreenIDs validates the individual screen IDs and runs the
// pattern-consistency warnings over the IDs that parsed cleanly.
func checkScreenIDs(elems []any, result *ValidationResult) {
	if len(elems) == 0 {
		result.Warnings = append(result.Warnings, "pipelineRequiredScreens is empty")
	}

	var (
		screens []Screen
		invalid []string
		seen    = map[Screen]int{}
		dupes   []string
	)

	for _, elem := range elems {
		id, ok := screenID(elem)
		if !ok {
			invalid = append(invalid, fmt.Sprintf("%v", elem))
			continue
		}
		screens = append(screens, id)
		seen[id]++
		if seen[id] == 2 {
			dupes = append(dupes, id.String())
		}
	}

	if len(invalid) > 0 {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Invalid screen IDs: %s", strings.Join(invalid, ", ")))
	}

	// One duplicate warning per configuration, however many groups exist.
	if len(dupes) > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("duplicate screen IDs: %s", strings.Join(dupes, ", ")))
	}

	if HasConflict(screens) {
		result.Warnings = append(result.Warnings,
			"both CATALOGS and DATABASE screens are present; two-phase discovery takes precedence")
	}
	if HasIncompleteLakehouse(screens) {
		result.Warnings = append(result.Warnings,
			"incomplete lakehouse discovery: DATABASE screen present without SCHEMA")
	}
	if HasOrphanSchema(screens) {
		result.Warnings = append(result.Warnings,
			"SCHEMA screen has no parent screen (CATALOGS or DATABASE)")
	}
	if HasOrphanArtifacts(screens) {
		result.Warnings = append(result.Warnings,
			"artifact selection screen requires a schema context screen")
	}
}

// screenID coerces one decoded element to a Screen. JSON numbers arrive as
// float64, so integral positive floats are accepted; everything else
// (fractional, zero, negative, non-numeric) is rejected.
func screenID(elem any) (Screen, bool) {
	switch v := elem.(type) {
	case Screen:
		if v > 0 {
			return v, true
		}
	case int:
		if v > 0 {
			return Screen(v), true
		}
	case int64:
		if v > 0 {
			return Screen(v), true
		}
	case float64:
		if v > 0 && v == math.Trunc(v) {
			return Screen(v), true
		}
	}
	return 0, false
}
