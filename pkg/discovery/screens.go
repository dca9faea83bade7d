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

// Package discovery models the screen-based discovery patterns of the
// pipeline creation wizard.
//
// Every connector type declares the wizard screens its pipeline setup
// requires. A small set of marker screens determines how schema exploration
// works for that connector: single-phase (one catalog listing, RDBMS-style)
// or two-phase (database selection followed by schema selection,
// lakehouse-style). The classifier derives the pattern from the screen list
// and the validator checks that a connector configuration is internally
// consistent before the CLI relies on it.
package discovery

import "fmt"

// Screen identifies one step of the pipeline creation wizard.
// All screen IDs are positive integers; connector definitions use small
// integers for their generic wizard steps.
type Screen int

// Marker screens with discovery-pattern significance. These live in a
// reserved range above 100 so they can never collide with the generic
// numbered screens of a connector definition.
const (
	// ScreenCatalogs is the single-phase catalog/schema listing screen
	// (RDBMS-style discovery).
	ScreenCatalogs Screen = 101

	// ScreenDatabase is phase 1 of two-phase discovery: database/catalog
	// selection.
	ScreenDatabase Screen = 102

	// ScreenSchema is phase 2 of two-phase discovery: schema selection
	// within the chosen database.
	ScreenSchema Screen = 103

	// ScreenArtifacts is the table/object selection screen. It is only
	// meaningful once a schema context has been established.
	ScreenArtifacts Screen = 104
)

// String returns the marker name for known screens and the numeric ID for
// generic ones.
func (s Screen) String() string {
	switch s {
	case ScreenCatalogs:
		return "CATALOGS"
	case ScreenDatabase:
		return "DATABASE"
	case ScreenSchema:
		return "SCHEMA"
	case ScreenArtifacts:
		return "ARTIFACTS"
	default:
		return fmt.Sprintf("SCREEN_%d", int(s))
	}
}
