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

// Pattern is the schema-exploration style a connector's wizard walks
// through, derived from its required screens.
type Pattern int

const (
	// PatternUnknown means the screen list carries no recognizable
	// discovery markers.
	PatternUnknown Pattern = iota

	// PatternSinglePhase is RDBMS-style discovery: one catalog listing
	// step, no separate database selection.
	PatternSinglePhase

	// PatternTwoPhase is lakehouse-style discovery: database selection
	// followed by schema selection.
	PatternTwoPhase
)

// String implements fmt.Stringer.
func (p Pattern) String() string {
	switch p {
	case PatternSinglePhase:
		return "single-phase"
	case PatternTwoPhase:
		return "two-phase"
	default:
		return "unknown"
	}
}

// Classify determines which discovery pattern a screen list implies.
// When both marker sets are present the two-phase markers win; the
// validator separately surfaces that conflict as a warning.
func Classify(screens []Screen) Pattern {
	switch {
	case IsTwoPhase(screens):
		return PatternTwoPhase
	case IsSinglePhase(screens):
		return PatternSinglePhase
	default:
		return PatternUnknown
	}
}

// IsSinglePhase reports whether the screen list implies single-phase
// (RDBMS-style) discovery: the CATALOGS screen is required and the
// DATABASE screen is not.
func IsSinglePhase(screens []Screen) bool {
	return contains(screens, ScreenCatalogs) && !contains(screens, ScreenDatabase)
}

// IsTwoPhase reports whether the screen list implies two-phase
// (lakehouse-style) discovery: both the DATABASE and SCHEMA screens are
// required.
func IsTwoPhase(screens []Screen) bool {
	return contains(screens, ScreenDatabase) && contains(screens, ScreenSchema)
}

// HasConflict reports whether both the CATALOGS and DATABASE screens are
// present. The combination is ambiguous: two-phase markers take precedence
// by convention, but connector authors should pick one.
func HasConflict(screens []Screen) bool {
	return contains(screens, ScreenCatalogs) && contains(screens, ScreenDatabase)
}

// HasIncompleteLakehouse reports whether the DATABASE screen is present
// without the SCHEMA screen, i.e. a two-phase pattern missing its second
// phase.
func HasIncompleteLakehouse(screens []Screen) bool {
	return contains(screens, ScreenDatabase) && !contains(screens, ScreenSchema)
}

// HasOrphanSchema reports whether the SCHEMA screen is present without a
// parent context screen (neither CATALOGS nor DATABASE).
func HasOrphanSchema(screens []Screen) bool {
	return contains(screens, ScreenSchema) &&
		!contains(screens, ScreenCatalogs) &&
		!contains(screens, ScreenDatabase)
}

// HasOrphanArtifacts reports whether the ARTIFACTS screen is present
// without any screen that establishes a schema context (CATALOGS, DATABASE,
// or SCHEMA).
func HasOrphanArtifacts(screens []Screen) bool {
	return contains(screens, ScreenArtifacts) &&
		!contains(screens, ScreenCatalogs) &&
		!contains(screens, ScreenDatabase) &&
		!contains(screens, ScreenSchema)
}

func contains(screens []Screen, target Screen) bool {
	for _, s := range screens {
		if s == target {
			return true
		}
	}
	return false
}
