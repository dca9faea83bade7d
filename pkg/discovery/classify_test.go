package discovery

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		screens []Screen
		want    Pattern
	}{
		{
			name:    "catalogs only is single-phase",
			screens: []Screen{ScreenCatalogs},
			want:    PatternSinglePhase,
		},
		{
			name:    "catalogs with generic screens is single-phase",
			screens: []Screen{ScreenCatalogs, ScreenArtifacts, 3, 4, 5},
			want:    PatternSinglePhase,
		},
		{
			name:    "database plus schema is two-phase",
			screens: []Screen{ScreenDatabase, ScreenSchema, ScreenArtifacts},
			want:    PatternTwoPhase,
		},
		{
			name:    "all markers present resolves to two-phase",
			screens: []Screen{ScreenCatalogs, ScreenDatabase, ScreenSchema},
			want:    PatternTwoPhase,
		},
		{
			name:    "database without schema is unknown",
			screens: []Screen{ScreenDatabase, 3},
			want:    PatternUnknown,
		},
		{
			name:    "catalogs alongside database is not single-phase",
			screens: []Screen{ScreenCatalogs, ScreenDatabase},
			want:    PatternUnknown,
		},
		{
			name:    "generic screens only is unknown",
			screens: []Screen{1, 2, 3},
			want:    PatternUnknown,
		},
		{
			name:    "empty list is unknown",
			screens: nil,
			want:    PatternUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.screens); got != tt.want {
				t.Errorf("Classify(%v) = %v, want %v", tt.screens, got, tt.want)
			}
		})
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name                string
		screens             []Screen
		singlePhase         bool
		twoPhase            bool
		conflict            bool
		incompleteLakehouse bool
		orphanSchema        bool
		orphanArtifacts     bool
	}{
		{
			name:        "clean single-phase",
			screens:     []Screen{ScreenCatalogs, ScreenArtifacts, 3},
			singlePhase: true,
		},
		{
			name:     "clean two-phase",
			screens:  []Screen{ScreenDatabase, ScreenSchema, ScreenArtifacts},
			twoPhase: true,
		},
		{
			name:     "conflicting markers",
			screens:  []Screen{ScreenCatalogs, ScreenDatabase, ScreenSchema},
			twoPhase: true,
			conflict: true,
		},
		{
			name:                "database missing schema",
			screens:             []Screen{ScreenDatabase, 3},
			incompleteLakehouse: true,
		},
		{
			name:                "conflict and incomplete lakehouse together",
			screens:             []Screen{ScreenCatalogs, ScreenDatabase},
			conflict:            true,
			incompleteLakehouse: true,
		},
		{
			name:         "schema without parent",
			screens:      []Screen{ScreenSchema, 3},
			orphanSchema: true,
		},
		{
			name:            "artifacts without any schema context",
			screens:         []Screen{ScreenArtifacts, 3, 4},
			orphanArtifacts: true,
		},
		{
			name:         "artifacts anchored by orphan schema",
			screens:      []Screen{ScreenSchema, ScreenArtifacts},
			orphanSchema: true,
		},
		{
			name:    "empty list sets nothing",
			screens: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSinglePhase(tt.screens); got != tt.singlePhase {
				t.Errorf("IsSinglePhase() = %v, want %v", got, tt.singlePhase)
			}
			if got := IsTwoPhase(tt.screens); got != tt.twoPhase {
				t.Errorf("IsTwoPhase() = %v, want %v", got, tt.twoPhase)
			}
			if got := HasConflict(tt.screens); got != tt.conflict {
				t.Errorf("HasConflict() = %v, want %v", got, tt.conflict)
			}
			if got := HasIncompleteLakehouse(tt.screens); got != tt.incompleteLakehouse {
				t.Errorf("HasIncompleteLakehouse() = %v, want %v", got, tt.incompleteLakehouse)
			}
			if got := HasOrphanSchema(tt.screens); got != tt.orphanSchema {
				t.Errorf("HasOrphanSchema() = %v, want %v", got, tt.orphanSchema)
			}
			if got := HasOrphanArtifacts(tt.screens); got != tt.orphanArtifacts {
				t.Errorf("HasOrphanArtifacts() = %v, want %v", got, tt.orphanArtifacts)
			}
		})
	}
}

func TestScreenString(t *testing.T) {
	tests := []struct {
		screen Screen
		want   string
	}{
		{ScreenCatalogs, "CATALOGS"},
		{ScreenDatabase, "DATABASE"},
		{ScreenSchema, "SCHEMA"},
		{ScreenArtifacts, "ARTIFACTS"},
		{Screen(7), "SCREEN_7"},
	}

	for _, tt := range tests {
		if got := tt.screen.String(); got != tt.want {
			t.Errorf("Screen(%d).String() = %q, want %q", int(tt.screen), got, tt.want)
		}
	}
}

func TestPatternString(t *testing.T) {
	if PatternSinglePhase.String() != "single-phase" {
		t.Errorf("PatternSinglePhase.String() = %q", PatternSinglePhase.String())
	}
	if PatternTwoPhase.String() != "two-phase" {
		t.Errorf("PatternTwoPhase.String() = %q", PatternTwoPhase.String())
	}
	if PatternUnknown.String() != "unknown" {
		t.Errorf("PatternUnknown.String() = %q", PatternUnknown.String())
	}
}
