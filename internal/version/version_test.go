package version

import (
	"strings"
	"testing"
)

func TestCalculateBuildID(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		expected  int
		wantError bool
	}{
		{name: "epoch date", date: "2026-01-01", expected: 0},
		{name: "next day", date: "2026-01-02", expected: 1},
		{name: "one year later", date: "2027-01-01", expected: 365},
		{name: "across leap year", date: "2029-01-01", expected: 1096},
		{name: "invalid format", date: "01/02/2026", wantError: true},
		{name: "empty date", date: "", wantError: true},
		{name: "before epoch", date: "2025-12-31", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			old := BuildDate
			defer func() { BuildDate = old }()
			BuildDate = tt.date

			got, err := CalculateBuildID()
			if tt.wantError {
				if err == nil {
					t.Fatalf("expected error, got nil (id=%d)", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("CalculateBuildID() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestStringWithoutBuildDate(t *testing.T) {
	old := BuildDate
	defer func() { BuildDate = old }()
	BuildDate = ""

	s := String()
	if !strings.Contains(s, "dev build") {
		t.Errorf("String() = %q, want dev build marker", s)
	}
	if Info().Calculated {
		t.Error("Info().Calculated should be false without BuildDate")
	}
}

func TestStringWithBuildDate(t *testing.T) {
	oldDate, oldCommit := BuildDate, BuildCommit
	defer func() { BuildDate, BuildCommit = oldDate, oldCommit }()
	BuildDate, BuildCommit = "2026-02-01", "abc123"

	s := String()
	if !strings.Contains(s, "build 31") || !strings.Contains(s, "commit[abc123]") {
		t.Errorf("String() = %q", s)
	}
}
