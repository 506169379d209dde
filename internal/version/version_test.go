package version

import (
	"strings"
	"testing"
)

func TestInfo(t *testing.T) {
	origVersion := Version
	origCommit := Commit
	defer func() {
		Version = origVersion
		Commit = origCommit
	}()

	tests := []struct {
		name    string
		version string
		commit  string
		want    string
	}{
		{"unknown commit", "1.2.0", "unknown", "1.2.0"},
		{"short commit kept whole", "1.2.0", "abc", "1.2.0"},
		{"long commit truncated", "1.2.0", "abcdef1234567890", "1.2.0 (abcdef1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version = tt.version
			Commit = tt.commit
			if got := Info(); got != tt.want {
				t.Errorf("Info() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFull(t *testing.T) {
	full := Full()
	for _, want := range []string{"nebula version", "Commit:", "Built:"} {
		if !strings.Contains(full, want) {
			t.Errorf("Full() = %q, want it to contain %q", full, want)
		}
	}
}
