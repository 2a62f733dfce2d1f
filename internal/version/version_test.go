package version

import (
	"strings"
	"testing"
)

func TestVersionDefault(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
}

func TestFull(t *testing.T) {
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	defer func() {
		Version, GitCommit, BuildDate = origVersion, origCommit, origDate
	}()

	tests := []struct {
		name    string
		version string
		commit  string
		date    string
		want    string
	}{
		{
			name:    "version only",
			version: "1.2.3",
			want:    "1.2.3",
		},
		{
			name:    "version and commit",
			version: "1.2.3",
			commit:  "abc123",
			want:    "1.2.3 abc123",
		},
		{
			name:    "all fields",
			version: "1.2.3",
			commit:  "abc123",
			date:    "2024-01-15T10:30:00Z",
			want:    "1.2.3 abc123 2024-01-15T10:30:00Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version, GitCommit, BuildDate = tt.version, tt.commit, tt.date
			if got := Full(); got != tt.want {
				t.Errorf("Full() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrettyContainsVersion(t *testing.T) {
	if !strings.Contains(Pretty(), Version) {
		t.Errorf("Pretty() = %q does not contain %q", Pretty(), Version)
	}
}
