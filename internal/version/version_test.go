package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = origVersion, origCommit, origDate })

	tests := []struct {
		name    string
		version string
		commit  string
		date    string
		want    string
		notWant string
	}{
		{"dev build", "dev", "unknown", "unknown", "a11ykit version dev (", "commit:"},
		{"release build", "1.2.0", "0123456789abcdef", "2026-10-16T00:00:00Z", "commit: 01234567,", "89abcdef"},
		{"short commit", "1.2.0", "abc", "2026-10-16T00:00:00Z", "commit: abc,", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version, Commit, Date = tt.version, tt.commit, tt.date
			got := String()
			if !strings.Contains(got, tt.want) {
				t.Errorf("String() = %q, want it to contain %q", got, tt.want)
			}
			if tt.notWant != "" && strings.Contains(got, tt.notWant) {
				t.Errorf("String() = %q, should not contain %q", got, tt.notWant)
			}
		})
	}
}

func TestGetInfo(t *testing.T) {
	info := GetInfo()
	if info.GoVersion == "" || !strings.Contains(info.Platform, "/") {
		t.Errorf("GetInfo() = %+v, want Go version and platform", info)
	}
	if Short() != Version {
		t.Errorf("Short() = %q, want %q", Short(), Version)
	}
}
