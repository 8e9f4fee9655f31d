package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNewer(t *testing.T) {
	tests := []struct {
		latest, current string
		want            bool
	}{
		{"1.2.10", "1.2.9", true},
		{"1.3.0", "1.2.9", true},
		{"2.0.0", "1.9.9", true},
		{"1.2.9", "1.2.10", false},
		{"1.2.3", "1.2.3", false},
		{"1.2.3", "1.2.3-dirty", false},
		{"1.2", "1.2.0", false},
		{"1.2.1", "1.2", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsNewer(tt.latest, tt.current), "%s vs %s", tt.latest, tt.current)
	}
}

func TestFormatVersion(t *testing.T) {
	origVersion, origCommit, origBuild := Version, Commit, BuildTime
	t.Cleanup(func() { Version, Commit, BuildTime = origVersion, origCommit, origBuild })

	Version, Commit, BuildTime = "1.0.0", "", ""
	assert.Equal(t, "1.0.0 (development)", FormatVersion())

	Version, Commit, BuildTime = "1.0.0", "abc1234", ""
	assert.Equal(t, "1.0.0 (commit: abc1234)", FormatVersion())

	Version, Commit, BuildTime = "", "abc1234", "2025-10-01T00:00:00Z"
	assert.Equal(t, "0.0.0-dev (commit: abc1234, built at: 2025-10-01T00:00:00Z)", FormatVersion())
}

func TestApplyBuildSettings(t *testing.T) {
	origVersion, origCommit, origBuild := Version, Commit, BuildTime
	t.Cleanup(func() { Version, Commit, BuildTime = origVersion, origCommit, origBuild })

	Version, Commit, BuildTime = devVersion, "", ""
	applyBuildSettings([]debug.BuildSetting{
		{Key: "vcs.revision", Value: "0123456789abcdef"},
		{Key: "vcs.time", Value: "2025-10-01T12:30:00-03:00"},
		{Key: "vcs.tag", Value: "v1.4.0"},
		{Key: "vcs.modified", Value: "true"},
	})

	assert.Equal(t, "1.4.0-dirty", Version)
	assert.Equal(t, "0123456", Commit)
	assert.Equal(t, "2025-10-01T15:30:00Z", BuildTime)
}

func TestApplyBuildSettings_NoVCS(t *testing.T) {
	origVersion, origCommit, origBuild := Version, Commit, BuildTime
	t.Cleanup(func() { Version, Commit, BuildTime = origVersion, origCommit, origBuild })

	Version, Commit, BuildTime = devVersion, "", ""
	applyBuildSettings(nil)

	assert.Equal(t, devVersion, Version)
	assert.Empty(t, Commit)
	assert.Empty(t, BuildTime)
}
