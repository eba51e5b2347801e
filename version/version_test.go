package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetFullVersion(t *testing.T) {
	assert.Equal(t, "dev", GetFullVersion())

	defer func(v, c, d string) { Version, GitCommit, BuildDate = v, c, d }(Version, GitCommit, BuildDate)
	Version, GitCommit, BuildDate = "v0.3.0", "abc1234", "2026-10-01"

	assert.Equal(t, "v0.3.0", GetVersion())
	assert.Equal(t, "v0.3.0 (commit abc1234, built 2026-10-01)", GetFullVersion())
}
