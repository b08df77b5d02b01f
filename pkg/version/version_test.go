package version_test

import (
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/listkit/pkg/version"
)

func TestGetVersion(t *testing.T) {
	v, err := semver.NewVersion(version.GetVersion())
	require.NoError(t, err, "default build version must be semantic")
	assert.Equal(t, "dev", v.Prerelease())
}
