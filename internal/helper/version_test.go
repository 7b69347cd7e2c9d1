package helper

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsOutdated(t *testing.T) {
	require.True(t, IsOutdated("v1.0.0", "v1.0.1"))
	require.True(t, IsOutdated("1.2.3", "2.0.0"))
	require.False(t, IsOutdated("v2.0.0", "v1.9.9"))
	require.False(t, IsOutdated("v1.0.0", "v1.0.0"))
}

func TestIsOutdatedUnparsable(t *testing.T) {
	require.False(t, IsOutdated("(devel)", "v1.0.0"))
	require.False(t, IsOutdated("v1.0.0", "not-a-version"))
}
