package features

import (
	"okakbot/sources/tracing"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetachedManagerUsesFallbacks(t *testing.T) {
	fm, err := NewFeatureManager(&FeatureConfig{UnleashAppName: "okakbot"}, tracing.NewDiscardLogger())
	require.NoError(t, err)

	assert.True(t, fm.ImageRepliesEnabled())
	assert.True(t, fm.DefaultRepliesEnabled())
	assert.False(t, fm.IsEnabledOrDefault("unknown/toggle", false))
	assert.NoError(t, fm.Close())
}
