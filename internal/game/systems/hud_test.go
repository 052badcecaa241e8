package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHUDRefreshInterval(t *testing.T) {
	ctx := newContext()
	rec := &statusRecorder{}
	ctx.HUD = rec
	ctx.DT = 0.02

	for n := 0; n < HUDRefreshInterval-1; n++ {
		require.NoError(t, HUD(ctx))
	}
	assert.Empty(t, rec.texts)

	require.NoError(t, HUD(ctx))
	assert.Equal(t, []string{"50"}, rec.texts)
	assert.Equal(t, uint64(HUDRefreshInterval), ctx.World.Updates)

	for n := 0; n < HUDRefreshInterval; n++ {
		require.NoError(t, HUD(ctx))
	}
	assert.Len(t, rec.texts, 2)
}

func TestHUDZeroDelta(t *testing.T) {
	ctx := newContext()
	rec := &statusRecorder{}
	ctx.HUD = rec
	ctx.DT = 0

	for n := 0; n < HUDRefreshInterval; n++ {
		require.NoError(t, HUD(ctx))
	}
	assert.Empty(t, rec.texts)
	assert.Equal(t, uint64(HUDRefreshInterval), ctx.World.Updates, "frames still count")
}

func TestHUDWithoutSink(t *testing.T) {
	ctx := newContext()
	for n := 0; n < HUDRefreshInterval; n++ {
		require.NoError(t, HUD(ctx))
	}
	assert.Equal(t, uint64(HUDRefreshInterval), ctx.World.Updates)
}
