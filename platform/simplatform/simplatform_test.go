package simplatform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GustavoAraizaO/Mini-RTOS/platform"
)

func TestUninitializedOperationsFail(t *testing.T) {
	p := New()
	_, err := p.ReadSP()
	assert.ErrorIs(t, err, platform.ErrPlatformUnavailable)
	assert.ErrorIs(t, p.TickReload(), platform.ErrPlatformUnavailable)
	assert.ErrorIs(t, p.PendSwitch(), platform.ErrPlatformUnavailable)
	assert.ErrorIs(t, p.ClearSwitchPending(), platform.ErrPlatformUnavailable)
	assert.ErrorIs(t, p.WriteSP(0x2000), platform.ErrPlatformUnavailable)
}

func TestTickInitIsIdempotent(t *testing.T) {
	p := New()
	require.NoError(t, p.TickInit(1000, 16_000_000))
	require.NoError(t, p.TickInit(999, 1)) // must not overwrite the first configuration
	assert.NoError(t, p.TickReload())
	assert.Equal(t, uint64(1), p.Reloads())
}

func TestPendSwitchLifecycle(t *testing.T) {
	p := New()
	require.NoError(t, p.TickInit(1000, 16_000_000))

	require.NoError(t, p.PendSwitch())
	assert.True(t, p.SwitchPending())

	require.NoError(t, p.ClearSwitchPending())
	assert.False(t, p.SwitchPending())
}

func TestWriteSPThenReadSPRoundTrips(t *testing.T) {
	p := New()
	require.NoError(t, p.TickInit(1000, 16_000_000))

	require.NoError(t, p.WriteSP(0xDEADBEEF))
	got, err := p.ReadSP()
	require.NoError(t, err)
	assert.Equal(t, uintptr(0xDEADBEEF), got)
}

func TestTickReloadCounts(t *testing.T) {
	p := New()
	require.NoError(t, p.TickInit(1000, 16_000_000))
	for i := 0; i < 5; i++ {
		require.NoError(t, p.TickReload())
	}
	assert.Equal(t, uint64(5), p.Reloads())
}
