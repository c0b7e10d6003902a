package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTCBStartsInBounds(t *testing.T) {
	tc := newTCB(0, func() {}, 1, AutoStart, 16)
	assert.True(t, tc.inBounds(), "a freshly created TCB's stack pointer must lie within its stack region")
	assert.Equal(t, stateReady, tc.state)
}

func TestNewTCBStartSuspended(t *testing.T) {
	tc := newTCB(0, func() {}, 1, StartSuspended, 16)
	assert.Equal(t, stateSuspended, tc.state)
	assert.True(t, tc.inBounds())
}

func TestNewTCBZeroLengthStack(t *testing.T) {
	tc := newTCB(0, func() {}, 1, AutoStart, 0)
	assert.False(t, tc.inBounds(), "a zero-word stack has no valid in-bounds offset")
}

func TestSwitchOriginString(t *testing.T) {
	assert.Equal(t, "normal_exec", originNormalExec.String())
	assert.Equal(t, "interrupt", originInterrupt.String())
}

func TestTaskStateString(t *testing.T) {
	assert.Equal(t, "READY", stateReady.String())
	assert.Equal(t, "RUNNING", stateRunning.String())
	assert.Equal(t, "WAITING", stateWaiting.String())
	assert.Equal(t, "SUSPENDED", stateSuspended.String())
}
