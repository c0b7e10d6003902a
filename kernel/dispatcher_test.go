package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTCBForTest(handle TaskHandle, priority uint8, state taskState) *tcb {
	t := newTCB(handle, func() {}, priority, AutoStart, 4)
	t.state = state
	return t
}

func TestSelectNextPicksHighestPriority(t *testing.T) {
	k, _ := newTestKernel(4)
	k.store.tasks[0] = newTCBForTest(0, 1, stateReady)
	k.store.tasks[1] = newTCBForTest(1, 5, stateReady)
	k.store.tasks[2] = newTCBForTest(2, 3, stateWaiting)
	k.store.n = 3

	winner := k.selectNext()
	assert.Equal(t, TaskHandle(1), winner.handle, "strictly highest priority among READY/RUNNING must win")
}

func TestSelectNextTiesGoToLowestIndex(t *testing.T) {
	k, _ := newTestKernel(4)
	k.store.tasks[0] = newTCBForTest(0, 2, stateReady)
	k.store.tasks[1] = newTCBForTest(1, 2, stateReady)
	k.store.n = 2

	winner := k.selectNext()
	assert.Equal(t, TaskHandle(0), winner.handle, "a tie must go to the first-found (lowest index) candidate")
}

func TestSelectNextSkipsWaitingAndSuspended(t *testing.T) {
	k, _ := newTestKernel(4)
	k.store.tasks[0] = newTCBForTest(0, 9, stateWaiting)
	k.store.tasks[1] = newTCBForTest(1, 9, stateSuspended)
	k.store.tasks[2] = newTCBForTest(2, 1, stateReady)
	k.store.n = 3

	winner := k.selectNext()
	assert.Equal(t, TaskHandle(2), winner.handle, "only READY/RUNNING tasks are eligible regardless of priority")
}

func TestSelectNextIgnoresSlotsBeyondN(t *testing.T) {
	k, _ := newTestKernel(4)
	k.store.tasks[0] = newTCBForTest(0, 1, stateReady)
	k.store.tasks[1] = newTCBForTest(1, 9, stateReady)
	k.store.n = 1 // slot 1 exists but was never "created"

	winner := k.selectNext()
	assert.Equal(t, TaskHandle(0), winner.handle, "createdRange must not touch index n or beyond")
}
