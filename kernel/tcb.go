package kernel

// regWindow stands in for the callee-saved register set (r4-r11 on a
// Cortex-M) that a real port captures and restores explicitly in the
// context-switch protocol, instead of the rejected SP-bias trick (see
// switch.go). Its contents are never interpreted here; it exists so the
// save/restore shape in switch.go mirrors a real assembly routine.
type regWindow [8]uintptr

// stackPointer indexes into a task's private stack region. Real
// hardware carries a raw address; this module has no addressable
// memory to point into, so the pointer is modeled as an offset that
// must always satisfy 0 <= sp < len(stack), mirroring the invariant
// "each TCB's stack pointer lies strictly inside its own stack
// region."
type stackPointer int

// tcb is the task control block. Its shape follows the data model in
// spec.md §3 one field at a time: priority, state, stack pointer,
// entry, local tick, and a private stack region.
type tcb struct {
	handle TaskHandle

	priority uint8
	state    taskState

	entry func()

	localTick Tick

	stack []uint64
	sp    stackPointer
	regs  regWindow

	// resume parks this task's goroutine between scheduling turns. A
	// send here is the simulated equivalent of the deferred-switch
	// handler installing this task's saved stack pointer and letting
	// the hardware's exception-return resume it.
	resume chan struct{}

	// parked is this task's own rendezvous for "I have ceded the
	// core". Exactly one handoffTo(t) call is ever outstanding for a
	// given t at a time (only one context can switch into a task), so
	// a per-task channel — rather than one shared channel across all
	// tasks — lets handoffTo wait for precisely the task it woke to
	// park again, preserving the call stack's LIFO nesting through a
	// cascade of switches instead of racing against unrelated parks.
	parked chan struct{}

	started bool
}

func newTCB(handle TaskHandle, entry func(), priority uint8, mode StartMode, stackWords int) *tcb {
	t := &tcb{
		handle:   handle,
		priority: priority,
		entry:    entry,
		stack:    make([]uint64, stackWords),
		resume:   make(chan struct{}),
		parked:   make(chan struct{}),
	}
	if mode == AutoStart {
		t.state = stateReady
	} else {
		t.state = stateSuspended
	}
	seedInitialFrame(t)
	return t
}

// seedInitialFrame pre-seeds the top of the task's stack with an
// initial exception frame, per spec.md §4.B: after creation, the
// task's stack pointer must reference a frame from which a normal
// exception-return enters the task body. This module's "exception
// return" is the first send on resume (see handoffTo in switch.go),
// so the frame itself carries no executable content — only the
// bookkeeping that keeps sp inside [0, len(stack)) from the moment the
// TCB exists, satisfying the data-model invariant immediately, before
// the task has ever run.
func seedInitialFrame(t *tcb) {
	if len(t.stack) == 0 {
		t.sp = 0
		return
	}
	top := len(t.stack) - 1
	t.stack[top] = uint64(uintptr(0)) // placeholder exception-frame slot
	t.sp = stackPointer(top)
}

// inBounds reports whether sp still satisfies the stack-region
// invariant; used by tests asserting the quantified invariant in
// spec.md §8.
func (t *tcb) inBounds() bool {
	return int(t.sp) >= 0 && int(t.sp) < len(t.stack)
}
