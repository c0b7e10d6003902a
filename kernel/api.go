package kernel

// Delay sets the calling task to WAITING for ticks ticks and invokes
// the dispatcher (spec.md §4.F). delay(0) is an explicit yield: the
// task goes WAITING with a zero local tick, which HandleTick promotes
// to READY on the very next tick. Must be called from the RUNNING
// task; calling it from interrupt context is undefined (spec.md §4.F).
func (k *Kernel) Delay(ticks Tick) {
	k.mu.Lock()
	self := k.store.tasks[k.store.current]
	self.state = stateWaiting
	self.localTick = ticks

	incoming := k.mustSelectNext()
	k.applySwitch(self, incoming, originNormalExec)
	k.mu.Unlock()

	k.handoffTo(incoming)
	k.yieldAndPark(self)
}

// Suspend sets the calling task to SUSPENDED; it resumes only after an
// external Activate (spec.md §4.F).
func (k *Kernel) Suspend() {
	k.mu.Lock()
	self := k.store.tasks[k.store.current]
	self.state = stateSuspended

	incoming := k.mustSelectNext()
	k.applySwitch(self, incoming, originNormalExec)
	k.mu.Unlock()

	k.handoffTo(incoming)
	k.yieldAndPark(self)
}

// Activate sets target to READY (spec.md §4.F). If target now
// outranks the caller, the dispatcher switches to it and the caller
// suspends at this call until rescheduled; otherwise Activate returns
// immediately and the caller keeps running.
func (k *Kernel) Activate(target TaskHandle) {
	k.mu.Lock()
	if int(target) < 0 || int(target) >= k.store.n {
		k.mu.Unlock()
		return
	}
	t := k.store.tasks[target]
	if t.state == stateSuspended || t.state == stateWaiting {
		t.state = stateReady
	}

	self := k.store.tasks[k.store.current]
	incoming := k.mustSelectNext()
	switched := incoming.handle != self.handle
	if switched {
		k.applySwitch(self, incoming, originNormalExec)
	}
	k.mu.Unlock()

	if !switched {
		return
	}
	k.handoffTo(incoming)
	k.yieldAndPark(self)
}
