package kernel

// selectNext implements the fixed-priority dispatcher (spec.md §4.C):
// the task with the strictly greatest priority among those READY or
// RUNNING wins; ties go to the lowest-indexed candidate
// (first-found-wins scan), which bounds round-robin-like preemption
// deterministically. The idle task is always eligible, so a winner
// always exists once StartScheduler has run.
//
// Callers must hold the kernel's critical section; selectNext itself
// does not lock and is not reentrant.
func (k *Kernel) selectNext() *tcb {
	var winner *tcb
	for _, t := range k.store.createdRange() {
		if t.state != stateReady && t.state != stateRunning {
			continue
		}
		if winner == nil || t.priority > winner.priority {
			winner = t
		}
	}
	return winner
}

// mustSelectNext is what every production dispatch site (StartScheduler,
// HandleTick, Delay, Suspend, Activate) calls instead of selectNext
// directly: spec.md §4.C says a winnerless scan "cannot occur because
// the idle task is always eligible", which makes it exactly the kind
// of unrecoverable condition spec.md §7 assigns to the kernel's panic
// routine rather than to a recoverable error return.
func (k *Kernel) mustSelectNext() *tcb {
	next := k.selectNext()
	if next == nil {
		k.Panic("dispatcher: no READY or RUNNING task found; idle invariant violated")
	}
	return next
}
