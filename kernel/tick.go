package kernel

// HandleTick is the tick interrupt handler (spec.md §4.D): it is the
// function a real port's SysTick_Handler calls directly. Nothing in
// this module fires it on a timer; a test or demo driver calls it once
// per simulated period, which is exactly what "tick N" means in the
// spec.md §8 scenarios.
func (k *Kernel) HandleTick() {
	k.mu.Lock()
	k.store.tick++

	for _, t := range k.store.createdRange() {
		if t.state != stateWaiting {
			continue
		}
		if t.localTick == 0 {
			// delay(0): already expired, promote without
			// underflowing the decrement (spec.md §4.F).
			t.state = stateReady
			continue
		}
		t.localTick--
		if t.localTick == 0 {
			t.state = stateReady
		}
	}

	outgoing := k.store.tasks[k.store.current]
	incoming := k.mustSelectNext()
	switched := incoming.handle != outgoing.handle
	if switched {
		k.applySwitch(outgoing, incoming, originInterrupt)
	}
	k.mu.Unlock()

	k.tickHeartbeat()

	if switched {
		k.handoffTo(incoming)
	}

	k.platform.TickReload()
}

// tickHeartbeat invokes the is-alive collaborator once per configured
// sub-multiple of the tick, per spec.md §6.
func (k *Kernel) tickHeartbeat() {
	if k.heartbeat == nil || !k.cfg.IsAliveEnabled || k.cfg.IsAlivePeriodTicks == 0 {
		return
	}
	k.heartbeatCounter++
	if k.heartbeatCounter%k.cfg.IsAlivePeriodTicks == 0 {
		k.heartbeat.Tick()
	}
}
