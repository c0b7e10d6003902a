// Package simplatform is a deterministic, synchronous stand-in for
// the Cortex-M SysTick + PendSV pair. It never sleeps and never spawns
// goroutines of its own; callers drive time by invoking its exported
// methods directly, the way markcol-dcpu16's DCPU16.Step/Run let a
// test harness single-step a virtual CPU one instruction boundary at a
// time under a held mutex.
package simplatform

import (
	"sync"

	"github.com/GustavoAraizaO/Mini-RTOS/platform"
)

// Platform implements platform.Platform with in-memory bookkeeping
// only; there is no real timer or NVIC underneath it.
type Platform struct {
	mu sync.Mutex

	initialized bool
	periodUS    uint32
	cpuHz       uint32

	switchPending bool
	sp            uintptr

	// reloads counts TickReload calls; exported via Reloads for tests
	// asserting the tick handler rearms the timer exactly once per
	// period.
	reloads uint64
}

// New returns an uninitialized simulated platform.
func New() *Platform {
	return &Platform{}
}

func (p *Platform) TickInit(periodUS, cpuHz uint32) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil // idempotent, per spec.md §4.A
	}
	p.periodUS = periodUS
	p.cpuHz = cpuHz
	p.initialized = true
	return nil
}

func (p *Platform) TickReload() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return platform.ErrPlatformUnavailable
	}
	p.reloads++
	return nil
}

func (p *Platform) PendSwitch() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return platform.ErrPlatformUnavailable
	}
	p.switchPending = true
	return nil
}

func (p *Platform) ClearSwitchPending() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return platform.ErrPlatformUnavailable
	}
	p.switchPending = false
	return nil
}

func (p *Platform) ReadSP() (uintptr, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return 0, platform.ErrPlatformUnavailable
	}
	return p.sp, nil
}

func (p *Platform) WriteSP(addr uintptr) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return platform.ErrPlatformUnavailable
	}
	p.sp = addr
	return nil
}

// Reloads reports how many times TickReload has fired, for tests that
// check the tick engine rearms the timer on every period.
func (p *Platform) Reloads() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.reloads
}

// SwitchPending reports the deferred-switch pending bit, for tests
// asserting it is always cleared by the time a handler returns.
func (p *Platform) SwitchPending() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.switchPending
}
