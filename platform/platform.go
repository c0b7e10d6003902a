// Package platform defines the narrow contract the kernel needs from
// the board: a periodic tick source, the deferred-switch pend/clear
// pair, and raw stack-pointer access (spec.md §4.A). It is the only
// seam between the hard, portable scheduling logic in package kernel
// and anything that has to touch real silicon.
package platform

import "errors"

// ErrPlatformUnavailable is returned by any operation invoked before
// TickInit has completed.
var ErrPlatformUnavailable = errors.New("platform: tick source not initialized")

// Platform is the seam described in spec.md §4.A. TickInit must be
// idempotent and must complete exactly once before StartScheduler
// returns; PendSwitch/ClearSwitchPending drive the deferred-switch
// slot; ReadSP/WriteSP are only ever called from within the kernel's
// context-switch protocol.
type Platform interface {
	// TickInit configures a periodic decrementing tick source that
	// raises an interrupt on reload, given the desired period in
	// microseconds and the core frequency in Hz.
	TickInit(periodUS, cpuHz uint32) error

	// TickReload rearms the tick for the next period.
	TickReload() error

	// PendSwitch requests the lowest-priority software interrupt (the
	// deferred-switch slot).
	PendSwitch() error

	// ClearSwitchPending clears the pending bit on entry to the
	// deferred-switch handler.
	ClearSwitchPending() error

	// ReadSP reads the CPU's active stack pointer. Only meaningful
	// inside a handler.
	ReadSP() (uintptr, error)

	// WriteSP installs addr as the CPU's active stack pointer. Only
	// meaningful inside the deferred-switch handler.
	WriteSP(addr uintptr) error
}
