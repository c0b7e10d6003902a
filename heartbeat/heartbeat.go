// Package heartbeat names the is-alive collaborator spec.md §1 and §6
// place deliberately out of the kernel's scope: a board GPIO blinker
// the tick handler pokes once per configured sub-multiple of the
// tick, and nothing more. The kernel's only coupling to it is the
// single-method Driver interface below.
package heartbeat

// Driver is invoked exactly once per qualifying tick when the is-alive
// feature is enabled. Implementations decide internally what "once"
// means for their hardware (toggle a pin, blink an LED); the kernel
// does not interpret the call.
type Driver interface {
	Tick()
}
