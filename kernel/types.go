// Package kernel implements the fixed-priority, preemptive task
// scheduler: the TCB store, the dispatcher, the tick-driven wake
// engine, and the two-phase context-switch protocol.
//
// A single *Kernel is meant to own one simulated core. Mutation of
// scheduler state happens either from a task calling the public API
// (thread context) or from HandleTick (interrupt context); both paths
// run under the kernel's own critical section, which stands in for
// raising the execution priority to tick level on real hardware.
package kernel

// TaskHandle identifies a task by its slot in the TCB store.
type TaskHandle int32

// InvalidTask is returned by CreateTask when the store's capacity is
// exhausted or when CreateTask is called after StartScheduler. Apart
// from the platform error StartScheduler can return, it is the only
// error channel the public API exposes.
const InvalidTask TaskHandle = -1

// Tick counts system-tick interrupts since StartScheduler bootstrapped
// the first task. It is monotonic for the lifetime of the kernel.
type Tick uint32

// taskState is the small closed set of states a TCB can occupy.
type taskState uint8

const (
	stateReady taskState = iota
	stateRunning
	stateWaiting
	stateSuspended
)

func (s taskState) String() string {
	switch s {
	case stateReady:
		return "READY"
	case stateRunning:
		return "RUNNING"
	case stateWaiting:
		return "WAITING"
	case stateSuspended:
		return "SUSPENDED"
	default:
		return "UNKNOWN"
	}
}

// StartMode selects whether a newly-created task is runnable
// immediately or parked until an explicit Activate.
type StartMode uint8

const (
	// AutoStart places the new task in READY at creation.
	AutoStart StartMode = iota
	// StartSuspended places the new task in SUSPENDED at creation.
	StartSuspended
)

// switchOrigin records which context triggered a dispatch, purely for
// tracing/logging. The original ±9-word stack-pointer bias keyed off
// this value is rejected per the REDESIGN FLAG; origin no longer
// drives any arithmetic.
type switchOrigin uint8

const (
	originNormalExec switchOrigin = iota
	originInterrupt
)

func (o switchOrigin) String() string {
	if o == originInterrupt {
		return "interrupt"
	}
	return "normal_exec"
}
