//go:build cortexm

// Package hwplatform documents the real register operations a
// Cortex-M port of platform.Platform performs. It is gated behind the
// cortexm build tag and is not exercised by this module's tests: the
// board clock configuration and linker/vector-table wiring it would
// need are named in spec.md §1 as external collaborators, not part of
// this specification.
package hwplatform

// Platform would wire TickInit to SysTick->LOAD/CTRL, PendSwitch to
// SCB->ICSR |= PENDSVSET, ClearSwitchPending to reading back ICSR,
// and ReadSP/WriteSP to MSP/PSP via the compiler's stack-pointer
// intrinsics. None of that has a portable Go expression, which is why
// this file carries no implementation — only the mapping a real port
// must supply.
type Platform struct{}
