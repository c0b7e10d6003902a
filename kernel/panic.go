package kernel

// Panic is the kernel's implementation-defined halt routine
// (spec.md §7): there are no retries and no recovery paths for an
// unrecoverable condition, so this logs the reason at error level
// and then panics. Error, not zerolog's own Fatal level, is used
// deliberately: Fatal calls os.Exit internally, which would make the
// panic below unreachable and this method untestable. Called by
// mustSelectNext when the dispatcher's "a winner always exists"
// invariant is violated.
func (k *Kernel) Panic(reason string) {
	k.log.Error().Str("reason", reason).Msg("kernel panic")
	panic(reason)
}
