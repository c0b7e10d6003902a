package kernel

// store is the TCB store: a fixed-capacity array of task control
// blocks plus the registry fields from spec.md §3 — task count,
// current task, next task, and the global tick. Capacity is
// maxUserTasks+1, the extra slot reserved for the mandatory idle task
// (spec.md §6 configuration: "maximum number of user tasks (excludes
// idle)").
//
// The store has a single logical owner at any instant: thread context
// via the public API, or the tick handler — never both at once. The
// Kernel enforces this with its own critical-section mutex; store
// itself performs no locking.
type store struct {
	tasks []*tcb // len == capacity; entries beyond n are zero-valued and unused

	n       int
	current TaskHandle
	next    TaskHandle
	tick    Tick
}

func newStore(capacity int) *store {
	return &store{
		tasks:   make([]*tcb, capacity),
		current: InvalidTask,
		next:    InvalidTask,
	}
}

func (s *store) capacity() int { return len(s.tasks) }

// createdRange returns the half-open range [0, n) of created task
// slots. spec.md §9 flags the original's off-by-one that also walked
// index n; this module scans only the half-open range.
func (s *store) createdRange() []*tcb {
	return s.tasks[:s.n]
}
