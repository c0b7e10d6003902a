package kernel

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/GustavoAraizaO/Mini-RTOS/config"
	"github.com/GustavoAraizaO/Mini-RTOS/heartbeat"
	"github.com/GustavoAraizaO/Mini-RTOS/platform"
)

// Kernel owns one simulated core's worth of scheduling state: the TCB
// store, the platform shim, and the optional heartbeat collaborator.
// It is not safe to share a Kernel's public API calls across more than
// one task's goroutine at a time by construction (exactly one task
// runs at once), but CreateTask/StartScheduler are only ever called
// from a single bring-up goroutine before the tick source is live.
type Kernel struct {
	mu    sync.Mutex
	store *store

	platform  platform.Platform
	heartbeat heartbeat.Driver
	cfg       config.Config
	log       zerolog.Logger

	firstSwitch bool
	started     bool

	heartbeatCounter uint32

	idle TaskHandle
}

// New constructs a Kernel bound to the given platform shim and
// (optional, may be nil) heartbeat driver. It does not start the
// scheduler; call CreateTask for each user task, then StartScheduler.
func New(cfg config.Config, plat platform.Platform, hb heartbeat.Driver, log zerolog.Logger) *Kernel {
	return &Kernel{
		store:       newStore(cfg.MaxUserTasks + 1),
		platform:    plat,
		heartbeat:   hb,
		cfg:         cfg,
		log:         log,
		firstSwitch: true,
		idle:        InvalidTask,
	}
}

// CreateTask allocates a new TCB for entry, running at the given
// priority, starting READY or SUSPENDED per mode. It must be called
// before StartScheduler (spec.md §4.F); calling it afterwards is left
// undefined at the protocol level, and this implementation resolves
// that by returning InvalidTask rather than corrupting a running
// store.
func (k *Kernel) CreateTask(entry func(), priority uint8, mode StartMode) TaskHandle {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.started {
		return InvalidTask
	}
	if k.store.n >= k.store.capacity()-1 {
		// capacity()-1 reserves the trailing slot for the idle task
		// StartScheduler registers.
		return InvalidTask
	}

	handle := TaskHandle(k.store.n)
	t := newTCB(handle, entry, priority, mode, k.cfg.StackWords)
	k.store.tasks[handle] = t
	k.store.n++

	k.spawn(t)
	return handle
}

// StartScheduler registers the mandatory idle task, initializes the
// tick source, and performs the first context switch, bootstrapping
// whichever READY task has the highest priority (idle if no user task
// is READY yet). Real hardware never returns from this call because
// the initial switch is a one-way jump into task code; here, the
// bootstrap handoff itself completes synchronously and StartScheduler
// returns once the first task has reached its first suspension point,
// so a test or demo harness can drive subsequent ticks explicitly via
// HandleTick.
func (k *Kernel) StartScheduler() error {
	k.mu.Lock()
	if k.started {
		k.mu.Unlock()
		return nil
	}

	idle := newTCB(TaskHandle(k.store.n), func() { k.idleLoop() }, 0, AutoStart, k.cfg.StackWords)
	k.store.tasks[idle.handle] = idle
	k.store.n++
	k.idle = idle.handle
	k.spawn(idle)

	if err := k.platform.TickInit(k.cfg.TickPeriodUS, k.cfg.CPUHz); err != nil {
		k.mu.Unlock()
		return err
	}
	k.started = true

	next := k.mustSelectNext()
	k.applySwitch(nil, next, originNormalExec)
	k.mu.Unlock()

	k.handoffTo(next)
	return nil
}

// GetClock returns the global tick count (spec.md §4.F).
func (k *Kernel) GetClock() Tick {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.store.tick
}
