package sim

// serviceState is the Servicing half of the scheduler's run state. Holding
// the device and countdown together in one structure makes "start a service
// while already servicing" unrepresentable: there is exactly one slot, and
// the slot is the state.
type serviceState struct {
	device      string
	priority    Priority
	arrivalTick int64
	remaining   int64
}

// Scheduler is the interrupt servicing state machine. Its run state is
// either Idle (servicing == nil, main process running) or Servicing (one
// in-flight service with a countdown). It exclusively owns the
// InterruptQueue and the ContextStore; the driver only calls Step and the
// read-only accessors.
//
// Each Step evaluates, in fixed order:
//  1. Arrival phase: every registry device gets one arrival draw; raised
//     interrupts are admitted into the queue.
//  2. Servicing continuation: an in-progress service consumes the tick,
//     completing (context restore) when its countdown reaches zero. At most
//     one servicing transition happens per tick, and it always takes
//     precedence over starting a new service.
//  3. Only when idle: if interrupts were admitted this tick, the admission
//     is the tick's outcome and the interrupt is noticed on the next tick.
//     Otherwise the highest-priority pending interrupt begins service
//     (context save, duration draw), or, with an empty queue, the main
//     process executes one instruction.
type Scheduler struct {
	registry  *Registry
	queue     *InterruptQueue
	contexts  *ContextStore
	arrivals  ArrivalSource
	durations DurationSource

	serviceMin int64
	serviceMax int64

	servicing *serviceState // nil means Idle
	pc        int64         // simulated main-process program counter
}

// NewScheduler creates an idle Scheduler over the given registry and
// randomness seams. Service durations are drawn from
// [serviceMin, serviceMax] ticks inclusive.
func NewScheduler(registry *Registry, arrivals ArrivalSource, durations DurationSource,
	serviceMin, serviceMax int64) *Scheduler {
	return &Scheduler{
		registry:   registry,
		queue:      &InterruptQueue{},
		contexts:   &ContextStore{},
		arrivals:   arrivals,
		durations:  durations,
		serviceMin: serviceMin,
		serviceMax: serviceMax,
	}
}

// Step advances the state machine by one tick and returns what happened.
func (s *Scheduler) Step(tick int64) TickEvent {
	ev := TickEvent{Tick: tick}

	// Phase 1: arrivals. One draw per device; duplicates within a tick are
	// impossible here by construction, but the queue enforces the
	// (device, tick) uniqueness contract regardless.
	for _, dev := range s.registry.Devices() {
		if !s.arrivals.Raise(dev, tick) {
			continue
		}
		if s.queue.Admit(tick, dev) {
			ev.Admitted = append(ev.Admitted, dev.Name)
		}
	}
	ev.Simultaneous = len(ev.Admitted) > 1
	ev.QueuedBehind = len(ev.Admitted) == 1 && s.servicing == nil && s.queue.Len() > 1

	// Phase 2: servicing continuation.
	if st := s.servicing; st != nil {
		st.remaining--
		if st.remaining == 0 {
			ctx := s.contexts.Restore()
			s.servicing = nil
			ev.Kind = KindServiceCompleted
			ev.Device = st.device
			ev.RestoredPC = ctx.PC
			ev.ResumePC = ctx.PC + 1
			return ev
		}
		ev.Kind = KindServiceContinued
		ev.Device = st.device
		ev.Remaining = st.remaining
		return ev
	}

	// Phase 3: idle. A freshly admitted interrupt is only noticed at the end
	// of the instruction cycle, so its earliest service start is next tick.
	if len(ev.Admitted) > 0 {
		ev.Kind = KindArrivals
		return ev
	}

	if rec, ok := s.queue.PopHighest(); ok {
		s.contexts.Save(tick, s.pc)
		duration := s.durations.Duration(s.serviceMin, s.serviceMax)
		s.servicing = &serviceState{
			device:      rec.Device,
			priority:    rec.Priority,
			arrivalTick: rec.ArrivalTick,
			remaining:   duration,
		}
		ev.Kind = KindServiceStarted
		ev.Device = rec.Device
		ev.Priority = rec.Priority
		ev.Latency = tick - rec.ArrivalTick
		ev.Duration = duration
		ev.SavedPC = s.pc
		return ev
	}

	ev.Kind = KindMainProcess
	ev.PC = s.pc
	s.pc++
	return ev
}

// IsIdle reports whether no service is in progress.
func (s *Scheduler) IsIdle() bool {
	return s.servicing == nil
}

// QueueSnapshot returns the pending interrupts in service order, for
// diagnostics and tests.
func (s *Scheduler) QueueSnapshot() []InterruptRecord {
	return s.queue.Snapshot()
}

// PC returns the current main-process program counter.
func (s *Scheduler) PC() int64 {
	return s.pc
}
