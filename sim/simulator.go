// sim/simulator.go
package sim

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/interrupt-sim/interrupt-sim/sim/trace"
)

// Simulator is the driver: it owns simulated time, steps the Scheduler once
// per tick for the configured horizon, accumulates metrics, and renders each
// tick's outcome into the run trace. It performs no file I/O; report writing
// belongs to the caller.
type Simulator struct {
	Clock     int64
	Horizon   int64
	Registry  *Registry
	Scheduler *Scheduler
	Metrics   *Metrics
	Trace     *trace.RunTrace
}

// NewSimulator validates the configuration and wires a Simulator: a
// partitioned RNG derived from the seed, Bernoulli arrivals, uniform service
// durations, and an idle scheduler over the registry.
func NewSimulator(cfg SimulationConfig, registry *Registry) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}

	rng := NewPartitionedRNG(NewSimulationKey(cfg.Seed))
	arrivals := NewBernoulliArrivals(rng.ForSubsystem(SubsystemArrivals), cfg.Probability)
	durations := NewUniformDurations(rng.ForSubsystem(SubsystemService))

	return &Simulator{
		Horizon:   cfg.Horizon,
		Registry:  registry,
		Scheduler: NewScheduler(registry, arrivals, durations, cfg.ServiceMin, cfg.ServiceMax),
		Metrics:   NewMetrics(registry),
		Trace:     trace.New(),
	}, nil
}

// Run executes the full simulation: Horizon sequential ticks.
func (s *Simulator) Run() {
	s.Trace.Append(trace.Record{Tick: s.Clock, Marker: trace.MarkerInit, Text: "simulation started"})

	for s.Clock = 0; s.Clock < s.Horizon; s.Clock++ {
		ev := s.Scheduler.Step(s.Clock)
		logrus.Debugf("%s", ev)
		s.Metrics.Observe(ev)
		s.record(ev)
	}

	s.Trace.Append(trace.Record{Tick: s.Clock, Marker: trace.MarkerEnd, Text: "simulation finished"})
}

// record renders one tick event into trace records. A tick can produce more
// than one line: arrival notes precede the transition line, and a completed
// service emits both the restore and the resume lines.
func (s *Simulator) record(ev TickEvent) {
	if ev.Simultaneous {
		s.append(ev.Tick, trace.MarkerSimultaneous,
			"MULTIPLE simultaneous interrupts: %s (priority ordering case)",
			strings.Join(ev.Admitted, ", "))
	} else if ev.QueuedBehind {
		s.append(ev.Tick, trace.MarkerQueued,
			"interrupt from %s added to the wait queue", ev.Admitted[0])
	}

	switch ev.Kind {
	case KindServiceContinued:
		s.append(ev.Tick, trace.MarkerContinue,
			"continuing service of %s (%d ticks remaining)", ev.Device, ev.Remaining)
	case KindServiceCompleted:
		s.append(ev.Tick, trace.MarkerDone,
			"service of %s complete, restoring context (PC=%d)", ev.Device, ev.RestoredPC)
		s.append(ev.Tick, trace.MarkerResume,
			"main process resumed (next instruction: %d)", ev.ResumePC)
	case KindServiceStarted:
		s.append(ev.Tick, trace.MarkerStart,
			"interrupt: %s (priority: %s) - latency %d ticks; context saved (PC=%d); service estimated %d ticks",
			ev.Device, ev.Priority.Label(), ev.Latency, ev.SavedPC, ev.Duration)
	case KindMainProcess:
		s.append(ev.Tick, trace.MarkerIdle, "main process executing (PC=%d)", ev.PC)
	}
}

func (s *Simulator) append(tick int64, marker trace.Marker, format string, args ...any) {
	s.Trace.Append(trace.Record{Tick: tick, Marker: marker, Text: fmt.Sprintf(format, args...)})
}
