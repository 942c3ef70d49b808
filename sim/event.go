package sim

import (
	"fmt"
	"strings"
)

// StepKind identifies the single state transition a Step call performed.
type StepKind string

const (
	// KindArrivals: one or more interrupts were admitted while the processor
	// was idle. The newly admitted interrupts become eligible for service on
	// the next tick at the earliest.
	KindArrivals StepKind = "arrivals"
	// KindServiceContinued: an in-progress service consumed this tick.
	KindServiceContinued StepKind = "service-continued"
	// KindServiceCompleted: the in-progress service finished; the saved
	// context was restored and the main process resumes next tick.
	KindServiceCompleted StepKind = "service-completed"
	// KindServiceStarted: the highest-priority pending interrupt entered
	// service; the main-process context was saved.
	KindServiceStarted StepKind = "service-started"
	// KindMainProcess: nothing to service; the main process executed one
	// instruction.
	KindMainProcess StepKind = "main-process"
)

// TickEvent describes everything a single Step call did. It is a fixed-shape
// record: Kind selects which of the transition fields are meaningful, and the
// arrival-phase fields are populated whenever admissions occurred, regardless
// of Kind (arrivals during servicing are queued, never lost).
type TickEvent struct {
	Tick int64
	Kind StepKind

	// Arrival phase results, set for every Kind.
	Admitted     []string // device names admitted this tick, registry order
	Simultaneous bool     // more than one device admitted this tick
	QueuedBehind bool     // a single admission joined a queue with other pending work

	// Servicing fields. Which are meaningful depends on Kind.
	Device     string   // KindServiceStarted, KindServiceContinued, KindServiceCompleted
	Priority   Priority // KindServiceStarted
	Latency    int64    // KindServiceStarted: start tick minus arrival tick
	Duration   int64    // KindServiceStarted: drawn service length in ticks
	Remaining  int64    // KindServiceContinued: ticks left after this one
	SavedPC    int64    // KindServiceStarted: program counter stored in the context
	RestoredPC int64    // KindServiceCompleted: program counter from the restored context
	ResumePC   int64    // KindServiceCompleted: next instruction of the resumed process
	PC         int64    // KindMainProcess: program counter of the executed instruction
}

// String renders a one-line human-readable summary, mainly for debug logging.
func (e TickEvent) String() string {
	switch e.Kind {
	case KindArrivals:
		return fmt.Sprintf("tick %d: admitted %s", e.Tick, strings.Join(e.Admitted, ", "))
	case KindServiceContinued:
		return fmt.Sprintf("tick %d: continuing %s (%d remaining)", e.Tick, e.Device, e.Remaining)
	case KindServiceCompleted:
		return fmt.Sprintf("tick %d: %s complete, restored PC=%d", e.Tick, e.Device, e.RestoredPC)
	case KindServiceStarted:
		return fmt.Sprintf("tick %d: servicing %s (%s) latency=%d duration=%d",
			e.Tick, e.Device, e.Priority.Label(), e.Latency, e.Duration)
	case KindMainProcess:
		return fmt.Sprintf("tick %d: main process PC=%d", e.Tick, e.PC)
	default:
		return fmt.Sprintf("tick %d: %s", e.Tick, e.Kind)
	}
}
