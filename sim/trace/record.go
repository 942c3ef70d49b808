// Package trace provides event-log recording for simulation runs.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// Marker classifies an event-log line. The markers are the vocabulary of the
// final report's legend.
type Marker string

const (
	// MarkerSimultaneous flags a tick where several devices raised
	// interrupts at once, exercising the priority ordering.
	MarkerSimultaneous Marker = "[!]"
	// MarkerQueued flags an interrupt joining a queue that already holds
	// pending work.
	MarkerQueued Marker = "[+]"
	// MarkerStart flags an interrupt entering service.
	MarkerStart Marker = "[*]"
	// MarkerContinue flags an in-progress service consuming a tick.
	MarkerContinue Marker = "[>]"
	// MarkerDone flags a completed service with its context restore.
	MarkerDone Marker = "[OK]"
	// MarkerResume flags the main process resuming after a restore.
	MarkerResume Marker = "[<]"
	// MarkerIdle flags a normal main-process execution tick.
	MarkerIdle Marker = "[ ]"
	// MarkerInit and MarkerEnd bracket the run.
	MarkerInit Marker = "[INIT]"
	MarkerEnd  Marker = "[END]"
)

// Record is one event-log line: the tick it happened at, its marker, and the
// rendered text.
type Record struct {
	Tick   int64
	Marker Marker
	Text   string
}
