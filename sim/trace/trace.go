package trace

// RunTrace collects event records during a simulation run, in emission order.
type RunTrace struct {
	Records []Record
}

// New creates a RunTrace ready for recording.
func New() *RunTrace {
	return &RunTrace{Records: make([]Record, 0)}
}

// Append adds a record to the trace.
func (rt *RunTrace) Append(record Record) {
	rt.Records = append(rt.Records, record)
}

// Len returns the number of recorded events.
func (rt *RunTrace) Len() int {
	return len(rt.Records)
}
