// Tracks run-wide statistics accumulated from tick events.

package sim

import "fmt"

// Metrics aggregates statistics about the simulation for final reporting.
// All fields are fixed-shape counters; the per-device map is keyed by the
// registry's device names, pre-seeded to zero so every device appears in the
// report even when never serviced.
type Metrics struct {
	ServicedByDevice map[string]int // device name -> interrupts serviced

	TotalInterrupts   int   // interrupts that entered service
	TotalServiceTicks int64 // sum of drawn service durations
	LatencySum        int64 // sum of service-start latencies
	MainProcessCycles int   // ticks the main process executed
	SimultaneousTicks int   // ticks with more than one admission
}

// NewMetrics creates a Metrics with every registry device pre-seeded.
func NewMetrics(registry *Registry) *Metrics {
	m := &Metrics{ServicedByDevice: make(map[string]int, registry.Len())}
	for _, name := range registry.Names() {
		m.ServicedByDevice[name] = 0
	}
	return m
}

// Observe folds one tick event into the counters.
func (m *Metrics) Observe(ev TickEvent) {
	if ev.Simultaneous {
		m.SimultaneousTicks++
	}
	switch ev.Kind {
	case KindServiceStarted:
		m.ServicedByDevice[ev.Device]++
		m.TotalInterrupts++
		m.TotalServiceTicks += ev.Duration
		m.LatencySum += ev.Latency
	case KindMainProcess:
		m.MainProcessCycles++
	}
}

// AverageLatency returns the mean service-start latency in ticks, or 0 when
// nothing was serviced.
func (m *Metrics) AverageLatency() float64 {
	if m.TotalInterrupts == 0 {
		return 0
	}
	return float64(m.LatencySum) / float64(m.TotalInterrupts)
}

// Print displays aggregated metrics at the end of the simulation.
func (m *Metrics) Print() {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Interrupts serviced   : %d\n", m.TotalInterrupts)
	if m.TotalInterrupts > 0 {
		fmt.Printf("Average latency       : %.2f ticks\n", m.AverageLatency())
		fmt.Printf("Total service ticks   : %d\n", m.TotalServiceTicks)
	}
	fmt.Printf("Main process cycles   : %d\n", m.MainProcessCycles)
	fmt.Printf("Simultaneous arrivals : %d ticks\n", m.SimultaneousTicks)
}
