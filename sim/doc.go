// Package sim provides the core discrete-time engine for the interrupt-driven
// I/O simulator.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - interrupt.go: InterruptRecord and its (priority rank, arrival tick) ordering
//   - scheduler.go: the Idle/Servicing state machine stepped once per tick
//   - simulator.go: the driver loop that owns the clock, metrics, and trace
//
// # Architecture
//
// The processor model services at most one interrupt at a time. Each tick the
// Scheduler runs three phases in fixed order: admit newly raised interrupts
// into the InterruptQueue, advance an in-progress service (restoring the saved
// main-process context on completion), and, only when idle with no fresh
// admissions, either begin servicing the highest-priority pending interrupt
// or execute one instruction of the main process.
//
// Supporting pieces:
//   - priority.go: the Priority type (rank + display label, never out of sync)
//   - device.go: the immutable device Registry, optionally loaded from YAML
//   - queue.go: the pending-interrupt queue with priority + FIFO ordering
//   - context.go: the single-slot ContextStore modeling context save/restore
//   - rng.go: seedable, partitioned randomness seams for arrivals and durations
//   - metrics.go: fixed-shape run statistics
//
// Per-tick outcomes are plain data (event.go); sim/trace collects the rendered
// records and the cmd package writes the final text report.
//
// # Determinism
//
// All randomness flows through the ArrivalSource and DurationSource
// interfaces, backed by a PartitionedRNG derived from a single seed. Two runs
// with the same seed and configuration produce identical traces.
package sim
