// Implements the InterruptQueue, which holds all interrupts waiting to be
// serviced. Interrupts are admitted during the arrival phase of each tick.

package sim

import (
	"fmt"
	"sort"
	"strings"
)

// InterruptQueue holds pending InterruptRecords ordered by (priority rank
// ascending, arrival tick ascending). In the simulator, this models the
// kernel's pending-interrupt table: the highest-priority interrupt is always
// at the front, and interrupts of equal priority are serviced in arrival
// order.
type InterruptQueue struct {
	pending []InterruptRecord
}

// Admit offers an interrupt from the given device at the given tick. If a
// record for the same (device, arrival tick) pair is already pending, the
// admission is rejected and Admit returns false. Otherwise the record is
// inserted, the ordering invariant is re-established, and Admit returns true.
func (q *InterruptQueue) Admit(tick int64, dev Device) bool {
	for _, rec := range q.pending {
		if rec.Device == dev.Name && rec.ArrivalTick == tick {
			return false
		}
	}
	q.pending = append(q.pending, InterruptRecord{
		Device:      dev.Name,
		Priority:    dev.Priority,
		ArrivalTick: tick,
	})
	sort.SliceStable(q.pending, func(i, j int) bool {
		return q.pending[i].less(q.pending[j])
	})
	return true
}

// PopHighest removes and returns the front of the queue, the pending record
// with lexicographically minimal (priority rank, arrival tick). The second
// return value is false if the queue is empty. This is the sole hand-off
// point into service; a popped record is consumed.
func (q *InterruptQueue) PopHighest() (InterruptRecord, bool) {
	if len(q.pending) == 0 {
		return InterruptRecord{}, false
	}
	rec := q.pending[0]
	q.pending = q.pending[1:]
	return rec, true
}

// HasPending reports whether any interrupt is waiting.
func (q *InterruptQueue) HasPending() bool {
	return len(q.pending) > 0
}

// Len returns the number of pending interrupts.
func (q *InterruptQueue) Len() int {
	return len(q.pending)
}

// Snapshot returns a copy of the pending records in service order, for
// diagnostics and tests. Mutating the returned slice does not affect the
// queue.
func (q *InterruptQueue) Snapshot() []InterruptRecord {
	out := make([]InterruptRecord, len(q.pending))
	copy(out, q.pending)
	return out
}

func (q *InterruptQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, rec := range q.pending {
		sb.WriteString(fmt.Sprint(rec))
		if i < len(q.pending)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
