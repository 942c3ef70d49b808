package sim

import "fmt"

// InterruptRecord is one pending interrupt occurrence: which device raised
// it, at what priority, and when. The arrival tick is fixed at admission and
// never changes. Records are values; the queue hands each one out once.
type InterruptRecord struct {
	Device      string
	Priority    Priority
	ArrivalTick int64
}

// less orders records by (priority rank ascending, arrival tick ascending):
// strictly by priority first, FIFO among equal priority.
func (r InterruptRecord) less(other InterruptRecord) bool {
	if r.Priority.Rank() != other.Priority.Rank() {
		return r.Priority.Rank() < other.Priority.Rank()
	}
	return r.ArrivalTick < other.ArrivalTick
}

func (r InterruptRecord) String() string {
	return fmt.Sprintf("%s(%s@%d)", r.Device, r.Priority.Label(), r.ArrivalTick)
}
