package sim

import "fmt"

// Priority is the service priority class of a device. It carries both the
// ordering rank and the human-readable label as fixed, derived properties of
// a single value, so the two can never fall out of sync.
//
// A smaller rank is serviced first: High < Medium < Low.
type Priority int

const (
	PriorityHigh Priority = iota + 1
	PriorityMedium
	PriorityLow
)

// Rank returns the integer ordering key. Smaller means serviced earlier.
func (p Priority) Rank() int {
	return int(p)
}

// Label returns the display name used in event text and the final report.
func (p Priority) Label() string {
	switch p {
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	case PriorityLow:
		return "Low"
	default:
		return fmt.Sprintf("Priority(%d)", int(p))
	}
}

func (p Priority) String() string {
	return p.Label()
}

// Valid reports whether p is one of the three recognized priority classes.
func (p Priority) Valid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// validPriorityNames maps accepted registry-file priority strings.
// Shared by ParsePriority and Registry validation to avoid duplication.
var validPriorityNames = map[string]Priority{
	"high":   PriorityHigh,
	"medium": PriorityMedium,
	"low":    PriorityLow,
}

// ParsePriority converts a registry-file priority name ("high", "medium",
// "low") into a Priority value.
func ParsePriority(name string) (Priority, error) {
	p, ok := validPriorityNames[name]
	if !ok {
		return 0, fmt.Errorf("unknown priority %q (want high, medium, or low)", name)
	}
	return p, nil
}
