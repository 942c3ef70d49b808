package sim

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// === SimulationKey ===

// SimulationKey uniquely identifies a reproducible simulation run.
// Two simulations with the same SimulationKey and identical configuration
// MUST produce bit-for-bit identical traces.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// === Subsystem Constants ===

const (
	// SubsystemArrivals is the RNG subsystem for per-device arrival draws.
	// Uses the master seed directly, so --seed alone pins the arrival pattern.
	SubsystemArrivals = "arrivals"

	// SubsystemService is the RNG subsystem for service-duration draws.
	SubsystemService = "service"
)

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated RNG instances per subsystem,
// so drawing extra service durations never perturbs the arrival pattern.
//
// Derivation formula:
//   - For SubsystemArrivals: uses masterSeed directly
//   - For all other subsystems: masterSeed XOR fnv1a64(subsystemName)
//
// Thread-safety: NOT thread-safe. Each simulation instance owns its own
// PartitionedRNG and draws from a single goroutine.
type PartitionedRNG struct {
	key        SimulationKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a SimulationKey.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named subsystem.
// The same subsystem name always returns the same *rand.Rand instance (cached).
// Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}

	var derivedSeed int64
	if name == SubsystemArrivals {
		derivedSeed = int64(p.key)
	} else {
		// All other subsystems: XOR with hash for isolation.
		derivedSeed = int64(p.key) ^ fnv1a64(name)
	}

	rng := rand.New(rand.NewSource(derivedSeed))
	p.subsystems[name] = rng
	return rng
}

// Key returns the SimulationKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}

// === Randomness seams ===

// ArrivalSource decides, per device per tick, whether that device raises an
// interrupt. Implementations MUST NOT mutate the device.
type ArrivalSource interface {
	Raise(dev Device, tick int64) bool
}

// DurationSource draws a service duration in [min, max] ticks inclusive.
type DurationSource interface {
	Duration(min, max int64) int64
}

// BernoulliArrivals raises an interrupt with fixed probability p per device
// per tick, drawn from the injected RNG.
type BernoulliArrivals struct {
	rng *rand.Rand
	p   float64
}

// NewBernoulliArrivals creates a BernoulliArrivals source. Probability must
// be in [0, 1].
func NewBernoulliArrivals(rng *rand.Rand, probability float64) *BernoulliArrivals {
	if probability < 0 || probability > 1 {
		panic(fmt.Sprintf("arrival probability %v out of [0,1]", probability))
	}
	return &BernoulliArrivals{rng: rng, p: probability}
}

// Raise reports whether the device raises an interrupt this tick.
func (b *BernoulliArrivals) Raise(_ Device, _ int64) bool {
	return b.rng.Float64() < b.p
}

// UniformDurations draws service durations uniformly from [min, max].
type UniformDurations struct {
	rng *rand.Rand
}

// NewUniformDurations creates a UniformDurations source.
func NewUniformDurations(rng *rand.Rand) *UniformDurations {
	return &UniformDurations{rng: rng}
}

// Duration draws an integer uniformly in [min, max] inclusive.
func (u *UniformDurations) Duration(min, max int64) int64 {
	if min < 1 || max < min {
		panic(fmt.Sprintf("invalid duration bounds [%d, %d]", min, max))
	}
	return min + u.rng.Int63n(max-min+1)
}
