package sim

import "fmt"

// SimulationConfig groups the run-level simulation parameters.
type SimulationConfig struct {
	Horizon     int64   // total ticks to simulate (must be > 0)
	Seed        int64   // master seed for the partitioned RNG
	Probability float64 // per-device per-tick arrival probability, in [0, 1]
	ServiceMin  int64   // minimum service duration in ticks (default 2)
	ServiceMax  int64   // maximum service duration in ticks (default 4)
}

// NewSimulationConfig creates a SimulationConfig from individual parameters.
func NewSimulationConfig(horizon, seed int64, probability float64, serviceMin, serviceMax int64) SimulationConfig {
	return SimulationConfig{
		Horizon:     horizon,
		Seed:        seed,
		Probability: probability,
		ServiceMin:  serviceMin,
		ServiceMax:  serviceMax,
	}
}

// Validate checks that all parameter ranges are sane.
func (c SimulationConfig) Validate() error {
	if c.Horizon <= 0 {
		return fmt.Errorf("horizon must be positive, got %d", c.Horizon)
	}
	if c.Probability < 0 || c.Probability > 1 {
		return fmt.Errorf("arrival probability must be in [0, 1], got %v", c.Probability)
	}
	if c.ServiceMin < 1 {
		return fmt.Errorf("service-min must be at least 1, got %d", c.ServiceMin)
	}
	if c.ServiceMax < c.ServiceMin {
		return fmt.Errorf("service-max (%d) must be >= service-min (%d)", c.ServiceMax, c.ServiceMin)
	}
	return nil
}
