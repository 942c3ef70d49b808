package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Device describes one interrupt source: a name unique within the registry
// and a fixed priority class. Devices are immutable for the whole run.
type Device struct {
	Name     string
	Priority Priority
}

// Registry is an immutable, ordered set of devices. The order is the order
// in which the arrival phase offers each device its per-tick arrival draw.
type Registry struct {
	devices []Device
}

// NewRegistry builds a Registry from the given devices, validating that the
// set is non-empty, every name is unique, and every priority is recognized.
func NewRegistry(devices []Device) (*Registry, error) {
	if len(devices) == 0 {
		return nil, fmt.Errorf("registry must contain at least one device")
	}
	seen := make(map[string]bool, len(devices))
	for _, d := range devices {
		if d.Name == "" {
			return nil, fmt.Errorf("device name must not be empty")
		}
		if seen[d.Name] {
			return nil, fmt.Errorf("duplicate device name %q", d.Name)
		}
		if !d.Priority.Valid() {
			return nil, fmt.Errorf("device %q has unknown priority %d", d.Name, int(d.Priority))
		}
		seen[d.Name] = true
	}
	reg := &Registry{devices: make([]Device, len(devices))}
	copy(reg.devices, devices)
	return reg, nil
}

// DefaultRegistry returns the canonical three-device registry: a keyboard
// (high priority), a printer (medium), and a disk (low).
func DefaultRegistry() *Registry {
	reg, err := NewRegistry([]Device{
		{Name: "Teclado", Priority: PriorityHigh},
		{Name: "Impressora", Priority: PriorityMedium},
		{Name: "Disco", Priority: PriorityLow},
	})
	if err != nil {
		panic(err) // static device set, cannot fail
	}
	return reg
}

// Devices returns a copy of the registry contents in registration order.
func (r *Registry) Devices() []Device {
	out := make([]Device, len(r.devices))
	copy(out, r.devices)
	return out
}

// Len returns the number of registered devices.
func (r *Registry) Len() int {
	return len(r.devices)
}

// Names returns the device names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.devices))
	for i, d := range r.devices {
		names[i] = d.Name
	}
	return names
}

// registryFile is the YAML shape of a device registry file:
//
//	devices:
//	  - name: Teclado
//	    priority: high
type registryFile struct {
	Devices []deviceEntry `yaml:"devices"`
}

type deviceEntry struct {
	Name     string `yaml:"name"`
	Priority string `yaml:"priority"`
}

// LoadRegistry reads and parses a YAML device registry file.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading device registry: %w", err)
	}
	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing device registry: %w", err)
	}
	devices := make([]Device, 0, len(file.Devices))
	for _, entry := range file.Devices {
		p, err := ParsePriority(entry.Priority)
		if err != nil {
			return nil, fmt.Errorf("device %q: %w", entry.Name, err)
		}
		devices = append(devices, Device{Name: entry.Name, Priority: p})
	}
	reg, err := NewRegistry(devices)
	if err != nil {
		return nil, fmt.Errorf("invalid device registry: %w", err)
	}
	return reg, nil
}
