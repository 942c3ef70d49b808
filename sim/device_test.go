package sim

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry_CanonicalDevices(t *testing.T) {
	reg := DefaultRegistry()

	want := []Device{
		{Name: "Teclado", Priority: PriorityHigh},
		{Name: "Impressora", Priority: PriorityMedium},
		{Name: "Disco", Priority: PriorityLow},
	}
	assert.Equal(t, want, reg.Devices())
	assert.Equal(t, 3, reg.Len())
	assert.Equal(t, []string{"Teclado", "Impressora", "Disco"}, reg.Names())
}

func TestNewRegistry_RejectsDuplicateNames(t *testing.T) {
	_, err := NewRegistry([]Device{
		{Name: "Disco", Priority: PriorityLow},
		{Name: "Disco", Priority: PriorityHigh},
	})
	assert.ErrorContains(t, err, "duplicate device name")
}

func TestNewRegistry_RejectsEmptySet(t *testing.T) {
	_, err := NewRegistry(nil)
	assert.Error(t, err)
}

func TestNewRegistry_RejectsUnknownPriority(t *testing.T) {
	_, err := NewRegistry([]Device{{Name: "Modem", Priority: Priority(9)}})
	assert.ErrorContains(t, err, "unknown priority")
}

func TestNewRegistry_CopiesInput(t *testing.T) {
	devices := []Device{{Name: "Teclado", Priority: PriorityHigh}}
	reg, err := NewRegistry(devices)
	require.NoError(t, err)

	devices[0].Name = "clobbered"
	assert.Equal(t, "Teclado", reg.Devices()[0].Name)
}

func TestLoadRegistry_FromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "devices.yaml")
	content := `devices:
  - name: Teclado
    priority: high
  - name: Mouse
    priority: medium
  - name: Disco
    priority: low
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	reg, err := LoadRegistry(path)
	require.NoError(t, err)
	assert.Equal(t, []Device{
		{Name: "Teclado", Priority: PriorityHigh},
		{Name: "Mouse", Priority: PriorityMedium},
		{Name: "Disco", Priority: PriorityLow},
	}, reg.Devices())
}

func TestLoadRegistry_RejectsUnknownPriorityName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "devices.yaml")
	content := `devices:
  - name: Teclado
    priority: urgent
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := LoadRegistry(path)
	assert.ErrorContains(t, err, "unknown priority")
}

func TestLoadRegistry_MissingFile(t *testing.T) {
	_, err := LoadRegistry(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "reading device registry")
}

func TestLoadRegistry_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "devices.yaml")
	require.NoError(t, os.WriteFile(path, []byte("devices: [:::"), 0o644))

	_, err := LoadRegistry(path)
	assert.ErrorContains(t, err, "parsing device registry")
}
