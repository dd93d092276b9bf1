package macro

import (
	"encoding/json"
	"testing"

	"github.com/iwtcode/avGateway/internal/config"
	"github.com/iwtcode/avGateway/internal/domain/models"
	"github.com/iwtcode/avGateway/internal/middleware/logging"
	"github.com/iwtcode/avGateway/internal/services/backend"
	"github.com/iwtcode/avGateway/internal/services/hardware"
	"github.com/iwtcode/avGateway/internal/services/pagestate"
	"github.com/iwtcode/avGateway/internal/services/registry"
	"github.com/stretchr/testify/require"
)

func setupRunner(t *testing.T) *Runner {
	t.Helper()
	logger := logging.NewLogger(&logging.Config{Level: "ERROR"}, "TEST")
	events := hardware.NewEventSource()

	reg := registry.New()
	reg.Register(models.DomainProcessor, []any{hardware.NewSimProcessor("CP1")}, logger)
	reg.Register(models.DomainUIDevice, []any{hardware.NewSimPanel("TLP1")}, logger)
	reg.Register(models.DomainButton, []any{
		hardware.NewSimButton("BtnPower", events),
		hardware.NewSimButton("BtnMute", events),
	}, logger)

	trackers := pagestate.NewSet(reg.Keys(models.DomainUIDevice))
	reg.Register(models.DomainPageState, []any{trackers.All()[0]}, logger)

	manager := backend.NewManager(&config.AppConfig{}, reg, trackers, logger)
	return NewRunner(reg, trackers, manager, logger)
}

func TestIsMacro(t *testing.T) {
	require.True(t, IsMacro(MacroGetAllElements))
	require.True(t, IsMacro(MacroSetBackendServer))
	require.False(t, IsMacro("Button"))
	require.False(t, IsMacro(""))
}

func TestElementsSnapshot(t *testing.T) {
	r := setupRunner(t)

	snap := r.Elements()
	require.Equal(t, []string{"CP1"}, snap.Processors)
	require.Equal(t, []string{"TLP1"}, snap.UIDevices)
	require.Equal(t, []string{"BtnMute", "BtnPower"}, snap.Buttons)
	require.Equal(t, []string{"PageState1"}, snap.PageStateMachines)
	require.False(t, snap.BackendAvailable)
	require.Equal(t, models.RoleNone, snap.BackendRole)
}

func TestElementsSnapshotEmptyDomainsAreNotNull(t *testing.T) {
	r := setupRunner(t)

	// Незарегистрированные домены сериализуются пустыми списками, не null.
	data, err := json.Marshal(r.Elements())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	for _, field := range []string{
		"all_processors", "all_ui_devices", "all_buttons", "all_knobs",
		"all_labels", "all_levels", "all_sliders", "all_relays",
		"all_serial_interfaces", "all_ethernet_interfaces", "all_page_state_machines",
	} {
		require.Contains(t, decoded, field)
		require.NotNil(t, decoded[field], "поле %q не должно быть null", field)
	}
	require.Contains(t, decoded, "backend_server_available")
	require.Contains(t, decoded, "backend_server_role")
	require.Contains(t, decoded, "backend_server_ip")
}

func TestSelectBackendNoServers(t *testing.T) {
	r := setupRunner(t)

	result := r.SelectBackend("")
	require.Equal(t, "No backend servers available", result)
	require.False(t, r.BackendState().Available)
}
