package gateway

import (
	"encoding/json"
	"testing"

	"github.com/iwtcode/avGateway/internal/config"
	"github.com/iwtcode/avGateway/internal/domain/models"
	"github.com/iwtcode/avGateway/internal/middleware/logging"
	"github.com/iwtcode/avGateway/internal/services/backend"
	"github.com/iwtcode/avGateway/internal/services/dispatch"
	"github.com/iwtcode/avGateway/internal/services/hardware"
	"github.com/iwtcode/avGateway/internal/services/macro"
	"github.com/iwtcode/avGateway/internal/services/pagestate"
	"github.com/iwtcode/avGateway/internal/services/registry"
	"github.com/stretchr/testify/require"
)

func setupService(t *testing.T) (*Service, *hardware.SimButton) {
	t.Helper()
	logger := logging.NewLogger(&logging.Config{Level: "ERROR"}, "TEST")
	button := hardware.NewSimButton("BtnPower", hardware.NewEventSource())

	reg := registry.New()
	reg.Register(models.DomainButton, []any{button}, logger)
	reg.Register(models.DomainUIDevice, []any{hardware.NewSimPanel("TLP1")}, logger)

	trackers := pagestate.NewSet(reg.Keys(models.DomainUIDevice))
	reg.Register(models.DomainPageState, []any{trackers.All()[0]}, logger)

	dispatcher := dispatch.New(reg, trackers, logger)
	manager := backend.NewManager(&config.AppConfig{}, reg, trackers, logger)
	macros := macro.NewRunner(reg, trackers, manager, logger)

	return NewService(dispatcher, macros, logger), button
}

func TestProcessMessageDomainCommand(t *testing.T) {
	svc, button := setupService(t)

	response := svc.ProcessMessage([]byte(`{"type":"Button","object":"BtnPower","function":"SetState","arg1":"1"}`))
	require.Equal(t, "OK", string(response))
	require.Equal(t, 1, button.State())
}

func TestProcessMessageMalformedJSON(t *testing.T) {
	svc, _ := setupService(t)

	response := svc.ProcessMessage([]byte(`{"type": "Button",`))
	require.Contains(t, string(response), "Error decoding JSON :")
}

func TestProcessMessageUnknownAction(t *testing.T) {
	svc, _ := setupService(t)

	response := svc.ProcessMessage([]byte(`{"type":"make_coffee"}`))
	require.Equal(t, "Unknown action make_coffee", string(response))
}

func TestProcessMessageGetAllElements(t *testing.T) {
	svc, _ := setupService(t)

	response := svc.ProcessMessage([]byte(`{"type":"get_all_elements"}`))

	var snap models.ElementsSnapshot
	require.NoError(t, json.Unmarshal(response, &snap))
	require.Equal(t, []string{"BtnPower"}, snap.Buttons)
	require.Equal(t, []string{"TLP1"}, snap.UIDevices)
	require.Equal(t, []string{"PageState1"}, snap.PageStateMachines)
}

func TestProcessMessageSetBackendServer(t *testing.T) {
	svc, _ := setupService(t)

	response := svc.ProcessMessage([]byte(`{"type":"set_backend_server","ip":""}`))
	require.Equal(t, "No backend servers available", string(response))
}

func TestProcessMessageDispatchError(t *testing.T) {
	svc, _ := setupService(t)

	response := svc.ProcessMessage([]byte(`{"type":"Button","object":"Missing","function":"SetState","arg1":"1"}`))
	require.Contains(t, string(response), "Function Error:")
	require.Contains(t, string(response), "Missing not in Button map")
}
