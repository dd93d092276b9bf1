package backend

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/iwtcode/avGateway/internal/config"
	"github.com/iwtcode/avGateway/internal/domain/models"
	"github.com/iwtcode/avGateway/internal/middleware/logging"
	"github.com/iwtcode/avGateway/internal/services/hardware"
	"github.com/iwtcode/avGateway/internal/services/pagestate"
	"github.com/iwtcode/avGateway/internal/services/registry"
	"github.com/stretchr/testify/require"
)

func testLogger() *logging.Logger {
	return logging.NewLogger(&logging.Config{Level: "ERROR"}, "TEST")
}

// healthServer поднимает тестовый backend, отвечающий на проверку здоровья.
func healthServer(t *testing.T, ok bool) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/test" {
			http.NotFound(w, r)
			return
		}
		if ok {
			_, _ = w.Write([]byte("OK"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("down"))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newManager(t *testing.T, cfg *config.AppConfig) (*Manager, *hardware.SimPanel, *pagestate.Set) {
	t.Helper()
	logger := testLogger()
	panel := hardware.NewSimPanel("TLP1")

	reg := registry.New()
	reg.Register(models.DomainUIDevice, []any{panel}, logger)
	trackers := pagestate.NewSet(reg.Keys(models.DomainUIDevice))

	return NewManager(cfg, reg, trackers, logger), panel, trackers
}

func TestSelectPrimary(t *testing.T) {
	primary := healthServer(t, true)
	m, _, _ := newManager(t, &config.AppConfig{
		Backend: config.BackendConfig{PrimaryAddress: primary.URL},
	})

	require.Equal(t, "OK", m.Select(""))

	state := m.State()
	require.True(t, state.Available)
	require.Equal(t, models.RolePrimary, state.Role)
	require.Equal(t, primary.URL, state.Address)
}

func TestSelectFailoverToSecondary(t *testing.T) {
	primary := healthServer(t, false)
	secondary := healthServer(t, true)
	m, _, _ := newManager(t, &config.AppConfig{
		Backend: config.BackendConfig{
			PrimaryAddress:   primary.URL,
			SecondaryAddress: secondary.URL,
		},
	})

	require.Equal(t, "OK", m.Select(""))

	state := m.State()
	require.True(t, state.Available)
	require.Equal(t, models.RoleSecondary, state.Role)
	require.Equal(t, secondary.URL, state.Address)
}

func TestSelectNoServersAvailable(t *testing.T) {
	m, panel, trackers := newManager(t, &config.AppConfig{
		Backend: config.BackendConfig{
			PrimaryAddress:   "http://127.0.0.1:1",
			SecondaryAddress: "",
		},
	})

	result := m.Select("")
	require.Equal(t, "No backend servers available", result)

	state := m.State()
	require.False(t, state.Available)
	require.Equal(t, models.RoleNone, state.Role)
	require.Empty(t, state.Address)

	// Все панели переводятся на страницу-заглушку.
	require.Equal(t, "NoBackendServer", panel.CurrentPage())
	tracker, ok := trackers.ForDevice("TLP1")
	require.True(t, ok)
	require.Equal(t, "NoBackendServer", tracker.CurrentPage())
}

func TestSelectCustom(t *testing.T) {
	custom := healthServer(t, true)
	m, _, _ := newManager(t, &config.AppConfig{})

	require.Equal(t, "OK", m.Select(custom.URL))

	state := m.State()
	require.True(t, state.Available)
	require.Equal(t, models.RoleCustom, state.Role)
	require.Equal(t, custom.URL, state.Address)
}

func TestSelectCustomUnavailable(t *testing.T) {
	m, panel, _ := newManager(t, &config.AppConfig{})

	result := m.Select("http://127.0.0.1:1")
	require.Equal(t, "Custom backend server http://127.0.0.1:1 is not available", result)
	require.False(t, m.State().Available)
	require.Equal(t, "NoBackendServer", panel.CurrentPage())
}

func TestHealthCheckRequiresOKBody(t *testing.T) {
	// 200 без "OK" в теле не считается живым сервером.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("alive"))
	}))
	t.Cleanup(srv.Close)

	m, _, _ := newManager(t, &config.AppConfig{})
	result := m.Select(srv.URL)
	require.NotEqual(t, "OK", result)
	require.False(t, m.State().Available)
}
