package backend

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/iwtcode/avGateway/internal/config"
	"github.com/iwtcode/avGateway/internal/domain/models"
	"github.com/iwtcode/avGateway/internal/interfaces"
	"github.com/iwtcode/avGateway/internal/middleware/logging"
	"github.com/iwtcode/avGateway/internal/services/pagestate"
)

// Страница, на которую переводятся все панели, когда ни один backend-сервер
// не доступен.
const fallbackPage = "NoBackendServer"

// healthCheckTimeout - жесткий таймаут проверки здоровья backend-сервера.
const healthCheckTimeout = 2 * time.Second

// Manager владеет состоянием выбора backend-сервера и реализует логику
// переключения на резервный сервер. Состояние обновляется атомарно:
// читатели никогда не видят частичного обновления.
type Manager struct {
	mu       sync.RWMutex
	state    models.BackendState
	cfg      *config.AppConfig
	registry interfaces.ObjectRegistry
	trackers *pagestate.Set
	client   *http.Client
	logger   *logging.Logger
}

func NewManager(cfg *config.AppConfig, reg interfaces.ObjectRegistry, trackers *pagestate.Set, logger *logging.Logger) *Manager {
	return &Manager{
		state:    models.BackendState{Role: models.RoleNone},
		cfg:      cfg,
		registry: reg,
		trackers: trackers,
		client:   &http.Client{Timeout: healthCheckTimeout},
		logger:   logger.WithPrefix("BACKEND"),
	}
}

// State возвращает снимок состояния выбора.
func (m *Manager) State() models.BackendState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Select выбирает backend-сервер. При явном адресе проверяется только он;
// без адреса перебираются primary и secondary из конфигурации.
// Возвращает "OK" либо человекочитаемое описание ошибки.
func (m *Manager) Select(address string) string {
	if address != "" {
		if m.healthy(address) {
			m.adopt(models.RoleCustom, address)
			m.logger.Warn("Using custom backend server", "address", address)
			return "OK"
		}
		err := fmt.Sprintf("Custom backend server %s is not available", address)
		m.abandon(err)
		return err
	}

	if primary := m.cfg.Backend.PrimaryAddress; primary != "" && m.healthy(primary) {
		m.adopt(models.RolePrimary, primary)
		m.logger.Info("Using primary backend server", "address", primary)
		return "OK"
	}
	if secondary := m.cfg.Backend.SecondaryAddress; secondary != "" && m.healthy(secondary) {
		m.adopt(models.RoleSecondary, secondary)
		m.logger.Warn("Using secondary backend server", "address", secondary)
		return "OK"
	}

	const err = "No backend servers available"
	m.abandon(err)
	return err
}

// healthy выполняет проверку здоровья: GET /api/v1/test, успех - тело
// содержит литерал "OK".
func (m *Manager) healthy(address string) bool {
	resp, err := m.client.Get(address + "/api/v1/test")
	if err != nil {
		m.logger.Debug("Health check failed", "address", address, "error", err)
		return false
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1024))
	if err != nil {
		return false
	}
	return strings.Contains(string(body), "OK")
}

func (m *Manager) adopt(role models.BackendRole, address string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = models.BackendState{
		Available: true,
		Role:      role,
		Address:   address,
	}
}

// abandon помечает backend недоступным и переводит все панели на страницу
// fallbackPage, чтобы пользователь видел причину неработающего интерфейса.
func (m *Manager) abandon(reason string) {
	m.mu.Lock()
	m.state = models.BackendState{
		Available: false,
		Role:      models.RoleNone,
		Address:   "",
	}
	m.mu.Unlock()

	m.logger.Error(reason)

	for _, handle := range m.registry.Handles(models.DomainUIDevice) {
		nav, ok := handle.(interfaces.PageNavigator)
		if !ok {
			continue
		}
		if err := nav.ShowPage(fallbackPage); err != nil {
			m.logger.Error("Failed to show fallback page", "error", err)
			continue
		}
		if aliased, ok := handle.(interfaces.Aliased); ok {
			if t, found := m.trackers.ForDevice(aliased.DeviceAlias()); found {
				t.SetPage(fallbackPage)
			}
		}
	}
}
