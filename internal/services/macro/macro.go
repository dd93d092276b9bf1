package macro

import (
	"github.com/iwtcode/avGateway/internal/domain/models"
	"github.com/iwtcode/avGateway/internal/interfaces"
	"github.com/iwtcode/avGateway/internal/middleware/logging"
	"github.com/iwtcode/avGateway/internal/services/backend"
	"github.com/iwtcode/avGateway/internal/services/pagestate"
)

// Имена макросов в поле "type" входящей команды.
const (
	MacroGetAllElements   = "get_all_elements"
	MacroSetBackendServer = "set_backend_server"
)

// IsMacro сообщает, является ли тип команды макросом.
func IsMacro(commandType string) bool {
	return commandType == MacroGetAllElements || commandType == MacroSetBackendServer
}

// Runner выполняет макросы - многошаговые команды, не укладывающиеся в
// схему "домен/объект/функция": интроспекцию реестров и выбор
// backend-сервера.
type Runner struct {
	registry interfaces.ObjectRegistry
	trackers *pagestate.Set
	manager  *backend.Manager
	logger   *logging.Logger
}

func NewRunner(reg interfaces.ObjectRegistry, trackers *pagestate.Set, manager *backend.Manager, logger *logging.Logger) *Runner {
	return &Runner{
		registry: reg,
		trackers: trackers,
		manager:  manager,
		logger:   logger.WithPrefix("MACRO"),
	}
}

// Elements возвращает снимок ключей всех реестров и состояние выбора
// backend-сервера. Backend использует его для обнаружения доступных целей
// без предварительного знания о системе.
func (r *Runner) Elements() models.ElementsSnapshot {
	state := r.manager.State()
	return models.ElementsSnapshot{
		Processors:         keysOrEmpty(r.registry, models.DomainProcessor),
		UIDevices:          keysOrEmpty(r.registry, models.DomainUIDevice),
		Buttons:            keysOrEmpty(r.registry, models.DomainButton),
		Knobs:              keysOrEmpty(r.registry, models.DomainKnob),
		Labels:             keysOrEmpty(r.registry, models.DomainLabel),
		Levels:             keysOrEmpty(r.registry, models.DomainLevel),
		Sliders:            keysOrEmpty(r.registry, models.DomainSlider),
		Relays:             keysOrEmpty(r.registry, models.DomainRelay),
		SerialInterfaces:   keysOrEmpty(r.registry, models.DomainSerial),
		EthernetInterfaces: keysOrEmpty(r.registry, models.DomainEthernet),
		PageStateMachines:  r.trackers.Names(),
		BackendAvailable:   state.Available,
		BackendRole:        state.Role,
		BackendAddress:     state.Address,
	}
}

// SelectBackend выполняет выбор backend-сервера (явный адрес либо перебор
// из конфигурации) и возвращает человекочитаемый результат.
func (r *Runner) SelectBackend(address string) string {
	result := r.manager.Select(address)
	r.logger.Info("Backend selection completed", "address", address, "result", result)
	return result
}

// BackendState возвращает текущее состояние выбора backend-сервера.
func (r *Runner) BackendState() models.BackendState {
	return r.manager.State()
}

func keysOrEmpty(reg interfaces.ObjectRegistry, domain models.Domain) []string {
	keys := reg.Keys(domain)
	if keys == nil {
		return []string{}
	}
	return keys
}
