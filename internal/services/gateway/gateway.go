package gateway

import (
	"encoding/json"
	"fmt"

	"github.com/iwtcode/avGateway/internal/domain/models"
	"github.com/iwtcode/avGateway/internal/interfaces"
	"github.com/iwtcode/avGateway/internal/middleware/logging"
	"github.com/iwtcode/avGateway/internal/services/dispatch"
	"github.com/iwtcode/avGateway/internal/services/macro"
)

// Service маршрутизирует входящие RPC-сообщения между диспетчером доменных
// команд и обработчиком макросов. Единая точка входа для всех транспортов:
// TCP RPC-сервера, WebSocket, HTTP API и обратной связи от backend-сервера.
type Service struct {
	dispatcher *dispatch.Dispatcher
	macros     *macro.Runner
	logger     *logging.Logger
}

var _ interfaces.GatewayService = (*Service)(nil)

func NewService(dispatcher *dispatch.Dispatcher, macros *macro.Runner, logger *logging.Logger) *Service {
	return &Service{
		dispatcher: dispatcher,
		macros:     macros,
		logger:     logger.WithPrefix("GATEWAY"),
	}
}

// ProcessMessage разбирает JSON-тело команды и возвращает байты ответа.
// Протокол не имеет слоя статус-кодов: ошибки сериализуются в тело ответа,
// и обработка никогда не возвращает сбой вызывающему транспорту.
func (s *Service) ProcessMessage(body []byte) []byte {
	var rec models.CommandRecord
	if err := json.Unmarshal(body, &rec); err != nil {
		s.logger.Error("Error decoding JSON", "error", err, "raw", string(body))
		return []byte(fmt.Sprintf("Error decoding JSON : %v", err))
	}

	switch {
	case models.IsKnownDomain(rec.Type):
		return []byte(s.dispatcher.Dispatch(rec))

	case rec.Type == macro.MacroGetAllElements:
		snapshot := s.macros.Elements()
		data, err := json.Marshal(snapshot)
		if err != nil {
			s.logger.Error("Failed to serialize elements snapshot", "error", err)
			return []byte(fmt.Sprintf("Error processing data : %v", err))
		}
		return data

	case rec.Type == macro.MacroSetBackendServer:
		return []byte(s.macros.SelectBackend(rec.IP))

	default:
		s.logger.Error("Unknown action", "type", rec.Type)
		return []byte(fmt.Sprintf("Unknown action %s", rec.Type))
	}
}

// Dispatch выполняет одну доменную команду.
func (s *Service) Dispatch(rec models.CommandRecord) string {
	return s.dispatcher.Dispatch(rec)
}

// Elements возвращает снимок реестров.
func (s *Service) Elements() models.ElementsSnapshot {
	return s.macros.Elements()
}

// SelectBackend выполняет макрос выбора backend-сервера.
func (s *Service) SelectBackend(address string) string {
	return s.macros.SelectBackend(address)
}

// BackendState возвращает состояние выбора backend-сервера.
func (s *Service) BackendState() models.BackendState {
	return s.macros.BackendState()
}
