package interfaces

import (
	"github.com/iwtcode/avGateway/internal/domain/models"
)

// Usecases - это агрегирующий интерфейс для всех use cases
type Usecases interface {
	ProcessMessage(body []byte) []byte
	Dispatch(rec models.CommandRecord) string
	Elements() models.ElementsSnapshot
	SelectBackend(address string) string
	BackendState() models.BackendState
}
