package interfaces

import (
	"github.com/iwtcode/avGateway/internal/domain/models"
)

// GatewayService - агрегирующий интерфейс для всей бизнес-логики шлюза.
type GatewayService interface {
	CommandProcessor
	MacroRunner
}

// CommandProcessor обрабатывает входящие RPC-сообщения.
type CommandProcessor interface {
	// ProcessMessage разбирает JSON-тело команды, маршрутизирует между
	// доменными командами и макросами и возвращает байты ответа.
	// Ошибки протокола не возвращаются как error - они уже сериализованы
	// в тело ответа.
	ProcessMessage(body []byte) []byte

	// Dispatch выполняет одну доменную команду.
	Dispatch(rec models.CommandRecord) string
}

// MacroRunner выполняет многошаговые команды, не укладывающиеся в схему
// "домен/объект/функция".
type MacroRunner interface {
	Elements() models.ElementsSnapshot
	SelectBackend(address string) string
	BackendState() models.BackendState
}

// ObjectRegistry - построенные при старте отображения строковых ключей
// на живые объекты оборудования, сгруппированные по доменам.
type ObjectRegistry interface {
	Lookup(domain models.Domain, key string) (any, error)
	Keys(domain models.Domain) []string
	Handles(domain models.Domain) []any
}

// UIEventSource - источник событий взаимодействия пользователя с панелью.
// Обработчики регистрируются явно и вызываются синхронно.
type UIEventSource interface {
	OnButton(handler func(name, action string, state int))
	OnSlider(handler func(name, action string, value int))
}
