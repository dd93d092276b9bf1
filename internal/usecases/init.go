package usecases

import "github.com/iwtcode/avGateway/internal/interfaces"

// UseCases - агрегатор всех use case интерфейсов
type UseCases struct {
	interfaces.Usecases
}

// NewUsecases - конструктор для UseCases
func NewUsecases(
	gatewaySvc interfaces.GatewayService,
) interfaces.Usecases {
	return NewUsecase(gatewaySvc)
}
