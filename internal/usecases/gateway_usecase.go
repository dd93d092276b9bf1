package usecases

import (
	"github.com/iwtcode/avGateway/internal/domain/models"
	"github.com/iwtcode/avGateway/internal/interfaces"
)

type Usecase struct {
	gatewaySvc interfaces.GatewayService
}

func NewUsecase(gatewaySvc interfaces.GatewayService) interfaces.Usecases {
	return &Usecase{
		gatewaySvc: gatewaySvc,
	}
}

func (u *Usecase) ProcessMessage(body []byte) []byte {
	return u.gatewaySvc.ProcessMessage(body)
}

func (u *Usecase) Dispatch(rec models.CommandRecord) string {
	return u.gatewaySvc.Dispatch(rec)
}

func (u *Usecase) Elements() models.ElementsSnapshot {
	return u.gatewaySvc.Elements()
}

func (u *Usecase) SelectBackend(address string) string {
	return u.gatewaySvc.SelectBackend(address)
}

func (u *Usecase) BackendState() models.BackendState {
	return u.gatewaySvc.BackendState()
}
