package dispatch

import (
	"errors"
	"fmt"

	"github.com/iwtcode/avGateway/internal/domain/models"
	"github.com/iwtcode/avGateway/internal/interfaces"
	"github.com/iwtcode/avGateway/internal/middleware/logging"
	"github.com/iwtcode/avGateway/internal/services/pagestate"
)

// Ошибки разрешения команды.
var (
	ErrUnknownDomain   = errors.New("unknown domain")
	ErrUnknownFunction = errors.New("unknown function")
)

// Dispatcher разрешает входящую команду {домен, объект, функция, аргументы}
// в конкретную операцию над объектом оборудования и нормализует результат.
//
// Любая ошибка на пути разрешения или вызова перехватывается на границе
// диспетчера и превращается в протокольную строку ошибки - она отправляется
// клиенту как обычный ответ и никогда не роняет обработку.
type Dispatcher struct {
	registry interfaces.ObjectRegistry
	trackers *pagestate.Set
	logger   *logging.Logger
}

func New(reg interfaces.ObjectRegistry, trackers *pagestate.Set, logger *logging.Logger) *Dispatcher {
	return &Dispatcher{
		registry: reg,
		trackers: trackers,
		logger:   logger.WithPrefix("DISPATCH"),
	}
}

// Dispatch выполняет одну команду и возвращает ответ для клиента.
// Операция без результата нормализуется в "OK".
func (d *Dispatcher) Dispatch(rec models.CommandRecord) string {
	result, err := d.execute(rec)
	if err != nil {
		resp := fmt.Sprintf("Function Error: %v | with data %s", err, rec)
		d.logger.Error("Dispatch failed", "error", err, "command", rec.String())
		return resp
	}
	if result == "" {
		return "OK"
	}
	return result
}

// execute разрешает домен, объект и функцию. В отличие от исходной
// системы, неизвестный объект отклоняется уже здесь, а не на границе
// вызова эффектора.
func (d *Dispatcher) execute(rec models.CommandRecord) (string, error) {
	if !models.IsKnownDomain(rec.Type) {
		return "", fmt.Errorf("%w: %s", ErrUnknownDomain, rec.Type)
	}

	op, ok := operations[rec.Function]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownFunction, rec.Function)
	}

	handle, err := d.registry.Lookup(models.Domain(rec.Type), rec.Object)
	if err != nil {
		return "", err
	}

	args := rec.Args()
	if len(args) < op.minArgs {
		return "", fmt.Errorf("%s expects at least %d argument(s), got %d", rec.Function, op.minArgs, len(args))
	}
	if len(args) > op.maxArgs {
		return "", fmt.Errorf("%s expects at most %d argument(s), got %d", rec.Function, op.maxArgs, len(args))
	}

	return op.run(d, rec, handle, args)
}
