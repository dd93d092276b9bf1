package timesync

import (
	"testing"

	"github.com/iwtcode/avGateway/internal/config"
	"github.com/iwtcode/avGateway/internal/domain/models"
	"github.com/iwtcode/avGateway/internal/middleware/logging"
	"github.com/iwtcode/avGateway/internal/services/hardware"
	"github.com/iwtcode/avGateway/internal/services/registry"
	"github.com/stretchr/testify/require"
)

func TestApplyWithoutServersIsNoop(t *testing.T) {
	logger := logging.NewLogger(&logging.Config{Level: "ERROR"}, "TEST")
	proc := hardware.NewSimProcessor("CP1")

	reg := registry.New()
	reg.Register(models.DomainProcessor, []any{proc}, logger)

	Apply(&config.AppConfig{}, reg, logger)
	require.Empty(t, proc.NTPServer(), "без настроенных серверов время не трогается")
}

func TestApplySetsReachableServer(t *testing.T) {
	logger := logging.NewLogger(&logging.Config{Level: "ERROR"}, "TEST")
	proc := hardware.NewSimProcessor("CP1")

	reg := registry.New()
	reg.Register(models.DomainProcessor, []any{proc}, logger)

	// UDP-проверка до localhost проходит без слушателя: достаточно
	// разрешения адреса и открытия сокета.
	Apply(&config.AppConfig{NTP: config.NTPConfig{Primary: "127.0.0.1"}}, reg, logger)
	require.Equal(t, "127.0.0.1", proc.NTPServer())
}
