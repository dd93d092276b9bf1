package timesync

import (
	"net"
	"time"

	"github.com/iwtcode/avGateway/internal/config"
	"github.com/iwtcode/avGateway/internal/domain/models"
	"github.com/iwtcode/avGateway/internal/interfaces"
	"github.com/iwtcode/avGateway/internal/middleware/logging"
)

const probeTimeout = 2 * time.Second

// Apply проверяет доступность первичного, затем вторичного NTP-сервера и
// передает первый доступный всем процессорам. Сбой не фатален: система
// продолжает работу с локальными часами.
func Apply(cfg *config.AppConfig, reg interfaces.ObjectRegistry, logger *logging.Logger) {
	log := logger.WithPrefix("TIMESYNC")

	server := pickServer(cfg.NTP, log)
	if server == "" {
		return
	}

	for _, handle := range reg.Handles(models.DomainProcessor) {
		sync, ok := handle.(interfaces.TimeSyncable)
		if !ok {
			continue
		}
		if err := sync.SetAutomaticTime(server); err != nil {
			log.Error("Failed to set automatic time", "server", server, "error", err)
		}
	}
	log.Info("NTP server applied", "server", server)
}

func pickServer(ntp config.NTPConfig, log *logging.Logger) string {
	if ntp.Primary != "" && reachable(ntp.Primary) {
		log.Info("Using primary NTP server", "server", ntp.Primary)
		return ntp.Primary
	}
	if ntp.Secondary != "" && reachable(ntp.Secondary) {
		log.Warn("Primary NTP unreachable, using secondary", "server", ntp.Secondary)
		return ntp.Secondary
	}
	if ntp.Primary != "" || ntp.Secondary != "" {
		log.Error("NTP servers are unreachable")
	}
	return ""
}

// reachable - грубая проверка доступности узла: разрешение имени и
// открытие UDP-сокета до порта NTP.
func reachable(server string) bool {
	conn, err := net.DialTimeout("udp", net.JoinHostPort(server, "123"), probeTimeout)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}
