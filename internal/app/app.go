package app

import (
	"context"
	"net/http"
	"time"

	"github.com/iwtcode/avGateway/internal/adapters/handlers"
	"github.com/iwtcode/avGateway/internal/adapters/rpcserver"
	"github.com/iwtcode/avGateway/internal/config"
	"github.com/iwtcode/avGateway/internal/domain/models"
	"github.com/iwtcode/avGateway/internal/interfaces"
	"github.com/iwtcode/avGateway/internal/middleware/logging"
	"github.com/iwtcode/avGateway/internal/middleware/swagger"
	"github.com/iwtcode/avGateway/internal/services/backend"
	"github.com/iwtcode/avGateway/internal/services/dispatch"
	"github.com/iwtcode/avGateway/internal/services/gateway"
	"github.com/iwtcode/avGateway/internal/services/hardware"
	"github.com/iwtcode/avGateway/internal/services/kafka"
	"github.com/iwtcode/avGateway/internal/services/macro"
	"github.com/iwtcode/avGateway/internal/services/pagestate"
	"github.com/iwtcode/avGateway/internal/services/registry"
	"github.com/iwtcode/avGateway/internal/services/timesync"
	"github.com/iwtcode/avGateway/internal/usecases"

	"go.uber.org/fx"
)

// New создает новый экземпляр fx.App
func New() *fx.App {
	return fx.New(
		ConfigModule,
		LoggingModule,
		HardwareModule,
		RegistryModule,
		ProducerModule,
		BackendModule,
		ServiceModule,
		UsecaseModule,
		RpcServerModule,
		HttpServerModule,
		// Invoke-функции для запуска фоновых задач и хуков жизненного цикла
		fx.Invoke(InvokeTimeSync),
		fx.Invoke(InvokeEventBridge),
	)
}

// --- Модули FX ---

var ConfigModule = fx.Module("config_module",
	fx.Provide(config.LoadConfiguration),
)

func ProvideLogger(cfg *config.AppConfig) *logging.Logger {
	loggerCfg := &logging.Config{
		Enabled:    cfg.Logging.Enable,
		Level:      cfg.Logging.Level,
		LogsDir:    cfg.Logging.LogsDir,
		SavingDays: uint(cfg.Logging.SavingDays),
	}
	return logging.NewLogger(loggerCfg, "AVGatewayApp")
}

var LoggingModule = fx.Module("logging_module",
	fx.Provide(ProvideLogger),
)

var HardwareModule = fx.Module("hardware_module",
	fx.Provide(hardware.NewRig),
)

func asAny[T any](items []T) []any {
	out := make([]any, len(items))
	for i, it := range items {
		out[i] = it
	}
	return out
}

// ProvideRegistry наполняет реестр объектами из Rig и строит трекеры
// страниц, по одному на каждую зарегистрированную панель.
func ProvideRegistry(rig *hardware.Rig, logger *logging.Logger) (interfaces.ObjectRegistry, *pagestate.Set) {
	reg := registry.New()
	reg.Register(models.DomainProcessor, asAny(rig.Processors), logger)
	reg.Register(models.DomainUIDevice, asAny(rig.UIDevices), logger)
	reg.Register(models.DomainButton, asAny(rig.Buttons), logger)
	reg.Register(models.DomainKnob, asAny(rig.Knobs), logger)
	reg.Register(models.DomainLabel, asAny(rig.Labels), logger)
	reg.Register(models.DomainLevel, asAny(rig.Levels), logger)
	reg.Register(models.DomainSlider, asAny(rig.Sliders), logger)
	reg.Register(models.DomainRelay, asAny(rig.Relays), logger)
	reg.Register(models.DomainSerial, asAny(rig.Serials), logger)
	reg.Register(models.DomainEthernet, asAny(rig.Ethernets), logger)

	trackers := pagestate.NewSet(reg.Keys(models.DomainUIDevice))
	reg.Register(models.DomainPageState, asAny(trackers.All()), logger)

	return reg, trackers
}

var RegistryModule = fx.Module("registry_module",
	fx.Provide(ProvideRegistry),
)

var ProducerModule = fx.Module("producer_module",
	fx.Provide(kafka.NewKafkaProducer),
)

var BackendModule = fx.Module("backend_module",
	fx.Provide(
		backend.NewManager,
		ProvideBridge,
	),
)

func ProvideBridge(cfg *config.AppConfig, manager *backend.Manager, svc interfaces.GatewayService, producer interfaces.KafkaService, logger *logging.Logger) *backend.Bridge {
	return backend.NewBridge(cfg, manager, svc, producer, logger)
}

func ProvideGatewayService(dispatcher *dispatch.Dispatcher, macros *macro.Runner, logger *logging.Logger) interfaces.GatewayService {
	return gateway.NewService(dispatcher, macros, logger)
}

var ServiceModule = fx.Module("service_module",
	fx.Provide(
		dispatch.New,
		macro.NewRunner,
		ProvideGatewayService,
	),
)

var UsecaseModule = fx.Module("usecases_module",
	fx.Provide(usecases.NewUsecases),
)

var RpcServerModule = fx.Module("rpc_server_module",
	fx.Provide(rpcserver.NewServer),
	fx.Invoke(InvokeRpcServer),
)

func NewSwaggerConfig() *swagger.Config {
	return &swagger.Config{
		Enabled: true,
		Path:    "/swagger",
	}
}

var HttpServerModule = fx.Module("http_server_module",
	fx.Provide(
		NewSwaggerConfig,
		handlers.NewHandler,
		handlers.ProvideRouter,
	),
	fx.Invoke(InvokeHttpServer),
)

// InvokeTimeSync выставляет NTP-сервер на процессорах при старте. Неудача
// не фатальна: шлюз продолжает работу без синхронизации времени.
func InvokeTimeSync(lc fx.Lifecycle, cfg *config.AppConfig, reg interfaces.ObjectRegistry, logger *logging.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			timesync.Apply(cfg, reg, logger)
			return nil
		},
	})
}

// InvokeEventBridge подписывает мост на события GUI и выполняет стартовый
// выбор backend-сервера из конфигурации.
func InvokeEventBridge(lc fx.Lifecycle, bridge *backend.Bridge, rig *hardware.Rig, svc interfaces.GatewayService, logger *logging.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			bridge.Subscribe(rig.Events)
			logger.Info("Selecting backend server on startup...")
			result := svc.SelectBackend("")
			logger.Info("Startup backend selection finished", "result", result)
			return nil
		},
	})
}

// InvokeRpcServer запускает TCP RPC-сервер. Невозможность занять порт
// останавливает запуск приложения.
func InvokeRpcServer(lc fx.Lifecycle, server *rpcserver.Server, logger *logging.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := server.Start(); err != nil {
				logger.Error("FATAL: Failed to start RPC server", "error", err)
				return err // Это остановит запуск приложения
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping RPC server...")
			return server.Stop()
		},
	})
}

// InvokeHttpServer запускает HTTP-сервер.
func InvokeHttpServer(lc fx.Lifecycle, cfg *config.AppConfig, h http.Handler, logger *logging.Logger) {
	serverAddr := ":" + cfg.HTTPPort
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      h,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("HTTP Server is starting", "address", serverAddr)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("Failed to start server", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server...")
			return server.Shutdown(ctx)
		},
	})
}
