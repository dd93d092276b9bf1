package handlers

import (
	"net/http"

	"github.com/iwtcode/avGateway/internal/config"
	"github.com/iwtcode/avGateway/internal/interfaces"
	"github.com/iwtcode/avGateway/internal/middleware/logging"
	"github.com/iwtcode/avGateway/internal/middleware/swagger"

	"github.com/gin-gonic/gin"
)

// Handler - структура для обработчиков HTTP-запросов
type Handler struct {
	usecase interfaces.Usecases
	logger  *logging.Logger
}

// NewHandler создает новый экземпляр Handler
func NewHandler(usecase interfaces.Usecases, logger *logging.Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger.WithPrefix("HANDLER"),
	}
}

// ProvideRouter настраивает и возвращает HTTP-роутер
func ProvideRouter(h *Handler, cfg *config.AppConfig, swagCfg *swagger.Config) http.Handler {
	gin.SetMode(cfg.GinMode)

	router := gin.Default()

	// Swagger
	swagger.Setup(router, swagCfg)

	// Logger Middleware
	router.Use(LoggingMiddleware(h.logger))

	// WebSocket-транспорт RPC
	router.GET("/ws", h.CommandSocket)

	// Группа API v1
	v1 := router.Group("/api/v1")
	{
		v1.POST("/dispatch", h.DispatchCommand)
		v1.GET("/elements", h.GetElements)

		backend := v1.Group("/backend")
		{
			backend.GET("", h.GetBackendState)
			backend.POST("", h.SelectBackend)
		}
	}

	return router
}
