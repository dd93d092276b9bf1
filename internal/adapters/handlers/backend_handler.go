package handlers

import (
	"net/http"

	"github.com/iwtcode/avGateway/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// SelectBackend запускает макрос выбора backend-сервера.
// @Summary Выбрать backend-сервер
// @Description Проверяет указанный адрес либо перебирает серверы из конфигурации (primary, затем secondary).
// @Tags Backend
// @Accept json
// @Produce json
// @Param input body models.BackendRequest true "Адрес backend-сервера; пустой = перебор из конфигурации"
// @Success 200 {object} models.BackendResponse "Результат выбора"
// @Failure 400 {object} models.ErrorResponse "Неверный формат запроса"
// @Router /backend [post]
func (h *Handler) SelectBackend(c *gin.Context) {
	var req models.BackendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err, "Invalid request payload")
		return
	}

	h.logger.Info("Backend selection requested", "address", req.Address)

	result := h.usecase.SelectBackend(req.Address)
	status := "ok"
	if result != "OK" {
		status = "error"
	}
	c.JSON(http.StatusOK, gin.H{
		"status": status,
		"result": result,
		"state":  h.usecase.BackendState(),
	})
}

// GetBackendState возвращает текущее состояние выбора backend-сервера.
// @Summary Состояние backend-сервера
// @Description Возвращает доступность, роль и адрес активного backend-сервера.
// @Tags Backend
// @Produce json
// @Success 200 {object} models.BackendState "Текущее состояние"
// @Router /backend [get]
func (h *Handler) GetBackendState(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.BackendState())
}
