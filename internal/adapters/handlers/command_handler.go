package handlers

import (
	"net/http"
	"strings"

	"github.com/iwtcode/avGateway/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// DispatchCommand выполняет одну RPC-команду через HTTP.
// @Summary Выполнить команду
// @Description Принимает команду в формате RPC-протокола и возвращает результат диспетчера.
// @Tags Command
// @Accept json
// @Produce json
// @Param input body models.CommandRecord true "Команда {type, object, function, arg1..arg3}"
// @Success 200 {object} models.DispatchResponse "Результат выполнения"
// @Failure 400 {object} models.ErrorResponse "Неверный формат запроса"
// @Router /dispatch [post]
func (h *Handler) DispatchCommand(c *gin.Context) {
	var rec models.CommandRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		h.BadRequest(c, err, "Invalid request payload")
		return
	}

	h.logger.Info("Dispatching command", "type", rec.Type, "object", rec.Object, "function", rec.Function)

	result := string(h.usecase.ProcessMessage([]byte(rec.String())))

	status := "ok"
	if strings.HasPrefix(result, "Function Error:") || strings.HasPrefix(result, "Unknown action") {
		status = "error"
	}
	c.JSON(http.StatusOK, gin.H{"status": status, "result": result})
}

// GetElements возвращает снимок всех реестров объектов.
// @Summary Перечислить элементы
// @Description Возвращает списки ключей всех доменов и состояние выбора backend-сервера.
// @Tags Command
// @Produce json
// @Success 200 {object} models.ElementsSnapshot "Снимок реестров"
// @Router /elements [get]
func (h *Handler) GetElements(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.Elements())
}
