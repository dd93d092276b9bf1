package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var wsUpgrader = &websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// CommandSocket - альтернативный транспорт RPC поверх WebSocket:
// каждый текстовый фрейм содержит одну JSON-команду, ответ пишется
// обратным фреймом в тот же сокет.
// @Summary RPC поверх WebSocket
// @Description Апгрейд соединения; каждый текстовый фрейм - одна команда RPC-протокола.
// @Tags Command
// @Router /ws [get]
func (h *Handler) CommandSocket(c *gin.Context) {
	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("WebSocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	h.logger.Info("WebSocket client connected", "remote", conn.RemoteAddr().String())

	for {
		msgType, message, err := conn.ReadMessage()
		if err != nil {
			h.logger.Debug("WebSocket closed", "remote", conn.RemoteAddr().String(), "error", err)
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		response := h.usecase.ProcessMessage(message)
		if err := conn.WriteMessage(websocket.TextMessage, response); err != nil {
			h.logger.Error("WebSocket write failed", "error", err)
			return
		}
	}
}
