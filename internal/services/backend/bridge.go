package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/iwtcode/avGateway/internal/config"
	"github.com/iwtcode/avGateway/internal/domain/models"
	"github.com/iwtcode/avGateway/internal/interfaces"
	"github.com/iwtcode/avGateway/internal/middleware/logging"
)

// Bridge пересылает события взаимодействия пользователя на backend-сервер.
// Отправка синхронная с жестким таймаутом; сетевые сбои логируются и
// отбрасываются - события не ставятся в очередь и не повторяются.
//
// Тело ответа backend-сервера прогоняется через диспетчер команд: backend
// может вкладывать встречные команды прямо в ответ.
type Bridge struct {
	manager   *Manager
	processor interfaces.CommandProcessor
	producer  interfaces.KafkaService
	client    *http.Client
	logger    *logging.Logger
}

func NewBridge(cfg *config.AppConfig, manager *Manager, processor interfaces.CommandProcessor, producer interfaces.KafkaService, logger *logging.Logger) *Bridge {
	timeout := time.Duration(cfg.Backend.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Bridge{
		manager:   manager,
		processor: processor,
		producer:  producer,
		client:    &http.Client{Timeout: timeout},
		logger:    logger.WithPrefix("BRIDGE"),
	}
}

// Subscribe регистрирует обработчики на источнике событий панели.
func (b *Bridge) Subscribe(source interfaces.UIEventSource) {
	source.OnButton(b.HandleButton)
	source.OnSlider(b.HandleSlider)
}

// HandleButton обрабатывает действие пользователя с кнопкой
// (Pressed, Held, Repeated, Tapped).
func (b *Bridge) HandleButton(name, action string, state int) {
	b.forward("button", models.EventPayload{
		Name:   name,
		Action: action,
		Value:  strconv.Itoa(state),
	})
}

// HandleSlider обрабатывает изменение слайдера.
func (b *Bridge) HandleSlider(name, action string, value int) {
	b.forward("slider", models.EventPayload{
		Name:   name,
		Action: action,
		Value:  strconv.Itoa(value),
	})
}

func (b *Bridge) forward(domain string, payload models.EventPayload) {
	body, err := json.Marshal(payload)
	if err != nil {
		b.logger.Error("Failed to serialize event payload", "error", err)
		return
	}

	b.mirror(payload.Name, domain, body)

	state := b.manager.State()
	if !state.Available {
		b.logger.Debug("Backend unavailable, dropping event", "domain", domain, "name", payload.Name)
		return
	}

	url := fmt.Sprintf("%s/api/v1/%s", state.Address, domain)
	req, err := http.NewRequest(http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		b.logger.Error("Failed to build backend request", "url", url, "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		b.logger.Error("Backend request failed", "url", url, "error", err)
		return
	}
	defer resp.Body.Close()

	reply, err := io.ReadAll(resp.Body)
	if err != nil {
		b.logger.Error("Failed to read backend response", "url", url, "error", err)
		return
	}

	// Ответ backend-сервера - это встречная команда (или их отсутствие).
	// Ответ на нее никуда не отправляется: это внутренний вызов без клиента.
	if len(reply) > 0 {
		b.processor.ProcessMessage(reply)
	}
}

// mirror дублирует событие в Kafka для внешних потребителей телеметрии.
func (b *Bridge) mirror(key, domain string, body []byte) {
	if b.producer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := b.producer.Produce(ctx, []byte(domain+"/"+key), body); err != nil {
		b.logger.Debug("Failed to mirror event to Kafka", "error", err)
	}
}
