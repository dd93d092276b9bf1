package rpcserver

import (
	"fmt"
	"net"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/iwtcode/avGateway/internal/config"
	"github.com/iwtcode/avGateway/internal/interfaces"
	"github.com/iwtcode/avGateway/internal/middleware/logging"
)

// Разделитель заголовков и тела во входящем HTTP-образном блобе.
const headerSeparator = "\r\n\r\n"

const readBufferSize = 8192

// Server - текстовый RPC-сервер для backend. Входящий запрос имеет форму
// HTTP-запроса, но используется только тело после первой пустой строки:
// оно разбирается как JSON-команда, ответ пишется сырыми байтами в то же
// соединение. Слоя статус-кодов нет.
type Server struct {
	cfg      config.RPCConfig
	usecase  interfaces.Usecases
	logger   *logging.Logger
	listener net.Listener

	mu     sync.Mutex
	closed bool
}

func NewServer(cfg *config.AppConfig, usecase interfaces.Usecases, logger *logging.Logger) *Server {
	return &Server{
		cfg:     cfg.RPC,
		usecase: usecase,
		logger:  logger.WithPrefix("RPC"),
	}
}

// Start занимает слушающий порт. Ошибка привязки фатальна: без RPC-сервера
// шлюз бесполезен, и запуск приложения прерывается.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Interface, s.cfg.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("RPC port unavailable: %w", err)
	}
	s.listener = listener
	s.logger.Info("RPC server is listening", "address", addr)

	go s.acceptLoop()
	return nil
}

// Stop закрывает слушающий сокет.
func (s *Server) Stop() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	if s.listener != nil {
		return s.listener.Close()
	}
	return nil
}

// Addr возвращает фактический адрес слушающего сокета.
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

func (s *Server) acceptLoop() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			s.mu.Lock()
			closed := s.closed
			s.mu.Unlock()
			if closed {
				return
			}
			s.logger.Error("Accept failed", "error", err)
			continue
		}
		go s.handleConnection(conn)
	}
}

// handleConnection обрабатывает запросы одного клиента. Каждый Read - один
// запрос; команды внутри одного соединения обрабатываются последовательно.
func (s *Server) handleConnection(conn net.Conn) {
	connID := uuid.New().String()[:8]
	s.logger.Debug("Client connected", "conn", connID, "remote", conn.RemoteAddr().String())

	defer func() {
		_ = conn.Close()
		s.logger.Info("Client disconnected", "conn", connID, "remote", conn.RemoteAddr().String())
	}()

	buf := make([]byte, readBufferSize)
	for {
		n, err := conn.Read(buf)
		if err != nil {
			return
		}
		raw := string(buf[:n])

		body := rawBody(raw)
		if body == "" {
			s.logger.Error("No data received", "conn", connID)
			continue
		}

		response := s.usecase.ProcessMessage([]byte(body))
		if _, err := conn.Write(response); err != nil {
			s.logger.Error("Failed to write response", "conn", connID, "error", err)
			return
		}

		// curl ожидает разрыв соединения после ответа.
		if strings.Contains(raw, "User-Agent: curl") {
			return
		}
	}
}

// rawBody извлекает тело из HTTP-образного блоба: все после первой пустой
// строки. Блоб без разделителя тела не имеет.
func rawBody(raw string) string {
	_, body, found := strings.Cut(raw, headerSeparator)
	if !found {
		return ""
	}
	return strings.TrimSpace(body)
}
