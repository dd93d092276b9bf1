package rpcserver

import (
	"io"
	"net"
	"testing"
	"time"

	"github.com/iwtcode/avGateway/internal/config"
	"github.com/iwtcode/avGateway/internal/domain/models"
	"github.com/iwtcode/avGateway/internal/middleware/logging"
	"github.com/stretchr/testify/require"
)

// echoUsecase возвращает тело команды, обрамленное маркером.
type echoUsecase struct{}

func (e *echoUsecase) ProcessMessage(body []byte) []byte {
	return append([]byte("echo:"), body...)
}

func (e *echoUsecase) Dispatch(rec models.CommandRecord) string { return "OK" }
func (e *echoUsecase) Elements() models.ElementsSnapshot        { return models.ElementsSnapshot{} }
func (e *echoUsecase) SelectBackend(address string) string      { return "OK" }
func (e *echoUsecase) BackendState() models.BackendState        { return models.BackendState{} }

func startServer(t *testing.T) *Server {
	t.Helper()
	cfg := &config.AppConfig{RPC: config.RPCConfig{Port: 0, Interface: "127.0.0.1"}}
	logger := logging.NewLogger(&logging.Config{Level: "ERROR"}, "TEST")

	srv := NewServer(cfg, &echoUsecase{}, logger)
	require.NoError(t, srv.Start())
	t.Cleanup(func() { _ = srv.Stop() })
	return srv
}

func dial(t *testing.T, srv *Server) net.Conn {
	t.Helper()
	conn, err := net.Dial("tcp", srv.Addr().String())
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestServerExtractsBodyFromBlob(t *testing.T) {
	srv := startServer(t)
	conn := dial(t, srv)

	request := "POST / HTTP/1.1\r\nHost: gateway\r\nContent-Type: application/json\r\n\r\n" +
		`{"type":"Button","object":"BtnPower","function":"SetState","arg1":"1"}`
	_, err := conn.Write([]byte(request))
	require.NoError(t, err)

	buf := make([]byte, 4096)
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	n, err := conn.Read(buf)
	require.NoError(t, err)
	require.Equal(t,
		`echo:{"type":"Button","object":"BtnPower","function":"SetState","arg1":"1"}`,
		string(buf[:n]))
}

func TestServerKeepsConnectionOpen(t *testing.T) {
	srv := startServer(t)
	conn := dial(t, srv)

	buf := make([]byte, 4096)
	for i := 0; i < 3; i++ {
		_, err := conn.Write([]byte("POST / HTTP/1.1\r\n\r\nping"))
		require.NoError(t, err)

		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		n, err := conn.Read(buf)
		require.NoError(t, err, "соединение должно переживать несколько запросов")
		require.Equal(t, "echo:ping", string(buf[:n]))
	}
}

func TestServerDisconnectsCurl(t *testing.T) {
	srv := startServer(t)
	conn := dial(t, srv)

	request := "POST / HTTP/1.1\r\nUser-Agent: curl/8.5.0\r\n\r\nping"
	_, err := conn.Write([]byte(request))
	require.NoError(t, err)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	data, err := io.ReadAll(conn)
	require.NoError(t, err, "после ответа curl-клиенту сервер должен закрыть соединение")
	require.Equal(t, "echo:ping", string(data))
}

func TestServerIgnoresBlobWithoutBody(t *testing.T) {
	srv := startServer(t)
	conn := dial(t, srv)

	// Блоб без разделителя тела не получает ответа, соединение живет.
	_, err := conn.Write([]byte("GET / HTTP/1.1\r\nHost: gateway\r\n"))
	require.NoError(t, err)

	_, err = conn.Write([]byte("POST / HTTP/1.1\r\n\r\nping"))
	require.NoError(t, err)

	buf := make([]byte, 4096)
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	n, err := conn.Read(buf)
	require.NoError(t, err)
	require.Equal(t, "echo:ping", string(buf[:n]))
}

func TestServerStartFailsOnBusyPort(t *testing.T) {
	srv := startServer(t)

	port := srv.Addr().(*net.TCPAddr).Port
	cfg := &config.AppConfig{RPC: config.RPCConfig{Port: port, Interface: "127.0.0.1"}}
	logger := logging.NewLogger(&logging.Config{Level: "ERROR"}, "TEST")

	second := NewServer(cfg, &echoUsecase{}, logger)
	err := second.Start()
	require.Error(t, err)
	require.Contains(t, err.Error(), "RPC port unavailable")
}
