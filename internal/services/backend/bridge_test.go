package backend

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/iwtcode/avGateway/internal/config"
	"github.com/iwtcode/avGateway/internal/domain/models"
	"github.com/stretchr/testify/require"
)

// recordingProcessor фиксирует сообщения, прогнанные через обратную связь.
type recordingProcessor struct {
	mu       sync.Mutex
	messages []string
}

func (p *recordingProcessor) ProcessMessage(body []byte) []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, string(body))
	return []byte("OK")
}

func (p *recordingProcessor) Dispatch(rec models.CommandRecord) string { return "OK" }

func (p *recordingProcessor) Messages() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.messages))
	copy(out, p.messages)
	return out
}

// backendServer эмулирует backend: отвечает на проверку здоровья и
// принимает события. reply возвращается телом ответа на PUT.
type backendServer struct {
	srv *httptest.Server

	mu    sync.Mutex
	puts  []putRequest
	reply string
}

type putRequest struct {
	path string
	body string
}

func newBackendServer(t *testing.T, reply string) *backendServer {
	t.Helper()
	b := &backendServer{reply: reply}
	b.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v1/test" {
			_, _ = w.Write([]byte("OK"))
			return
		}
		if r.Method == http.MethodPut {
			body, _ := io.ReadAll(r.Body)
			b.mu.Lock()
			b.puts = append(b.puts, putRequest{path: r.URL.Path, body: string(body)})
			reply := b.reply
			b.mu.Unlock()
			_, _ = w.Write([]byte(reply))
			return
		}
		http.NotFound(w, r)
	}))
	t.Cleanup(b.srv.Close)
	return b
}

func (b *backendServer) Puts() []putRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]putRequest, len(b.puts))
	copy(out, b.puts)
	return out
}

func setupBridge(t *testing.T, backend *backendServer) (*Bridge, *recordingProcessor) {
	t.Helper()
	cfg := &config.AppConfig{Backend: config.BackendConfig{TimeoutSeconds: 2}}
	m, _, _ := newManager(t, cfg)
	require.Equal(t, "OK", m.Select(backend.srv.URL))

	proc := &recordingProcessor{}
	return NewBridge(cfg, m, proc, nil, testLogger()), proc
}

func TestBridgeForwardsButtonEvent(t *testing.T) {
	backend := newBackendServer(t, "")
	bridge, _ := setupBridge(t, backend)

	bridge.HandleButton("BtnPower", "Pressed", 1)

	puts := backend.Puts()
	require.Len(t, puts, 1)
	require.Equal(t, "/api/v1/button", puts[0].path)

	var payload models.EventPayload
	require.NoError(t, json.Unmarshal([]byte(puts[0].body), &payload))
	require.Equal(t, "BtnPower", payload.Name)
	require.Equal(t, "Pressed", payload.Action)
	require.Equal(t, "1", payload.Value)
}

func TestBridgeForwardsSliderEvent(t *testing.T) {
	backend := newBackendServer(t, "")
	bridge, _ := setupBridge(t, backend)

	bridge.HandleSlider("SldVolume", "Changed", 42)

	puts := backend.Puts()
	require.Len(t, puts, 1)
	require.Equal(t, "/api/v1/slider", puts[0].path)

	var payload models.EventPayload
	require.NoError(t, json.Unmarshal([]byte(puts[0].body), &payload))
	require.Equal(t, "SldVolume", payload.Name)
	require.Equal(t, "42", payload.Value)
}

func TestBridgeFeedsResponseBackToProcessor(t *testing.T) {
	// Backend вкладывает встречную команду в тело ответа.
	counter := `{"type":"Button","object":"BtnPower","function":"SetState","arg1":"1"}`
	backend := newBackendServer(t, counter)
	bridge, proc := setupBridge(t, backend)

	bridge.HandleButton("BtnPower", "Pressed", 1)

	messages := proc.Messages()
	require.Len(t, messages, 1)
	require.JSONEq(t, counter, messages[0])
}

func TestBridgeDropsEventWhenBackendUnavailable(t *testing.T) {
	backend := newBackendServer(t, "")
	cfg := &config.AppConfig{Backend: config.BackendConfig{TimeoutSeconds: 2}}
	m, _, _ := newManager(t, cfg)
	// Backend не выбран: состояние недоступно.

	proc := &recordingProcessor{}
	bridge := NewBridge(cfg, m, proc, nil, testLogger())

	bridge.HandleButton("BtnPower", "Pressed", 1)

	require.Empty(t, backend.Puts())
	require.Empty(t, proc.Messages())
}
