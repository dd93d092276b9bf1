package hardware

import (
	"fmt"
	"strings"
	"sync"
)

// Симуляторы устройств. Вендорский SDK управляющего процессора - внешний
// коллаборатор; шлюз обращается к нему только через интерфейсы-эффекторы
// из internal/interfaces. Симуляторы реализуют эти интерфейсы, фиксируют
// вызовы и служат стендом как для разработки, так и для тестов.

// SimProcessor - управляющий процессор.
type SimProcessor struct {
	mu            sync.Mutex
	alias         string
	partNumber    string
	rebooted      bool
	executiveMode int
	ntpServer     string
}

func NewSimProcessor(alias string) *SimProcessor {
	return &SimProcessor{alias: alias, partNumber: "60-1418-01"}
}

func (p *SimProcessor) DeviceAlias() string { return p.alias }

func (p *SimProcessor) Reboot() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rebooted = true
	return nil
}

func (p *SimProcessor) SetExecutiveMode(mode int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.executiveMode = mode
	return nil
}

func (p *SimProcessor) SetAutomaticTime(server string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ntpServer = server
	return nil
}

func (p *SimProcessor) Rebooted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rebooted
}

func (p *SimProcessor) NTPServer() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ntpServer
}

func (p *SimProcessor) Property(name string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	switch name {
	case "DeviceAlias":
		return p.alias, true
	case "PartNumber":
		return p.partNumber, true
	case "ExecutiveMode":
		return fmt.Sprintf("%d", p.executiveMode), true
	}
	return "", false
}

// SimPanel - сенсорная панель (UI device).
type SimPanel struct {
	mu          sync.Mutex
	alias       string
	currentPage string
	popups      []string
	volumes     map[string]int
	sounds      []string
	ledStates   map[int]string
	rebooted    bool
}

func NewSimPanel(alias string) *SimPanel {
	return &SimPanel{
		alias:     alias,
		volumes:   map[string]int{"Master": 50, "Click": 30},
		ledStates: map[int]string{},
	}
}

func (p *SimPanel) DeviceAlias() string { return p.alias }

func (p *SimPanel) ShowPage(page string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.currentPage = page
	return nil
}

func (p *SimPanel) ShowPopup(popup string, duration int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.popups = append(p.popups, popup)
	return nil
}

func (p *SimPanel) HideAllPopups() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.popups = nil
	return nil
}

func (p *SimPanel) GetVolume(name string) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	v, ok := p.volumes[name]
	if !ok {
		return 0, fmt.Errorf("unknown volume control: %s", name)
	}
	return v, nil
}

func (p *SimPanel) PlaySound(filename string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sounds = append(p.sounds, filename)
	return nil
}

func (p *SimPanel) SetLEDBlinking(id int, rate string, states []string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ledStates[id] = "Blinking:" + rate + ":" + strings.Join(states, ",")
	return nil
}

func (p *SimPanel) SetLEDState(id int, state string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ledStates[id] = state
	return nil
}

func (p *SimPanel) Reboot() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rebooted = true
	return nil
}

func (p *SimPanel) SetExecutiveMode(mode int) error { return nil }

func (p *SimPanel) CurrentPage() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.currentPage
}

func (p *SimPanel) VisiblePopups() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.popups))
	copy(out, p.popups)
	return out
}

func (p *SimPanel) PlayedSounds() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.sounds))
	copy(out, p.sounds)
	return out
}

func (p *SimPanel) LEDState(id int) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ledStates[id]
}

func (p *SimPanel) Property(name string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	switch name {
	case "DeviceAlias":
		return p.alias, true
	case "ModelName":
		return "TLP Pro 1025T", true
	}
	return "", false
}

// SimButton - кнопка панели. Press/Hold и прочие действия эмулируют
// физическое взаимодействие и рассылаются через EventSource.
type SimButton struct {
	mu       sync.Mutex
	name     string
	state    int
	enabled  bool
	visible  bool
	text     string
	blinking string
	events   *EventSource
}

func NewSimButton(name string, events *EventSource) *SimButton {
	return &SimButton{name: name, enabled: true, visible: true, events: events}
}

func (b *SimButton) Name() string { return b.name }

func (b *SimButton) SetState(state int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state = state
	return nil
}

func (b *SimButton) SetText(text string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.text = text
	return nil
}

func (b *SimButton) SetVisible(visible bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.visible = visible
	return nil
}

func (b *SimButton) SetEnable(enabled bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.enabled = enabled
	return nil
}

func (b *SimButton) SetBlinking(rate string, states []int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	parts := make([]string, len(states))
	for i, s := range states {
		parts[i] = fmt.Sprintf("%d", s)
	}
	b.blinking = rate + ":" + strings.Join(parts, ",")
	return nil
}

// Interact эмулирует действие пользователя (Pressed, Held, Repeated, Tapped).
func (b *SimButton) Interact(action string) {
	b.mu.Lock()
	state := b.state
	events := b.events
	b.mu.Unlock()
	if events != nil {
		events.emitButton(b.name, action, state)
	}
}

func (b *SimButton) State() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *SimButton) Text() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.text
}

func (b *SimButton) Visible() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.visible
}

func (b *SimButton) Enabled() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.enabled
}

func (b *SimButton) Blinking() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.blinking
}

func (b *SimButton) Property(name string) (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch name {
	case "Name":
		return b.name, true
	case "State":
		return fmt.Sprintf("%d", b.state), true
	case "Visible":
		return fmt.Sprintf("%t", b.visible), true
	case "Enabled":
		return fmt.Sprintf("%t", b.enabled), true
	}
	return "", false
}

// SimKnob - поворотная ручка.
type SimKnob struct {
	mu   sync.Mutex
	name string
	turn int
}

func NewSimKnob(name string) *SimKnob {
	return &SimKnob{name: name}
}

func (k *SimKnob) Name() string { return k.name }

func (k *SimKnob) Property(name string) (string, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()
	switch name {
	case "Name":
		return k.name, true
	case "Turn":
		return fmt.Sprintf("%d", k.turn), true
	}
	return "", false
}

// SimLabel - текстовая надпись.
type SimLabel struct {
	mu      sync.Mutex
	name    string
	text    string
	visible bool
}

func NewSimLabel(name string) *SimLabel {
	return &SimLabel{name: name, visible: true}
}

func (l *SimLabel) Name() string { return l.name }

func (l *SimLabel) SetText(text string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.text = text
	return nil
}

func (l *SimLabel) SetVisible(visible bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.visible = visible
	return nil
}

func (l *SimLabel) Text() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.text
}

func (l *SimLabel) Property(name string) (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	switch name {
	case "Name":
		return l.name, true
	case "Text":
		return l.text, true
	case "Visible":
		return fmt.Sprintf("%t", l.visible), true
	}
	return "", false
}

// SimLevel - индикатор уровня.
type SimLevel struct {
	mu             sync.Mutex
	name           string
	level          int
	min, max, step int
	visible        bool
}

func NewSimLevel(name string) *SimLevel {
	return &SimLevel{name: name, min: 0, max: 100, step: 1, visible: true}
}

func (l *SimLevel) Name() string { return l.name }

func (l *SimLevel) SetLevel(level int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.min {
		level = l.min
	}
	if level > l.max {
		level = l.max
	}
	l.level = level
	return nil
}

func (l *SimLevel) SetRange(min, max, step int) error {
	if min >= max {
		return fmt.Errorf("invalid range: min %d >= max %d", min, max)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.min, l.max, l.step = min, max, step
	return nil
}

func (l *SimLevel) Inc() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.level+l.step <= l.max {
		l.level += l.step
	}
	return nil
}

func (l *SimLevel) Dec() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.level-l.step >= l.min {
		l.level -= l.step
	}
	return nil
}

func (l *SimLevel) SetVisible(visible bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.visible = visible
	return nil
}

func (l *SimLevel) Level() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

func (l *SimLevel) Property(name string) (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	switch name {
	case "Name":
		return l.name, true
	case "Level":
		return fmt.Sprintf("%d", l.level), true
	case "Min":
		return fmt.Sprintf("%d", l.min), true
	case "Max":
		return fmt.Sprintf("%d", l.max), true
	}
	return "", false
}

// SimSlider - слайдер. Move эмулирует перетаскивание пользователем.
type SimSlider struct {
	mu      sync.Mutex
	name    string
	fill    int
	enabled bool
	visible bool
	events  *EventSource
}

func NewSimSlider(name string, events *EventSource) *SimSlider {
	return &SimSlider{name: name, enabled: true, visible: true, events: events}
}

func (s *SimSlider) Name() string { return s.name }

func (s *SimSlider) SetFill(percent int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fill = percent
	return nil
}

func (s *SimSlider) SetVisible(visible bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visible = visible
	return nil
}

func (s *SimSlider) SetEnable(enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = enabled
	return nil
}

// Move эмулирует перетаскивание слайдера пользователем.
func (s *SimSlider) Move(value int) {
	s.mu.Lock()
	s.fill = value
	events := s.events
	s.mu.Unlock()
	if events != nil {
		events.emitSlider(s.name, "Changed", value)
	}
}

func (s *SimSlider) Fill() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fill
}

func (s *SimSlider) Property(name string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch name {
	case "Name":
		return s.name, true
	case "Fill":
		return fmt.Sprintf("%d", s.fill), true
	}
	return "", false
}

// SimRelay - реле процессора. Идентифицируется номером порта ("RLY1").
type SimRelay struct {
	mu     sync.Mutex
	host   string
	port   string
	state  int
	pulses []float64
}

func NewSimRelay(host, port string) *SimRelay {
	return &SimRelay{host: host, port: port}
}

func (r *SimRelay) PortID() string { return r.port }

func (r *SimRelay) SetState(state int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = state
	return nil
}

func (r *SimRelay) Pulse(seconds float64) error {
	if seconds <= 0 {
		return fmt.Errorf("pulse duration must be positive, got %v", seconds)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pulses = append(r.pulses, seconds)
	return nil
}

func (r *SimRelay) Toggle() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state == 0 {
		r.state = 1
	} else {
		r.state = 0
	}
	return nil
}

func (r *SimRelay) State() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *SimRelay) Pulses() []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]float64, len(r.pulses))
	copy(out, r.pulses)
	return out
}

func (r *SimRelay) Property(name string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch name {
	case "Host":
		return r.host, true
	case "Port":
		return r.port, true
	case "State":
		return fmt.Sprintf("%d", r.state), true
	}
	return "", false
}

// SimSerial - последовательный порт процессора.
type SimSerial struct {
	mu        sync.Mutex
	host      string
	port      string
	baud      int
	mode      string
	sent      []string
	reply     string // ответ, возвращаемый SendAndWait
	keepalive string
}

func NewSimSerial(host, port string, baud int, mode string) *SimSerial {
	return &SimSerial{host: host, port: port, baud: baud, mode: mode, reply: "ACK"}
}

func (s *SimSerial) PortID() string { return s.port }

func (s *SimSerial) Send(data string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, data)
	return nil
}

func (s *SimSerial) SendAndWait(data string, timeout float64) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, data)
	return s.reply, nil
}

func (s *SimSerial) StartKeepAlive(interval float64, data string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keepalive = data
	return nil
}

func (s *SimSerial) StopKeepAlive() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keepalive = ""
	return nil
}

// SetReply задает ответ, который будет возвращен следующим SendAndWait.
func (s *SimSerial) SetReply(reply string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reply = reply
}

func (s *SimSerial) Sent() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.sent))
	copy(out, s.sent)
	return out
}

func (s *SimSerial) Property(name string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch name {
	case "Host":
		return s.host, true
	case "Port":
		return s.port, true
	case "Baud":
		return fmt.Sprintf("%d", s.baud), true
	case "Mode":
		return s.mode, true
	}
	return "", false
}

// SimEthernet - сетевой клиент (TCP/UDP/SSH).
type SimEthernet struct {
	mu        sync.Mutex
	hostname  string
	ipPort    int
	protocol  string
	connected bool
	sent      []string
	reply     string
	keepalive string
}

func NewSimEthernet(hostname string, ipPort int, protocol string) *SimEthernet {
	return &SimEthernet{hostname: hostname, ipPort: ipPort, protocol: protocol, reply: "ACK"}
}

func (e *SimEthernet) Hostname() string { return e.hostname }

func (e *SimEthernet) Connect(timeout float64) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.connected = true
	return "Connected", nil
}

func (e *SimEthernet) Disconnect() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.connected = false
	return nil
}

func (e *SimEthernet) Send(data string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.connected {
		return fmt.Errorf("%s is not connected", e.hostname)
	}
	e.sent = append(e.sent, data)
	return nil
}

func (e *SimEthernet) SendAndWait(data string, timeout float64) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.connected {
		return "", fmt.Errorf("%s is not connected", e.hostname)
	}
	e.sent = append(e.sent, data)
	return e.reply, nil
}

func (e *SimEthernet) StartKeepAlive(interval float64, data string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.keepalive = data
	return nil
}

func (e *SimEthernet) StopKeepAlive() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.keepalive = ""
	return nil
}

func (e *SimEthernet) Connected() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.connected
}

func (e *SimEthernet) Sent() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, len(e.sent))
	copy(out, e.sent)
	return out
}

func (e *SimEthernet) Property(name string) (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch name {
	case "Hostname":
		return e.hostname, true
	case "IPPort":
		return fmt.Sprintf("%d", e.ipPort), true
	case "Protocol":
		return e.protocol, true
	}
	return "", false
}
