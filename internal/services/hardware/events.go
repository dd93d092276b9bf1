package hardware

import "sync"

// EventSource рассылает события взаимодействия пользователя с панелью
// явно зарегистрированным обработчикам. Вызов обработчиков синхронный:
// эмуляция кооперативной событийной модели управляющего процессора.
type EventSource struct {
	mu             sync.Mutex
	buttonHandlers []func(name, action string, state int)
	sliderHandlers []func(name, action string, value int)
}

func NewEventSource() *EventSource {
	return &EventSource{}
}

func (s *EventSource) OnButton(handler func(name, action string, state int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buttonHandlers = append(s.buttonHandlers, handler)
}

func (s *EventSource) OnSlider(handler func(name, action string, value int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sliderHandlers = append(s.sliderHandlers, handler)
}

func (s *EventSource) emitButton(name, action string, state int) {
	s.mu.Lock()
	handlers := make([]func(string, string, int), len(s.buttonHandlers))
	copy(handlers, s.buttonHandlers)
	s.mu.Unlock()

	for _, h := range handlers {
		h(name, action, state)
	}
}

func (s *EventSource) emitSlider(name, action string, value int) {
	s.mu.Lock()
	handlers := make([]func(string, string, int), len(s.sliderHandlers))
	copy(handlers, s.sliderHandlers)
	s.mu.Unlock()

	for _, h := range handlers {
		h(name, action, value)
	}
}
