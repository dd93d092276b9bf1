package pagestate

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// SDK управляющего процессора не позволяет ни запросить список страниц и
// попапов, ни узнать, что сейчас на экране. Трекер восстанавливает это
// состояние, записывая все вызовы навигации и накапливая множество
// встречавшихся значений.

const (
	// DefaultUnknown - начальное значение страницы и попапа до первой навигации.
	DefaultUnknown = "unknown"
	// PopupNone - значение попапа после скрытия или истечения срока показа.
	PopupNone = "none"
)

// Tracker отслеживает состояние страниц и попапов одной сенсорной панели.
type Tracker struct {
	mu     sync.Mutex
	name   string
	device string

	currentPage  string
	currentPopup string

	// История хранится с дедупликацией в порядке первого появления.
	pagesSeen  []string
	popupsSeen []string
	pageSet    map[string]struct{}
	popupSet   map[string]struct{}

	// Поколение попапа. Каждый ShowPopup его увеличивает; отложенный сброс
	// применяется только если поколение не изменилось с момента показа.
	// Это закрывает гонку, когда таймер старого попапа гасил новый.
	popupGen uint64
}

func NewTracker(device, name string) *Tracker {
	return &Tracker{
		name:         name,
		device:       device,
		currentPage:  DefaultUnknown,
		currentPopup: DefaultUnknown,
		pageSet:      map[string]struct{}{},
		popupSet:     map[string]struct{}{},
	}
}

// Name возвращает имя трекера ("PageState1"). Используется реестром
// как ключ в домене page_state.
func (t *Tracker) Name() string { return t.name }

// Device возвращает ключ панели, за которой следит трекер.
func (t *Tracker) Device() string { return t.device }

// SetPage безусловно перезаписывает текущую страницу и дополняет историю.
func (t *Tracker) SetPage(page string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.currentPage = page
	if _, seen := t.pageSet[page]; !seen {
		t.pageSet[page] = struct{}{}
		t.pagesSeen = append(t.pagesSeen, page)
	}
}

// ShowPopup записывает показ попапа. При ненулевой длительности взводится
// одноразовый отложенный сброс; сработает он только если за это время не
// был показан другой попап.
func (t *Tracker) ShowPopup(popup string, duration float64) {
	t.mu.Lock()
	t.currentPopup = popup
	t.popupGen++
	gen := t.popupGen
	if _, seen := t.popupSet[popup]; !seen {
		t.popupSet[popup] = struct{}{}
		t.popupsSeen = append(t.popupsSeen, popup)
	}
	t.mu.Unlock()

	if duration > 0 {
		time.AfterFunc(time.Duration(duration*float64(time.Second)), func() {
			t.resetPopup(gen)
		})
	}
}

func (t *Tracker) resetPopup(gen uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.popupGen != gen {
		// Попап уже сменился, сброс устарел.
		return
	}
	t.currentPopup = PopupNone
}

// HideAllPopups немедленно скрывает попап. История не изменяется.
func (t *Tracker) HideAllPopups() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.popupGen++
	t.currentPopup = PopupNone
}

func (t *Tracker) CurrentPage() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.currentPage
}

func (t *Tracker) CurrentPopup() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.currentPopup
}

// PagesSeen возвращает историю страниц в порядке первого появления.
func (t *Tracker) PagesSeen() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, len(t.pagesSeen))
	copy(out, t.pagesSeen)
	return out
}

// PopupsSeen возвращает историю попапов в порядке первого появления.
func (t *Tracker) PopupsSeen() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, len(t.popupsSeen))
	copy(out, t.popupsSeen)
	return out
}

// Property реализует обобщенное чтение свойств (get_property) для домена
// page_state. Списки сериализуются в JSON.
func (t *Tracker) Property(name string) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	switch name {
	case "Name":
		return t.name, true
	case "ui_device":
		return t.device, true
	case "current_page":
		return t.currentPage, true
	case "current_popup":
		return t.currentPopup, true
	case "all_pages_called":
		b, _ := json.Marshal(t.pagesSeen)
		return string(b), true
	case "all_popups_called":
		b, _ := json.Marshal(t.popupsSeen)
		return string(b), true
	}
	return "", false
}

// Set - трекеры всех панелей, по одному на панель, с доступом по ключу панели.
type Set struct {
	byDevice map[string]*Tracker
	ordered  []*Tracker
}

// NewSet создает трекеры для панелей в порядке их обнаружения:
// PageState1..PageStateN.
func NewSet(deviceKeys []string) *Set {
	s := &Set{byDevice: map[string]*Tracker{}}
	for i, key := range deviceKeys {
		t := NewTracker(key, fmt.Sprintf("PageState%d", i+1))
		s.byDevice[key] = t
		s.ordered = append(s.ordered, t)
	}
	return s
}

// ForDevice возвращает трекер панели по ее ключу.
func (s *Set) ForDevice(deviceKey string) (*Tracker, bool) {
	t, ok := s.byDevice[deviceKey]
	return t, ok
}

// All возвращает трекеры в порядке создания.
func (s *Set) All() []*Tracker {
	return s.ordered
}

// Names возвращает имена всех трекеров в порядке создания.
func (s *Set) Names() []string {
	names := make([]string, len(s.ordered))
	for i, t := range s.ordered {
		names[i] = t.Name()
	}
	return names
}
