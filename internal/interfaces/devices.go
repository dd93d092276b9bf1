package interfaces

// Интерфейсы идентификации. Реестр пробует их в фиксированном порядке
// приоритета (Name, DeviceAlias, Port, Hostname), чтобы получить строковый
// ключ элемента: GUI-элементы именуются по Name, процессоры и панели - по
// DeviceAlias, аппаратные порты - по номеру порта, сетевые клиенты - по
// имени узла.

// Named - элемент с собственным именем (GUI-элементы, трекеры страниц).
type Named interface {
	Name() string
}

// Aliased - устройство с алиасом (процессоры, сенсорные панели).
type Aliased interface {
	DeviceAlias() string
}

// Ported - аппаратный порт процессора ("RLY1", "COM1").
type Ported interface {
	PortID() string
}

// Hosted - сетевой клиент, идентифицируемый именем узла.
type Hosted interface {
	Hostname() string
}

// Далее - интерфейсы-эффекторы. Диспетчер проверяет их при разрешении
// операции: объект, не реализующий нужный интерфейс, отклоняется до
// какого-либо вызова оборудования.

// StateSetter устанавливает дискретное состояние (кнопки, реле).
type StateSetter interface {
	SetState(state int) error
}

// FillSetter устанавливает заполнение слайдера в процентах.
type FillSetter interface {
	SetFill(percent int) error
}

// TextSetter устанавливает текст элемента.
type TextSetter interface {
	SetText(text string) error
}

// VisibilitySetter управляет видимостью элемента.
type VisibilitySetter interface {
	SetVisible(visible bool) error
}

// EnableSetter включает или отключает элемент для взаимодействия.
type EnableSetter interface {
	SetEnable(enabled bool) error
}

// Blinker запускает мигание элемента по списку состояний.
type Blinker interface {
	SetBlinking(rate string, states []int) error
}

// LevelController управляет индикаторами уровня.
type LevelController interface {
	SetLevel(level int) error
	SetRange(min, max, step int) error
	Inc() error
	Dec() error
}

// PageNavigator - сенсорная панель, способная показывать страницы и
// всплывающие окна. Duration 0 означает бессрочный показ попапа.
type PageNavigator interface {
	ShowPage(page string) error
	ShowPopup(popup string, duration int) error
	HideAllPopups() error
}

// AudioDevice - панель с аудиовозможностями.
type AudioDevice interface {
	GetVolume(name string) (int, error)
	PlaySound(filename string) error
}

// LEDController управляет светодиодами панели.
type LEDController interface {
	SetLEDBlinking(id int, rate string, states []string) error
	SetLEDState(id int, state string) error
}

// ProcessorControl - административные операции процессора.
type ProcessorControl interface {
	Reboot() error
	SetExecutiveMode(mode int) error
}

// TimeSyncable - устройство, принимающее адрес NTP-сервера.
type TimeSyncable interface {
	SetAutomaticTime(server string) error
}

// RelayController - операции, специфичные для реле.
type RelayController interface {
	Pulse(seconds float64) error
	Toggle() error
}

// CommDevice отправляет сырые данные в порт.
type CommDevice interface {
	Send(data string) error
	SendAndWait(data string, timeout float64) (string, error)
}

// Connectable - управляемое соединение (Ethernet-клиенты).
// Connect возвращает строку статуса, как ее сообщает оборудование.
type Connectable interface {
	Connect(timeout float64) (string, error)
	Disconnect() error
}

// KeepAliver управляет периодической отправкой keepalive-данных.
type KeepAliver interface {
	StartKeepAlive(interval float64, data string) error
	StopKeepAlive() error
}

// PropertyReader - обобщенное чтение свойства по имени (get_property).
type PropertyReader interface {
	Property(name string) (string, bool)
}
