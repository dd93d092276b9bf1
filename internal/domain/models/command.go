package models

import "encoding/json"

// Domain определяет категорию адресуемых объектов. Значения совпадают
// со строками поля "type" во входящих RPC-командах.
type Domain string

const (
	DomainProcessor Domain = "ProcessorDevice"
	DomainUIDevice  Domain = "UIDevice"
	DomainButton    Domain = "Button"
	DomainKnob      Domain = "Knob"
	DomainLabel     Domain = "Label"
	DomainLevel     Domain = "Level"
	DomainSlider    Domain = "Slider"
	DomainRelay     Domain = "RelayInterface"
	DomainSerial    Domain = "SerialInterface"
	DomainEthernet  Domain = "EthernetClientInterface"
	DomainPageState Domain = "page_state"
)

// AllDomains перечисляет все домены в порядке их регистрации в реестре.
var AllDomains = []Domain{
	DomainProcessor,
	DomainUIDevice,
	DomainButton,
	DomainKnob,
	DomainLabel,
	DomainLevel,
	DomainSlider,
	DomainRelay,
	DomainSerial,
	DomainEthernet,
	DomainPageState,
}

// IsKnownDomain проверяет, что строка соответствует одному из доменов.
func IsKnownDomain(s string) bool {
	for _, d := range AllDomains {
		if string(d) == s {
			return true
		}
	}
	return false
}

// CommandRecord описывает одну входящую RPC-команду.
// Поля Object и Function обязательны для доменных команд,
// arg1..arg3 - опциональные позиционные аргументы.
type CommandRecord struct {
	Type     string `json:"type" binding:"required"`
	Object   string `json:"object,omitempty"`
	Function string `json:"function,omitempty"`
	Arg1     string `json:"arg1,omitempty"`
	Arg2     string `json:"arg2,omitempty"`
	Arg3     string `json:"arg3,omitempty"`

	// IP используется только макросом set_backend_server.
	IP string `json:"ip,omitempty"`
}

// Args возвращает непустые аргументы по порядку, отбрасывая пустые значения.
func (r CommandRecord) Args() []string {
	args := make([]string, 0, 3)
	for _, a := range []string{r.Arg1, r.Arg2, r.Arg3} {
		if a != "" {
			args = append(args, a)
		}
	}
	return args
}

// String возвращает JSON-представление команды для сообщений об ошибках.
func (r CommandRecord) String() string {
	b, err := json.Marshal(r)
	if err != nil {
		return r.Type + "/" + r.Object + "/" + r.Function
	}
	return string(b)
}
