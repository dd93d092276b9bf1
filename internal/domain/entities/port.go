package entities

// Известные классы портов из ports.json.
const (
	ClassRelay    = "RelayInterface"
	ClassSerial   = "SerialInterface"
	ClassEthernet = "EthernetClientInterface"
)

// Поддерживаемые протоколы EthernetClientInterface.
const (
	ProtocolTCP = "TCP"
	ProtocolUDP = "UDP"
	ProtocolSSH = "SSH"
)

// PortDefinition описывает одну запись файла ports.json. Набор значимых
// полей зависит от Class: реле и последовательные порты привязаны к
// процессору (Host + Port), сетевые клиенты - к удаленному узлу (Hostname).
type PortDefinition struct {
	Class string `json:"Class"`

	// Реле и последовательные порты
	Host string `json:"Host,omitempty"` // DeviceAlias хост-процессора
	Port string `json:"Port,omitempty"` // "RLY1", "COM1", ...

	// Последовательные порты
	Baud        int    `json:"Baud,omitempty"`
	Data        int    `json:"Data,omitempty"`
	Stop        int    `json:"Stop,omitempty"`
	CharDelay   int    `json:"CharDelay,omitempty"`
	Parity      string `json:"Parity,omitempty"`
	FlowControl string `json:"FlowControl,omitempty"`
	Mode        string `json:"Mode,omitempty"`

	// Сетевые клиенты
	Hostname    string `json:"Hostname,omitempty"`
	IPPort      int    `json:"IPPort,omitempty"`
	Protocol    string `json:"Protocol,omitempty"`
	ServicePort int    `json:"ServicePort,omitempty"` // только UDP
	BufferSize  int    `json:"bufferSize,omitempty"`  // только UDP
	Username    string `json:"Username,omitempty"`    // только SSH
	Password    string `json:"Password,omitempty"`    // только SSH
}
