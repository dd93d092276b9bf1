package models

// ElementsSnapshot - результат макроса get_all_elements: списки ключей всех
// реестров плюс текущее состояние выбора backend-сервера. Имена JSON-полей
// являются частью протокола и согласованы с backend-сервером.
type ElementsSnapshot struct {
	Processors         []string    `json:"all_processors"`
	UIDevices          []string    `json:"all_ui_devices"`
	Buttons            []string    `json:"all_buttons"`
	Knobs              []string    `json:"all_knobs"`
	Labels             []string    `json:"all_labels"`
	Levels             []string    `json:"all_levels"`
	Sliders            []string    `json:"all_sliders"`
	Relays             []string    `json:"all_relays"`
	SerialInterfaces   []string    `json:"all_serial_interfaces"`
	EthernetInterfaces []string    `json:"all_ethernet_interfaces"`
	PageStateMachines  []string    `json:"all_page_state_machines"`
	BackendAvailable   bool        `json:"backend_server_available"`
	BackendRole        BackendRole `json:"backend_server_role"`
	BackendAddress     string      `json:"backend_server_ip"`
}
