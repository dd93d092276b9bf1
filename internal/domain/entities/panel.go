package entities

// PanelElement описывает один GUI-элемент панели (кнопку, слайдер и т.д.).
type PanelElement struct {
	Name string `json:"Name"`
}

// PanelDevice описывает процессор или сенсорную панель.
type PanelDevice struct {
	DeviceAlias string `json:"DeviceAlias"`
}

// PanelDefinition описывает состав аппаратной системы: процессоры,
// сенсорные панели и перечень GUI-элементов, известных проекту панели.
type PanelDefinition struct {
	Processors []PanelDevice  `json:"Processors"`
	UIDevices  []PanelDevice  `json:"UIDevices"`
	Buttons    []PanelElement `json:"Buttons"`
	Knobs      []PanelElement `json:"Knobs"`
	Labels     []PanelElement `json:"Labels"`
	Levels     []PanelElement `json:"Levels"`
	Sliders    []PanelElement `json:"Sliders"`
}
