package hardware

import (
	"encoding/json"
	"os"

	"github.com/iwtcode/avGateway/internal/config"
	"github.com/iwtcode/avGateway/internal/domain/entities"
	"github.com/iwtcode/avGateway/internal/middleware/logging"
)

// Rig - вся инстанцированная аппаратура: процессоры, панели, GUI-элементы
// и порты, плюс общий источник событий пользователя. Коллекции строятся
// один раз при старте и далее не изменяются.
type Rig struct {
	Processors []*SimProcessor
	UIDevices  []*SimPanel
	Buttons    []*SimButton
	Knobs      []*SimKnob
	Labels     []*SimLabel
	Levels     []*SimLevel
	Sliders    []*SimSlider
	Relays     []*SimRelay
	Serials    []*SimSerial
	Ethernets  []*SimEthernet

	Events *EventSource
}

// NewRig загружает описания панели и портов и инстанцирует симуляторы.
// Отсутствие файлов не фатально: шлюз поднимается с пустыми коллекциями,
// чтобы backend мог хотя бы выполнить get_all_elements.
func NewRig(cfg *config.AppConfig, logger *logging.Logger) (*Rig, error) {
	log := logger.WithPrefix("HARDWARE")

	rig := &Rig{Events: NewEventSource()}

	panelDef, err := loadPanelDefinition(cfg.Files.Panel)
	if err != nil {
		log.Warn("Panel definition not loaded, starting with empty collections", "file", cfg.Files.Panel, "error", err)
	} else {
		rig.buildPanel(panelDef)
	}

	portDefs, err := loadPortDefinitions(cfg.Files.Ports)
	if err != nil {
		log.Warn("Port definitions not loaded, starting without ports", "file", cfg.Files.Ports, "error", err)
	} else {
		rig.buildPorts(portDefs, log)
	}

	log.Info("Hardware instantiated",
		"processors", len(rig.Processors),
		"ui_devices", len(rig.UIDevices),
		"buttons", len(rig.Buttons),
		"sliders", len(rig.Sliders),
		"relays", len(rig.Relays),
		"serial", len(rig.Serials),
		"ethernet", len(rig.Ethernets),
	)
	return rig, nil
}

func loadPanelDefinition(path string) (*entities.PanelDefinition, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var def entities.PanelDefinition
	if err := json.Unmarshal(raw, &def); err != nil {
		return nil, err
	}
	return &def, nil
}

func loadPortDefinitions(path string) ([]entities.PortDefinition, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var defs []entities.PortDefinition
	if err := json.Unmarshal(raw, &defs); err != nil {
		return nil, err
	}
	return defs, nil
}

func (r *Rig) buildPanel(def *entities.PanelDefinition) {
	for _, p := range def.Processors {
		r.Processors = append(r.Processors, NewSimProcessor(p.DeviceAlias))
	}
	for _, d := range def.UIDevices {
		r.UIDevices = append(r.UIDevices, NewSimPanel(d.DeviceAlias))
	}
	for _, e := range def.Buttons {
		r.Buttons = append(r.Buttons, NewSimButton(e.Name, r.Events))
	}
	for _, e := range def.Knobs {
		r.Knobs = append(r.Knobs, NewSimKnob(e.Name))
	}
	for _, e := range def.Labels {
		r.Labels = append(r.Labels, NewSimLabel(e.Name))
	}
	for _, e := range def.Levels {
		r.Levels = append(r.Levels, NewSimLevel(e.Name))
	}
	for _, e := range def.Sliders {
		r.Sliders = append(r.Sliders, NewSimSlider(e.Name, r.Events))
	}
}

// buildPorts инстанцирует порты из ports.json. Записи с неизвестным классом
// или с отсутствующим хост-процессором пропускаются с записью в лог.
func (r *Rig) buildPorts(defs []entities.PortDefinition, log *logging.Logger) {
	hosts := map[string]*SimProcessor{}
	for _, p := range r.Processors {
		hosts[p.DeviceAlias()] = p
	}

	for _, def := range defs {
		switch def.Class {
		case entities.ClassRelay:
			if _, ok := hosts[def.Host]; !ok {
				log.Error("Host processor for relay port not found", "host", def.Host)
				continue
			}
			r.Relays = append(r.Relays, NewSimRelay(def.Host, def.Port))

		case entities.ClassSerial:
			if _, ok := hosts[def.Host]; !ok {
				log.Error("Host processor for serial port not found", "host", def.Host)
				continue
			}
			r.Serials = append(r.Serials, NewSimSerial(def.Host, def.Port, def.Baud, def.Mode))

		case entities.ClassEthernet:
			switch def.Protocol {
			case entities.ProtocolTCP, entities.ProtocolUDP, entities.ProtocolSSH:
				r.Ethernets = append(r.Ethernets, NewSimEthernet(def.Hostname, def.IPPort, def.Protocol))
			default:
				log.Error("Unknown ethernet protocol", "protocol", def.Protocol, "hostname", def.Hostname)
			}

		default:
			log.Error("Unknown port definition class", "class", def.Class)
		}
	}
}
