package dispatch

import (
	"fmt"
	"strconv"

	"github.com/iwtcode/avGateway/internal/domain/models"
	"github.com/iwtcode/avGateway/internal/interfaces"
)

// Таблица операций. Каждая запись объявляет арность и типизированную
// реализацию; реализация проверяет, что объект поддерживает требуемый
// интерфейс-эффектор, до какого-либо обращения к оборудованию. Пустой
// результат без ошибки нормализуется диспетчером в "OK".
type operation struct {
	minArgs int
	maxArgs int
	run     func(d *Dispatcher, rec models.CommandRecord, handle any, args []string) (string, error)
}

// effector приводит объект к интерфейсу-эффектору операции.
func effector[T any](handle any, rec models.CommandRecord) (T, error) {
	t, ok := handle.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("object %s does not support %s", rec.Object, rec.Function)
	}
	return t, nil
}

var operations = map[string]operation{
	"SetState": {minArgs: 1, maxArgs: 1, run: func(d *Dispatcher, rec models.CommandRecord, handle any, args []string) (string, error) {
		obj, err := effector[interfaces.StateSetter](handle, rec)
		if err != nil {
			return "", err
		}
		state, err := StringToState(args[0])
		if err != nil {
			return "", err
		}
		return "", obj.SetState(state)
	}},

	"SetFill": {minArgs: 1, maxArgs: 1, run: func(d *Dispatcher, rec models.CommandRecord, handle any, args []string) (string, error) {
		obj, err := effector[interfaces.FillSetter](handle, rec)
		if err != nil {
			return "", err
		}
		fill, err := StringToInt(args[0])
		if err != nil {
			return "", err
		}
		return "", obj.SetFill(fill)
	}},

	"SetText": {minArgs: 1, maxArgs: 1, run: func(d *Dispatcher, rec models.CommandRecord, handle any, args []string) (string, error) {
		obj, err := effector[interfaces.TextSetter](handle, rec)
		if err != nil {
			return "", err
		}
		return "", obj.SetText(args[0])
	}},

	"SetVisible": {minArgs: 1, maxArgs: 1, run: func(d *Dispatcher, rec models.CommandRecord, handle any, args []string) (string, error) {
		obj, err := effector[interfaces.VisibilitySetter](handle, rec)
		if err != nil {
			return "", err
		}
		visible, err := StringToBool(args[0])
		if err != nil {
			return "", err
		}
		return "", obj.SetVisible(visible)
	}},

	"SetEnable": {minArgs: 1, maxArgs: 1, run: func(d *Dispatcher, rec models.CommandRecord, handle any, args []string) (string, error) {
		obj, err := effector[interfaces.EnableSetter](handle, rec)
		if err != nil {
			return "", err
		}
		enabled, err := StringToBool(args[0])
		if err != nil {
			return "", err
		}
		return "", obj.SetEnable(enabled)
	}},

	"SetBlinking": {minArgs: 2, maxArgs: 2, run: func(d *Dispatcher, rec models.CommandRecord, handle any, args []string) (string, error) {
		obj, err := effector[interfaces.Blinker](handle, rec)
		if err != nil {
			return "", err
		}
		states, err := ParseIntList(args[1])
		if err != nil {
			return "", err
		}
		return "", obj.SetBlinking(args[0], states)
	}},

	// Операции навигации пишут и в оборудование, и в трекер состояния
	// страниц той же панели.
	"ShowPage": {minArgs: 1, maxArgs: 1, run: func(d *Dispatcher, rec models.CommandRecord, handle any, args []string) (string, error) {
		obj, err := effector[interfaces.PageNavigator](handle, rec)
		if err != nil {
			return "", err
		}
		if err := obj.ShowPage(args[0]); err != nil {
			return "", err
		}
		if t, ok := d.trackers.ForDevice(rec.Object); ok {
			t.SetPage(args[0])
		}
		return "", nil
	}},

	"ShowPopup": {minArgs: 1, maxArgs: 2, run: func(d *Dispatcher, rec models.CommandRecord, handle any, args []string) (string, error) {
		obj, err := effector[interfaces.PageNavigator](handle, rec)
		if err != nil {
			return "", err
		}
		var duration float64
		if len(args) > 1 {
			duration, err = StringToFloat(args[1])
			if err != nil {
				return "", err
			}
		}
		if err := obj.ShowPopup(args[0], int(duration)); err != nil {
			return "", err
		}
		if t, ok := d.trackers.ForDevice(rec.Object); ok {
			t.ShowPopup(args[0], duration)
		}
		return "", nil
	}},

	"HideAllPopups": {minArgs: 0, maxArgs: 0, run: func(d *Dispatcher, rec models.CommandRecord, handle any, args []string) (string, error) {
		obj, err := effector[interfaces.PageNavigator](handle, rec)
		if err != nil {
			return "", err
		}
		if err := obj.HideAllPopups(); err != nil {
			return "", err
		}
		if t, ok := d.trackers.ForDevice(rec.Object); ok {
			t.HideAllPopups()
		}
		return "", nil
	}},

	"GetVolume": {minArgs: 1, maxArgs: 1, run: func(d *Dispatcher, rec models.CommandRecord, handle any, args []string) (string, error) {
		obj, err := effector[interfaces.AudioDevice](handle, rec)
		if err != nil {
			return "", err
		}
		v, err := obj.GetVolume(args[0])
		if err != nil {
			return "", err
		}
		return strconv.Itoa(v), nil
	}},

	"PlaySound": {minArgs: 1, maxArgs: 1, run: func(d *Dispatcher, rec models.CommandRecord, handle any, args []string) (string, error) {
		obj, err := effector[interfaces.AudioDevice](handle, rec)
		if err != nil {
			return "", err
		}
		return "", obj.PlaySound(args[0])
	}},

	"SetLEDBlinking": {minArgs: 3, maxArgs: 3, run: func(d *Dispatcher, rec models.CommandRecord, handle any, args []string) (string, error) {
		obj, err := effector[interfaces.LEDController](handle, rec)
		if err != nil {
			return "", err
		}
		id, err := StringToInt(args[0])
		if err != nil {
			return "", err
		}
		return "", obj.SetLEDBlinking(id, args[1], ParseStringList(args[2]))
	}},

	"SetLEDState": {minArgs: 2, maxArgs: 2, run: func(d *Dispatcher, rec models.CommandRecord, handle any, args []string) (string, error) {
		obj, err := effector[interfaces.LEDController](handle, rec)
		if err != nil {
			return "", err
		}
		id, err := StringToInt(args[0])
		if err != nil {
			return "", err
		}
		return "", obj.SetLEDState(id, args[1])
	}},

	"SetLevel": {minArgs: 1, maxArgs: 1, run: func(d *Dispatcher, rec models.CommandRecord, handle any, args []string) (string, error) {
		obj, err := effector[interfaces.LevelController](handle, rec)
		if err != nil {
			return "", err
		}
		level, err := StringToInt(args[0])
		if err != nil {
			return "", err
		}
		return "", obj.SetLevel(level)
	}},

	"SetRange": {minArgs: 2, maxArgs: 3, run: func(d *Dispatcher, rec models.CommandRecord, handle any, args []string) (string, error) {
		obj, err := effector[interfaces.LevelController](handle, rec)
		if err != nil {
			return "", err
		}
		min, err := StringToInt(args[0])
		if err != nil {
			return "", err
		}
		max, err := StringToInt(args[1])
		if err != nil {
			return "", err
		}
		step := 1
		if len(args) > 2 {
			step, err = StringToInt(args[2])
			if err != nil {
				return "", err
			}
		}
		return "", obj.SetRange(min, max, step)
	}},

	"Inc": {minArgs: 0, maxArgs: 0, run: func(d *Dispatcher, rec models.CommandRecord, handle any, args []string) (string, error) {
		obj, err := effector[interfaces.LevelController](handle, rec)
		if err != nil {
			return "", err
		}
		return "", obj.Inc()
	}},

	"Dec": {minArgs: 0, maxArgs: 0, run: func(d *Dispatcher, rec models.CommandRecord, handle any, args []string) (string, error) {
		obj, err := effector[interfaces.LevelController](handle, rec)
		if err != nil {
			return "", err
		}
		return "", obj.Dec()
	}},

	"Pulse": {minArgs: 1, maxArgs: 1, run: func(d *Dispatcher, rec models.CommandRecord, handle any, args []string) (string, error) {
		obj, err := effector[interfaces.RelayController](handle, rec)
		if err != nil {
			return "", err
		}
		seconds, err := StringToFloat(args[0])
		if err != nil {
			return "", err
		}
		return "", obj.Pulse(seconds)
	}},

	"Toggle": {minArgs: 0, maxArgs: 0, run: func(d *Dispatcher, rec models.CommandRecord, handle any, args []string) (string, error) {
		obj, err := effector[interfaces.RelayController](handle, rec)
		if err != nil {
			return "", err
		}
		return "", obj.Toggle()
	}},

	"Send": {minArgs: 1, maxArgs: 1, run: func(d *Dispatcher, rec models.CommandRecord, handle any, args []string) (string, error) {
		obj, err := effector[interfaces.CommDevice](handle, rec)
		if err != nil {
			return "", err
		}
		return "", obj.Send(args[0])
	}},

	// SendAndWait возвращает синхронный ответ устройства как результат.
	"SendAndWait": {minArgs: 2, maxArgs: 2, run: func(d *Dispatcher, rec models.CommandRecord, handle any, args []string) (string, error) {
		obj, err := effector[interfaces.CommDevice](handle, rec)
		if err != nil {
			return "", err
		}
		timeout, err := StringToFloat(args[1])
		if err != nil {
			return "", err
		}
		return obj.SendAndWait(args[0], timeout)
	}},

	"SetExecutiveMode": {minArgs: 1, maxArgs: 1, run: func(d *Dispatcher, rec models.CommandRecord, handle any, args []string) (string, error) {
		obj, err := effector[interfaces.ProcessorControl](handle, rec)
		if err != nil {
			return "", err
		}
		mode, err := StringToState(args[0])
		if err != nil {
			return "", err
		}
		return "", obj.SetExecutiveMode(mode)
	}},

	"Reboot": {minArgs: 0, maxArgs: 0, run: func(d *Dispatcher, rec models.CommandRecord, handle any, args []string) (string, error) {
		obj, err := effector[interfaces.ProcessorControl](handle, rec)
		if err != nil {
			return "", err
		}
		d.logger.Warn("Rebooting device", "object", rec.Object)
		return "", obj.Reboot()
	}},

	"Connect": {minArgs: 0, maxArgs: 1, run: func(d *Dispatcher, rec models.CommandRecord, handle any, args []string) (string, error) {
		obj, err := effector[interfaces.Connectable](handle, rec)
		if err != nil {
			return "", err
		}
		var timeout float64
		if len(args) > 0 {
			timeout, err = StringToFloat(args[0])
			if err != nil {
				return "", err
			}
		}
		return obj.Connect(timeout)
	}},

	"Disconnect": {minArgs: 0, maxArgs: 0, run: func(d *Dispatcher, rec models.CommandRecord, handle any, args []string) (string, error) {
		obj, err := effector[interfaces.Connectable](handle, rec)
		if err != nil {
			return "", err
		}
		return "", obj.Disconnect()
	}},

	"StartKeepAlive": {minArgs: 2, maxArgs: 2, run: func(d *Dispatcher, rec models.CommandRecord, handle any, args []string) (string, error) {
		obj, err := effector[interfaces.KeepAliver](handle, rec)
		if err != nil {
			return "", err
		}
		interval, err := StringToFloat(args[0])
		if err != nil {
			return "", err
		}
		return "", obj.StartKeepAlive(interval, args[1])
	}},

	"StopKeepAlive": {minArgs: 0, maxArgs: 0, run: func(d *Dispatcher, rec models.CommandRecord, handle any, args []string) (string, error) {
		obj, err := effector[interfaces.KeepAliver](handle, rec)
		if err != nil {
			return "", err
		}
		return "", obj.StopKeepAlive()
	}},

	// Отсутствующее свойство - это ошибка AttributeNotFound, а не результат.
	"get_property": {minArgs: 1, maxArgs: 1, run: func(d *Dispatcher, rec models.CommandRecord, handle any, args []string) (string, error) {
		obj, err := effector[interfaces.PropertyReader](handle, rec)
		if err != nil {
			return "", err
		}
		value, ok := obj.Property(args[0])
		if !ok {
			return "", fmt.Errorf("attribute %s not found on %s", args[0], rec.Object)
		}
		return value, nil
	}},
}
