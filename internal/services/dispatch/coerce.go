package dispatch

import (
	"fmt"
	"strconv"
	"strings"
)

// Приведение строковых аргументов RPC к типам эффекторов. Все аргументы
// приходят строками; ошибки приведения возвращаются вызывающему и
// превращаются диспетчером в протокольную строку ошибки.

// StringToBool интерпретирует строковое значение RPC как булево.
func StringToBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true", "1", "t", "y", "yes":
		return true, nil
	case "false", "0", "f", "n", "no":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean value: %s", s)
}

// StringToState интерпретирует строку как дискретное состояние {0,1,2}.
// Поддерживается синтаксис аппаратных интерфейсов: close/on -> 1,
// open/off -> 0.
func StringToState(s string) (int, error) {
	switch s {
	case "0", "1", "2":
		return int(s[0] - '0'), nil
	}
	switch strings.ToLower(s) {
	case "close", "on":
		return 1, nil
	case "open", "off":
		return 0, nil
	}
	return 0, fmt.Errorf("invalid state value: %s", s)
}

// StringToInt приводит строку к целому.
func StringToInt(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid integer value: %s", s)
	}
	return v, nil
}

// StringToFloat приводит строку к числу с плавающей точкой.
func StringToFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float value: %s", s)
	}
	return v, nil
}

// ParseIntList разбирает список состояний вида "[0,1,2]".
func ParseIntList(s string) ([]int, error) {
	parts := splitList(s)
	states := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := StringToInt(p)
		if err != nil {
			return nil, fmt.Errorf("invalid state list %q: %v", s, err)
		}
		states = append(states, v)
	}
	return states, nil
}

// ParseStringList разбирает список строк вида "[Off, Red, Green]".
func ParseStringList(s string) []string {
	return splitList(s)
}

func splitList(s string) []string {
	s = strings.ReplaceAll(s, "[", "")
	s = strings.ReplaceAll(s, "]", "")
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, p := range raw {
		p = strings.TrimSpace(p)
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
