package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// AppConfig содержит конфигурацию приложения
type AppConfig struct {
	HTTPPort    string
	GinMode     string
	KafkaBroker string
	KafkaTopic  string
	RPC         RPCConfig
	Backend     BackendConfig
	NTP         NTPConfig
	Files       FilesConfig
	Logging     LoggerConfig
}

// RPCConfig содержит настройки текстового RPC-сервера
type RPCConfig struct {
	Port      int
	Interface string // адрес интерфейса для прослушивания, пустой = все
}

// BackendConfig содержит адреса backend-серверов и таймаут запросов
type BackendConfig struct {
	PrimaryAddress   string
	SecondaryAddress string
	TimeoutSeconds   int
}

// NTPConfig содержит адреса NTP-серверов для синхронизации времени
type NTPConfig struct {
	Primary   string
	Secondary string
}

// FilesConfig содержит пути к описаниям оборудования
type FilesConfig struct {
	Ports string // ports.json
	Panel string // panel.json
}

// LoggerConfig содержит настройки логгера
type LoggerConfig struct {
	Enable     bool
	LogsDir    string
	Level      string
	SavingDays int
}

// LoadConfiguration загружает конфигурацию из .env файла или переменных окружения
func LoadConfiguration() (*AppConfig, error) {
	_ = godotenv.Load()

	config := &AppConfig{
		HTTPPort:    getEnv("APP_PORT", "8082"),
		GinMode:     getEnv("GIN_MODE", "debug"),
		KafkaBroker: getEnv("KAFKA_BROKER", ""),
		KafkaTopic:  getEnv("KAFKA_TOPIC", "panel_events"),
		RPC: RPCConfig{
			Port:      getEnvAsInt("RPC_SERVER_PORT", 8081),
			Interface: getEnv("RPC_SERVER_INTERFACE", ""),
		},
		Backend: BackendConfig{
			PrimaryAddress:   getEnv("PRIMARY_BACKEND_SERVER", ""),
			SecondaryAddress: getEnv("SECONDARY_BACKEND_SERVER", ""),
			TimeoutSeconds:   getEnvAsInt("BACKEND_SERVER_TIMEOUT_S", 3),
		},
		NTP: NTPConfig{
			Primary:   getEnv("NTP_PRIMARY", ""),
			Secondary: getEnv("NTP_SECONDARY", ""),
		},
		Files: FilesConfig{
			Ports: getEnv("PORTS_FILE", "ports.json"),
			Panel: getEnv("PANEL_FILE", "panel.json"),
		},
		Logging: LoggerConfig{
			Enable:     getEnvAsBool("LOGGER_ENABLE", true),
			LogsDir:    getEnv("LOGGER_LOGS_DIR", "./logs"),
			Level:      getEnv("LOGGER_LOG_LEVEL", "DEBUG"),
			SavingDays: getEnvAsInt("LOGGER_SAVING_DAYS", 7),
		},
	}

	return config, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(name string, defaultValue int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
