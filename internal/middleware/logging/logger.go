package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

type Config struct {
	Enabled    bool   // Включено ли логирование
	Level      string // DEBUG, INFO, WARN, ERROR
	LogsDir    string // Директория для логов
	SavingDays uint   // Сколько дней хранить логи
}

// Logger - тонкая обертка над logrus с префиксом компонента и
// вариативными парами ключ-значение.
type Logger struct {
	config *Config
	log    *logrus.Logger
	file   *os.File
	prefix string
}

func NewLogger(cfg *Config, prefix string) *Logger {
	l := &Logger{
		config: cfg,
		prefix: prefix,
	}

	base := logrus.New()
	base.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	level, err := logrus.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	base.SetLevel(level)

	var output io.Writer = os.Stdout
	if cfg.Enabled && cfg.LogsDir != "" {
		if err := os.MkdirAll(cfg.LogsDir, 0755); err == nil {
			logFile := filepath.Join(cfg.LogsDir, time.Now().Format("2006-01-02")+".log")
			if file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
				l.file = file
				output = io.MultiWriter(os.Stdout, file)
			}
		}
	}
	base.SetOutput(output)

	l.log = base

	if cfg.SavingDays > 0 {
		go l.cleanOldLogs()
	}

	return l
}

func (l *Logger) WithPrefix(prefix string) *Logger {
	newPrefix := l.prefix
	if newPrefix != "" {
		newPrefix += " "
	}
	newPrefix += "[" + prefix + "]"

	return &Logger{
		config: l.config,
		log:    l.log,
		file:   l.file,
		prefix: newPrefix,
	}
}

func (l *Logger) cleanOldLogs() {
	for range time.Tick(24 * time.Hour) {
		files, err := os.ReadDir(l.config.LogsDir)
		if err != nil {
			continue
		}
		cutoff := time.Now().AddDate(0, 0, -int(l.config.SavingDays))
		for _, f := range files {
			if f.IsDir() || !strings.HasSuffix(f.Name(), ".log") {
				continue
			}
			day, err := time.Parse("2006-01-02", strings.TrimSuffix(f.Name(), ".log"))
			if err != nil {
				continue
			}
			if day.Before(cutoff) {
				_ = os.Remove(filepath.Join(l.config.LogsDir, f.Name()))
			}
		}
	}
}

// fields превращает вариативные пары "ключ, значение" в logrus.Fields.
func fields(kv []interface{}) logrus.Fields {
	f := logrus.Fields{}
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		f[key] = kv[i+1]
	}
	return f
}

func (l *Logger) entry(kv []interface{}) *logrus.Entry {
	e := l.log.WithFields(fields(kv))
	if l.prefix != "" {
		e = e.WithField("component", l.prefix)
	}
	return e
}

func (l *Logger) Debug(msg string, kv ...interface{}) {
	l.entry(kv).Debug(msg)
}

func (l *Logger) Info(msg string, kv ...interface{}) {
	l.entry(kv).Info(msg)
}

func (l *Logger) Warn(msg string, kv ...interface{}) {
	l.entry(kv).Warn(msg)
}

func (l *Logger) Error(msg string, kv ...interface{}) {
	l.entry(kv).Error(msg)
}
