package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
var Log *logrus.Logger

// Init инициализирует глобальный логгер.
// Вызывается один раз из main.go (и из TestMain в тестах).
func Init() {
	InitWithOutput(os.Stdout)
}

// InitWithOutput - то же, что Init, но с явным приемником логов.
func InitWithOutput(w io.Writer) {
	Log = logrus.New()

	// Уровень из LOG_LEVEL, по умолчанию info.
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	// "json" - для сбора логов, иначе человекочитаемый текст.
	logFormat := strings.ToLower(os.Getenv("LOG_FORMAT"))
	if logFormat == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	Log.SetOutput(w)
}

// For возвращает запись с полем component.
// Если Init ещё не вызывался (например, в юнит-тестах пакета), создаётся
// логгер по умолчанию, чтобы не ловить nil pointer.
func For(component string) *logrus.Entry {
	if Log == nil {
		Init()
	}
	return Log.WithFields(logrus.Fields{"component": component})
}
