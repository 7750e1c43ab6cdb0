package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New создает логгер. format: json (по умолчанию) или text.
func New(logLevel, format string) *logrus.Logger {
	log := logrus.New()

	switch format {
	case "text":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	log.SetOutput(os.Stdout)

	// Уровень логирования
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel // Уровень по умолчанию, если передан некорректный
	}
	log.SetLevel(level)
	return log
}
