package utils

import "github.com/sirupsen/logrus"

const (
	debug   = "debug"
	warning = "warning"
	info    = "info"
	error_  = "error"
	fatal   = "fatal"
)

// Log доступен и до InitLogger, чтобы пакеты и тесты могли писать в него без паники
var Log = logrus.New()

func InitLogger(logLevel string) *logrus.Logger {
	Log = logrus.New()

	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	Log.SetLevel(ParseLevel(logLevel))

	return Log
}

// ParseLevel переводит уровень из конфига в уровень logrus, по умолчанию error
func ParseLevel(logLevel string) logrus.Level {
	switch logLevel {
	case debug:
		return logrus.DebugLevel
	case warning:
		return logrus.WarnLevel
	case info:
		return logrus.InfoLevel
	case error_:
		return logrus.ErrorLevel
	case fatal:
		return logrus.FatalLevel
	default:
		return logrus.ErrorLevel
	}
}
