package mylog

import (
	"os"

	"github.com/sirupsen/logrus"
)

// const
const (
	PanicLevel = "panic"
	FatalLevel = "fatal"
	ErrorLevel = "error"
	WarnLevel  = "warn"
	InfoLevel  = "info"
	DebugLevel = "debug"
)

type MyLog struct {
	Logger *logrus.Logger
}

type emptyWriter struct{}

func (ew emptyWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

func convertLevel(level string) logrus.Level {
	switch level {
	case PanicLevel:
		return logrus.PanicLevel
	case FatalLevel:
		return logrus.FatalLevel
	case ErrorLevel:
		return logrus.ErrorLevel
	case WarnLevel:
		return logrus.WarnLevel
	case InfoLevel:
		return logrus.InfoLevel
	case DebugLevel:
		return logrus.DebugLevel
	default:
		return logrus.InfoLevel
	}
}

func NewMyLog(path string, level string, age uint32) (*MyLog, error) {
	mylog := &MyLog{}
	mylog.Logger = Init(path, level, age)
	return mylog, nil
}

// Init loggers. An empty path logs to stdout only.
func Init(path string, level string, age uint32) *logrus.Logger {
	clog := logrus.New()
	LoadFunctionHooker(clog)
	if path != "" {
		if fileHooker, err := NewFileRotateHooker(path, age); err == nil {
			clog.Hooks.Add(fileHooker)
		} else {
			clog.WithError(err).Warn("file logging disabled")
		}
	}
	clog.Out = os.Stdout
	clog.Formatter = &logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	}
	clog.Level = convertLevel(level)

	return clog
}

// Discard returns a logger that drops everything, for tests and embedding.
func Discard() *logrus.Logger {
	clog := logrus.New()
	clog.Out = emptyWriter{}
	clog.Level = logrus.PanicLevel
	return clog
}
