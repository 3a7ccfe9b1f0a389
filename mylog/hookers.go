package mylog

import (
	"path/filepath"
	"runtime"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat/go-file-rotatelogs"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
)

const logFileName = "vm.log"

// NewFileRotateHooker writes every level to hourly rotated files under path,
// keeping them for age hours.
func NewFileRotateHooker(path string, age uint32) (logrus.Hook, error) {
	if age == 0 {
		age = 24
	}
	base := filepath.Join(path, logFileName)
	writer, err := rotatelogs.New(
		base+".%Y%m%d%H",
		rotatelogs.WithLinkName(base),
		rotatelogs.WithMaxAge(time.Duration(age)*time.Hour),
		rotatelogs.WithRotationTime(time.Hour),
	)
	if err != nil {
		return nil, err
	}
	return lfshook.NewHook(lfshook.WriterMap{
		logrus.PanicLevel: writer,
		logrus.FatalLevel: writer,
		logrus.ErrorLevel: writer,
		logrus.WarnLevel:  writer,
		logrus.InfoLevel:  writer,
		logrus.DebugLevel: writer,
	}, &logrus.JSONFormatter{}), nil
}

// functionHooker tags warnings and errors with the calling function.
type functionHooker struct{}

func (functionHooker) Levels() []logrus.Level {
	return []logrus.Level{logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel, logrus.WarnLevel}
}

func (functionHooker) Fire(entry *logrus.Entry) error {
	if fn := caller(); fn != "" {
		entry.Data["func"] = fn
	}
	return nil
}

func caller() string {
	pcs := make([]uintptr, 16)
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.Function, "sirupsen/logrus") && !strings.Contains(frame.Function, "mylog.functionHooker") {
			return frame.Function
		}
		if !more {
			return ""
		}
	}
}

func LoadFunctionHooker(clog *logrus.Logger) {
	clog.Hooks.Add(functionHooker{})
}
