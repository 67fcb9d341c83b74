package log

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

type LoggerImpl struct {
	mu     *sync.Mutex
	stdout *logrus.Logger
	fields logrus.Fields
}

var DefaultLogger *LoggerImpl
var defaultLoggerInit sync.Once

func New() *LoggerImpl {
	l := &LoggerImpl{
		mu:     &sync.Mutex{},
		stdout: logrus.New(),
	}
	l.SetLevel(string(InfoLevel))
	defaultLoggerInit.Do(func() {
		DefaultLogger = l
	})
	return l
}

// NewWithOutput creates a logger writing to out at the given level.
func NewWithOutput(out io.Writer, level string) *LoggerImpl {
	l := &LoggerImpl{
		mu:     &sync.Mutex{},
		stdout: logrus.New(),
	}
	l.stdout.Out = out
	l.SetLevel(level)
	return l
}

func (l *LoggerImpl) decorate(skip int) *logrus.Entry {
	entry := l.stdout.WithFields(l.fields)
	if pc, file, line, ok := runtime.Caller(skip); ok {
		fName := runtime.FuncForPC(pc).Name()
		path := strings.Split(file, string(os.PathSeparator))
		if len(path) > 3 {
			path = path[len(path)-3:]
		}
		position := fmt.Sprintf("%s:%d", strings.Join(path, string(os.PathSeparator)), line)
		return entry.WithField("position", position).WithField("func", fName)
	}
	return entry
}

func (l *LoggerImpl) Trace(format string, v ...interface{}) {
	l.decorate(2).Tracef(format, v...)
}

func (l *LoggerImpl) Debug(format string, v ...interface{}) {
	l.decorate(2).Debugf(format, v...)
}

func (l *LoggerImpl) Info(format string, v ...interface{}) {
	l.decorate(2).Infof(format, v...)
}

func (l *LoggerImpl) Warn(format string, v ...interface{}) {
	l.decorate(2).Warnf(format, v...)
}

func (l *LoggerImpl) Error(format string, v ...interface{}) {
	l.decorate(2).Errorf(format, v...)
}

func (l *LoggerImpl) Fatal(format string, v ...interface{}) {
	l.decorate(2).Fatalf(format, v...)
}

func (l *LoggerImpl) Panic(format string, v ...interface{}) {
	l.decorate(2).Panicf(format, v...)
}

// WithField shares the underlying logrus logger, so level and output
// changes made on either logger apply to both.
func (l *LoggerImpl) WithField(key string, value interface{}) Logger {
	fields := make(logrus.Fields, len(l.fields)+1)
	for k, v := range l.fields {
		fields[k] = v
	}
	fields[key] = value
	return &LoggerImpl{mu: l.mu, stdout: l.stdout, fields: fields}
}

func (l *LoggerImpl) SetOutput(out io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stdout.Out = out
}

func (l *LoggerImpl) SetReportCaller(b bool) {
	l.stdout.SetReportCaller(b)
}

func (l *LoggerImpl) GetOutput() io.Writer {
	if l.stdout != nil && l.stdout.Out != nil {
		return l.stdout.Out
	}
	return nil
}

func (l *LoggerImpl) GetLevel() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return int(l.stdout.Level)
}

func (l *LoggerImpl) setLevel(level int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stdout.Level = logrus.Level(level)
}

// SetLevel accepts trace, debug, info, warn and error; anything else means info.
func (l *LoggerImpl) SetLevel(level string) {
	switch strings.ToLower(level) {
	case string(TraceLevel):
		l.setLevel(LevelTrace)
	case string(DebugLevel):
		l.setLevel(LevelDebug)
	case string(InfoLevel):
		l.setLevel(LevelInfo)
	case string(WarnLevel):
		l.setLevel(LevelWarn)
	case string(ErrorLevel):
		l.setLevel(LevelError)
	default:
		l.setLevel(LevelInfo)
	}
}

func (l *LoggerImpl) SetFormatter(formatter logrus.Formatter) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stdout.Formatter = formatter
}
