package logging

import (
	"bytes"
	"os"
	"runtime"
	"strconv"
	"sync"

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
	TraceLevel = "trace"
)

const (
	//PANIC log level
	PANIC uint32 = iota
	//FATAL has list msg
	FATAL
	//ERROR has list msg
	ERROR
	//WARN only log
	WARN
	//INFO only log
	INFO
	//DEBUG only log
	DEBUG
	//TRACE only log
	TRACE
)

const (
	//MsgFormatSingle attaches the calling function
	MsgFormatSingle uint32 = iota
	//MsgFormatMulti attaches the call chain
	MsgFormatMulti
)

// LogFormat is to log format
type LogFormat = map[string]interface{}

type emptyWriter struct{}

func (ew emptyWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

type Logger struct {
	*logrus.Logger
	//CallRelation to show stack list
	CallRelation uint32
}

func NewLogger() *Logger {
	return &Logger{
		Logger: logrus.New(),
	}
}

// SetCallRelation sets how much of the call stack is attached to entries.
func (logger *Logger) SetCallRelation(button uint32) {
	logger.CallRelation = button
}

var (
	mu sync.Mutex
	// clog prints to stdout and file, vlog to file only.
	clog *Logger
	vlog *Logger
)

var levels = map[string]logrus.Level{
	PanicLevel: logrus.PanicLevel,
	FatalLevel: logrus.FatalLevel,
	ErrorLevel: logrus.ErrorLevel,
	WarnLevel:  logrus.WarnLevel,
	InfoLevel:  logrus.InfoLevel,
	DebugLevel: logrus.DebugLevel,
	TraceLevel: logrus.TraceLevel,
}

func convertLevel(level string) logrus.Level {
	if l, ok := levels[level]; ok {
		return l
	}
	return logrus.InfoLevel
}

// ValidLevel reports whether level names a known log level.
func ValidLevel(level string) bool {
	_, ok := levels[level]
	return ok
}

func newFileLogger(hook logrus.Hook, level string) *Logger {
	l := NewLogger()
	LoadFunctionHooker(l)
	l.Hooks.Add(hook)
	l.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	l.Level = convertLevel(level)
	return l
}

// Init loggers
func Init(path, filename string, level string, age uint32, disableCPrint bool) {
	mu.Lock()
	defer mu.Unlock()

	fileHooker := NewFileRotateHooker(path, filename, age, nil)

	vlog = newFileLogger(fileHooker, level)
	vlog.Out = &emptyWriter{}

	if !disableCPrint {
		clog = newFileLogger(fileHooker, level)
		clog.Out = os.Stdout
	} else {
		clog = vlog
	}

	vlog.WithFields(logrus.Fields{
		"path":  path,
		"level": level,
	}).Info("Logger Configuration.")
}

func ensureInit() {
	mu.Lock()
	ready := clog != nil && vlog != nil
	mu.Unlock()
	if !ready {
		Init(os.TempDir(), "macsum", InfoLevel, 0, false)
	}
}

// GetGID return gid
func GetGID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

func output(l *Logger, level uint32, msg string, formats []LogFormat) {
	entry := l.WithFields(mergeLogFormats(formats...))
	switch level {
	case PANIC:
		l.SetCallRelation(MsgFormatMulti)
		entry.Panic(msg)
	case FATAL:
		l.SetCallRelation(MsgFormatMulti)
		entry.Fatal(msg)
	case ERROR:
		l.SetCallRelation(MsgFormatMulti)
		entry.Error(msg)
	case WARN:
		l.SetCallRelation(MsgFormatSingle)
		entry.Warn(msg)
	case INFO:
		l.SetCallRelation(MsgFormatSingle)
		entry.Info(msg)
	case DEBUG:
		l.SetCallRelation(MsgFormatSingle)
		entry.Debug(msg)
	case TRACE:
		l.SetCallRelation(MsgFormatSingle)
		entry.Trace(msg)
	default:
		l.SetCallRelation(MsgFormatMulti)
		entry.Error(msg)
	}
}

// CPrint into stdout + log
func CPrint(level uint32, msg string, formats ...LogFormat) {
	ensureInit()
	output(clog, level, msg, formats)
}

// VPrint into log
func VPrint(level uint32, msg string, formats ...LogFormat) {
	ensureInit()
	output(vlog, level, msg, formats)
}

// Enabled reports whether entries at level would be written.
func Enabled(level uint32) bool {
	ensureInit()
	return logrus.Level(level) <= vlog.GetLevel()
}

// mergeLogFormats merges LogFormats.
// Same key would be covered by later-presented values.
func mergeLogFormats(formats ...LogFormat) LogFormat {
	format := LogFormat{}
	for _, data := range formats {
		for k, v := range data {
			format[k] = v
		}
	}
	format["tid"] = GetGID()
	return format
}
