package logging

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// callerSkip is the number of frames between Fire and the CPrint/VPrint
// caller when going through output and logrus.
const callerSkip = 8

type functionHooker struct {
	innerLogger *Logger
}

func shortFuncName(pc uintptr) (name, file string, line int) {
	f := runtime.FuncForPC(pc)
	if f == nil {
		return "unknown", "unknown", 0
	}
	name = f.Name()
	if index := strings.LastIndex(name, "/"); index >= 0 {
		name = name[index+1:]
	}
	file, line = f.FileLine(pc)
	return name, filepath.Base(file), line
}

func (h *functionHooker) fire(entry *logrus.Entry) {
	pc, _, _, ok := runtime.Caller(callerSkip)
	if !ok {
		return
	}
	fname, file, line := shortFuncName(pc)
	entry.Data["func"] = fname
	entry.Data["line"] = line
	entry.Data["file"] = file
}

func (h *functionHooker) fires(entry *logrus.Entry) {
	for i := callerSkip; i < callerSkip+3; i++ {
		pc, _, _, ok := runtime.Caller(i)
		if !ok {
			break
		}
		fname, file, line := shortFuncName(pc)
		entry.Data["f"+strconv.Itoa(i)] = fmt.Sprintf("{%s,%s,%d}", file, fname, line)
	}
}

func (h *functionHooker) Fire(entry *logrus.Entry) error {
	if h.innerLogger.CallRelation == MsgFormatMulti {
		h.fires(entry)
	} else if h.innerLogger.CallRelation == MsgFormatSingle {
		h.fire(entry)
	}
	return nil
}

func (h *functionHooker) Levels() []logrus.Level {
	return logrus.AllLevels
}

// LoadFunctionHooker loads a function hooker to the logger
func LoadFunctionHooker(logger *Logger) {
	logger.Hooks.Add(&functionHooker{innerLogger: logger})
}
