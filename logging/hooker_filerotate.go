package logging

import (
	"os"
	"path/filepath"
	"time"

	rotatelogs "github.com/lestrrat/go-file-rotatelogs"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
)

// NewFileRotateHooker enables log file output, rotated daily. age is the
// maximum age of rotated files in days; 0 keeps them forever.
func NewFileRotateHooker(path, filename string, age uint32, formatter logrus.Formatter) logrus.Hook {
	if len(path) == 0 {
		panic("Failed to parse logger folder:" + path + ".")
	}
	if !filepath.IsAbs(path) {
		path, _ = filepath.Abs(path)
	}
	if err := os.MkdirAll(path, 0700); err != nil {
		panic("Failed to create logger folder:" + path + ". err:" + err.Error())
	}
	filePath := filepath.Join(path, filename+"-%Y%m%d.log")
	linkPath := filepath.Join(path, filename+".log")

	opts := []rotatelogs.Option{
		rotatelogs.WithLinkName(linkPath),
		rotatelogs.WithRotationTime(24 * time.Hour),
	}
	if age > 0 {
		opts = append(opts, rotatelogs.WithMaxAge(time.Duration(age)*24*time.Hour))
	}
	writer, err := rotatelogs.New(filePath, opts...)
	if err != nil {
		panic("Failed to create rotate logs. err:" + err.Error())
	}

	writers := lfshook.WriterMap{}
	for _, level := range logrus.AllLevels {
		writers[level] = writer
	}
	return lfshook.NewHook(writers, formatter)
}
