package logger

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	logger *logrus.Logger
	once   sync.Once
)

// Options tunes the process logger. The zero value logs JSON at info level to stderr.
type Options struct {
	Level    string
	// File, when set, receives a copy of every entry and is rotated by size.
	File     string
	// FileOnly sends entries to File alone, leaving stderr untouched.
	FileOnly bool
}

func Init() {
	InitWithOptions(Options{})
}

func InitWithOptions(opts Options) {
	logger = logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if opts.File != "" {
		rotated := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		if opts.FileOnly {
			logger.SetOutput(rotated)
		} else {
			logger.SetOutput(io.MultiWriter(os.Stderr, rotated))
		}
	}
}

func Get() *logrus.Logger {
	once.Do(func() {
		if logger == nil {
			Init()
		}
	})
	return logger
}

// Discard returns a logger that drops everything. Used by tests and the CLI.
func Discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
