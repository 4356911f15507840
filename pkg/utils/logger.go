package utils

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger с уровнями debug, info, warn и error поверх logrus
type Logger struct {
	entry *logrus.Entry
}

// Создаём глобальный экземпляр
var Log = NewLogger()

func NewLogger() *Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	l.SetLevel(logrus.InfoLevel)
	return &Logger{entry: logrus.NewEntry(l)}
}

type LoggerSetupParams struct {
	Level   string
	File    string
	JSON    bool
	Service string
}

// Setup перенастраивает глобальный логгер: уровень, формат и файл с ротацией
func Setup(params LoggerSetupParams) {
	l := logrus.New()
	l.SetLevel(GetLevel(params.Level))
	if params.JSON {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if params.File == "" {
		l.SetOutput(os.Stdout)
	} else {
		if !strings.HasSuffix(params.File, ".log") {
			params.File += ".log"
		}
		l.SetOutput(io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename: params.File,
			MaxSize:  50, // megabytes
			Compress: true,
		}))
	}

	entry := logrus.NewEntry(l)
	if params.Service != "" {
		entry = entry.WithField("service", params.Service)
	}
	Log = &Logger{entry: entry}
}

func GetLevel(level string) logrus.Level {
	lvl, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// Printf нужен gorm logger'у
func (l *Logger) Printf(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

func (l *Logger) Debug(msg string) {
	l.entry.Debug(msg)
}

func (l *Logger) Info(msg string) {
	l.entry.Info(msg)
}

func (l *Logger) Warn(msg string) {
	l.entry.Warn(msg)
}

func (l *Logger) Error(msg string) {
	l.entry.Error(msg)
}

func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{entry: l.entry.WithField(key, value)}
}

func (l *Logger) WithError(err error) *Logger {
	return &Logger{entry: l.entry.WithError(err)}
}

// Writer возвращает io.Writer для gin и других библиотек
func (l *Logger) Writer() io.Writer {
	return l.entry.Logger.Out
}
