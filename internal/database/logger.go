package database

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// GormLogger routes gorm output through logrus.
type GormLogger struct {
	logger *logrus.Logger
}

func NewGormLogger(log *logrus.Logger) *GormLogger {
	return &GormLogger{logger: log}
}

func (l *GormLogger) LogMode(gormlogger.LogLevel) gormlogger.Interface {
	return l
}

func (l *GormLogger) Info(_ context.Context, msg string, data ...interface{}) {
	l.logger.WithField("data", data).Info(msg)
}

func (l *GormLogger) Warn(_ context.Context, msg string, data ...interface{}) {
	l.logger.WithField("data", data).Warn(msg)
}

func (l *GormLogger) Error(_ context.Context, msg string, data ...interface{}) {
	l.logger.WithField("data", data).Error(msg)
}

func (l *GormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	sql, rows := fc()
	fields := logrus.Fields{
		"sql":     sql,
		"rows":    rows,
		"elapsed": time.Since(begin).String(),
	}

	// Lookups that find nothing are an expected outcome here.
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		l.logger.WithFields(fields).WithError(err).Error("GORM error")
		return
	}

	l.logger.WithFields(fields).Debug("GORM query")
}
