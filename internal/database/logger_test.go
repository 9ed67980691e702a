package database

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newBufferLogger() (*logrus.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	log := logrus.New()
	log.SetOutput(buf)
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.DebugLevel)
	return log, buf
}

func TestGormLogger_TraceError(t *testing.T) {
	log, buf := newBufferLogger()
	l := NewGormLogger(log)

	l.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT 1", 0
	}, errors.New("disk I/O error"))

	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), "disk I/O error")
}

func TestGormLogger_TraceNotFoundIsDebug(t *testing.T) {
	log, buf := newBufferLogger()
	l := NewGormLogger(log)

	l.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT * FROM kv_store", 0
	}, gorm.ErrRecordNotFound)

	assert.Contains(t, buf.String(), `"level":"debug"`)
	assert.NotContains(t, buf.String(), `"level":"error"`)
}

func TestOpenSQLite(t *testing.T) {
	log, _ := newBufferLogger()
	path := t.TempDir() + "/nested/filmapp.db"

	db, err := OpenSQLite(path, log)
	assert.NoError(t, err)
	assert.NoError(t, db.Exec("SELECT 1").Error)
	assert.NoError(t, CloseSQLite(db))
}
