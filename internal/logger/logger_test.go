package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"
)

func TestInitWithOptions_Level(t *testing.T) {
	InitWithOptions(Options{Level: "debug"})
	assert.Equal(t, logrus.DebugLevel, Get().GetLevel())

	InitWithOptions(Options{Level: "nonsense"})
	assert.Equal(t, logrus.InfoLevel, Get().GetLevel())
}

func TestInitWithOptions_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "filmapp.log")
	InitWithOptions(Options{File: path})

	Get().WithField("film_id", 3).Info("Film added to favorites")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"film_id":3`)
	assert.Contains(t, string(data), `"msg":"Film added to favorites"`)
}

func TestInitWithOptions_FileOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "filmctl.log")
	InitWithOptions(Options{File: path, FileOnly: true})

	_, rotated := Get().Out.(*lumberjack.Logger)
	assert.True(t, rotated, "output should be the rotated file alone")

	Get().Info("Favorites cleared")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"Favorites cleared"`)
}

func TestInitWithOptions_FileAlsoMirrorsStderr(t *testing.T) {
	InitWithOptions(Options{File: filepath.Join(t.TempDir(), "filmapp.log")})

	_, rotated := Get().Out.(*lumberjack.Logger)
	assert.False(t, rotated)
}
