package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf)

	logger.Debug("hidden %d", 1)
	assert.Empty(t, buf.String())

	logger.Warning("shown %d", 2)
	assert.Contains(t, buf.String(), "shown 2")
	assert.Contains(t, buf.String(), "grepninja")

	buf.Reset()
	logger.SetVerbose(true)
	logger.Debug("visible %d", 3)
	assert.Contains(t, buf.String(), "visible 3")

	buf.Reset()
	logger.SetVerbose(false)
	logger.Debug("hidden again")
	assert.Empty(t, buf.String())
}

func TestLoggerSetOutput(t *testing.T) {
	var first, second bytes.Buffer
	logger := NewLogger(&first)

	logger.SetOutput(&second)
	logger.Warning("moved")

	assert.Empty(t, first.String())
	assert.Contains(t, second.String(), "moved")
}

func TestGetLoggerIsShared(t *testing.T) {
	assert.Same(t, GetLogger(), GetLogger())
}
