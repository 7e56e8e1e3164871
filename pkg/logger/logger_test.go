package logger

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(f func()) string {
	oldStdout := os.Stdout

	r, w, _ := os.Pipe()
	os.Stdout = w

	outputChan := make(chan string)
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		outputChan <- buf.String()
	}()

	f()

	w.Close()
	os.Stdout = oldStdout

	return <-outputChan
}

func TestNewLogger(t *testing.T) {
	l := NewLogger()
	require.NotNil(t, l)

	out := captureOutput(func() {
		NewLogger().Info("hello")
	})
	assert.Contains(t, out, `"level":"info"`)
	assert.Contains(t, out, `"message":"hello"`)
}

func TestNewLoggerWithLevel(t *testing.T) {
	out := captureOutput(func() {
		l := NewLoggerWithLevel("warn")
		l.Info("suppressed")
		l.Warn("visible")
	})
	assert.NotContains(t, out, "suppressed")
	assert.Contains(t, out, "visible")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("info"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("WARN"))
	assert.Equal(t, zerolog.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zerolog.FatalLevel, parseLevel("fatal"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("bogus"))
}

func TestWithField(t *testing.T) {
	out := captureOutput(func() {
		NewLogger().WithField("workout_id", "w1").Error("boom")
	})
	assert.Contains(t, out, `"workout_id":"w1"`)
	assert.Contains(t, out, `"message":"boom"`)
}

func TestWithFields(t *testing.T) {
	out := captureOutput(func() {
		NewLogger().WithFields(map[string]interface{}{
			"user_id": "u1",
			"set_id":  "s1",
		}).Info("logged")
	})
	assert.Contains(t, out, `"user_id":"u1"`)
	assert.Contains(t, out, `"set_id":"s1"`)
}

func TestTestLogger(t *testing.T) {
	l := NewTestLogger(t)
	l.Debug("debug")
	l.Info("info")
	l.Warn("warn")
	l.Error("error")
	assert.Equal(t, l, l.WithField("k", "v"))
	assert.Equal(t, l, l.WithFields(map[string]interface{}{"k": "v"}))
}
