package utils

import (
	"bytes"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormat_DecorateText(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(ErrorColor+"failed"+DefaultColor, DecorateText("failed", ErrorMessage))
	assert.Equal(SuccessColor+"done"+DefaultColor, DecorateText("done", SuccessMessage))
	assert.Equal("raw", DecorateText("raw", MessageType(42)))

	SetColor(false)
	defer SetColor(true)
	assert.Equal("failed", DecorateText("failed", ErrorMessage))
}

func TestFormat_FormatTime(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("250ms", FormatTime(250*time.Millisecond))
	assert.Equal("1.50s", FormatTime(1500*time.Millisecond))
	assert.Equal("2m 5.00s", FormatTime(2*time.Minute+5*time.Second))
	assert.Equal("1h 1m 1.00s", FormatTime(time.Hour+time.Minute+time.Second))
}

func TestMath_MinMaxAbs(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(2, Min(2, 7))
	assert.Equal(2, Min(7, 2))
	assert.Equal(7, Max(2, 7))
	assert.Equal(3, Abs(-3))
	assert.Equal(1.5, Abs(1.5))
}

func TestSpinner_StopPrintsMessage(t *testing.T) {
	var buf bytes.Buffer

	s := NewSpinner(&buf, "working", time.Millisecond, false)
	s.StopMsg = "finished"
	s.Start()
	s.Start()
	time.Sleep(5 * time.Millisecond)
	s.Stop()
	s.Stop()

	out := buf.String()
	assert.True(t, strings.HasSuffix(out, "finished"))
}

func TestSpinner_RestoreCursorWhileRunning(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("cursor escape codes are not written on windows")
	}
	var buf bytes.Buffer

	s := NewSpinner(&buf, "working", time.Millisecond, true)
	s.Start()
	time.Sleep(3 * time.Millisecond)
	s.RestoreCursor()
	s.Stop()

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\033[?25l"))
	assert.Equal(t, 2, strings.Count(out, "\033[?25h"))
}
