package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(l Logger) {
	l.(*stdLogger).now = func() time.Time {
		return time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	}
}

func TestText_SortedKeysAndQuoting(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Output: &buf, App: "pets-api"})
	fixedClock(l)

	l.Info("user created", Fields{"user_id": "user5", "note": "two words"})

	assert.Equal(t,
		`app=pets-api level=info msg="user created" note="two words" ts=2025-12-22T10:00:00Z user_id=user5`+"\n",
		buf.String())
}

func TestJSON_WithMergesFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Output: &buf, Format: FormatJSON}).With(Fields{"component": "store"})

	l.Warn("slow", Fields{"ms": 12, "": "ignored"})

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "warn", got["level"])
	assert.Equal(t, "slow", got["msg"])
	assert.Equal(t, "store", got["component"])
	assert.EqualValues(t, 12, got["ms"])
	assert.NotContains(t, got, "")
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Output: &buf, Level: Warn})

	l.Debug("d", nil)
	l.Info("i", nil)
	l.Warn("w", nil)
	l.Error("e", nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "level=warn")
	assert.Contains(t, lines[1], "level=error")
}

func TestParse(t *testing.T) {
	assert.Equal(t, Debug, ParseLevel("DEBUG"))
	assert.Equal(t, Warn, ParseLevel("warning"))
	assert.Equal(t, Info, ParseLevel(""))
	assert.Equal(t, Info, ParseLevel("loud"))
	assert.Equal(t, FormatJSON, ParseFormat(" json "))
	assert.Equal(t, FormatText, ParseFormat("xml"))
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		Discard().With(Fields{"a": 1}).Error("nothing", nil)
	})
}
