package logger

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, b []byte) []map[string]any {
	t.Helper()

	var entries []map[string]any
	sc := bufio.NewScanner(bytes.NewReader(b))
	for sc.Scan() {
		var e map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &e), sc.Text())
		entries = append(entries, e)
	}
	require.NoError(t, sc.Err())
	return entries
}

func TestNewLogger_EntryFields(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "client")

	l.Debug().Int64("session_id", 42).Msg("analytics loaded")

	entries := decodeLines(t, buf.Bytes())
	require.Len(t, entries, 1)
	e := entries[0]

	assert.Equal(t, "client", e["role"])
	assert.Equal(t, "debug", e["level"])
	assert.EqualValues(t, 42, e["session_id"])
	assert.Contains(t, e, zerolog.TimestampFieldName)
	assert.True(t, strings.HasSuffix(e["func"].(string), "TestNewLogger_EntryFields"), e["func"])
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	base := newLogger(&buf, "server")

	base.WithComponent("refresh").Info().Msg("a")
	base.Info().Msg("b")

	entries := decodeLines(t, buf.Bytes())
	require.Len(t, entries, 2)
	assert.Equal(t, "refresh", entries[0]["component"])
	assert.Equal(t, "server", entries[0]["role"])
	assert.NotContains(t, entries[1], "component", "parent logger must stay untouched")
}

func TestGetChildLogger_Independent(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "server")

	child := parent.GetChildLogger()
	child.Logger = child.With().Str("trace_id", "t-1").Logger()

	child.Info().Msg("child")
	parent.Info().Msg("parent")

	entries := decodeLines(t, buf.Bytes())
	require.Len(t, entries, 2)
	assert.Equal(t, "t-1", entries[0]["trace_id"])
	assert.Equal(t, "server", entries[0]["role"])
	assert.NotContains(t, entries[1], "trace_id")
}

func TestFromContext(t *testing.T) {
	t.Run("attached logger", func(t *testing.T) {
		var buf bytes.Buffer
		l := newLogger(&buf, "server").WithComponent("handler")
		ctx := l.WithContext(context.Background())

		FromContext(ctx).Info().Msg("from ctx")

		entries := decodeLines(t, buf.Bytes())
		require.Len(t, entries, 1)
		assert.Equal(t, "handler", entries[0]["component"])
	})

	t.Run("nothing attached", func(t *testing.T) {
		l := FromContext(context.Background())
		require.NotNil(t, l)
		assert.NotPanics(t, func() { l.Info().Msg("default logger") })
	})
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "server")

	r := httptest.NewRequest("GET", "/sessions", nil)
	r = r.WithContext(l.With().Str("trace_id", "abc").Logger().WithContext(r.Context()))

	FromRequest(r).Warn().Msg("slow request")

	entries := decodeLines(t, buf.Bytes())
	require.Len(t, entries, 1)
	assert.Equal(t, "abc", entries[0]["trace_id"])
	assert.Equal(t, "warn", entries[0]["level"])
}

func TestNop(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
	assert.Equal(t, zerolog.Disabled, l.WithComponent("x").GetLevel())
}

func TestNewClientLogger_WritesNextToExecutable(t *testing.T) {
	exe, err := os.Executable()
	require.NoError(t, err)
	path := filepath.Join(filepath.Dir(exe), ClientLogFile)
	if _, err = os.Stat(path); err == nil {
		t.Skipf("%s already exists", path)
	}
	t.Cleanup(func() { _ = os.Remove(path) })

	NewClientLogger("client").Info().Msg("dashboard started")

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		t.Skip("executable directory is not writable")
	}
	require.NoError(t, err)

	entries := decodeLines(t, data)
	require.Len(t, entries, 1)
	assert.Equal(t, "client", entries[0]["role"])
	assert.Equal(t, "dashboard started", entries[0]["message"])
}
