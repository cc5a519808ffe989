package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uasniff/pkg/logger"
)

func TestGroup(t *testing.T) {
	t.Parallel()

	attr := logger.Group("client", slog.String("browser", "Chrome"), slog.Int("n", 2))
	require.Equal(t, "client", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "browser", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	t.Parallel()

	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	assert.True(t, logger.Errors(nil).Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestDomainAttrs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		attr  slog.Attr
		key   string
		value string
	}{
		{attr: logger.Component("crawler"), key: "component", value: "crawler"},
		{attr: logger.UserAgent("curl/7.68.0"), key: "user_agent", value: "curl/7.68.0"},
		{attr: logger.Category("iPhone"), key: "category", value: "iPhone"},
		{attr: logger.Pattern(`\biPhone\b`), key: "pattern", value: `\biPhone\b`},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.key, tc.attr.Key)
		assert.Equal(t, tc.value, tc.attr.Value.String())
	}

	d := logger.Duration(1500 * time.Millisecond)
	assert.Equal(t, "duration", d.Key)
	assert.Equal(t, 1500*time.Millisecond, d.Value.Duration())
}
