package useragent_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uasniff/pkg/logger"
	"github.com/dmitrymomot/uasniff/pkg/useragent"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var (
		got   useragent.UserAgent
		found bool
	)
	handler := useragent.Middleware(useragent.New())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, found = useragent.GetFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("User-Agent", pixelUA)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.True(t, found)
	assert.Equal(t, "Pixel", got.Device())
	assert.Equal(t, useragent.DeviceTypeMobile, got.DeviceType())
	assert.Equal(t, []string{"en-us", "en"}, got.Languages())
}

func TestMiddlewareWithoutUserAgent(t *testing.T) {
	t.Parallel()

	var found bool
	handler := useragent.Middleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ua useragent.UserAgent
		ua, found = useragent.GetFromContext(r.Context())
		assert.Equal(t, useragent.DeviceTypeUnknown, ua.DeviceType())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Del("User-Agent")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.True(t, found)
}

func TestContext(t *testing.T) {
	t.Parallel()

	_, ok := useragent.GetFromContext(context.Background())
	assert.False(t, ok)

	ua := useragent.NewUserAgent(iPhoneUA, "iPhone", "iOS", "Safari", "", true, false)
	got, ok := useragent.GetFromContext(useragent.SetToContext(context.Background(), ua))
	require.True(t, ok)
	assert.Equal(t, "iPhone", got.Device())
}

func TestLogExtractor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithFormat(logger.FormatJSON),
		logger.WithContextExtractors(useragent.LogExtractor()),
	)

	ua := useragent.NewUserAgent(iPhoneUA, "iPhone", "iOS", "Safari", "", true, false)
	log.InfoContext(useragent.SetToContext(context.Background(), ua), "request")

	var record struct {
		Client map[string]string `json:"client"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, map[string]string{
		"device_type": "mobile",
		"platform":    "iOS",
		"browser":     "Safari",
	}, record.Client)

	buf.Reset()
	log.InfoContext(context.Background(), "no client")
	assert.NotContains(t, buf.String(), `"client"`)
}
