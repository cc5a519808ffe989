package useragent

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/uasniff/pkg/logger"
)

// LogExtractor returns a logger.ContextExtractor that adds the client
// classification stored by Middleware to every log record.
func LogExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		ua, ok := GetFromContext(ctx)
		if !ok || ua.UserAgent() == "" {
			return slog.Attr{}, false
		}
		return logger.Group("client",
			slog.String("device_type", ua.DeviceType()),
			slog.String("platform", ua.Platform()),
			slog.String("browser", ua.Browser()),
		), true
	}
}
