// Package logger builds *slog.Logger values from functional options and
// injects attributes taken from context.Context into every record.
//
// New picks slog.NewJSONHandler or slog.NewTextHandler according to the
// configured Format and wraps it in a ContextHandler, which runs the
// registered ContextExtractor callbacks on each log call.
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment(logger.Production, "uasniff"),
//		logger.WithContextExtractors(useragent.LogExtractor()),
//	)
//	log.InfoContext(ctx, "request classified", logger.UserAgent(ua))
//
// Settings can also come from the environment through Config:
//
//	var cfg logger.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//	opt, err := logger.FromConfig(cfg)
//	if err != nil {
//		return err
//	}
//	log := logger.New(opt)
//
// Attribute helpers such as Error, Component, UserAgent and Pattern keep key
// names consistent. Error and Errors return an empty attribute for nil
// errors, so they can be passed without a nil check.
package logger
