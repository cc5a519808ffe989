package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/uasniff/pkg/config"
	"github.com/dmitrymomot/uasniff/pkg/httpserver"
	"github.com/dmitrymomot/uasniff/pkg/logger"
	"github.com/dmitrymomot/uasniff/pkg/requestid"
	"github.com/dmitrymomot/uasniff/pkg/useragent"
)

type appConfig struct {
	Log   logger.Config
	Agent useragent.Config
	HTTP  httpserver.Config
}

// app carries what every command needs once flags and the environment
// are read.
type app struct {
	cfg      appConfig
	log      *slog.Logger
	detector *useragent.Detector
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var (
		envFiles  []string
		logLevel  string
		logFormat string
	)

	cmd := &cobra.Command{
		Use:   "uasniff",
		Short: "Classify HTTP clients by their user agent",
		Long: `uasniff tells phones, tablets, desktops and crawlers apart from the
User-Agent and related request headers, and reads platform and browser
versions out of them.

Settings come from the environment (optionally from .env files):
LOG_LEVEL, LOG_FORMAT, APP_ENV, UA_EXTENSIONS_FILE, UA_REGEXP_CACHE_SIZE,
UA_CRAWLER_FALLBACK and the HTTP_* server settings.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.LoadEnv(envFiles...); err != nil {
				return err
			}
			if err := config.Load(&a.cfg); err != nil {
				return err
			}
			if logLevel != "" {
				a.cfg.Log.Level = logLevel
			}
			if logFormat != "" {
				a.cfg.Log.Format = logFormat
			}
			return a.init(cmd)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringSliceVar(&envFiles, "env-file", nil, ".env files loaded before reading the environment")
	pf.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&logFormat, "log-format", "", "log format (text, json)")

	cmd.AddCommand(
		newDetectCmd(a),
		newIsCmd(a),
		newCallCmd(a),
		newVersionCmd(a),
		newLanguagesCmd(),
		newServeCmd(a),
	)
	return cmd
}

func (a *app) init(cmd *cobra.Command) error {
	logOpt, err := logger.FromConfig(a.cfg.Log)
	if err != nil {
		return err
	}
	a.log = logger.New(
		logOpt,
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextExtractors(requestid.LogExtractor(), useragent.LogExtractor()),
	)

	a.detector, err = useragent.NewFromConfig(a.cfg.Agent,
		useragent.WithLogger(a.log.With(logger.Component("useragent"))),
	)
	return err
}
