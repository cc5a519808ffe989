// Package httpserver runs an http.Handler with sane timeouts and graceful
// shutdown.
//
// Run binds the listener first, so an address with port 0 works and Addr
// reports the chosen port once Ready is closed. The server stops when the
// context passed to Run ends or Shutdown is called; in-flight requests get
// the configured shutdown timeout to finish.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	r := chi.NewRouter()
//	r.Get("/healthz", httpserver.HealthCheckHandler(log))
//	if err := srv.Run(ctx, r); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Listen failures are wrapped with ErrStart and shutdown failures with
// ErrShutdown.
package httpserver
