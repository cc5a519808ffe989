package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/uasniff/pkg/httpserver"
	"github.com/dmitrymomot/uasniff/pkg/logger"
	"github.com/dmitrymomot/uasniff/pkg/requestid"
	"github.com/dmitrymomot/uasniff/pkg/useragent"
)

// maxBodyBytes bounds POST /v1/detect payloads.
const maxBodyBytes = 64 << 10

// readinessProbe must classify as a phone for the service to be ready.
const readinessProbe = "Mozilla/5.0 (iPhone; CPU iPhone OS 14_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Mobile/15E148 Safari/604.1"

func (a *app) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		middleware.Recoverer,
		useragent.Middleware(a.detector),
		a.accessLog,
	)

	r.Get("/healthz", httpserver.HealthCheckHandler(a.log))
	r.Get("/readyz", httpserver.HealthCheckHandler(a.log, a.ready))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/detect", a.handleDetectSelf)
		r.Post("/detect", a.handleDetect)
		r.Get("/is/{category}", a.handleIs)
		r.Get("/version/{property}", a.handleVersion)
	})
	return r
}

func (a *app) ready(context.Context) error {
	if !a.detector.IsPhone(readinessProbe) {
		return errors.New("detector failed the readiness probe")
	}
	return nil
}

func (a *app) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		a.log.DebugContext(r.Context(), "request served",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			logger.Duration(time.Since(start)),
		)
	})
}

func (a *app) handleDetectSelf(w http.ResponseWriter, r *http.Request) {
	ua, _ := useragent.GetFromContext(r.Context())
	writeJSON(w, http.StatusOK, ua)
}

type detectRequest struct {
	UserAgent string            `json:"user_agent"`
	Headers   map[string]string `json:"headers"`
}

func (a *app) handleDetect(w http.ResponseWriter, r *http.Request) {
	var req detectRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h := make(http.Header, len(req.Headers)+1)
	for name, value := range req.Headers {
		h.Set(name, value)
	}
	if req.UserAgent != "" {
		h.Set("User-Agent", req.UserAgent)
	}

	ua, err := a.detector.Detect(h)
	if errors.Is(err, useragent.ErrEmptyUserAgent) {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, ua)
}

func (a *app) handleIs(w http.ResponseWriter, r *http.Request) {
	ua, _ := useragent.GetFromContext(r.Context())
	category := chi.URLParam(r, "category")

	ok, err := a.detector.Is(category, ua.UserAgent())
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"category": category,
		"match":    ok,
	})
}

func (a *app) handleVersion(w http.ResponseWriter, r *http.Request) {
	ua, _ := useragent.GetFromContext(r.Context())
	property := chi.URLParam(r, "property")

	writeJSON(w, http.StatusOK, map[string]any{
		"property": property,
		"version":  a.detector.Version(property, ua.UserAgent()),
		"float":    a.detector.VersionFloat(property, ua.UserAgent()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
