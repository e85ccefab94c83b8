// Package server serves the balance chart over HTTP. Every request runs
// the account pipelines afresh, so edited exports show up on reload.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/cleared-dev/balances/internal/chart"
	"github.com/cleared-dev/balances/internal/pipeline"
	"github.com/cleared-dev/balances/internal/report"
)

// RunFunc produces a pipeline result. A non-nil Result may accompany an
// error when every account failed.
type RunFunc func(ctx context.Context) (*pipeline.Result, error)

// Options controls how the chart is drawn.
type Options struct {
	Title  string
	Width  int
	Height int
}

// Server handles HTTP requests for the balance chart.
type Server struct {
	run    RunFunc
	opts   Options
	logger *log.Logger
	router chi.Router
	page   *template.Template
}

// New creates a server and registers its routes.
func New(run RunFunc, opts Options, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		run:    run,
		opts:   opts,
		logger: logger,
		router: chi.NewRouter(),
		page:   template.Must(template.New("index").Parse(indexHTML)),
	}
	s.setupRoutes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is canceled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	s.logger.Info("listening", "addr", addr)
	select {
	case err := <-errc:
		return fmt.Errorf("serving %s: %w", addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) setupRoutes() {
	r := s.router
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.withLogging)

	r.Get("/", s.handleHome)
	r.Get("/chart.svg", s.handleChart(chart.SVG))
	r.Get("/chart.png", s.handleChart(chart.PNG))
	r.Get("/balances.csv", s.handleCSV)
	r.Get("/api/summary", s.handleSummary)
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	res, err := s.run(r.Context())
	data := newPageData(s.opts.Title, res, err)

	var buf bytes.Buffer
	if err := s.page.Execute(&buf, data); err != nil {
		s.respondError(w, r, http.StatusInternalServerError, "failed to render page", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleChart(f chart.Format) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := s.run(r.Context())
		if err != nil {
			s.respondError(w, r, http.StatusInternalServerError, "failed to load balances", err)
			return
		}

		c := chart.New(s.opts.Title, s.opts.Width, s.opts.Height)
		for _, series := range res.Series() {
			c.Append(series)
		}
		var buf bytes.Buffer
		if err := c.Render(&buf, f); err != nil {
			s.respondError(w, r, http.StatusInternalServerError, "failed to render chart", err)
			return
		}
		w.Header().Set("Content-Type", f.ContentType())
		w.Header().Set("Cache-Control", "no-store")
		_, _ = buf.WriteTo(w)
	}
}

func (s *Server) handleCSV(w http.ResponseWriter, r *http.Request) {
	res, err := s.run(r.Context())
	if err != nil {
		s.respondError(w, r, http.StatusInternalServerError, "failed to load balances", err)
		return
	}
	var buf bytes.Buffer
	if err := report.WriteDaily(&buf, res.Timeline, res.Daily()...); err != nil {
		s.respondError(w, r, http.StatusInternalServerError, "failed to write csv", err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="balances.csv"`)
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	res, err := s.run(r.Context())
	data := newPageData(s.opts.Title, res, err)
	status := http.StatusOK
	if err != nil {
		status = http.StatusInternalServerError
	}
	if err := s.writeJSON(w, status, data); err != nil {
		s.logger.Warn("failed to write json response", "err", err)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// respondError logs the error and returns a minimal JSON error body.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	if err != nil {
		s.logger.Warn("request error", "status", status, "msg", message, "err", err, "method", r.Method, "path", r.URL.Path)
	} else {
		s.logger.Warn("request error", "status", status, "msg", message, "method", r.Method, "path", r.URL.Path)
	}
	_ = s.writeJSON(w, status, map[string]string{
		"status": "error",
		"error":  message,
	})
}

// withLogging logs each request and recovers panics.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("panic recovered", "panic", rec, "method", r.Method, "path", r.URL.Path)
				s.respondError(w, r, http.StatusInternalServerError, "internal server error", fmt.Errorf("panic: %v", rec))
			}
		}()
		next.ServeHTTP(w, r)
		s.logger.Debug("http request", "method", r.Method, "path", r.URL.Path,
			"request_id", middleware.GetReqID(r.Context()), "took", time.Since(start))
	})
}
