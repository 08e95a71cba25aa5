package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/goliatone/go-sigstudio/pkg/imaging"
	rendertemplate "github.com/goliatone/go-sigstudio/pkg/render/template"
	gotemplate "github.com/goliatone/go-sigstudio/pkg/render/template/gotemplate"
	"github.com/goliatone/go-sigstudio/pkg/state"
	"github.com/goliatone/go-sigstudio/pkg/studio"
)

//go:embed templates/*.tpl
var pageTemplates embed.FS

type Server struct {
	opts   Options
	studio *studio.Studio
	images *imaging.Processor
	repo   *state.Repository
	pages  rendertemplate.TemplateRenderer
	logger *log.Logger
}

// New builds a Server from defaults plus any overrides.
func New(fns ...OptionFn) (*Server, error) {
	opts := NewOptions(fns...)

	sub, err := fs.Sub(pageTemplates, "templates")
	if err != nil {
		return nil, fmt.Errorf("server: page templates: %w", err)
	}
	pages, err := gotemplate.New(gotemplate.WithFS(sub))
	if err != nil {
		return nil, fmt.Errorf("server: page engine: %w", err)
	}

	return &Server{
		opts:   opts,
		studio: opts.Studio,
		images: opts.Images,
		repo: state.NewRepository(opts.Store,
			state.WithLogger(opts.Logger),
			state.WithTTL(opts.SessionTTL),
		),
		pages:  pages,
		logger: opts.Logger,
	}, nil
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.opts.RequestTimeout))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/templates", s.handleTemplates)
		r.Post("/render", s.handleRender)
		r.Post("/vcard", s.handleVCard)
		r.Post("/image", s.handleImage)
		r.Get("/state", s.handleGetState)
		r.Put("/state", s.handlePutState)
		r.Delete("/state", s.handleDeleteState)
	})
	r.Get("/preview", s.handlePreview)

	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.opts.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"took", time.Since(start),
			"id", middleware.GetReqID(r.Context()),
		)
	})
}
