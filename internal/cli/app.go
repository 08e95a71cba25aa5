package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	htmlrenderer "github.com/goliatone/go-sigstudio/pkg/renderers/html"
	"github.com/goliatone/go-sigstudio/pkg/state"
	"github.com/goliatone/go-sigstudio/pkg/store"
	"github.com/goliatone/go-sigstudio/pkg/studio"
)

// newStudio builds the renderer set from config.
func (a *app) newStudio() *studio.Studio {
	options := []htmlrenderer.Option{htmlrenderer.WithSanitizer(a.cfg.Render.Sanitize)}
	if dir := a.cfg.Render.TemplatesDir; dir != "" {
		options = append(options, htmlrenderer.WithTemplatesDir(dir))
	}
	return studio.New(studio.WithHTMLOptions(options...))
}

// openRepository opens the configured store. The caller closes the store.
func (a *app) openRepository(ctx context.Context) (*state.Repository, store.Store, error) {
	s, err := a.cfg.Store.Open(ctx)
	if err != nil {
		return nil, nil, err
	}
	repo := state.NewRepository(s,
		state.WithLogger(loggerFromContext(ctx)),
		state.WithTTL(a.cfg.Store.TTL),
	)
	return repo, s, nil
}

// outputWriter returns stdout or the named file.
func outputWriter(stdout io.Writer, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, f.Close, nil
}

func closeQuietly(ctx context.Context, s store.Store) {
	if s == nil {
		return
	}
	if err := s.Close(); err != nil {
		loggerFromContext(ctx).Warn("close store", "err", err)
	}
}
