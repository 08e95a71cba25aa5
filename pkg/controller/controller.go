// Package controller owns the editable signature, re-rendering it after a
// quiet period and autosaving it on a longer one. Every mutation supersedes
// the previously scheduled render, so only the latest state is rendered.
package controller

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/goliatone/go-sigstudio/pkg/model"
	"github.com/goliatone/go-sigstudio/pkg/state"
	"github.com/goliatone/go-sigstudio/pkg/studio"
)

// Default debounce intervals.
const (
	DefaultRenderDelay   = 150 * time.Millisecond
	DefaultAutosaveDelay = 2 * time.Second
)

// ErrClosed is returned after Close.
var ErrClosed = errors.New("controller: closed")

// Renderer is the subset of studio.Studio the controller needs.
type Renderer interface {
	Render(ctx context.Context, sig model.Signature) (studio.Output, error)
}

// RenderFunc receives each completed render.
type RenderFunc func(out studio.Output, err error)

// Option configures a Controller.
type Option func(*Controller)

// WithRenderDelay overrides the render debounce.
func WithRenderDelay(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.renderDelay = d
		}
	}
}

// WithAutosaveDelay overrides the autosave debounce.
func WithAutosaveDelay(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.autosaveDelay = d
		}
	}
}

// WithRepository enables autosave.
func WithRepository(repo *state.Repository) Option {
	return func(c *Controller) {
		c.repo = repo
	}
}

// WithOnRender registers the render callback.
func WithOnRender(fn RenderFunc) Option {
	return func(c *Controller) {
		c.onRender = fn
	}
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithInitial seeds the controller state.
func WithInitial(snap state.Snapshot) Option {
	return func(c *Controller) {
		c.snapshot = snap.Normalized()
	}
}

// Controller serialises mutations and schedules renders and saves.
type Controller struct {
	renderer      Renderer
	repo          *state.Repository
	onRender      RenderFunc
	logger        *log.Logger
	renderDelay   time.Duration
	autosaveDelay time.Duration

	mu           sync.Mutex
	snapshot     state.Snapshot
	generation   uint64
	saved        uint64
	renderTimer  *time.Timer
	saveTimer    *time.Timer
	closed       bool
	last         studio.Output
	renderCtx    context.Context
	cancelRender context.CancelFunc
}

// New constructs a Controller rendering through r.
func New(r Renderer, options ...Option) *Controller {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Controller{
		renderer:      r,
		logger:        log.New(io.Discard),
		renderDelay:   DefaultRenderDelay,
		autosaveDelay: DefaultAutosaveDelay,
		snapshot:      state.DefaultSnapshot(),
		renderCtx:     ctx,
		cancelRender:  cancel,
	}
	for _, opt := range options {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() state.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot
}

// Last returns the most recent render output.
func (c *Controller) Last() studio.Output {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

// Update applies fn to the state under the lock and schedules a render and
// an autosave. Pending renders for older states are superseded.
func (c *Controller) Update(fn func(*state.Snapshot)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	if fn != nil {
		fn(&c.snapshot)
	}
	c.snapshot = c.snapshot.Normalized()
	c.generation++
	gen := c.generation

	if c.renderTimer != nil {
		c.renderTimer.Stop()
	}
	c.renderTimer = time.AfterFunc(c.renderDelay, func() { c.renderGeneration(gen) })

	if c.repo != nil {
		if c.saveTimer != nil {
			c.saveTimer.Stop()
		}
		c.saveTimer = time.AfterFunc(c.autosaveDelay, func() { c.saveGeneration(gen) })
	}
	return nil
}

// SetField updates one contact field by storage key.
func (c *Controller) SetField(key, value string) error {
	var unknown bool
	err := c.Update(func(s *state.Snapshot) {
		unknown = !s.Contact.Set(key, value)
	})
	if err == nil && unknown {
		c.logger.Debug("ignoring unknown field", "key", key)
	}
	return err
}

// SetTemplate selects a template.
func (c *Controller) SetTemplate(kind model.TemplateKind) error {
	return c.Update(func(s *state.Snapshot) { s.Template = kind })
}

// SetSize selects a size profile.
func (c *Controller) SetSize(size model.SizeProfile) error {
	return c.Update(func(s *state.Snapshot) { s.Size = size })
}

// SetImage replaces the image reference; empty restores the placeholder.
func (c *Controller) SetImage(dataURI string) error {
	return c.Update(func(s *state.Snapshot) { s.Image = dataURI })
}

// Flush cancels pending timers, renders the current state and saves it.
func (c *Controller) Flush(ctx context.Context) (studio.Output, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return studio.Output{}, ErrClosed
	}
	c.stopTimers()
	gen := c.generation
	snap := c.snapshot
	c.mu.Unlock()

	out, err := c.renderer.Render(ctx, snap.Signature())
	c.deliver(gen, out, err)
	if err != nil {
		return studio.Output{}, err
	}

	if c.repo != nil {
		if saveErr := c.repo.Save(ctx, snap); saveErr != nil {
			return out, saveErr
		}
		c.mu.Lock()
		if gen > c.saved {
			c.saved = gen
		}
		c.mu.Unlock()
	}
	return out, nil
}

// Close stops the timers. Scheduled renders that already started finish
// but their results are dropped.
func (c *Controller) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	c.stopTimers()
	c.cancelRender()
	return nil
}

func (c *Controller) stopTimers() {
	if c.renderTimer != nil {
		c.renderTimer.Stop()
		c.renderTimer = nil
	}
	if c.saveTimer != nil {
		c.saveTimer.Stop()
		c.saveTimer = nil
	}
}

func (c *Controller) renderGeneration(gen uint64) {
	c.mu.Lock()
	if c.closed || gen != c.generation {
		c.mu.Unlock()
		return
	}
	snap := c.snapshot
	ctx := c.renderCtx
	c.mu.Unlock()

	out, err := c.renderer.Render(ctx, snap.Signature())
	c.deliver(gen, out, err)
}

func (c *Controller) deliver(gen uint64, out studio.Output, err error) {
	c.mu.Lock()
	if c.closed || gen != c.generation {
		c.mu.Unlock()
		c.logger.Debug("dropping superseded render", "generation", gen)
		return
	}
	if err == nil {
		c.last = out
	}
	callback := c.onRender
	c.mu.Unlock()

	if err != nil {
		c.logger.Warn("render failed", "err", err)
	}
	if callback != nil {
		callback(out, err)
	}
}

func (c *Controller) saveGeneration(gen uint64) {
	c.mu.Lock()
	if c.closed || gen != c.generation || gen <= c.saved {
		c.mu.Unlock()
		return
	}
	snap := c.snapshot
	ctx := c.renderCtx
	c.mu.Unlock()

	if err := c.repo.Save(ctx, snap); err != nil {
		return
	}
	c.mu.Lock()
	if gen > c.saved {
		c.saved = gen
	}
	c.mu.Unlock()
	c.logger.Debug("autosaved", "generation", gen)
}
