package render

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ErrUnknownFormat is returned for formats no renderer was registered for.
var ErrUnknownFormat = errors.New("render: unknown format")

// Format describes one registered export.
type Format struct {
	Name        string `json:"name"`
	ContentType string `json:"contentType"`
}

// Registry maps export format names to renderers. Names are matched
// case-insensitively. It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
}

func NewRegistry() *Registry {
	return &Registry{renderers: make(map[string]Renderer)}
}

func formatKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register adds renderer under its Name. A format can be registered once.
func (r *Registry) Register(renderer Renderer) error {
	if renderer == nil {
		return errors.New("render: renderer is required")
	}
	key := formatKey(renderer.Name())
	if key == "" {
		return errors.New("render: renderer name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.renderers[key]; exists {
		return fmt.Errorf("render: format %q already registered", key)
	}
	r.renderers[key] = renderer
	return nil
}

// MustRegister panics on registration failure.
func (r *Registry) MustRegister(renderer Renderer) {
	if err := r.Register(renderer); err != nil {
		panic(err)
	}
}

// Get returns the renderer for a format, wrapping ErrUnknownFormat.
func (r *Registry) Get(name string) (Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	renderer, ok := r.renderers[formatKey(name)]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, name)
	}
	return renderer, nil
}

func (r *Registry) Has(name string) bool {
	_, err := r.Get(name)
	return err == nil
}

// List returns the registered format names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Formats lists every format with its media type, sorted by name.
func (r *Registry) Formats() []Format {
	names := r.List()

	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Format, 0, len(names))
	for _, name := range names {
		if renderer, ok := r.renderers[name]; ok {
			out = append(out, Format{Name: name, ContentType: renderer.ContentType()})
		}
	}
	return out
}
