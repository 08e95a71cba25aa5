package studio

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-sigstudio/pkg/model"
	"github.com/goliatone/go-sigstudio/pkg/render"
	htmlrenderer "github.com/goliatone/go-sigstudio/pkg/renderers/html"
	textrenderer "github.com/goliatone/go-sigstudio/pkg/renderers/text"
	vcardrenderer "github.com/goliatone/go-sigstudio/pkg/renderers/vcard"
	"github.com/goliatone/go-sigstudio/pkg/styles"
	theme "github.com/goliatone/go-theme"
)

const defaultRendererName = render.FormatHTML

// Option customises the studio configuration.
type Option func(*Studio)

// WithRegistry injects a renderer registry. Missing built-in formats are
// registered on top of it.
func WithRegistry(registry *render.Registry) Option {
	return func(s *Studio) {
		s.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(s *Studio) {
		s.defaultRenderer = name
	}
}

// WithThemeSelector replaces the built-in style catalog.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(s *Studio) {
		s.selector = selector
	}
}

// WithThemeFallbacks sets the partials used when a manifest does not name
// one.
func WithThemeFallbacks(fallbacks map[string]string) Option {
	return func(s *Studio) {
		if len(fallbacks) == 0 {
			return
		}
		s.fallbacks = make(map[string]string, len(fallbacks))
		for key, value := range fallbacks {
			s.fallbacks[key] = value
		}
	}
}

// WithHTMLOptions configures the built-in HTML renderer.
func WithHTMLOptions(options ...htmlrenderer.Option) Option {
	return func(s *Studio) {
		s.htmlOptions = append(s.htmlOptions, options...)
	}
}

// Studio renders signatures into every registered export format. It is safe
// for concurrent use once constructed.
type Studio struct {
	registry        *render.Registry
	defaultRenderer string
	selector        theme.ThemeSelector
	fallbacks       map[string]string
	htmlOptions     []htmlrenderer.Option
	initialiseErr   error
}

// New constructs a Studio applying any provided options. Missing
// dependencies are initialised with the built-in implementations.
func New(options ...Option) *Studio {
	s := &Studio{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	s.applyDefaults()
	return s
}

// Request describes one render call.
type Request struct {
	Signature model.Signature

	// Renderer names the export format. Empty falls back to the default
	// renderer.
	Renderer string
}

// Output is the pair of formats produced for preview and copy.
type Output struct {
	HTML string `json:"html"`
	Text string `json:"text"`
}

// Generate renders the request through the selected renderer.
func (s *Studio) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("studio: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.initialiseErr; err != nil {
		return nil, err
	}

	sig := req.Signature.Normalized()

	renderer, err := s.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	options, err := s.renderOptions(sig)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, sig, options)
	if err != nil {
		return nil, fmt.Errorf("studio: render %s: %w", renderer.Name(), err)
	}
	return output, nil
}

// Render produces the HTML fragment and the plain-text fallback.
func (s *Studio) Render(ctx context.Context, sig model.Signature) (Output, error) {
	html, err := s.Generate(ctx, Request{Signature: sig, Renderer: render.FormatHTML})
	if err != nil {
		return Output{}, err
	}
	text, err := s.Generate(ctx, Request{Signature: sig, Renderer: render.FormatText})
	if err != nil {
		return Output{}, err
	}
	return Output{HTML: string(html), Text: string(text)}, nil
}

// VCard exports the contact as a vCard 3.0 card.
func (s *Studio) VCard(ctx context.Context, contact model.ContactData) ([]byte, error) {
	return s.Generate(ctx, Request{Signature: model.Signature{Contact: contact}, Renderer: render.FormatVCard})
}

// Formats lists the registered renderer names.
func (s *Studio) Formats() []string {
	if s.registry == nil {
		return nil
	}
	return s.registry.List()
}

// ContentType reports the media type of a registered format.
func (s *Studio) ContentType(name string) (string, error) {
	renderer, err := s.rendererFor(name)
	if err != nil {
		return "", err
	}
	return renderer.ContentType(), nil
}

func (s *Studio) renderOptions(sig model.Signature) (render.RenderOptions, error) {
	selection, err := s.selector.Select(sig.Template.String(), sig.Size.String())
	if err != nil {
		return render.RenderOptions{}, fmt.Errorf("studio: select theme: %w", err)
	}
	return render.RenderOptions{Theme: styles.Config(selection, s.fallbacks)}, nil
}

func (s *Studio) rendererFor(name string) (render.Renderer, error) {
	if s.registry == nil {
		return nil, errors.New("studio: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = s.defaultRenderer
	}
	renderer, err := s.registry.Get(target)
	if err != nil {
		return nil, fmt.Errorf("studio: renderer %q: %w", target, err)
	}
	return renderer, nil
}

func (s *Studio) applyDefaults() {
	if s.registry == nil {
		s.registry = render.NewRegistry()
	}
	if !s.registry.Has(render.FormatHTML) {
		renderer, err := htmlrenderer.New(s.htmlOptions...)
		if err != nil {
			s.initialiseErr = fmt.Errorf("studio: default renderer: %w", err)
		} else {
			s.registry.MustRegister(renderer)
		}
	}
	if !s.registry.Has(render.FormatText) {
		s.registry.MustRegister(textrenderer.New())
	}
	if !s.registry.Has(render.FormatVCard) {
		s.registry.MustRegister(vcardrenderer.New())
	}
	if s.selector == nil {
		s.selector = styles.DefaultCatalog()
	}
	if s.fallbacks == nil {
		s.fallbacks = styles.DefaultPartials()
	}
	if s.defaultRenderer == "" {
		s.defaultRenderer = defaultRendererName
	}
}
