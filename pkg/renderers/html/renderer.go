package html

import (
	"context"
	"fmt"
	"io/fs"
	"strings"

	"github.com/goliatone/go-sigstudio/pkg/model"
	"github.com/goliatone/go-sigstudio/pkg/render"
	rendertemplate "github.com/goliatone/go-sigstudio/pkg/render/template"
	gotemplate "github.com/goliatone/go-sigstudio/pkg/render/template/gotemplate"
	"github.com/goliatone/go-sigstudio/pkg/social"
	"github.com/goliatone/go-sigstudio/pkg/styles"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateDir      string
	templateRenderer rendertemplate.TemplateRenderer
	sanitize         bool
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk. Templates
// missing from the directory resolve from the embedded bundle.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		cfg.templateDir = strings.TrimSpace(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithSanitizer runs the rendered fragment through the email-safe policy.
func WithSanitizer(enabled bool) Option {
	return func(cfg *config) {
		cfg.sanitize = enabled
	}
}

type Renderer struct {
	templates rendertemplate.TemplateRenderer
	sanitize  bool
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engineOptions := []gotemplate.Option{
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tpl"),
		}
		if cfg.templateDir != "" {
			engineOptions = append(engineOptions, gotemplate.WithBaseDir(cfg.templateDir))
		}
		engine, err := gotemplate.New(engineOptions...)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer, sanitize: cfg.sanitize}, nil
}

func (r *Renderer) Name() string {
	return render.FormatHTML
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the signature fragment. Identity, contact and social blocks
// are rendered through their partials first and handed to the layout.
func (r *Renderer) Render(ctx context.Context, sig model.Signature, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sig = sig.Normalized()
	spec := sig.Spec()
	cfg := options.Theme
	if cfg == nil {
		cfg = styles.BuiltinConfig(sig.Template, sig.Size)
	}
	st := styles.Resolve(cfg, spec, sig.Contact.Accent())
	partials := mergePartials(cfg.Partials)

	identityData := identity(sig)
	identityData["styles"] = st
	identityHTML, err := r.partial(partials, styles.PartialIdentity, identityData)
	if err != nil {
		return nil, err
	}

	contactHTML, err := r.partial(partials, styles.PartialContact, map[string]any{
		"lines":  contactLines(sig.Contact),
		"inline": spec.Layout == model.LayoutTextOnly,
		"styles": st,
	})
	if err != nil {
		return nil, err
	}

	socialHTML, err := r.partial(partials, styles.PartialSocial, map[string]any{
		"links":  social.Links(sig.Contact),
		"styles": st,
	})
	if err != nil {
		return nil, err
	}

	data := map[string]any{
		"template": sig.Template.String(),
		"size":     sig.Size.String(),
		"styles":   st,
		"blocks": map[string]any{
			"identity": identityHTML,
			"contact":  contactHTML,
			"social":   socialHTML,
		},
	}
	if image := imageFor(sig, st); image != nil {
		data["image"] = image
	}

	result, err := r.partial(partials, styles.PartialLayout, data)
	if err != nil {
		return nil, err
	}
	if r.sanitize {
		result = Sanitize(result)
	}
	return []byte(result), nil
}

func (r *Renderer) partial(partials map[string]string, key string, data map[string]any) (string, error) {
	name := partials[key]
	if name == "" {
		return "", fmt.Errorf("html renderer: partial %q not configured", key)
	}
	out, err := r.templates.RenderTemplate(name, data)
	if err != nil {
		return "", fmt.Errorf("html renderer: render %s: %w", key, err)
	}
	return strings.TrimSpace(out), nil
}

func mergePartials(configured map[string]string) map[string]string {
	out := styles.DefaultPartials()
	for key, value := range configured {
		if strings.TrimSpace(value) != "" {
			out[key] = value
		}
	}
	return out
}
