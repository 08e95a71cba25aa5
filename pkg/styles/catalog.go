package styles

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/goliatone/go-sigstudio/pkg/model"
	theme "github.com/goliatone/go-theme"
)

// ErrUnknownTheme reports a selection for a manifest or variant that is not
// in the catalog.
var ErrUnknownTheme = errors.New("styles: unknown theme")

// Catalog is a theme.ThemeSelector over a fixed set of manifests.
type Catalog struct {
	manifests      map[string]*theme.Manifest
	order          []string
	defaultTheme   string
	defaultVariant string
}

var _ theme.ThemeSelector = (*Catalog)(nil)

var (
	defaultCatalogOnce sync.Once
	defaultCatalog     *Catalog
	defaultCatalogErr  error
)

// DefaultCatalog returns the catalog of built-in template manifests.
func DefaultCatalog() *Catalog {
	defaultCatalogOnce.Do(func() {
		defaultCatalog, defaultCatalogErr = NewCatalog(Manifests()...)
	})
	if defaultCatalogErr != nil {
		panic(defaultCatalogErr)
	}
	return defaultCatalog
}

// NewCatalog validates the manifests against a go-theme registry and indexes
// them by name. The first manifest named after model.DefaultTemplate (or the
// first manifest) becomes the default theme; model.DefaultSize is the default
// variant.
func NewCatalog(manifests ...*theme.Manifest) (*Catalog, error) {
	if len(manifests) == 0 {
		return nil, errors.New("styles: at least one manifest is required")
	}

	registry := theme.NewRegistry()
	c := &Catalog{
		manifests:      make(map[string]*theme.Manifest, len(manifests)),
		defaultVariant: model.DefaultSize.String(),
	}
	for _, manifest := range manifests {
		if manifest == nil {
			continue
		}
		if _, exists := c.manifests[manifest.Name]; exists {
			return nil, fmt.Errorf("styles: duplicate manifest %q", manifest.Name)
		}
		if err := registry.Register(manifest); err != nil {
			return nil, fmt.Errorf("styles: register manifest %q: %w", manifest.Name, err)
		}
		c.manifests[manifest.Name] = manifest
		c.order = append(c.order, manifest.Name)
	}
	if len(c.order) == 0 {
		return nil, errors.New("styles: at least one manifest is required")
	}

	c.defaultTheme = c.order[0]
	if _, ok := c.manifests[model.DefaultTemplate.String()]; ok {
		c.defaultTheme = model.DefaultTemplate.String()
	}
	return c, nil
}

// Names lists manifest names in registration order.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.order...)
}

// Manifest returns the manifest registered under name.
func (c *Catalog) Manifest(name string) (*theme.Manifest, bool) {
	manifest, ok := c.manifests[name]
	return manifest, ok
}

// Select resolves a manifest and variant. Empty values fall back to the
// catalog defaults; the base manifest is selected when the variant is
// unknown to a manifest without variants.
func (c *Catalog) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = c.defaultTheme
	}
	manifest, ok := c.manifests[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownTheme, name)
	}

	variant = strings.ToLower(strings.TrimSpace(variant))
	if variant == "" {
		variant = c.defaultVariant
	}
	if len(manifest.Variants) > 0 {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("%w variant %q for %q", ErrUnknownTheme, variant, name)
		}
	}

	return &theme.Selection{
		Theme:    name,
		Variant:  variant,
		Manifest: manifest,
	}, nil
}
