// Package state saves and restores the editable signature state (contact
// fields, template, size, UI theme and image reference) on a store.Store.
// Persistence is best-effort: unreadable state is logged and treated as
// absent.
package state

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-sigstudio/pkg/model"
)

// Storage keys. The v2 prefix separates this layout from earlier saves.
const (
	KeyFormData = "sigstudio-v2-form-data"
	KeyTemplate = "sigstudio-v2-template"
	KeySize     = "sigstudio-v2-size"
	KeyTheme    = "sigstudio-v2-theme"
	KeyImage    = "sigstudio-v2-image"
)

// Keys lists every storage key in save order.
func Keys() []string {
	return []string{KeyFormData, KeyTemplate, KeySize, KeyTheme, KeyImage}
}

// Theme is the UI color scheme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme accepts "light" or "dark"; empty means light.
func ParseTheme(value string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(value))) {
	case "", ThemeLight:
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	default:
		return "", fmt.Errorf("state: unknown theme %q", value)
	}
}

// Snapshot is the persisted subset of the editing session.
type Snapshot struct {
	Contact  model.ContactData  `json:"contact" yaml:"contact"`
	Template model.TemplateKind `json:"template" yaml:"template"`
	Size     model.SizeProfile  `json:"size" yaml:"size"`
	Theme    Theme              `json:"theme" yaml:"theme"`
	Image    string             `json:"image,omitempty" yaml:"image,omitempty"`
}

// DefaultSnapshot is what a first visit starts with.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Template: model.DefaultTemplate,
		Size:     model.DefaultSize,
		Theme:    ThemeLight,
	}
}

// Signature converts the snapshot into a render input.
func (s Snapshot) Signature() model.Signature {
	return model.Signature{
		Contact:  s.Contact,
		Template: s.Template,
		Size:     s.Size,
		Image:    s.Image,
	}
}

// FromSignature builds a snapshot keeping the given theme.
func FromSignature(sig model.Signature, theme Theme) Snapshot {
	return Snapshot{
		Contact:  sig.Contact,
		Template: sig.Template,
		Size:     sig.Size,
		Theme:    theme,
		Image:    sig.Image,
	}
}

// Normalized replaces unknown template, size and theme values with the
// defaults.
func (s Snapshot) Normalized() Snapshot {
	if !s.Template.Valid() {
		s.Template = model.DefaultTemplate
	}
	if !s.Size.Valid() {
		s.Size = model.DefaultSize
	}
	if theme, err := ParseTheme(string(s.Theme)); err == nil {
		s.Theme = theme
	} else {
		s.Theme = ThemeLight
	}
	return s
}
