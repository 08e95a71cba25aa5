package styles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-sigstudio/pkg/model"
	theme "github.com/goliatone/go-theme"
)

// Styles are the inline CSS declarations and dimensions a renderer needs for
// one template/size/accent combination.
type Styles struct {
	Accent string `json:"accent"`

	Container   string `json:"container"`
	Table       string `json:"table"`
	ImageCell   string `json:"imageCell"`
	TextCell    string `json:"textCell"`
	Image       string `json:"image"`
	Name        string `json:"name"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Divider     string `json:"divider"`
	Contact     string `json:"contact"`
	ContactLink string `json:"contactLink"`
	Link        string `json:"link"`
	Social      string `json:"social"`

	NameFontSize int    `json:"nameFontSize"`
	ImageSize    int    `json:"imageSize"`
	ImageSide    string `json:"imageSide"`
	Align        string `json:"align"`
}

// Resolve turns a renderer config into inline styles for the template spec.
// A nil config resolves the built-in manifest for spec.Kind at medium size.
func Resolve(cfg *theme.RendererConfig, spec model.TemplateSpec, accent string) Styles {
	if cfg == nil {
		cfg = BuiltinConfig(spec.Kind, model.DefaultSize)
	}
	t := tokenSet{values: cfg.Tokens, accent: accent}

	s := Styles{
		Accent:       accent,
		NameFontSize: t.px(TokenNameSize),
		ImageSize:    t.px(TokenImageSize),
		ImageSide:    t.str(TokenImageSide, "left"),
		Align:        t.str(TokenAlign, "left"),
	}

	s.Container = t.container()
	s.Table = "border-collapse: collapse;"
	s.Name = join(
		decl("font-size", t.pxs(TokenNameSize)),
		decl("font-weight", t.str(TokenNameWeight, "700")),
		decl("color", t.color(TokenNameColor)),
		decl("margin", "0 0 "+t.pxs(TokenNameMargin)+" 0"),
		optional("text-transform", t.str(TokenNameTransform, "")),
		optional("letter-spacing", t.str(TokenNameSpacing, "")),
	)
	s.Title = join(
		decl("font-size", t.pxs(TokenTitleSize)),
		decl("font-weight", t.str(TokenTitleWeight, "normal")),
		decl("font-style", t.str(TokenTitleStyle, "normal")),
		decl("color", t.color(TokenTitleColor)),
		decl("margin", "0 0 "+t.pxs(TokenTitleMargin)+" 0"),
		optional("text-transform", t.str(TokenTitleTransform, "")),
		optional("letter-spacing", t.str(TokenTitleSpacing, "")),
	)
	s.Company = join(
		decl("font-size", t.pxs(TokenCompanySize)),
		decl("font-weight", companyWeight(spec.CompanyWeight)),
		decl("color", t.color(TokenCompanyColor)),
		decl("margin", "0 0 "+t.pxs(TokenCompanyMargin)+" 0"),
		optional("text-transform", t.str(TokenCompanyTransform, "")),
	)
	s.Contact = join(
		decl("font-size", t.pxs(TokenContactSize)),
		decl("color", t.color(TokenContactColor)),
		decl("margin", "0 0 "+t.pxs(TokenGap)+" 0"),
	)
	s.ContactLink = join(
		decl("color", "inherit"),
		decl("text-decoration", "none"),
	)
	s.Divider = join(
		decl("border-top", "1px solid "+accent),
		decl("margin", t.pxs(TokenGap)+" 0"),
		decl("height", "0"),
		decl("line-height", "0"),
		decl("font-size", "0"),
	)
	s.Link = join(
		decl("color", accent),
		decl("text-decoration", "none"),
	)
	s.Social = join(
		decl("font-size", t.pxs(TokenContactSize)),
		decl("margin", t.pxs(TokenGap)+" 0 0 0"),
	)

	if spec.ShowsImage() {
		radius := "50%"
		if spec.ImageStyle == model.ImageSquare {
			radius = "8px"
		}
		border := "none"
		if width := t.px(TokenImageBorder); width > 0 {
			border = fmt.Sprintf("%dpx solid %s", width, accent)
		}
		s.Image = join(
			decl("border-radius", radius),
			decl("border", border),
			decl("display", "block"),
			decl("object-fit", "cover"),
		)
		s.ImageCell = t.imageCell()
	}
	s.TextCell = join(
		decl("vertical-align", "middle"),
		decl("text-align", s.Align),
	)
	return s
}

// ForSignature selects the built-in manifest for the signature's template and
// size and resolves it.
func ForSignature(sig model.Signature) Styles {
	sig = sig.Normalized()
	return Resolve(BuiltinConfig(sig.Template, sig.Size), sig.Spec(), sig.Contact.Accent())
}

// BuiltinConfig returns the renderer config for a built-in template at the
// given size.
func BuiltinConfig(kind model.TemplateKind, size model.SizeProfile) *theme.RendererConfig {
	selection, err := DefaultCatalog().Select(kind.String(), size.String())
	if err != nil {
		selection, _ = DefaultCatalog().Select("", "")
	}
	return Config(selection, DefaultPartials())
}

func companyWeight(weight string) string {
	switch weight {
	case "bold":
		return "700"
	case "semibold":
		return "600"
	default:
		return "500"
	}
}

type tokenSet struct {
	values map[string]string
	accent string
}

func (t tokenSet) str(key, fallback string) string {
	if value := strings.TrimSpace(t.values[key]); value != "" {
		return value
	}
	return fallback
}

func (t tokenSet) px(key string) int {
	n, err := strconv.Atoi(strings.TrimSpace(t.values[key]))
	if err != nil {
		return 0
	}
	return n
}

func (t tokenSet) pxs(key string) string {
	return Pixels(t.px(key))
}

func (t tokenSet) color(key string) string {
	value := t.str(key, "inherit")
	if value == AccentValue {
		return t.accent
	}
	return value
}

func (t tokenSet) container() string {
	padY := t.px(TokenContainerPaddingY)
	padX := t.px(TokenContainerPaddingX)
	inset := t.px(TokenContainerInset)

	var padding string
	if padY != 0 || padX != 0 || inset != 0 {
		padding = fmt.Sprintf("%s %s %s %s", Pixels(padY), Pixels(padX), Pixels(padY), Pixels(padX+inset))
	}

	var border string
	if width := t.px(TokenContainerBorder); width > 0 {
		border = fmt.Sprintf("%dpx solid %s", width, t.color(TokenContainerBorderColor))
	}
	var accentBar string
	if width := t.px(TokenContainerAccentBar); width > 0 {
		accentBar = fmt.Sprintf("%dpx solid %s", width, t.accent)
	}
	var radius string
	if r := t.px(TokenContainerRadius); r > 0 {
		radius = strconv.Itoa(r) + "px"
	}

	return join(
		decl("font-family", t.str(TokenFontFamily, "Arial, sans-serif")),
		decl("line-height", t.str(TokenLineHeight, "1.5")),
		decl("text-align", t.str(TokenAlign, "left")),
		optional("padding", padding),
		optional("border", border),
		optional("border-left", accentBar),
		optional("border-radius", radius),
		optional("background", t.str(TokenContainerBackground, "")),
		optional("box-shadow", t.str(TokenContainerShadow, "")),
	)
}

func (t tokenSet) imageCell() string {
	padding := t.pxs(TokenCellPadding)
	side := "padding-right"
	if t.str(TokenImageSide, "left") == "right" {
		side = "padding-left"
	}
	if t.str(TokenAlign, "left") == "center" {
		return join(
			decl("text-align", "center"),
			decl("padding-bottom", padding),
		)
	}
	var width string
	if w := t.px(TokenCellWidth); w > 0 {
		width = strconv.Itoa(w) + "px"
	}
	return join(
		decl("vertical-align", "middle"),
		decl(side, padding),
		optional("width", width),
	)
}

type declaration struct {
	property string
	value    string
	skip     bool
}

func decl(property, value string) declaration {
	return declaration{property: property, value: value}
}

func optional(property, value string) declaration {
	return declaration{property: property, value: value, skip: value == ""}
}

func join(decls ...declaration) string {
	var b strings.Builder
	for _, d := range decls {
		if d.skip {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(d.property)
		b.WriteString(": ")
		b.WriteString(d.value)
		b.WriteByte(';')
	}
	return b.String()
}

// Pixels formats n as a CSS length; zero stays unitless.
func Pixels(n int) string {
	if n == 0 {
		return "0"
	}
	return strconv.Itoa(n) + "px"
}
