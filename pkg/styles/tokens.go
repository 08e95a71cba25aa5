package styles

// Token keys carried by every template manifest. Keys listed in
// scaledTokens hold whole pixel values and are multiplied by the size
// profile's scale factor.
const (
	TokenFontFamily = "font.family"
	TokenAlign      = "align"

	TokenLineHeight = "density.line"
	TokenGap        = "density.gap"

	TokenNameSize      = "name.size"
	TokenNameWeight    = "name.weight"
	TokenNameMargin    = "name.margin"
	TokenNameTransform = "name.transform"
	TokenNameSpacing   = "name.spacing"
	TokenNameColor     = "name.color"

	TokenTitleSize      = "title.size"
	TokenTitleColor     = "title.color"
	TokenTitleWeight    = "title.weight"
	TokenTitleStyle     = "title.style"
	TokenTitleMargin    = "title.margin"
	TokenTitleTransform = "title.transform"
	TokenTitleSpacing   = "title.spacing"

	TokenCompanySize      = "company.size"
	TokenCompanyColor     = "company.color"
	TokenCompanyMargin    = "company.margin"
	TokenCompanyTransform = "company.transform"

	TokenContactSize  = "contact.size"
	TokenContactColor = "contact.color"

	TokenImageSize   = "image.size"
	TokenImageBorder = "image.border"
	TokenImageSide   = "image.side"

	TokenCellPadding = "cell.padding"
	TokenCellWidth   = "cell.width"

	TokenContainerPaddingY    = "container.padding-y"
	TokenContainerPaddingX    = "container.padding-x"
	TokenContainerInset       = "container.inset"
	TokenContainerAccentBar   = "container.accent-bar"
	TokenContainerBorder      = "container.border"
	TokenContainerBorderColor = "container.border-color"
	TokenContainerRadius      = "container.radius"
	TokenContainerBackground  = "container.background"
	TokenContainerShadow      = "container.shadow"
)

// AccentValue as a color token resolves to the contact's accent color.
const AccentValue = "accent"

// Partial keys resolved through RendererConfig.Partials.
const (
	PartialLayout   = "signature.layout"
	PartialIdentity = "signature.identity"
	PartialContact  = "signature.contact"
	PartialSocial   = "signature.social"
)

var scaledTokens = []string{
	TokenGap,
	TokenNameSize,
	TokenNameMargin,
	TokenTitleSize,
	TokenTitleMargin,
	TokenCompanySize,
	TokenCompanyMargin,
	TokenContactSize,
	TokenImageSize,
	TokenImageBorder,
	TokenCellPadding,
	TokenCellWidth,
	TokenContainerPaddingY,
	TokenContainerPaddingX,
	TokenContainerInset,
	TokenContainerAccentBar,
	TokenContainerBorder,
	TokenContainerRadius,
}

// Density is a line-height and vertical gap pair.
type Density struct {
	LineHeight string
	Gap        int
}

// Density levels shared across templates.
var (
	DensityCompact = Density{LineHeight: "1.3", Gap: 2}
	DensityMedium  = Density{LineHeight: "1.5", Gap: 4}
	DensityLoose   = Density{LineHeight: "1.7", Gap: 6}
)

// DefaultPartials maps partial keys to the embedded template names used when
// a manifest does not override them.
func DefaultPartials() map[string]string {
	return map[string]string{
		PartialLayout:   "layouts/horizontal.tpl",
		PartialIdentity: "partials/identity.tpl",
		PartialContact:  "partials/contact.tpl",
		PartialSocial:   "partials/social.tpl",
	}
}
