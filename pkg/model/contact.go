package model

import (
	"regexp"
	"strconv"
	"strings"
)

// PlaceholderName is shown whenever both name fields are empty.
const PlaceholderName = "John Doe"

// DefaultAccentColor is used when the accent color is empty or malformed.
const DefaultAccentColor = "#000000"

// MaxCustomLinks bounds the number of free-form links a contact can carry.
const MaxCustomLinks = 2

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ContactData is the flat record collected from the signature form. Keys in
// the JSON/YAML encoding match the persisted form-data map.
type ContactData struct {
	FirstName string `json:"firstName,omitempty" yaml:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty" yaml:"lastName,omitempty"`
	Title     string `json:"title,omitempty" yaml:"title,omitempty"`
	Company   string `json:"company,omitempty" yaml:"company,omitempty"`
	Email     string `json:"email,omitempty" yaml:"email,omitempty" validate:"omitempty,email"`
	Phone     string `json:"phone,omitempty" yaml:"phone,omitempty" validate:"omitempty,max=40"`
	Website   string `json:"website,omitempty" yaml:"website,omitempty" validate:"omitempty,weburl"`
	Color     string `json:"color,omitempty" yaml:"color,omitempty" validate:"omitempty,accent"`

	LinkedIn  string `json:"linkedin,omitempty" yaml:"linkedin,omitempty"`
	Twitter   string `json:"twitter,omitempty" yaml:"twitter,omitempty"`
	GitHub    string `json:"github,omitempty" yaml:"github,omitempty"`
	Instagram string `json:"instagram,omitempty" yaml:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty" yaml:"facebook,omitempty"`
	TikTok    string `json:"tiktok,omitempty" yaml:"tiktok,omitempty"`

	Custom1Name string `json:"custom1Name,omitempty" yaml:"custom1Name,omitempty" validate:"required_with=Custom1URL"`
	Custom1URL  string `json:"custom1Url,omitempty" yaml:"custom1Url,omitempty" validate:"omitempty,weburl"`
	Custom2Name string `json:"custom2Name,omitempty" yaml:"custom2Name,omitempty" validate:"required_with=Custom2URL"`
	Custom2URL  string `json:"custom2Url,omitempty" yaml:"custom2Url,omitempty" validate:"omitempty,weburl"`
}

// CustomLink is a user-named link rendered after the social platforms.
type CustomLink struct {
	Slot int
	Name string
	URL  string
}

// FullName joins the trimmed first and last names, falling back to
// PlaceholderName when both are empty.
func (c ContactData) FullName() string {
	name := strings.TrimSpace(strings.TrimSpace(c.FirstName) + " " + strings.TrimSpace(c.LastName))
	if name == "" {
		return PlaceholderName
	}
	return name
}

// Accent returns the accent color when it is a valid #RRGGBB value and the
// default accent otherwise.
func (c ContactData) Accent() string {
	color := strings.TrimSpace(c.Color)
	if IsHexColor(color) {
		return color
	}
	return DefaultAccentColor
}

// IsHexColor reports whether value is a six digit hex color with a leading #.
func IsHexColor(value string) bool {
	return hexColorPattern.MatchString(value)
}

// SocialValue returns the raw value entered for the platform id.
func (c ContactData) SocialValue(id string) string {
	switch id {
	case "linkedin":
		return strings.TrimSpace(c.LinkedIn)
	case "twitter":
		return strings.TrimSpace(c.Twitter)
	case "github":
		return strings.TrimSpace(c.GitHub)
	case "instagram":
		return strings.TrimSpace(c.Instagram)
	case "facebook":
		return strings.TrimSpace(c.Facebook)
	case "tiktok":
		return strings.TrimSpace(c.TikTok)
	default:
		return ""
	}
}

// CustomLinks returns the populated custom links in slot order. A link
// without a URL is skipped; a link without a name is labelled by its slot.
func (c ContactData) CustomLinks() []CustomLink {
	slots := [MaxCustomLinks][2]string{
		{c.Custom1Name, c.Custom1URL},
		{c.Custom2Name, c.Custom2URL},
	}

	var links []CustomLink
	for i, slot := range slots {
		url := strings.TrimSpace(slot[1])
		if url == "" {
			continue
		}
		name := strings.TrimSpace(slot[0])
		if name == "" {
			name = "Link " + strconv.Itoa(i+1)
		}
		links = append(links, CustomLink{Slot: i + 1, Name: name, URL: url})
	}
	return links
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
func (c ContactData) Trimmed() ContactData {
	fields := c.Fields()
	for key, value := range fields {
		fields[key] = strings.TrimSpace(value)
	}
	return ContactFromFields(fields)
}

// IsZero reports whether no field carries a value.
func (c ContactData) IsZero() bool {
	for _, value := range c.Fields() {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}
