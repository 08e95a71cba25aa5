package social

// Platform ids, in render order.
const (
	LinkedIn  = "linkedin"
	Twitter   = "twitter"
	GitHub    = "github"
	Instagram = "instagram"
	Facebook  = "facebook"
	TikTok    = "tiktok"
)

// Platform describes how a handle for one network becomes a link.
type Platform struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	BaseURL     string   `json:"baseUrl"`
	Domain      string   `json:"domain"`
	Aliases     []string `json:"aliases,omitempty"`
	Placeholder string   `json:"placeholder"`
}

var platforms = []Platform{
	{
		ID:          LinkedIn,
		Name:        "LinkedIn",
		BaseURL:     "https://linkedin.com/in",
		Domain:      "linkedin.com",
		Placeholder: "linkedin.com/in/username",
	},
	{
		ID:          Twitter,
		Name:        "Twitter/X",
		BaseURL:     "https://twitter.com",
		Domain:      "twitter.com",
		Aliases:     []string{"x.com"},
		Placeholder: "twitter.com/username",
	},
	{
		ID:          GitHub,
		Name:        "GitHub",
		BaseURL:     "https://github.com",
		Domain:      "github.com",
		Placeholder: "github.com/username",
	},
	{
		ID:          Instagram,
		Name:        "Instagram",
		BaseURL:     "https://instagram.com",
		Domain:      "instagram.com",
		Placeholder: "instagram.com/username",
	},
	{
		ID:          Facebook,
		Name:        "Facebook",
		BaseURL:     "https://facebook.com",
		Domain:      "facebook.com",
		Placeholder: "facebook.com/username",
	},
	{
		ID:          TikTok,
		Name:        "TikTok",
		BaseURL:     "https://tiktok.com",
		Domain:      "tiktok.com",
		Placeholder: "tiktok.com/@username",
	},
}

// Platforms returns the supported networks in render order.
func Platforms() []Platform {
	out := make([]Platform, len(platforms))
	copy(out, platforms)
	return out
}

// Lookup finds a platform by id.
func Lookup(id string) (Platform, bool) {
	for _, p := range platforms {
		if p.ID == id {
			return p, true
		}
	}
	return Platform{}, false
}
