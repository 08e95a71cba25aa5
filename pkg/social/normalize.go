package social

import (
	"regexp"
	"strings"
)

var (
	httpPrefix   = regexp.MustCompile(`(?i)^https?://`)
	schemePrefix = regexp.MustCompile(`^([a-zA-Z][a-zA-Z0-9+.-]*):`)
)

// linkSchemes are kept verbatim in custom links and the website line.
var linkSchemes = map[string]bool{"http": true, "https": true, "mailto": true}

// blockedSchemes never become a link, even without "//".
var blockedSchemes = map[string]bool{"javascript": true, "vbscript": true, "data": true, "file": true}

// CleanURL turns a handle, partial path or full URL into the platform's
// canonical link. Leading protocol and "www." are stripped; values that do
// not mention the platform domain are appended to the base URL (TikTok
// handles gain a single leading "@"), anything else is served over https.
func CleanURL(p Platform, raw string) string {
	value := strings.TrimSpace(raw)
	value = httpPrefix.ReplaceAllString(value, "")
	value = stripWWW(value)
	if value == "" {
		return ""
	}

	if !p.mentionsDomain(value) {
		value = strings.TrimLeft(value, "/")
		if p.ID == TikTok {
			value = "@" + strings.TrimLeft(value, "@")
		}
		return strings.TrimRight(p.BaseURL, "/") + "/" + value
	}
	return "https://" + value
}

// CustomURL keeps an http, https or mailto link verbatim and prefixes
// https:// when no scheme is present. Any other scheme yields "" so the link
// is dropped.
func CustomURL(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ""
	}
	if m := schemePrefix.FindStringSubmatch(value); m != nil {
		scheme := strings.ToLower(m[1])
		switch {
		case linkSchemes[scheme]:
			return value
		case blockedSchemes[scheme], strings.HasPrefix(value[len(m[0]):], "//"):
			return ""
		}
		// host:port without a scheme
	}
	return "https://" + strings.TrimLeft(value, "/")
}

// WebsiteURL is the link target for the website line: the entered address
// with its protocol kept, or https:// added.
func WebsiteURL(raw string) string {
	return CustomURL(raw)
}

// DisplayWebsite strips protocol and "www." for the visible website text.
func DisplayWebsite(raw string) string {
	value := strings.TrimSpace(raw)
	value = httpPrefix.ReplaceAllString(value, "")
	return stripWWW(value)
}

func stripWWW(value string) string {
	if len(value) >= 4 && strings.EqualFold(value[:4], "www.") {
		return value[4:]
	}
	return value
}

func (p Platform) mentionsDomain(value string) bool {
	lower := strings.ToLower(value)
	if p.Domain != "" && strings.Contains(lower, p.Domain) {
		return true
	}
	for _, alias := range p.Aliases {
		if strings.Contains(lower, alias) {
			return true
		}
	}
	return false
}
