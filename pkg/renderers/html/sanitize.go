package html

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	emailPolicyOnce sync.Once
	emailPolicy     *bluemonday.Policy
)

// Sanitize strips markup outside the email-safe subset the signature
// layouts use.
func Sanitize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(emailSanitizer().Sanitize(trimmed))
}

func emailSanitizer() *bluemonday.Policy {
	emailPolicyOnce.Do(func() {
		policy := bluemonday.NewPolicy()
		policy.AllowElements("div", "table", "tbody", "tr", "td", "span", "br", "a", "img")

		policy.AllowAttrs("style").Globally()
		policy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("div")
		policy.AllowAttrs("cellpadding", "cellspacing", "border").OnElements("table")
		policy.AllowAttrs("href", "target", "rel", "title").OnElements("a")
		policy.AllowAttrs("src", "alt", "width", "height").OnElements("img")

		policy.AllowURLSchemes("http", "https", "mailto", "tel")
		policy.AllowDataURIImages()
		policy.RequireParseableURLs(true)

		emailPolicy = policy
	})
	return emailPolicy
}
