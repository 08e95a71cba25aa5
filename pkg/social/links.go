package social

import (
	"strconv"

	"github.com/goliatone/go-sigstudio/pkg/model"
)

// Link is a rendered social or custom link.
type Link struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	URL    string `json:"url"`
	Custom bool   `json:"custom,omitempty"`
}

// Links returns the populated platform links in platform order followed by
// the contact's custom links.
func Links(contact model.ContactData) []Link {
	var links []Link
	for _, p := range platforms {
		value := contact.SocialValue(p.ID)
		if value == "" {
			continue
		}
		url := CleanURL(p, value)
		if url == "" {
			continue
		}
		links = append(links, Link{ID: p.ID, Name: p.Name, URL: url})
	}
	for _, custom := range contact.CustomLinks() {
		url := CustomURL(custom.URL)
		if url == "" {
			continue
		}
		links = append(links, Link{
			ID:     "custom" + strconv.Itoa(custom.Slot),
			Name:   custom.Name,
			URL:    url,
			Custom: true,
		})
	}
	return links
}
