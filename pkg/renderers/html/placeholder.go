package html

import "encoding/base64"

const placeholderSVG = `<svg width="80" height="80" viewBox="0 0 80 80" xmlns="http://www.w3.org/2000/svg">` +
	`<rect width="80" height="80" fill="#f1f5f9" rx="12"/>` +
	`<circle cx="40" cy="30" r="14" fill="#cbd5e1"/>` +
	`<path d="M40 50c-10 0-18 8-18 18h36c0-10-8-18-18-18z" fill="#94a3b8"/>` +
	`</svg>`

// PlaceholderImage is the silhouette shown when no image was uploaded.
var PlaceholderImage = "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(placeholderSVG))
