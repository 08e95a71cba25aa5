package model

// Field keys used by the persisted form-data map and the interactive form.
const (
	FieldFirstName   = "firstName"
	FieldLastName    = "lastName"
	FieldTitle       = "title"
	FieldCompany     = "company"
	FieldEmail       = "email"
	FieldPhone       = "phone"
	FieldWebsite     = "website"
	FieldColor       = "color"
	FieldLinkedIn    = "linkedin"
	FieldTwitter     = "twitter"
	FieldGitHub      = "github"
	FieldInstagram   = "instagram"
	FieldFacebook    = "facebook"
	FieldTikTok      = "tiktok"
	FieldCustom1Name = "custom1Name"
	FieldCustom1URL  = "custom1Url"
	FieldCustom2Name = "custom2Name"
	FieldCustom2URL  = "custom2Url"
)

type fieldAccessor func(*ContactData) *string

var fieldTable = []struct {
	key string
	get fieldAccessor
}{
	{FieldFirstName, func(c *ContactData) *string { return &c.FirstName }},
	{FieldLastName, func(c *ContactData) *string { return &c.LastName }},
	{FieldTitle, func(c *ContactData) *string { return &c.Title }},
	{FieldCompany, func(c *ContactData) *string { return &c.Company }},
	{FieldEmail, func(c *ContactData) *string { return &c.Email }},
	{FieldPhone, func(c *ContactData) *string { return &c.Phone }},
	{FieldWebsite, func(c *ContactData) *string { return &c.Website }},
	{FieldColor, func(c *ContactData) *string { return &c.Color }},
	{FieldLinkedIn, func(c *ContactData) *string { return &c.LinkedIn }},
	{FieldTwitter, func(c *ContactData) *string { return &c.Twitter }},
	{FieldGitHub, func(c *ContactData) *string { return &c.GitHub }},
	{FieldInstagram, func(c *ContactData) *string { return &c.Instagram }},
	{FieldFacebook, func(c *ContactData) *string { return &c.Facebook }},
	{FieldTikTok, func(c *ContactData) *string { return &c.TikTok }},
	{FieldCustom1Name, func(c *ContactData) *string { return &c.Custom1Name }},
	{FieldCustom1URL, func(c *ContactData) *string { return &c.Custom1URL }},
	{FieldCustom2Name, func(c *ContactData) *string { return &c.Custom2Name }},
	{FieldCustom2URL, func(c *ContactData) *string { return &c.Custom2URL }},
}

// FieldKeys lists every contact field key in form order.
func FieldKeys() []string {
	keys := make([]string, 0, len(fieldTable))
	for _, entry := range fieldTable {
		keys = append(keys, entry.key)
	}
	return keys
}

// Fields flattens the contact into a key-to-string map. Empty fields are
// kept so the map always carries the full key set.
func (c ContactData) Fields() map[string]string {
	out := make(map[string]string, len(fieldTable))
	for _, entry := range fieldTable {
		out[entry.key] = *entry.get(&c)
	}
	return out
}

// Get returns the value stored under key, or "" for unknown keys.
func (c ContactData) Get(key string) string {
	for _, entry := range fieldTable {
		if entry.key == key {
			return *entry.get(&c)
		}
	}
	return ""
}

// Set assigns value to the field named key. It reports false for unknown keys.
func (c *ContactData) Set(key, value string) bool {
	if c == nil {
		return false
	}
	for _, entry := range fieldTable {
		if entry.key == key {
			*entry.get(c) = value
			return true
		}
	}
	return false
}

// ContactFromFields rebuilds a contact from a flat map; unknown keys are
// ignored and missing keys stay empty.
func ContactFromFields(fields map[string]string) ContactData {
	var c ContactData
	for key, value := range fields {
		c.Set(key, value)
	}
	return c
}
