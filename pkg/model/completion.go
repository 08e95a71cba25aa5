package model

import (
	"math"
	"strings"
)

// Completion weights: required fields count for 60 points, optional fields
// share the remaining 40.
const (
	requiredWeight = 60
	optionalWeight = 40
)

var (
	completionRequired = []string{FieldFirstName, FieldLastName, FieldEmail}
	completionOptional = []string{
		FieldTitle, FieldCompany, FieldPhone, FieldWebsite,
		FieldLinkedIn, FieldTwitter, FieldGitHub, FieldInstagram, FieldFacebook, FieldTikTok,
	}
)

// Completion reports how much of the form is filled in, as a rounded
// percentage in [0, 100]. Accent color and custom links are not counted.
func (c ContactData) Completion() int {
	required := filled(c, completionRequired)
	optional := filled(c, completionOptional)

	progress := float64(required)/float64(len(completionRequired))*requiredWeight +
		float64(optional)/float64(len(completionOptional))*optionalWeight
	return int(math.Min(math.Round(progress), 100))
}

func filled(c ContactData, keys []string) int {
	n := 0
	for _, key := range keys {
		if strings.TrimSpace(c.Get(key)) != "" {
			n++
		}
	}
	return n
}
