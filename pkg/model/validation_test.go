package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestContactData_ValidateClean(t *testing.T) {
	contact := ContactData{
		FirstName: "Ada",
		Email:     "ada@example.com",
		Website:   "https://www.example.com/about",
		Color:     "#336699",
	}
	if notices := contact.Validate(); notices != nil {
		t.Fatalf("expected no notices, got %+v", notices)
	}
}

func TestContactData_ValidateReportsFieldsInFormOrder(t *testing.T) {
	contact := ContactData{
		Email:      "not-an-email",
		Website:    "no spaces allowed.com",
		Color:      "blue",
		Custom1URL: "example.org",
	}

	want := []Notice{
		{Field: FieldEmail, Message: "Please enter a valid Email"},
		{Field: FieldWebsite, Message: "Please enter a valid Website"},
		{Field: FieldColor, Message: "Color must be a hex value like #1A2B3C"},
		{Field: FieldCustom1Name, Message: "Custom1 Name is required"},
	}
	if diff := cmp.Diff(want, contact.Validate()); diff != "" {
		t.Fatalf("notices mismatch (-want +got):\n%s", diff)
	}
}

func TestFieldLabel(t *testing.T) {
	if got := fieldLabel("firstName"); got != "First Name" {
		t.Fatalf("label: %q", got)
	}
}
