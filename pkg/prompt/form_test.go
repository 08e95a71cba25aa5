package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-sigstudio/pkg/model"
	"github.com/goliatone/go-sigstudio/pkg/state"
)

type stubDriver struct {
	inputs       map[string]string
	selectIdx    []int
	infoMessages []string
	defaults     map[string]string
	abortAt      string
	selectPos    int
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	if s.defaults == nil {
		s.defaults = map[string]string{}
	}
	s.defaults[cfg.Message] = cfg.Default
	if cfg.Message == s.abortAt {
		return "", ErrAborted
	}
	if val, ok := s.inputs[cfg.Message]; ok {
		if cfg.Validator != nil {
			if err := cfg.Validator(val); err != nil {
				return "", err
			}
		}
		return val, nil
	}
	return cfg.Default, nil
}

func (s *stubDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	return cfg.Default, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	if s.selectPos >= len(s.selectIdx) {
		return cfg.DefaultIndex, nil
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func TestForm_CollectsAnswers(t *testing.T) {
	driver := &stubDriver{
		inputs: map[string]string{
			"First name":  " Jane ",
			"Last name":   "Doe",
			"Email":       "jane@acme.test",
			"GitHub":      "janedoe",
			"Link 1 name": "Blog",
			"Link 1 URL":  "blog.acme.test",
		},
		selectIdx: []int{2, 0},
	}
	form := New(WithPromptDriver(driver))

	snap, err := form.Run(context.Background(), state.DefaultSnapshot())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if snap.Contact.FirstName != "Jane" || snap.Contact.LastName != "Doe" {
		t.Fatalf("unexpected name fields %+v", snap.Contact)
	}
	if snap.Contact.GitHub != "janedoe" || snap.Contact.Custom1URL != "blog.acme.test" {
		t.Fatalf("unexpected link fields %+v", snap.Contact)
	}
	if snap.Template != model.TemplateKinds()[2] || snap.Size != model.SizeProfiles()[0] {
		t.Fatalf("unexpected layout %q/%q", snap.Template, snap.Size)
	}
	if len(driver.infoMessages) != len(Sections()) {
		t.Fatalf("expected one heading per section, got %v", driver.infoMessages)
	}
}

func TestForm_PrefillsFromInitialState(t *testing.T) {
	driver := &stubDriver{}
	initial := state.DefaultSnapshot()
	initial.Contact.Company = "Acme Corp"
	initial.Template = model.TemplateExecutive

	snap, err := New(WithPromptDriver(driver)).Run(context.Background(), initial)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if driver.defaults["Company"] != "Acme Corp" {
		t.Fatalf("expected company default, got %q", driver.defaults["Company"])
	}
	if snap.Contact.Company != "Acme Corp" || snap.Template != model.TemplateExecutive {
		t.Fatalf("expected initial values to survive, got %+v", snap)
	}
}

func TestForm_ValidatorRejectsBadEmail(t *testing.T) {
	driver := &stubDriver{inputs: map[string]string{"Email": "not-an-email"}}
	_, err := New(WithPromptDriver(driver)).Run(context.Background(), state.DefaultSnapshot())
	if err == nil {
		t.Fatal("expected validation error")
	}
}

func TestForm_Abort(t *testing.T) {
	driver := &stubDriver{abortAt: "Phone"}
	_, err := New(WithPromptDriver(driver)).Run(context.Background(), state.DefaultSnapshot())
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestForm_SkipsLayoutQuestions(t *testing.T) {
	driver := &stubDriver{selectIdx: []int{5, 2}}
	initial := state.DefaultSnapshot()
	snap, err := New(WithPromptDriver(driver), WithLayoutQuestions(false)).Run(context.Background(), initial)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if driver.selectPos != 0 {
		t.Fatal("expected no select prompts")
	}
	if snap.Template != model.DefaultTemplate {
		t.Fatalf("unexpected template %q", snap.Template)
	}
}

func TestFieldValidator(t *testing.T) {
	if err := fieldValidator(model.FieldColor)("#12ab9F"); err != nil {
		t.Fatalf("expected valid color, got %v", err)
	}
	if err := fieldValidator(model.FieldColor)("blue"); err == nil {
		t.Fatal("expected invalid color error")
	}
	if err := fieldValidator(model.FieldWebsite)(""); err != nil {
		t.Fatalf("expected blank website to pass, got %v", err)
	}
}

func TestTranslateSurveyErr(t *testing.T) {
	other := errors.New("boom")
	if translateSurveyErr(other) != other {
		t.Fatal("expected unrelated errors to pass through")
	}
}
