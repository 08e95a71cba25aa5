package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-sigstudio/pkg/model"
	"github.com/goliatone/go-sigstudio/pkg/state"
)

// Question is a single contact field prompt.
type Question struct {
	Key     string
	Message string
	Help    string
}

// Section groups questions under a heading.
type Section struct {
	Title     string
	Questions []Question
}

var sections = []Section{
	{
		Title: "Personal information",
		Questions: []Question{
			{Key: model.FieldFirstName, Message: "First name"},
			{Key: model.FieldLastName, Message: "Last name"},
			{Key: model.FieldTitle, Message: "Job title"},
			{Key: model.FieldCompany, Message: "Company"},
		},
	},
	{
		Title: "Contact details",
		Questions: []Question{
			{Key: model.FieldEmail, Message: "Email"},
			{Key: model.FieldPhone, Message: "Phone"},
			{Key: model.FieldWebsite, Message: "Website", Help: "Scheme is optional, e.g. acme.com"},
			{Key: model.FieldColor, Message: "Accent color", Help: "Hex value like #1A2B3C"},
		},
	},
	{
		Title: "Social profiles",
		Questions: []Question{
			{Key: model.FieldLinkedIn, Message: "LinkedIn", Help: "Handle or profile URL"},
			{Key: model.FieldTwitter, Message: "Twitter/X", Help: "Handle or profile URL"},
			{Key: model.FieldGitHub, Message: "GitHub", Help: "Handle or profile URL"},
			{Key: model.FieldInstagram, Message: "Instagram", Help: "Handle or profile URL"},
			{Key: model.FieldFacebook, Message: "Facebook", Help: "Handle or profile URL"},
			{Key: model.FieldTikTok, Message: "TikTok", Help: "Handle or profile URL"},
		},
	},
	{
		Title: "Custom links",
		Questions: []Question{
			{Key: model.FieldCustom1Name, Message: "Link 1 name"},
			{Key: model.FieldCustom1URL, Message: "Link 1 URL"},
			{Key: model.FieldCustom2Name, Message: "Link 2 name"},
			{Key: model.FieldCustom2URL, Message: "Link 2 URL"},
		},
	},
}

// Sections returns the form layout in prompt order.
func Sections() []Section {
	out := make([]Section, len(sections))
	for i, section := range sections {
		out[i] = Section{Title: section.Title, Questions: append([]Question(nil), section.Questions...)}
	}
	return out
}

// Option configures a Form.
type Option func(*Form)

// WithPromptDriver overrides the prompt driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(f *Form) {
		if driver != nil {
			f.driver = driver
		}
	}
}

// WithLayoutQuestions toggles the template and size pickers.
func WithLayoutQuestions(enabled bool) Option {
	return func(f *Form) {
		f.askLayout = enabled
	}
}

// Form collects a signature interactively.
type Form struct {
	driver    PromptDriver
	askLayout bool
}

// New constructs a Form backed by the survey driver unless overridden.
func New(options ...Option) *Form {
	f := &Form{askLayout: true}
	for _, opt := range options {
		if opt != nil {
			opt(f)
		}
	}
	if f.driver == nil {
		f.driver = NewSurveyDriver()
	}
	return f
}

// Run walks every section, pre-filling answers from initial. Validation
// notices are shown inline by the driver; blank answers are always
// accepted.
func (f *Form) Run(ctx context.Context, initial state.Snapshot) (state.Snapshot, error) {
	if f == nil || f.driver == nil {
		return state.Snapshot{}, ErrNoDriver
	}
	snap := initial.Normalized()

	for _, section := range sections {
		if err := f.driver.Info(ctx, section.Title); err != nil {
			return state.Snapshot{}, err
		}
		for _, q := range section.Questions {
			answer, err := f.driver.Input(ctx, InputConfig{
				Message:   q.Message,
				Default:   snap.Contact.Get(q.Key),
				Help:      q.Help,
				Validator: fieldValidator(q.Key),
			})
			if err != nil {
				return state.Snapshot{}, fmt.Errorf("prompt: %s: %w", q.Key, err)
			}
			snap.Contact.Set(q.Key, strings.TrimSpace(answer))
		}
	}

	if f.askLayout {
		kind, err := f.selectTemplate(ctx, snap.Template)
		if err != nil {
			return state.Snapshot{}, err
		}
		snap.Template = kind

		size, err := f.selectSize(ctx, snap.Size)
		if err != nil {
			return state.Snapshot{}, err
		}
		snap.Size = size
	}

	return snap, nil
}

func (f *Form) selectTemplate(ctx context.Context, current model.TemplateKind) (model.TemplateKind, error) {
	kinds := model.TemplateKinds()
	options := make([]string, len(kinds))
	selected := 0
	for i, kind := range kinds {
		options[i] = fmt.Sprintf("%s (%s)", kind, kind.Spec().Description)
		if kind == current {
			selected = i
		}
	}
	idx, err := f.driver.Select(ctx, SelectConfig{Message: "Template", Options: options, DefaultIndex: selected})
	if err != nil {
		return "", fmt.Errorf("prompt: template: %w", err)
	}
	if idx < 0 || idx >= len(kinds) {
		return "", errors.New("prompt: template selection out of range")
	}
	return kinds[idx], nil
}

func (f *Form) selectSize(ctx context.Context, current model.SizeProfile) (model.SizeProfile, error) {
	sizes := model.SizeProfiles()
	options := make([]string, len(sizes))
	selected := 0
	for i, size := range sizes {
		options[i] = string(size)
		if size == current {
			selected = i
		}
	}
	idx, err := f.driver.Select(ctx, SelectConfig{Message: "Size", Options: options, DefaultIndex: selected})
	if err != nil {
		return "", fmt.Errorf("prompt: size: %w", err)
	}
	if idx < 0 || idx >= len(sizes) {
		return "", errors.New("prompt: size selection out of range")
	}
	return sizes[idx], nil
}

// fieldValidator reports the contact notice for key, if any.
func fieldValidator(key string) func(string) error {
	return func(value string) error {
		var probe model.ContactData
		probe.Set(key, value)
		for _, notice := range probe.Validate() {
			if notice.Field == key {
				return errors.New(notice.Message)
			}
		}
		return nil
	}
}
