package testsupport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-sigstudio/pkg/model"
)

// SampleContact returns a fully populated contact used across renderer tests.
func SampleContact() model.ContactData {
	return model.ContactData{
		FirstName:   "Jane",
		LastName:    "Doe",
		Title:       "Staff Engineer",
		Company:     "Acme Corp",
		Email:       "jane@acme.test",
		Phone:       "+1 555 0100",
		Website:     "https://www.acme.test",
		Color:       "#0055aa",
		LinkedIn:    "janedoe",
		GitHub:      "github.com/janedoe",
		TikTok:      "@janedoe",
		Custom1Name: "Blog",
		Custom1URL:  "blog.acme.test",
	}
}

// MustLoadSignature reads a JSON or YAML signature fixture.
func MustLoadSignature(t *testing.T, path string) model.Signature {
	t.Helper()

	sig, err := LoadSignature(path)
	if err != nil {
		t.Fatalf("load signature: %v", err)
	}
	return sig
}

// LoadSignature reads a signature fixture without requiring testing.T. The
// decoder is picked from the file extension.
func LoadSignature(path string) (model.Signature, error) {
	if path == "" {
		return model.Signature{}, errors.New("testsupport: signature path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Signature{}, fmt.Errorf("testsupport: read signature: %w", err)
	}

	var sig model.Signature
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &sig)
	default:
		err = json.Unmarshal(data, &sig)
	}
	if err != nil {
		return model.Signature{}, fmt.Errorf("testsupport: decode signature: %w", err)
	}
	return sig, nil
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}

// MustParseHTML parses a rendered fragment for DOM assertions.
func MustParseHTML(t *testing.T, html []byte) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}
