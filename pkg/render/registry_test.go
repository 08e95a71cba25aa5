package render

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-sigstudio/pkg/model"
	"github.com/goliatone/go-sigstudio/pkg/testsupport"
)

type fakeRenderer struct {
	name        string
	contentType string
}

func (f fakeRenderer) Name() string        { return f.name }
func (f fakeRenderer) ContentType() string { return f.contentType }
func (f fakeRenderer) Render(context.Context, model.Signature, RenderOptions) ([]byte, error) {
	return []byte(f.name), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(fakeRenderer{name: "HTML", contentType: "text/html"})
	r.MustRegister(fakeRenderer{name: "text", contentType: "text/plain"})

	got, err := r.Get("html")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ContentType() != "text/html" {
		t.Fatalf("unexpected renderer %q", got.Name())
	}
	if !r.Has(" Text ") {
		t.Fatal("expected case and space insensitive lookup")
	}

	want := []Format{
		{Name: "html", ContentType: "text/html"},
		{Name: "text", ContentType: "text/plain"},
	}
	if diff := testsupport.CompareGolden(want, r.Formats()); diff != "" {
		t.Fatalf("formats mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_Errors(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(nil); err == nil {
		t.Fatal("expected nil renderer error")
	}
	if err := r.Register(fakeRenderer{}); err == nil {
		t.Fatal("expected empty name error")
	}
	r.MustRegister(fakeRenderer{name: "vcard"})
	if err := r.Register(fakeRenderer{name: "VCARD"}); err == nil {
		t.Fatal("expected duplicate error")
	}
	if _, err := r.Get("pdf"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}
