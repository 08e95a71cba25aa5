package text

import (
	"path/filepath"
	"testing"

	"github.com/goliatone/go-sigstudio/pkg/model"
	"github.com/goliatone/go-sigstudio/pkg/render"
	"github.com/goliatone/go-sigstudio/pkg/testsupport"
)

func TestFormat_FullContact(t *testing.T) {
	got := Format(model.Signature{Contact: testsupport.SampleContact()})

	want := "Jane Doe\n" +
		"Staff Engineer\n" +
		"Acme Corp\n" +
		"\n---\n\n" +
		"📧 jane@acme.test\n" +
		"📱 +1 555 0100\n" +
		"🌐 https://www.acme.test\n" +
		"LinkedIn: https://linkedin.com/in/janedoe\n" +
		"GitHub: https://github.com/janedoe\n" +
		"TikTok: https://tiktok.com/@janedoe\n" +
		"Blog: https://blog.acme.test\n"
	if diff := testsupport.CompareGolden(want, got); diff != "" {
		t.Fatalf("text mismatch (-want +got):\n%s", diff)
	}
}

func TestFormat_EmptyContact(t *testing.T) {
	got := Format(model.Signature{})
	if got != "John Doe\n\n---\n\n" {
		t.Fatalf("unexpected empty signature text: %q", got)
	}
}

func TestRenderer_Render(t *testing.T) {
	renderer := New()
	if renderer.Name() != render.FormatText {
		t.Fatalf("unexpected renderer name %q", renderer.Name())
	}

	sig := model.Signature{Contact: model.ContactData{FirstName: "Ada", Twitter: "x.com/ada"}}
	out, err := renderer.Render(testsupport.Context(), sig, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "Ada\n\n---\n\nTwitter/X: https://x.com/ada\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestFormat_GoldenFixture(t *testing.T) {
	sig := testsupport.MustLoadSignature(t, filepath.Join("testdata", "partial.yaml"))
	got := Format(sig)

	goldenPath := filepath.Join("testdata", "partial.golden")
	if testsupport.WriteMaybeGolden(t, goldenPath, []byte(got)) {
		return
	}
	want := testsupport.MustReadGoldenString(t, goldenPath)
	if diff := testsupport.CompareGolden(want, got); diff != "" {
		t.Fatalf("golden mismatch (-want +got):\n%s", diff)
	}
}
