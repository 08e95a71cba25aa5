package state

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/goliatone/go-sigstudio/pkg/model"
	"github.com/goliatone/go-sigstudio/pkg/store"
	"github.com/goliatone/go-sigstudio/pkg/testsupport"
)

func TestRepository_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(store.NewMemoryStore())

	want := Snapshot{
		Contact:  testsupport.SampleContact(),
		Template: model.TemplateExecutive,
		Size:     model.SizeLarge,
		Theme:    ThemeDark,
		Image:    "data:image/jpeg;base64,AAAA",
	}
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, found := repo.Load(ctx)
	if !found {
		t.Fatalf("expected saved state")
	}
	if diff := testsupport.CompareGolden(want, got); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestRepository_LoadWithoutStateReturnsDefaults(t *testing.T) {
	got, found := NewRepository(nil).Load(context.Background())
	if found {
		t.Fatalf("null store should not report saved state")
	}
	if diff := testsupport.CompareGolden(DefaultSnapshot(), got); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestRepository_CorruptValuesAreLoggedAndIgnored(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemoryStore()
	_ = mem.Set(ctx, KeyFormData, []byte("{oops"), 0)
	_ = mem.Set(ctx, KeyTemplate, []byte(`"retro"`), 0)
	_ = mem.Set(ctx, KeySize, []byte(`"small"`), 0)

	var logs bytes.Buffer
	repo := NewRepository(mem, WithLogger(log.New(&logs)))

	got, found := repo.Load(ctx)
	if !found {
		t.Fatalf("expected partial state to be found")
	}
	if !got.Contact.IsZero() {
		t.Fatalf("corrupt form data should yield an empty contact")
	}
	if got.Template != model.DefaultTemplate || got.Size != model.SizeSmall {
		t.Fatalf("unexpected selection: %s/%s", got.Template, got.Size)
	}
	if !strings.Contains(logs.String(), "corrupt") {
		t.Fatalf("expected corrupt state warning, got %q", logs.String())
	}
}

func TestRepository_SessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemoryStore()
	base := NewRepository(mem)

	alice := base.ForSession("alice")
	bob := base.ForSession("bob")
	if alice.Key(KeyTemplate) != "alice:"+KeyTemplate {
		t.Fatalf("unexpected session key %q", alice.Key(KeyTemplate))
	}

	snap := DefaultSnapshot()
	snap.Template = model.TemplateMinimal
	if err := alice.Save(ctx, snap); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, found := bob.Load(ctx); found {
		t.Fatalf("bob should not see alice's state")
	}
	if got, _ := alice.Load(ctx); got.Template != model.TemplateMinimal {
		t.Fatalf("alice state lost: %s", got.Template)
	}
}

func TestRepository_ClearAndImageRemoval(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemoryStore()
	repo := NewRepository(mem, WithTTL(time.Hour))

	snap := DefaultSnapshot()
	snap.Image = "data:image/jpeg;base64,AAAA"
	_ = repo.Save(ctx, snap)

	snap.Image = ""
	_ = repo.Save(ctx, snap)
	if _, ok, _ := mem.Get(ctx, KeyImage); ok {
		t.Fatalf("saving without image should remove the stored image")
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, found := repo.Load(ctx); found {
		t.Fatalf("expected no state after clear")
	}
}

func TestRepository_SaveReportsStoreErrors(t *testing.T) {
	mem := store.NewMemoryStore()
	_ = mem.Close()

	err := NewRepository(mem).Save(context.Background(), DefaultSnapshot())
	if !errors.Is(err, store.ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
}

func TestParseTheme(t *testing.T) {
	if theme, err := ParseTheme(" Dark "); err != nil || theme != ThemeDark {
		t.Fatalf("parse dark: %v %v", theme, err)
	}
	if theme, _ := ParseTheme(""); theme != ThemeLight {
		t.Fatalf("empty theme should be light")
	}
	if _, err := ParseTheme("sepia"); err == nil {
		t.Fatalf("expected error for unknown theme")
	}
}
