package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-sigstudio/pkg/model"
	"github.com/goliatone/go-sigstudio/pkg/store"
	"github.com/goliatone/go-sigstudio/pkg/testsupport"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sigstudio.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := testsupport.CompareGolden(Default(), cfg); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
[store]
backend = "memory"
ttl = "1h"

[server]
addr = ":9090"
secure_cookie = true

[render]
template = "Executive"
size = "large"
sanitize = false

[editor]
render_delay = "50ms"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Store.Backend != BackendMemory || cfg.Store.TTL != time.Hour {
		t.Fatalf("unexpected store config %+v", cfg.Store)
	}
	if cfg.Server.Addr != ":9090" || !cfg.Server.SecureCookie {
		t.Fatalf("unexpected server config %+v", cfg.Server)
	}
	if cfg.TemplateKind() != model.TemplateExecutive || cfg.SizeProfile() != model.SizeLarge {
		t.Fatalf("unexpected render defaults %q/%q", cfg.TemplateKind(), cfg.SizeProfile())
	}
	if cfg.Render.Sanitize {
		t.Fatal("expected sanitize to be disabled")
	}
	if cfg.Editor.RenderDelay != 50*time.Millisecond {
		t.Fatalf("unexpected render delay %v", cfg.Editor.RenderDelay)
	}
	if cfg.Editor.AutosaveDelay != Default().Editor.AutosaveDelay {
		t.Fatalf("expected autosave default to survive, got %v", cfg.Editor.AutosaveDelay)
	}
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "[render]\ntheme = \"dark\"\n")
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "render.theme") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected error for missing explicit file")
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "[server]\naddr = \":9090\"\n")
	t.Setenv("SIGSTUDIO_ADDR", ":7070")
	t.Setenv("SIGSTUDIO_TEMPLATE", "minimal")
	t.Setenv("SIGSTUDIO_REDIS_DB", "3")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":7070" {
		t.Fatalf("expected env addr, got %q", cfg.Server.Addr)
	}
	if cfg.TemplateKind() != model.TemplateMinimal || cfg.Store.Redis.DB != 3 {
		t.Fatalf("unexpected overrides %+v", cfg)
	}
}

func TestApplyEnv_ReportsMalformedValues(t *testing.T) {
	env := map[string]string{
		"SIGSTUDIO_REDIS_DB":      "three",
		"SIGSTUDIO_SANITIZE":      "maybe",
		"SIGSTUDIO_RENDER_DELAY":  "soon",
		"SIGSTUDIO_STORE_BACKEND": "redis",
	}
	cfg := Default()
	err := cfg.ApplyEnv(func(key string) (string, bool) {
		value, ok := env[key]
		return value, ok
	})
	if err == nil {
		t.Fatal("expected errors")
	}
	for _, name := range []string{"REDIS_DB", "SANITIZE", "RENDER_DELAY"} {
		if !strings.Contains(err.Error(), name) {
			t.Fatalf("expected %s in error %q", name, err)
		}
	}
	if cfg.Store.Backend != BackendRedis {
		t.Fatalf("expected valid values to apply, got %q", cfg.Store.Backend)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Store.Backend = "s3"
	cfg.Render.Size = "huge"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "s3") || !strings.Contains(err.Error(), "huge") {
		t.Fatalf("expected both problems reported, got %q", err)
	}
}

func TestStoreConfig_Open(t *testing.T) {
	ctx := context.Background()

	mem, err := StoreConfig{Backend: BackendMemory}.Open(ctx)
	if err != nil {
		t.Fatalf("open memory: %v", err)
	}
	if _, ok := mem.(*store.MemoryStore); !ok {
		t.Fatalf("expected memory store, got %T", mem)
	}

	none, err := StoreConfig{Backend: BackendNone}.Open(ctx)
	if err != nil {
		t.Fatalf("open none: %v", err)
	}
	if _, ok := none.(store.NullStore); !ok {
		t.Fatalf("expected null store, got %T", none)
	}

	dir := t.TempDir()
	file, err := StoreConfig{Backend: BackendFile, Dir: dir}.Open(ctx)
	if err != nil {
		t.Fatalf("open file: %v", err)
	}
	fs, ok := file.(*store.FileStore)
	if !ok || fs.Dir() != dir {
		t.Fatalf("expected file store in %s, got %T", dir, file)
	}

	if _, err := (StoreConfig{Backend: "s3"}).Open(ctx); err == nil {
		t.Fatal("expected unknown backend error")
	}
}
