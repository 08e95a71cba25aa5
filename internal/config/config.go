// Package config loads sigstudio settings from a TOML file and SIGSTUDIO_*
// environment variables. Command-line flags are applied on top by the CLI.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/goliatone/go-sigstudio/pkg/controller"
	"github.com/goliatone/go-sigstudio/pkg/model"
	"github.com/goliatone/go-sigstudio/pkg/server"
	"github.com/goliatone/go-sigstudio/pkg/store"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = "sigstudio.toml"

// Store backends.
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendNone   = "none"
)

type Config struct {
	Store  StoreConfig  `toml:"store"`
	Server ServerConfig `toml:"server"`
	Render RenderConfig `toml:"render"`
	Editor EditorConfig `toml:"editor"`
}

type StoreConfig struct {
	Backend string        `toml:"backend"`
	Dir     string        `toml:"dir"`
	TTL     time.Duration `toml:"ttl"`
	Redis   RedisConfig   `toml:"redis"`
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Prefix   string `toml:"prefix"`
}

type ServerConfig struct {
	Addr         string        `toml:"addr"`
	SecureCookie bool          `toml:"secure_cookie"`
	SessionTTL   time.Duration `toml:"session_ttl"`
}

type RenderConfig struct {
	Template     string `toml:"template"`
	Size         string `toml:"size"`
	Sanitize     bool   `toml:"sanitize"`
	TemplatesDir string `toml:"templates_dir"`
}

type EditorConfig struct {
	RenderDelay   time.Duration `toml:"render_delay"`
	AutosaveDelay time.Duration `toml:"autosave_delay"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Store: StoreConfig{
			Backend: BackendFile,
			Redis:   RedisConfig{Addr: "localhost:6379", Prefix: "sigstudio:"},
		},
		Server: ServerConfig{
			Addr:       server.DefaultAddr,
			SessionTTL: server.DefaultSessionTTL,
		},
		Render: RenderConfig{
			Template: string(model.DefaultTemplate),
			Size:     string(model.DefaultSize),
			Sanitize: true,
		},
		Editor: EditorConfig{
			RenderDelay:   controller.DefaultRenderDelay,
			AutosaveDelay: controller.DefaultAutosaveDelay,
		},
	}
}

// Load reads path over the defaults and applies environment overrides. An
// empty path loads DefaultFile when it exists and otherwise skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = DefaultFile
	}
	if _, err := os.Stat(path); err == nil {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, key := range undecoded {
				keys[i] = key.String()
			}
			sort.Strings(keys)
			return Config{}, fmt.Errorf("config: unknown keys in %s: %s", path, strings.Join(keys, ", "))
		}
	} else if explicit {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enum-like settings.
func (c Config) Validate() error {
	var errs []error
	switch c.Store.Backend {
	case BackendFile, BackendMemory, BackendRedis, BackendNone:
	default:
		errs = append(errs, fmt.Errorf("config: unknown store backend %q", c.Store.Backend))
	}
	if _, err := model.ParseTemplateKind(c.Render.Template); err != nil {
		errs = append(errs, fmt.Errorf("config: %w", err))
	}
	if _, err := model.ParseSizeProfile(c.Render.Size); err != nil {
		errs = append(errs, fmt.Errorf("config: %w", err))
	}
	if c.Editor.RenderDelay < 0 || c.Editor.AutosaveDelay < 0 {
		errs = append(errs, errors.New("config: editor delays must not be negative"))
	}
	return errors.Join(errs...)
}

// TemplateKind returns the parsed default template.
func (c Config) TemplateKind() model.TemplateKind {
	kind, err := model.ParseTemplateKind(c.Render.Template)
	if err != nil {
		return model.DefaultTemplate
	}
	return kind
}

// SizeProfile returns the parsed default size.
func (c Config) SizeProfile() model.SizeProfile {
	size, err := model.ParseSizeProfile(c.Render.Size)
	if err != nil {
		return model.DefaultSize
	}
	return size
}

// StoreDir resolves the file backend directory, defaulting to the user
// config directory.
func (c StoreConfig) StoreDir() (string, error) {
	if dir := strings.TrimSpace(c.Dir); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve store dir: %w", err)
	}
	return filepath.Join(base, "sigstudio"), nil
}

// Open constructs the configured store backend.
func (c StoreConfig) Open(ctx context.Context) (store.Store, error) {
	switch c.Backend {
	case BackendFile, "":
		dir, err := c.StoreDir()
		if err != nil {
			return nil, err
		}
		fs, err := store.NewFileStore(dir)
		if err != nil {
			return nil, err
		}
		return fs, nil
	case BackendMemory:
		return store.NewMemoryStore(), nil
	case BackendRedis:
		rs, err := store.NewRedisStore(ctx, store.RedisConfig{
			Addr:     c.Redis.Addr,
			Password: c.Redis.Password,
			DB:       c.Redis.DB,
			Prefix:   c.Redis.Prefix,
		})
		if err != nil {
			return nil, err
		}
		return rs, nil
	case BackendNone:
		return store.NullStore{}, nil
	default:
		return nil, fmt.Errorf("config: unknown store backend %q", c.Backend)
	}
}
