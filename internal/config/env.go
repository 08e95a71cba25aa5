package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// EnvPrefix namespaces every environment override.
const EnvPrefix = "SIGSTUDIO_"

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overlays SIGSTUDIO_* variables. Malformed numbers, booleans and
// durations are reported together.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	if lookup == nil {
		return nil
	}
	var errs []error

	str := func(name string, dst *string) {
		if value, ok := lookup(EnvPrefix + name); ok && strings.TrimSpace(value) != "" {
			*dst = strings.TrimSpace(value)
		}
	}
	integer := func(name string, dst *int) {
		if value, ok := lookup(EnvPrefix + name); ok && value != "" {
			parsed, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				errs = append(errs, fmt.Errorf("config: %s%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = parsed
		}
	}
	boolean := func(name string, dst *bool) {
		if value, ok := lookup(EnvPrefix + name); ok && value != "" {
			parsed, err := strconv.ParseBool(strings.TrimSpace(value))
			if err != nil {
				errs = append(errs, fmt.Errorf("config: %s%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = parsed
		}
	}
	duration := func(name string, dst *time.Duration) {
		if value, ok := lookup(EnvPrefix + name); ok && value != "" {
			parsed, err := time.ParseDuration(strings.TrimSpace(value))
			if err != nil {
				errs = append(errs, fmt.Errorf("config: %s%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = parsed
		}
	}

	str("STORE_BACKEND", &c.Store.Backend)
	str("STORE_DIR", &c.Store.Dir)
	duration("STORE_TTL", &c.Store.TTL)
	str("REDIS_ADDR", &c.Store.Redis.Addr)
	str("REDIS_PASSWORD", &c.Store.Redis.Password)
	integer("REDIS_DB", &c.Store.Redis.DB)
	str("REDIS_PREFIX", &c.Store.Redis.Prefix)

	str("ADDR", &c.Server.Addr)
	boolean("SECURE_COOKIE", &c.Server.SecureCookie)
	duration("SESSION_TTL", &c.Server.SessionTTL)

	str("TEMPLATE", &c.Render.Template)
	str("SIZE", &c.Render.Size)
	boolean("SANITIZE", &c.Render.Sanitize)
	str("TEMPLATES_DIR", &c.Render.TemplatesDir)

	duration("RENDER_DELAY", &c.Editor.RenderDelay)
	duration("AUTOSAVE_DELAY", &c.Editor.AutosaveDelay)

	return errors.Join(errs...)
}
