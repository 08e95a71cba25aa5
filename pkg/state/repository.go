package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/goliatone/go-sigstudio/pkg/model"
	"github.com/goliatone/go-sigstudio/pkg/store"
)

// Option configures a Repository.
type Option func(*Repository)

// WithLogger sets the logger used for persistence warnings.
func WithLogger(logger *log.Logger) Option {
	return func(r *Repository) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithSession namespaces every key as "<session>:<key>".
func WithSession(id string) Option {
	return func(r *Repository) {
		r.session = id
	}
}

// WithTTL sets an expiry on saved entries. Zero keeps them forever.
func WithTTL(ttl time.Duration) Option {
	return func(r *Repository) {
		r.ttl = ttl
	}
}

// Repository reads and writes snapshots on a store.
type Repository struct {
	store   store.Store
	logger  *log.Logger
	session string
	ttl     time.Duration
}

// NewRepository wraps s. A nil store behaves like store.NullStore.
func NewRepository(s store.Store, options ...Option) *Repository {
	if s == nil {
		s = store.NullStore{}
	}
	r := &Repository{
		store:  s,
		logger: log.New(io.Discard),
	}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// ForSession returns a repository sharing the store and logger but scoped
// to the session id.
func (r *Repository) ForSession(id string) *Repository {
	scoped := *r
	scoped.session = id
	return &scoped
}

// Key returns the namespaced storage key.
func (r *Repository) Key(key string) string {
	if r.session == "" {
		return key
	}
	return r.session + ":" + key
}

// Load restores the snapshot. Missing keys keep their defaults; read errors
// and undecodable values are logged and skipped, so Load never fails.
// The boolean reports whether any saved value was found.
func (r *Repository) Load(ctx context.Context) (Snapshot, bool) {
	snap := DefaultSnapshot()
	found := false

	var fields map[string]string
	if r.read(ctx, KeyFormData, &fields) {
		snap.Contact = model.ContactFromFields(fields)
		found = true
	}

	var template string
	if r.read(ctx, KeyTemplate, &template) {
		found = true
		if kind, err := model.ParseTemplateKind(template); err == nil {
			snap.Template = kind
		} else {
			r.logger.Warn("saved template ignored", "template", template)
		}
	}

	var size string
	if r.read(ctx, KeySize, &size) {
		found = true
		if profile, err := model.ParseSizeProfile(size); err == nil {
			snap.Size = profile
		} else {
			r.logger.Warn("saved size ignored", "size", size)
		}
	}

	var theme string
	if r.read(ctx, KeyTheme, &theme) {
		found = true
		if parsed, err := ParseTheme(theme); err == nil {
			snap.Theme = parsed
		}
	}

	var image string
	if r.read(ctx, KeyImage, &image) {
		found = true
		snap.Image = image
	}

	return snap, found
}

// Save writes every part of the snapshot. The first failure is returned
// after all keys were attempted.
func (r *Repository) Save(ctx context.Context, snap Snapshot) error {
	snap = snap.Normalized()

	values := map[string]any{
		KeyFormData: snap.Contact.Fields(),
		KeyTemplate: snap.Template.String(),
		KeySize:     snap.Size.String(),
		KeyTheme:    string(snap.Theme),
	}

	var errs []error
	for _, key := range Keys() {
		if key == KeyImage {
			continue
		}
		if err := r.write(ctx, key, values[key]); err != nil {
			errs = append(errs, err)
		}
	}
	if snap.Image == "" {
		if err := r.store.Delete(ctx, r.Key(KeyImage)); err != nil {
			errs = append(errs, fmt.Errorf("state: delete %s: %w", KeyImage, err))
		}
	} else if err := r.write(ctx, KeyImage, snap.Image); err != nil {
		errs = append(errs, err)
	}

	if err := errors.Join(errs...); err != nil {
		r.logger.Warn("saving state failed", "session", r.session, "err", err)
		return err
	}
	r.logger.Debug("state saved", "session", r.session, "template", snap.Template, "size", snap.Size)
	return nil
}

// Clear removes every saved key.
func (r *Repository) Clear(ctx context.Context) error {
	var errs []error
	for _, key := range Keys() {
		if err := r.store.Delete(ctx, r.Key(key)); err != nil {
			errs = append(errs, fmt.Errorf("state: delete %s: %w", key, err))
		}
	}
	return errors.Join(errs...)
}

func (r *Repository) read(ctx context.Context, key string, dst any) bool {
	data, ok, err := r.store.Get(ctx, r.Key(key))
	if err != nil {
		r.logger.Warn("reading saved state failed", "key", r.Key(key), "err", err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		r.logger.Warn("saved state is corrupt", "key", r.Key(key), "err", err)
		return false
	}
	return true
}

func (r *Repository) write(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("state: encode %s: %w", key, err)
	}
	if err := r.store.Set(ctx, r.Key(key), data, r.ttl); err != nil {
		return fmt.Errorf("state: write %s: %w", key, err)
	}
	return nil
}
