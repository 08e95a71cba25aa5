package server

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/goliatone/go-sigstudio/pkg/imaging"
	"github.com/goliatone/go-sigstudio/pkg/model"
	"github.com/goliatone/go-sigstudio/pkg/store"
	"github.com/goliatone/go-sigstudio/pkg/studio"
)

const (
	DefaultAddr       = ":8080"
	DefaultCookieName = "sigstudio_sid"
	DefaultSessionTTL = 30 * 24 * time.Hour
)

type Options struct {
	Addr            string
	CookieName      string
	SessionTTL      time.Duration
	SecureCookie    bool
	DefaultTemplate model.TemplateKind
	DefaultSize     model.SizeProfile
	RequestTimeout  time.Duration

	Studio *studio.Studio
	Images *imaging.Processor
	Store  store.Store
	Logger *log.Logger
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		Addr:            DefaultAddr,
		CookieName:      DefaultCookieName,
		SessionTTL:      DefaultSessionTTL,
		DefaultTemplate: model.DefaultTemplate,
		DefaultSize:     model.DefaultSize,
		RequestTimeout:  30 * time.Second,
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.Addr == "" {
		opts.Addr = DefaultAddr
	}
	if opts.CookieName == "" {
		opts.CookieName = DefaultCookieName
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = DefaultSessionTTL
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 30 * time.Second
	}
	if !opts.DefaultTemplate.Valid() {
		opts.DefaultTemplate = model.DefaultTemplate
	}
	if !opts.DefaultSize.Valid() {
		opts.DefaultSize = model.DefaultSize
	}
	if opts.Studio == nil {
		opts.Studio = studio.New()
	}
	if opts.Images == nil {
		opts.Images = imaging.New()
	}
	if opts.Store == nil {
		opts.Store = store.NewMemoryStore()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return opts
}

func WithAddr(addr string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Addr = addr
	}
}

func WithCookieName(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.CookieName = name
	}
}

func WithSessionTTL(ttl time.Duration) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.SessionTTL = ttl
	}
}

func WithSecureCookie(secure bool) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.SecureCookie = secure
	}
}

func WithDefaults(kind model.TemplateKind, size model.SizeProfile) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.DefaultTemplate = kind
		o.DefaultSize = size
	}
}

func WithStudio(s *studio.Studio) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Studio = s
	}
}

func WithImages(p *imaging.Processor) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Images = p
	}
}

func WithStore(s store.Store) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Store = s
	}
}

func WithLogger(logger *log.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}
