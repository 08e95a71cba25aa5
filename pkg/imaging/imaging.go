// Package imaging turns an uploaded picture into the embeddable JPEG data
// URI used by the signature templates.
package imaging

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Defaults for the image pipeline.
const (
	DefaultMaxBytes    = 5 << 20
	DefaultMaxPixels   = 40_000_000
	DefaultMaxEdge     = 400
	DefaultJPEGQuality = 90
)

// DataURIPrefix starts every processed image reference.
const DataURIPrefix = "data:image/jpeg;base64,"

var (
	// ErrTooLarge is returned for inputs over the byte or pixel limit.
	ErrTooLarge = errors.New("imaging: image must be smaller than 5MB")
	// ErrNotImage is returned when the sniffed content is not an image.
	ErrNotImage = errors.New("imaging: please select a valid image file")
)

// Option configures a Processor.
type Option func(*Processor)

// WithMaxBytes overrides the input size limit.
func WithMaxBytes(n int64) Option {
	return func(p *Processor) {
		if n > 0 {
			p.maxBytes = n
		}
	}
}

// WithMaxPixels caps the decoded width x height. Headers declaring more
// pixels are rejected before any bitmap is allocated.
func WithMaxPixels(n int64) Option {
	return func(p *Processor) {
		if n > 0 {
			p.maxPixels = n
		}
	}
}

// WithMaxEdge overrides the longest output edge in pixels.
func WithMaxEdge(px int) Option {
	return func(p *Processor) {
		if px > 0 {
			p.maxEdge = px
		}
	}
}

// WithJPEGQuality overrides the output JPEG quality (1-100).
func WithJPEGQuality(q int) Option {
	return func(p *Processor) {
		if q >= 1 && q <= 100 {
			p.quality = q
		}
	}
}

// Processor validates, downsizes and re-encodes images.
type Processor struct {
	maxBytes  int64
	maxPixels int64
	maxEdge   int
	quality   int
}

// Result is a processed image.
type Result struct {
	DataURI    string `json:"dataUrl"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	SourceType string `json:"sourceType"`
	Bytes      int    `json:"bytes"`
}

// New constructs a Processor with the defaults and any overrides.
func New(options ...Option) *Processor {
	p := &Processor{
		maxBytes:  DefaultMaxBytes,
		maxPixels: DefaultMaxPixels,
		maxEdge:   DefaultMaxEdge,
		quality:   DefaultJPEGQuality,
	}
	for _, opt := range options {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// MaxBytes reports the configured input limit.
func (p *Processor) MaxBytes() int64 {
	return p.maxBytes
}

// Process reads at most the byte limit from r and returns the re-encoded
// image. The context is checked between the read, decode and encode steps.
func (p *Processor) Process(ctx context.Context, r io.Reader) (Result, error) {
	if r == nil {
		return Result{}, errors.New("imaging: reader is required")
	}

	data, err := io.ReadAll(io.LimitReader(r, p.maxBytes+1))
	if err != nil {
		return Result{}, fmt.Errorf("imaging: read input: %w", err)
	}
	return p.ProcessBytes(ctx, data)
}

// ProcessBytes is Process over an in-memory payload.
func (p *Processor) ProcessBytes(ctx context.Context, data []byte) (Result, error) {
	if int64(len(data)) > p.maxBytes {
		return Result{}, ErrTooLarge
	}
	mime := mimetype.Detect(data)
	if !strings.HasPrefix(mime.String(), "image/") {
		return Result{}, ErrNotImage
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrNotImage, err)
	}
	if int64(cfg.Width)*int64(cfg.Height) > p.maxPixels {
		return Result{}, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrTooLarge, cfg.Width, cfg.Height, p.maxPixels)
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrNotImage, err)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	width, height := Fit(src.Bounds().Dx(), src.Bounds().Dy(), p.maxEdge)
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: p.quality}); err != nil {
		return Result{}, fmt.Errorf("imaging: encode jpeg: %w", err)
	}

	return Result{
		DataURI:    DataURIPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()),
		Width:      width,
		Height:     height,
		SourceType: mime.String(),
		Bytes:      buf.Len(),
	}, nil
}

// Fit scales width x height so the longest edge is at most maxEdge, keeping
// the aspect ratio. Images already within the limit are returned unchanged.
func Fit(width, height, maxEdge int) (int, int) {
	if width <= 0 || height <= 0 || maxEdge <= 0 {
		return max(width, 1), max(height, 1)
	}
	if width <= maxEdge && height <= maxEdge {
		return width, height
	}
	if width >= height {
		h := height * maxEdge / width
		return maxEdge, max(h, 1)
	}
	w := width * maxEdge / height
	return max(w, 1), maxEdge
}

// DecodeDataURI returns the raw bytes of a processed image reference.
func DecodeDataURI(uri string) ([]byte, error) {
	comma := strings.IndexByte(uri, ',')
	if !strings.HasPrefix(uri, "data:") || comma < 0 || !strings.Contains(uri[:comma], ";base64") {
		return nil, errors.New("imaging: not a base64 data uri")
	}
	out, err := base64.StdEncoding.DecodeString(uri[comma+1:])
	if err != nil {
		return nil, fmt.Errorf("imaging: decode data uri: %w", err)
	}
	return out, nil
}
