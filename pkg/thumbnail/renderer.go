// renderer.go — Compositor entry point. Dispatches a render request to
// the resolved layout family and guarantees the canonical output size.
package thumbnail

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"os"
	"strings"
)

// Canonical output raster dimensions, fixed for every family.
const (
	CanvasWidth  = 600
	CanvasHeight = 315
)

// MaxMessageLen is the message length cap in runes, enforced before
// hashing, storing and rendering.
const MaxMessageLen = 200

// Request drives one render. It needs no stored record: the four fields
// fully determine the output.
type Request struct {
	Message   string
	ImageType string
	SubType   string
	Zoom      bool
}

// Options configures a Renderer.
type Options struct {
	// Assets holds character art and backgrounds (paths like
	// "images/sana_stare.png").
	Assets fs.FS
	// FontDir optionally holds per-family font overrides; empty uses
	// the embedded fallbacks.
	FontDir string
}

// Renderer composes thumbnails. Safe for concurrent use; all mutable
// state lives in internal caches.
type Renderer struct {
	assets *assetLoader
	fonts  *FontManager
}

// RenderError marks a failed composition (missing asset, undecodable
// art, font fault). The caller gets no partial image alongside it.
type RenderError struct {
	ImageType string
	Err       error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.ImageType, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// NewRenderer builds a renderer over the given asset bundle.
func NewRenderer(opts Options) (*Renderer, error) {
	if opts.Assets == nil {
		opts.Assets = os.DirFS(".")
	}

	fonts, err := NewFontManager(opts.FontDir)
	if err != nil {
		return nil, fmt.Errorf("fonts: %w", err)
	}

	return &Renderer{
		assets: newAssetLoader(opts.Assets),
		fonts:  fonts,
	}, nil
}

// Render produces the 600×315 thumbnail for req. Unknown character
// types and invalid sub-types are normalized, never rejected; only
// asset or font faults produce an error.
func (r *Renderer) Render(req Request) (*image.RGBA, error) {
	variant, subType := Resolve(req.ImageType, req.SubType)
	zoom := req.Zoom && variant.Family == FamilyOverlay
	message := CapMessage(req.Message)

	var metrics Metrics
	if zoom {
		metrics = FitZoomed(message, variant.Family)
	} else {
		metrics = Fit(message, variant.Family)
	}

	img := image.NewRGBA(image.Rect(0, 0, CanvasWidth, CanvasHeight))

	var err error
	switch variant.Family {
	case FamilyOverlay:
		err = r.composeOverlay(img, message, variant, subType, zoom, metrics)
	case FamilyPixel:
		err = r.composePixel(img, message, variant, metrics)
	default:
		err = r.composePlain(img, message, variant, metrics)
	}
	if err != nil {
		return nil, &RenderError{ImageType: variant.Name, Err: err}
	}

	return img, nil
}

// CapMessage truncates a message to the length cap and trims the
// surrounding whitespace, in that order.
func CapMessage(message string) string {
	if runes := []rune(message); len(runes) > MaxMessageLen {
		message = string(runes[:MaxMessageLen])
	}
	return strings.TrimSpace(message)
}

// EncodePNG encodes an image to PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// WritePNG encodes an image to a PNG file at path.
func WritePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode PNG: %w", err)
	}
	return nil
}
