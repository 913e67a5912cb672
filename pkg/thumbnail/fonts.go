// fonts.go — Per-family font loading with on-disk overrides and embedded
// fallbacks. Uses golang.org/x/image/font for OpenType rendering. Each
// family falls back to a Go font when its override file is absent or
// unparsable, so rendering never fails for want of a font.
package thumbnail

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Override filenames looked up under the font directory, one per family.
const (
	plainFontFile   = "noto_sans_bold.ttf"
	overlayFontFile = "gyeonggi_medium.otf"
	pixelFontFile   = "determination_mono.ttf"
)

// FontManager holds one parsed font per layout family and caches faces
// by size. Safe for concurrent use.
type FontManager struct {
	fonts map[Family]*opentype.Font

	mu    sync.Mutex
	faces map[faceKey]font.Face
}

type faceKey struct {
	family Family
	size   float64
}

// NewFontManager loads the family fonts from fontDir, falling back to
// the embedded Go fonts for any missing or invalid file. An empty
// fontDir uses embedded fonts only.
func NewFontManager(fontDir string) (*FontManager, error) {
	fm := &FontManager{
		fonts: make(map[Family]*opentype.Font, 3),
		faces: make(map[faceKey]font.Face),
	}

	for family, src := range map[Family]struct {
		file     string
		fallback []byte
	}{
		FamilyPlain:   {plainFontFile, gobold.TTF},
		FamilyOverlay: {overlayFontFile, goregular.TTF},
		FamilyPixel:   {pixelFontFile, gomono.TTF},
	} {
		data := src.fallback
		if fontDir != "" {
			if custom, err := os.ReadFile(filepath.Join(fontDir, src.file)); err == nil {
				data = custom
			}
		}

		parsed, err := opentype.Parse(data)
		if err != nil {
			// A broken override must not take rendering down with it.
			if parsed, err = opentype.Parse(src.fallback); err != nil {
				return nil, fmt.Errorf("parse fallback font: %w", err)
			}
		}
		fm.fonts[family] = parsed
	}

	return fm, nil
}

// Face returns a font.Face for the family at the given pixel size.
func (fm *FontManager) Face(family Family, size float64) (font.Face, error) {
	fm.mu.Lock()
	defer fm.mu.Unlock()

	key := faceKey{family: family, size: size}
	if face, ok := fm.faces[key]; ok {
		return face, nil
	}

	face, err := opentype.NewFace(fm.fonts[family], &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}

	fm.faces[key] = face
	return face, nil
}
