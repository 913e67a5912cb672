// Package thumbnail renders 600×315 share thumbnails: a character
// illustration plus a speech bubble (or dialogue panel) containing a
// user-supplied message.
//
// The pipeline is deterministic: Resolve picks a layout variant for a
// character type, Fit computes typography from the message shape, and
// Renderer.Render composites the final raster. Identical inputs always
// produce identical pixels.
package thumbnail

import "regexp"

// Family selects one of the rendering rule bundles.
type Family int

const (
	// FamilyPlain draws character art bottom-left with a bordered,
	// centered-text speech bubble on a white background.
	FamilyPlain Family = iota
	// FamilyOverlay draws an oversized character sprite over background
	// art with a gradient dialogue panel, name tag and expression roster.
	FamilyOverlay
	// FamilyPixel draws a borderless bubble with monospace text over
	// full-bleed background art.
	FamilyPixel
)

// DefaultType is the character used when the requested type is empty or
// unknown.
const DefaultType = "sana_stare"

// DefaultSubType is the canonical expression index for overlay characters.
const DefaultSubType = "001"

// Variant bundles the per-character rendering constants.
type Variant struct {
	Name        string
	Family      Family
	DisplayName string // overlay name tag (empty for other families)
	MaxSubTypes int    // highest valid expression index (overlay only)
	Background  string // background asset path (empty = flat color)
}

// variants is the closed set of supported characters.
var variants = map[string]Variant{
	"sana_stare": {Name: "sana_stare", Family: FamilyPlain},
	"sana_dizzy": {Name: "sana_dizzy", Family: FamilyPlain},
	"cat_lick":   {Name: "cat_lick", Family: FamilyPlain},
	"cat_scared": {Name: "cat_scared", Family: FamilyPlain},
	"ichihime":   {Name: "ichihime", Family: FamilyPlain},
	"sans":       {Name: "sans", Family: FamilyPixel, Background: "images/sans/bg.jpg"},
	"hikari": {
		Name: "hikari", Family: FamilyOverlay, DisplayName: "히카리",
		MaxSubTypes: 18, Background: "images/bluearchive/bg/abydos-desert.jpg",
	},
	"nozomi": {
		Name: "nozomi", Family: FamilyOverlay, DisplayName: "노조미",
		MaxSubTypes: 21, Background: "images/bluearchive/bg/abydos-desert.jpg",
	},
	"aris": {
		Name: "aris", Family: FamilyOverlay, DisplayName: "아리스",
		MaxSubTypes: 14, Background: "images/bluearchive/bg/gamedev.jpg",
	},
}

var subTypePattern = regexp.MustCompile(`^\d{3}$`)

// Resolve maps a character type to its variant and normalizes the
// expression sub-type. Unknown types fall back to the default character;
// invalid or out-of-range sub-types fall back to "001". Non-overlay
// families always get an empty sub-type. Resolve never fails.
func Resolve(imageType, subType string) (Variant, string) {
	v, ok := variants[imageType]
	if !ok {
		v = variants[DefaultType]
	}

	if v.Family != FamilyOverlay {
		return v, ""
	}

	return v, normalizeSubType(subType, v.MaxSubTypes)
}

// normalizeSubType enforces the strict 3-digit pattern and the
// [1, max] range.
func normalizeSubType(subType string, max int) string {
	if !subTypePattern.MatchString(subType) {
		return DefaultSubType
	}

	n := int(subType[0]-'0')*100 + int(subType[1]-'0')*10 + int(subType[2]-'0')
	if n < 1 || n > max {
		return DefaultSubType
	}
	return subType
}

// Types returns the names of all supported characters.
func Types() []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	return names
}
