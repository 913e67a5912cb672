// fit.go — Typography fitting: message shape → font size and bubble geometry.
package thumbnail

import "strings"

// Bubble geometry constants shared by the speech-bubble families.
const (
	plainBubbleWidth = 350
	pixelBubbleWidth = 300
	minBubbleHeight  = 80

	// Overlay dialogue text is fixed-size; the panel does not grow.
	overlayFontSize     = 14
	overlayZoomFontSize = 20
	overlayPanelHeight  = 130
)

// Metrics is the fitted typography for one render.
type Metrics struct {
	FontSize     float64
	BubbleWidth  int
	BubbleHeight int
}

// Fit computes the font size and bubble geometry for a message in the
// given family. Font size is a step function of message length (single
// line) or of line count × longest line (multi line), non-increasing in
// both. Bubble height grows linearly with extra lines at 1.5× line
// spacing; width is fixed per family.
func Fit(message string, family Family) Metrics {
	if family == FamilyOverlay {
		return Metrics{FontSize: overlayFontSize, BubbleWidth: 0, BubbleHeight: overlayPanelHeight}
	}

	size := baseFontSize(message) * 1.2

	width := plainBubbleWidth
	if family == FamilyPixel {
		width = pixelBubbleWidth
	}

	lines := strings.Count(message, "\n") + 1
	extra := float64(lines-1) * size * 1.5
	if extra < 0 {
		extra = 0
	}

	return Metrics{
		FontSize:     size,
		BubbleWidth:  width,
		BubbleHeight: minBubbleHeight + int(extra),
	}
}

// FitZoomed is Fit for renders with the zoom crop enabled. Only the
// overlay family changes: the dialogue text gets the larger fixed size.
func FitZoomed(message string, family Family) Metrics {
	if family != FamilyOverlay {
		return Fit(message, family)
	}
	return Metrics{FontSize: overlayZoomFontSize, BubbleWidth: 0, BubbleHeight: overlayPanelHeight}
}

// baseFontSize picks the unscaled tier for bubble families.
func baseFontSize(message string) float64 {
	if !strings.Contains(message, "\n") {
		length := len([]rune(message))
		switch {
		case length <= 6:
			return 48
		case length <= 10:
			return 32
		case length <= 20:
			return 28
		case length <= 30:
			return 24
		case length <= 40:
			return 20
		default:
			return 18
		}
	}

	lines := strings.Split(message, "\n")
	lineCount := len(lines)
	maxLineLength := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLineLength {
			maxLineLength = n
		}
	}

	switch {
	case lineCount <= 2 && maxLineLength <= 15:
		return 24
	case lineCount <= 3 && maxLineLength <= 20:
		return 20
	case lineCount <= 4:
		return 18
	default:
		return 16
	}
}
