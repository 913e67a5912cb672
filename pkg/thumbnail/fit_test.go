package thumbnail

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitSingleLineTiers(t *testing.T) {
	tests := []struct {
		length int
		base   float64
	}{
		{1, 48}, {6, 48},
		{7, 32}, {10, 32},
		{11, 28}, {20, 28},
		{21, 24}, {30, 24},
		{31, 20}, {40, 20},
		{41, 18}, {120, 18},
	}

	for _, tt := range tests {
		m := Fit(strings.Repeat("a", tt.length), FamilyPlain)
		assert.InDelta(t, tt.base*1.2, m.FontSize, 0.001, "length %d", tt.length)
	}
}

func TestFitShortMessageLargestTier(t *testing.T) {
	m := Fit("안녕", FamilyPlain)
	assert.InDelta(t, 48*1.2, m.FontSize, 0.001)
	assert.Equal(t, plainBubbleWidth, m.BubbleWidth)
	assert.Equal(t, minBubbleHeight, m.BubbleHeight)
}

func TestFitMultiLineTiers(t *testing.T) {
	tests := []struct {
		name    string
		message string
		base    float64
	}{
		{"2 short lines", "short\nlines", 24},
		{"3 medium lines", "line one\nline two\nline three", 20},
		{"4 lines", "a\nb\nc\nd", 18},
		{"5 lines", "a\nb\nc\nd\ne", 16},
		{"2 long lines", strings.Repeat("x", 30) + "\n" + strings.Repeat("y", 30), 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Fit(tt.message, FamilyPlain)
			assert.InDelta(t, tt.base*1.2, m.FontSize, 0.001)
		})
	}
}

// Growing a message must never grow the font.
func TestFitMonotonicInLength(t *testing.T) {
	prev := Fit("", FamilyPlain).FontSize
	for n := 1; n <= 100; n++ {
		size := Fit(strings.Repeat("가", n), FamilyPlain).FontSize
		assert.LessOrEqual(t, size, prev, "length %d", n)
		prev = size
	}
}

func TestFitMonotonicInLineCount(t *testing.T) {
	prev := Fit("line", FamilyPlain).FontSize
	msg := "line"
	for n := 2; n <= 10; n++ {
		msg += "\nline"
		size := Fit(msg, FamilyPlain).FontSize
		assert.LessOrEqual(t, size, prev, "%d lines", n)
		prev = size
	}
}

func TestFitBubbleHeightGrowsWithLines(t *testing.T) {
	one := Fit("hello", FamilyPixel)
	three := Fit("hello\nthere\nworld", FamilyPixel)

	assert.Equal(t, minBubbleHeight, one.BubbleHeight)
	wantExtra := int(2 * three.FontSize * 1.5)
	assert.Equal(t, minBubbleHeight+wantExtra, three.BubbleHeight)
}

func TestFitEmptyMessage(t *testing.T) {
	m := Fit("", FamilyPlain)
	assert.Equal(t, minBubbleHeight, m.BubbleHeight)
	assert.Positive(t, m.FontSize)
}

func TestFitNewlinesOnly(t *testing.T) {
	m := Fit("\n\n", FamilyPlain)
	assert.Positive(t, m.FontSize)
	assert.GreaterOrEqual(t, m.BubbleHeight, minBubbleHeight)
}

func TestFitPixelFamilyWidth(t *testing.T) {
	assert.Equal(t, pixelBubbleWidth, Fit("hi", FamilyPixel).BubbleWidth)
	assert.Equal(t, plainBubbleWidth, Fit("hi", FamilyPlain).BubbleWidth)
}

func TestFitOverlayFixed(t *testing.T) {
	short := Fit("hi", FamilyOverlay)
	long := Fit(strings.Repeat("말", 150), FamilyOverlay)

	assert.Equal(t, float64(overlayFontSize), short.FontSize)
	assert.Equal(t, short, long, "overlay typography does not depend on the message")
	assert.Equal(t, overlayPanelHeight, short.BubbleHeight)

	zoomed := FitZoomed("hi", FamilyOverlay)
	assert.Equal(t, float64(overlayZoomFontSize), zoomed.FontSize)
}
