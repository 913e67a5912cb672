// compose_pixel.go — Pixel-dialogue family: full-bleed background art
// with a borderless white bubble and left-aligned monospace text.
package thumbnail

import (
	"image"
	"image/color"
)

const (
	pixelBubbleRight   = 50
	pixelBubbleRadius  = 20
	pixelBubblePadding = 15
)

func (r *Renderer) composePixel(img *image.RGBA, message string, v Variant, m Metrics) error {
	fillRect(img, img.Bounds(), color.Black)

	bg, err := r.assets.load(v.Background)
	if err != nil {
		return err
	}
	drawImageCover(img, bg, img.Bounds())

	bubble := image.Rect(0, 0, m.BubbleWidth, m.BubbleHeight).
		Add(image.Pt(CanvasWidth-pixelBubbleRight-m.BubbleWidth, (CanvasHeight-m.BubbleHeight)/2))
	fillRoundedRect(img, bubble, pixelBubbleRadius, color.White)

	// Tail nub on the left edge, pointing at the speaker.
	fillTriangle(img,
		image.Pt(bubble.Min.X+2, bubble.Min.Y+14),
		image.Pt(bubble.Min.X+2, bubble.Min.Y+44),
		image.Pt(bubble.Min.X-22, bubble.Min.Y+28),
		color.White)

	face, err := r.fonts.Face(FamilyPixel, m.FontSize)
	if err != nil {
		return err
	}

	lines := wrapText(message, m.BubbleWidth-2*pixelBubblePadding, face)
	lineHeight := int(m.FontSize * 1.5)
	blockHeight := len(lines) * lineHeight
	ascent := face.Metrics().Ascent.Ceil()

	y := bubble.Min.Y + (bubble.Dy()-blockHeight)/2 + ascent
	for _, line := range lines {
		drawString(img, line, bubble.Min.X+pixelBubblePadding, y, color.Black, face)
		y += lineHeight
	}

	return nil
}
