// compose_plain.go — Plain single-expression family: character art
// bottom-left, bordered speech bubble with a tail, centered bold text on
// a white background.
package thumbnail

import (
	"fmt"
	"image"
	"image/color"
)

var plainTextColor = color.RGBA{0x33, 0x33, 0x33, 0xff}

const (
	plainArtSize   = 120
	plainArtLeft   = 60
	plainArtBottom = 10

	plainBubbleRight  = 50
	plainBubbleRadius = 15
	plainBorderWidth  = 3
	plainTextPadding  = 10
)

func (r *Renderer) composePlain(img *image.RGBA, message string, v Variant, m Metrics) error {
	fillRect(img, img.Bounds(), color.White)

	art, err := r.assets.load(fmt.Sprintf("images/%s.png", v.Name))
	if err != nil {
		return err
	}
	artTop := CanvasHeight - plainArtBottom - plainArtSize
	drawImageCover(img, art, image.Rect(plainArtLeft, artTop, plainArtLeft+plainArtSize, artTop+plainArtSize))

	bubble := image.Rect(0, 0, m.BubbleWidth, m.BubbleHeight).
		Add(image.Pt(CanvasWidth-plainBubbleRight-m.BubbleWidth, (CanvasHeight-m.BubbleHeight)/2))
	strokeRoundedRect(img, bubble, plainBubbleRadius, plainBorderWidth, color.White, color.Black)
	drawBubbleTail(img, bubble)

	face, err := r.fonts.Face(FamilyPlain, m.FontSize)
	if err != nil {
		return err
	}

	lines := wrapText(message, m.BubbleWidth-2*plainTextPadding, face)
	lineHeight := int(m.FontSize * 1.5)
	blockHeight := len(lines) * lineHeight
	ascent := face.Metrics().Ascent.Ceil()

	y := bubble.Min.Y + (bubble.Dy()-blockHeight)/2 + ascent
	for _, line := range lines {
		x := bubble.Min.X + (bubble.Dx()-textWidth(face, line))/2
		drawString(img, line, x, y, plainTextColor, face)
		y += lineHeight
	}

	return nil
}

// drawBubbleTail draws the down-pointing tail at the bubble's bottom
// left corner: a black triangle with a white inset to suggest the same
// border weight as the bubble outline.
func drawBubbleTail(img *image.RGBA, bubble image.Rectangle) {
	bx, by := bubble.Min.X, bubble.Max.Y
	fillTriangle(img,
		image.Pt(bx+12, by-plainBorderWidth-1),
		image.Pt(bx+46, by-plainBorderWidth-1),
		image.Pt(bx+10, by+22),
		color.Black)
	fillTriangle(img,
		image.Pt(bx+18, by-plainBorderWidth-2),
		image.Pt(bx+40, by-plainBorderWidth-2),
		image.Pt(bx+16, by+14),
		color.White)
}
