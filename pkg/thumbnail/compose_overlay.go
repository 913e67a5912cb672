// compose_overlay.go — Multi-expression overlay family: background art,
// oversized character sprite selected by expression index, gradient
// dialogue panel, outlined name tag and advance indicator. The zoom
// mode enlarges the sprite crop and the dialogue text.
package thumbnail

import (
	"fmt"
	"image"
	"image/color"
)

var (
	overlayNavy     = color.RGBA{0x1a, 0x2b, 0x5f, 0xff} // outline and glow
	overlayPanel    = color.RGBA{12, 17, 29, 0xff}       // dialogue backdrop base
	overlayClubBlue = color.RGBA{157, 202, 241, 0xff}
	overlayCyan     = color.RGBA{57, 209, 255, 0xff}
	overlayChipText = color.RGBA{15, 45, 72, 0xff}
)

const (
	overlayTextPadding = 60

	// Sprite scale and overflow below the canvas bottom edge.
	spriteScale       = 1.5
	spriteZoomScale   = 2.0
	spriteOverflow    = 180
	spriteZoomOverflw = 320

	nameFontSize = 18
	clubFontSize = 13
	chipFontSize = 12
)

func (r *Renderer) composeOverlay(img *image.RGBA, message string, v Variant, subType string, zoom bool, m Metrics) error {
	bg, err := r.assets.load(v.Background)
	if err != nil {
		return err
	}
	drawImageCover(img, bg, img.Bounds())

	if err := r.drawSprite(img, v, subType, zoom); err != nil {
		return err
	}

	if err := r.drawChips(img); err != nil {
		return err
	}

	// Dialogue backdrop: transparent at the top, settling at 78% opacity.
	panel := image.Rect(0, CanvasHeight-m.BubbleHeight, CanvasWidth, CanvasHeight)
	fillVerticalGradient(img, panel, overlayPanel, []gradientStop{
		{at: 0, alpha: 0},
		{at: 0.15, alpha: 0.5},
		{at: 0.30, alpha: 0.78},
		{at: 1, alpha: 0.78},
	})

	if err := r.drawNameRow(img, v); err != nil {
		return err
	}

	// Rule between the name row and the dialogue text.
	rule := image.Rect(overlayTextPadding, CanvasHeight*76/100, CanvasWidth-overlayTextPadding, CanvasHeight*76/100+1)
	fillRect(img, rule, color.NRGBA{0xff, 0xff, 0xff, 0x4d})

	if err := r.drawDialogue(img, message, m); err != nil {
		return err
	}

	// Advance indicator at the bottom right.
	fillTriangle(img,
		image.Pt(CanvasWidth-overlayTextPadding-10, CanvasHeight-27),
		image.Pt(CanvasWidth-overlayTextPadding, CanvasHeight-27),
		image.Pt(CanvasWidth-overlayTextPadding-5, CanvasHeight-20),
		overlayCyan)

	return nil
}

// drawSprite places the expression sprite: scaled to a multiple of the
// canvas height, horizontally centered, overflowing the bottom edge so
// the framing matches the source game's dialogue view.
func (r *Renderer) drawSprite(img *image.RGBA, v Variant, subType string, zoom bool) error {
	path := fmt.Sprintf("images/bluearchive/char_small/%s/up_%s_%s.png", v.Name, v.Name, subType)
	sprite, err := r.assets.load(path)
	if err != nil {
		return err
	}

	scale, overflow := spriteScale, spriteOverflow
	if zoom {
		scale, overflow = spriteZoomScale, spriteZoomOverflw
	}

	h := int(scale * CanvasHeight)
	sb := sprite.Bounds()
	w := h * sb.Dx() / sb.Dy()
	top := CanvasHeight + overflow - h
	left := (CanvasWidth - w) / 2

	drawImageScaled(img, sprite, image.Rect(left, top, left+w, top+h))
	return nil
}

// drawChips draws the AUTO / MENU buttons at the top right as skewed
// white chips.
func (r *Renderer) drawChips(img *image.RGBA) error {
	face, err := r.fonts.Face(FamilyOverlay, chipFontSize)
	if err != nil {
		return err
	}

	const chipH, chipTop, chipGap = 22, 8, 4
	right := CanvasWidth - 20

	for _, label := range []string{"MENU", "AUTO"} {
		chipW := textWidth(face, label) + 20
		left := right - chipW

		// Skew: each row shifts right as it approaches the top edge.
		for y := 0; y < chipH; y++ {
			shift := (chipH - y) / 6
			fillRect(img, image.Rect(left+shift, chipTop+y, left+chipW+shift, chipTop+y+1), color.White)
		}

		tx := left + (chipW-textWidth(face, label))/2 + 2
		ty := chipTop + (chipH+face.Metrics().Ascent.Ceil())/2 - 2
		drawString(img, label, tx, ty, overlayChipText, face)

		right = left - chipGap
	}

	return nil
}

// drawNameRow draws the character name with the club tag beside it,
// both outlined in dark navy for contrast against any background.
func (r *Renderer) drawNameRow(img *image.RGBA, v Variant) error {
	nameFace, err := r.fonts.Face(FamilyOverlay, nameFontSize)
	if err != nil {
		return err
	}
	clubFace, err := r.fonts.Face(FamilyOverlay, clubFontSize)
	if err != nil {
		return err
	}

	baseline := CanvasHeight - 80
	drawOutlinedString(img, v.DisplayName, overlayTextPadding, baseline, color.White, overlayNavy, nameFace)

	clubX := overlayTextPadding + textWidth(nameFace, v.DisplayName) + 6
	drawOutlinedString(img, "CCC", clubX, baseline-1, overlayClubBlue, overlayNavy, clubFace)

	return nil
}

// drawDialogue renders the message under the separator rule with a
// navy glow, preserving explicit newlines.
func (r *Renderer) drawDialogue(img *image.RGBA, message string, m Metrics) error {
	face, err := r.fonts.Face(FamilyOverlay, m.FontSize)
	if err != nil {
		return err
	}

	lines := wrapText(message, CanvasWidth-2*overlayTextPadding, face)
	lineHeight := int(m.FontSize * 1.4)

	y := CanvasHeight*78/100 + face.Metrics().Ascent.Ceil()
	for _, line := range lines {
		if y > CanvasHeight {
			break // panel clips overflowing text
		}
		drawOutlinedString(img, line, overlayTextPadding, y, color.White, overlayNavy, face)
		y += lineHeight
	}

	return nil
}
