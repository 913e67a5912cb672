// draw.go — Raster primitives for the compositor: rounded rectangles,
// triangles, gradient panels, cover-fit image placement and text drawing.
package thumbnail

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// fillRect fills r with a solid color.
func fillRect(img *image.RGBA, r image.Rectangle, col color.Color) {
	draw.Draw(img, r, image.NewUniform(col), image.Point{}, draw.Over)
}

// fillRoundedRect fills r with col, rounding the corners by radius.
func fillRoundedRect(img *image.RGBA, r image.Rectangle, radius int, col color.Color) {
	if radius <= 0 {
		fillRect(img, r, col)
		return
	}

	src := image.NewUniform(col)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if insideRounded(x, y, r, radius) {
				draw.Draw(img, image.Rect(x, y, x+1, y+1), src, image.Point{}, draw.Over)
			}
		}
	}
}

// strokeRoundedRect draws a rounded rectangle with a border: the outer
// shape in borderCol, then the interior inset by width in fillCol.
func strokeRoundedRect(img *image.RGBA, r image.Rectangle, radius, width int, fillCol, borderCol color.Color) {
	fillRoundedRect(img, r, radius, borderCol)
	inner := image.Rect(r.Min.X+width, r.Min.Y+width, r.Max.X-width, r.Max.Y-width)
	innerRadius := radius - width
	if innerRadius < 0 {
		innerRadius = 0
	}
	fillRoundedRect(img, inner, innerRadius, fillCol)
}

// insideRounded reports whether (x, y) lies within the rounded rectangle.
func insideRounded(x, y int, r image.Rectangle, radius int) bool {
	if x < r.Min.X || x >= r.Max.X || y < r.Min.Y || y >= r.Max.Y {
		return false
	}

	// Corner centers.
	cx, cy := 0, 0
	switch {
	case x < r.Min.X+radius && y < r.Min.Y+radius:
		cx, cy = r.Min.X+radius, r.Min.Y+radius
	case x >= r.Max.X-radius && y < r.Min.Y+radius:
		cx, cy = r.Max.X-radius-1, r.Min.Y+radius
	case x < r.Min.X+radius && y >= r.Max.Y-radius:
		cx, cy = r.Min.X+radius, r.Max.Y-radius-1
	case x >= r.Max.X-radius && y >= r.Max.Y-radius:
		cx, cy = r.Max.X-radius-1, r.Max.Y-radius-1
	default:
		return true
	}

	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= radius*radius
}

// fillTriangle fills the triangle (a, b, c) using edge functions.
func fillTriangle(img *image.RGBA, a, b, c image.Point, col color.Color) {
	minX := min(a.X, min(b.X, c.X))
	maxX := max(a.X, max(b.X, c.X))
	minY := min(a.Y, min(b.Y, c.Y))
	maxY := max(a.Y, max(b.Y, c.Y))

	src := image.NewUniform(col)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			d1 := edgeSign(x, y, a, b)
			d2 := edgeSign(x, y, b, c)
			d3 := edgeSign(x, y, c, a)
			hasNeg := d1 < 0 || d2 < 0 || d3 < 0
			hasPos := d1 > 0 || d2 > 0 || d3 > 0
			if !(hasNeg && hasPos) {
				draw.Draw(img, image.Rect(x, y, x+1, y+1), src, image.Point{}, draw.Over)
			}
		}
	}
}

func edgeSign(x, y int, p, q image.Point) int {
	return (x-q.X)*(p.Y-q.Y) - (p.X-q.X)*(y-q.Y)
}

// gradientStop pairs a relative offset in [0, 1] with an alpha value.
type gradientStop struct {
	at    float64
	alpha float64
}

// fillVerticalGradient blends a vertical gradient of base over r, with
// per-row alpha interpolated between the given stops (sorted by offset).
func fillVerticalGradient(img *image.RGBA, r image.Rectangle, base color.RGBA, stops []gradientStop) {
	h := r.Dy()
	if h <= 0 || len(stops) == 0 {
		return
	}

	for y := r.Min.Y; y < r.Max.Y; y++ {
		t := float64(y-r.Min.Y) / float64(h)
		alpha := gradientAlpha(t, stops)
		row := color.NRGBA{R: base.R, G: base.G, B: base.B, A: uint8(alpha * 255)}
		draw.Draw(img, image.Rect(r.Min.X, y, r.Max.X, y+1), image.NewUniform(row), image.Point{}, draw.Over)
	}
}

func gradientAlpha(t float64, stops []gradientStop) float64 {
	if t <= stops[0].at {
		return stops[0].alpha
	}
	for i := 1; i < len(stops); i++ {
		if t <= stops[i].at {
			prev, next := stops[i-1], stops[i]
			span := next.at - prev.at
			if span <= 0 {
				return next.alpha
			}
			frac := (t - prev.at) / span
			return prev.alpha + (next.alpha-prev.alpha)*frac
		}
	}
	return stops[len(stops)-1].alpha
}

// drawImageCover scales src to cover dst's rect, cropping the overflow
// so the aspect ratio is preserved (CSS object-fit: cover).
func drawImageCover(dst *image.RGBA, src image.Image, r image.Rectangle) {
	sb := src.Bounds()
	if sb.Dx() == 0 || sb.Dy() == 0 || r.Dx() == 0 || r.Dy() == 0 {
		return
	}

	scaleX := float64(r.Dx()) / float64(sb.Dx())
	scaleY := float64(r.Dy()) / float64(sb.Dy())
	scale := scaleX
	if scaleY > scale {
		scale = scaleY
	}

	w := int(float64(sb.Dx()) * scale)
	h := int(float64(sb.Dy()) * scale)

	// Center the scaled image over the target rect.
	target := image.Rect(0, 0, w, h).
		Add(r.Min).
		Sub(image.Pt((w-r.Dx())/2, (h-r.Dy())/2))

	scratch := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(scratch, scratch.Bounds(), src, sb, xdraw.Src, nil)
	draw.Draw(dst, target.Intersect(r), scratch, target.Intersect(r).Min.Sub(target.Min), draw.Over)
}

// drawImageScaled scales src to exactly fill target, clipped to dst.
func drawImageScaled(dst *image.RGBA, src image.Image, target image.Rectangle) {
	clipped := target.Intersect(dst.Bounds())
	if clipped.Empty() {
		return
	}
	xdraw.ApproxBiLinear.Scale(dst, target, src, src.Bounds(), xdraw.Over, nil)
}

// wrapText breaks text into lines that fit within maxWidth pixels using
// the metrics of face. Explicit newlines are preserved; each paragraph
// is word-wrapped independently.
func wrapText(text string, maxWidth int, face font.Face) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		lines = append(lines, wrapParagraph(paragraph, maxWidth, face)...)
	}
	return lines
}

func wrapParagraph(text string, maxWidth int, face font.Face) []string {
	if maxWidth <= 0 {
		return []string{text}
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		test := current + " " + word
		if font.MeasureString(face, test).Ceil() > maxWidth {
			lines = append(lines, current)
			current = word
		} else {
			current = test
		}
	}
	return append(lines, current)
}

// textWidth measures the advance of s in pixels.
func textWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

// drawString draws text with its baseline at (x, y).
func drawString(img *image.RGBA, text string, x, y int, col color.Color, face font.Face) {
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	drawer.DrawString(text)
}

// drawOutlinedString draws text with a 1px outline in outlineCol under
// the fill. Approximates the CSS text-shadow outline used by the
// overlay family's name tag and dialogue glow.
func drawOutlinedString(img *image.RGBA, text string, x, y int, col, outlineCol color.Color, face font.Face) {
	for _, d := range [][2]int{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}, {0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
		drawString(img, text, x+d[0], y+d[1], outlineCol, face)
	}
	drawString(img, text, x, y, col, face)
}
