package imagepkg

import (
	"image"
	"image/color"
	"image/draw"
	"log/slog"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// CaptionMode selects where the caption goes.
type CaptionMode string

const (
	BelowLogo    CaptionMode = "below_logo"
	CenterBottom CaptionMode = "center_bottom"
)

const (
	captionSizeFraction = 0.045
	captionLogoGap      = 30
	captionBottomOffset = 120
	outlineWidth        = 3
)

var (
	captionFill    = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	captionOutline = color.NRGBA{A: 0xff}
)

// CaptionOrigin returns the top-left corner of a caption textW pixels wide on
// a w×h image. Below a logo the caption is left-aligned with it, unless it
// would cross the right inset, in which case it is centered.
func CaptionOrigin(w, h, textW int, mode CaptionMode, logo *Box) image.Point {
	if mode == BelowLogo && logo != nil {
		x := logo.X
		y := logo.Y + logo.H + captionLogoGap
		if x+textW > w-edgeInset {
			x = floorDiv(w-textW, 2)
		}
		return image.Pt(x, y)
	}
	return image.Pt(floorDiv(w-textW, 2), h-captionBottomOffset)
}

// DrawCaption renders text onto img with a black outline and white fill.
// Font loading falls back through fonts and never fails.
func DrawCaption(img *image.NRGBA, text string, mode CaptionMode, logo *Box, fonts []FontSource) *image.NRGBA {
	if text == "" {
		return img
	}
	b := img.Bounds()
	face, src := ResolveFace(fonts, float64(int(float64(b.Dy())*captionSizeFraction)))
	defer closeFace(face)
	slog.Debug("Caption font", "font", src.String())

	mask := textMask(face, text)
	tw := mask.Bounds().Dx()
	at := CaptionOrigin(b.Dx(), b.Dy(), tw, mode, logo).Add(b.Min)
	slog.Debug("Caption placement", "mode", mode, "x", at.X, "y", at.Y, "width", tw)

	outline := image.NewUniform(captionOutline)
	for dx := -outlineWidth; dx <= outlineWidth; dx++ {
		for dy := -outlineWidth; dy <= outlineWidth; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			stamp(img, mask, outline, at.Add(image.Pt(dx, dy)))
		}
	}
	stamp(img, mask, image.NewUniform(captionFill), at)
	return img
}

// textMask rasterizes text into an alpha mask whose top edge is the font's
// ascent line.
func textMask(face font.Face, text string) *image.Alpha {
	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	height := ascent + m.Descent.Ceil()
	width := font.MeasureString(face, text).Ceil()
	mask := image.NewAlpha(image.Rect(0, 0, max(width, 0), max(height, 0)))
	d := &font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(0, ascent),
	}
	d.DrawString(text)
	return mask
}

func stamp(dst *image.NRGBA, mask *image.Alpha, src image.Image, at image.Point) {
	r := mask.Bounds().Add(at)
	draw.DrawMask(dst, r, src, image.Point{}, mask, mask.Bounds().Min, draw.Over)
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
