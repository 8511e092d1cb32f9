package imagepkg

import (
	"image"
	"image/color"
	"log/slog"
)

const (
	bandFraction   = 0.12
	bandLift       = 30
	aboveSampleH   = 100
	sideSampleH    = 50
	blendStripH    = 20
	blendStripStep = 5
)

// Band returns the rows painted by EraseText: the bottom 12% of the image
// lifted by a fixed margin, plus everything below it down to the image edge.
// Top is the first painted row and Height the gradient height.
type Band struct {
	Top    int
	Height int
}

// TextBand computes the erase band for an image of height h.
func TextBand(h int) Band {
	bh := int(float64(h) * bandFraction)
	top := h - bh - bandLift
	if top < 0 {
		top = 0
	}
	return Band{Top: top, Height: bh}
}

// EraseText paints over the bottom band of img to hide caption text baked
// into the photo. text is not searched for: the band is purely geometric and
// anything inside it is covered.
func EraseText(img *image.NRGBA, text string) *image.NRGBA {
	h := img.Bounds().Dy()
	band := TextBand(h)
	slog.Debug("Erasing text band", "text", text, "top", band.Top, "height", band.Height)

	// all samples come from the untouched image
	base := baseColor(img, band)
	blend, hasBlend := blendColor(img, band)
	slog.Debug("Sampled band colors", "base", base, "blend", blend, "blend_ok", hasBlend)

	fillRows(img, band.Top, h, base)

	if hasBlend && band.Height > 0 {
		for i := 0; i < band.Height; i++ {
			y := band.Top + i
			if y >= h {
				break
			}
			// strips are two rows tall; each overwrites the tail of the previous
			// one, so only the last strip's second row survives
			fillRows(img, y, y+2, lerpColor(base, blend, float64(i)/float64(band.Height)))
		}
	}
	return img
}

// rgbSum accumulates channel totals for averaging.
type rgbSum struct {
	r, g, b uint64
	n       uint64
}

func (s *rgbSum) addRect(img *image.NRGBA, r image.Rectangle) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			s.add(img.NRGBAAt(x, y))
		}
	}
}

func (s *rgbSum) add(c color.NRGBA) {
	s.r += uint64(c.R)
	s.g += uint64(c.G)
	s.b += uint64(c.B)
	s.n++
}

func (s rgbSum) mean() color.NRGBA {
	if s.n == 0 {
		return color.NRGBA{A: 0xff}
	}
	return color.NRGBA{
		R: uint8(s.r / s.n),
		G: uint8(s.g / s.n),
		B: uint8(s.b / s.n),
		A: 0xff,
	}
}

func baseColor(img *image.NRGBA, band Band) color.NRGBA {
	b := img.Bounds()
	w := b.Dx()
	top := b.Min.Y + band.Top
	side := w / 4

	var sum rgbSum
	if band.Top > 50 {
		sum.addRect(img, image.Rect(b.Min.X, max(b.Min.Y, top-aboveSampleH), b.Max.X, top))
	}
	if band.Top > 0 {
		y0 := max(b.Min.Y, top-sideSampleH)
		sum.addRect(img, image.Rect(b.Min.X, y0, b.Min.X+side, top))
		sum.addRect(img, image.Rect(b.Max.X-side, y0, b.Max.X, top))
	}
	if sum.n > 0 {
		return sum.mean()
	}

	var fallback rgbSum
	fallback.addRect(img, image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Min.Y+b.Dy()/4))
	if fallback.n == 0 {
		fallback.addRect(img, b)
	}
	return fallback.mean()
}

func blendColor(img *image.NRGBA, band Band) (color.NRGBA, bool) {
	if band.Top <= blendStripH {
		return color.NRGBA{}, false
	}
	b := img.Bounds()
	w := b.Dx()
	var sum rgbSum
	for _, x := range []int{w / 4, w / 2, 3 * w / 4} {
		for dy := -blendStripH; dy < 0; dy += blendStripStep {
			pt := image.Pt(b.Min.X+x, b.Min.Y+band.Top+dy)
			if pt.In(b) {
				sum.add(img.NRGBAAt(pt.X, pt.Y))
			}
		}
	}
	if sum.n == 0 {
		return color.NRGBA{}, false
	}
	return sum.mean(), true
}

func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.NRGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 0xff}
}

// fillRows paints rows [y0, y1) relative to the image origin.
func fillRows(img *image.NRGBA, y0, y1 int, c color.NRGBA) {
	b := img.Bounds()
	r := image.Rect(b.Min.X, b.Min.Y+y0, b.Max.X, b.Min.Y+y1).Intersect(b)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}
