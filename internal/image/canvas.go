package imagepkg

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// Output canvas for a LinkedIn link post.
const (
	CanvasWidth  = 1200
	CanvasHeight = 627
)

var canvasFill = color.NRGBA{A: 0xff}

// CoverSize scales w×h uniformly by the larger of the two axis factors so the
// result covers the canvas. Both returned sides are at least the canvas sides.
func CoverSize(w, h int) (int, int) {
	scale := math.Max(float64(CanvasWidth)/float64(w), float64(CanvasHeight)/float64(h))
	nw := int(float64(w) * scale)
	nh := int(float64(h) * scale)
	// float error can land one pixel short of the canvas
	return max(nw, CanvasWidth), max(nh, CanvasHeight)
}

// FormatCanvas cover-scales img and center-crops it onto a black
// CanvasWidth×CanvasHeight canvas.
func FormatCanvas(img image.Image) *image.NRGBA {
	b := img.Bounds()
	nw, nh := CoverSize(b.Dx(), b.Dy())
	resized := imaging.Resize(img, nw, nh, imaging.Lanczos)

	canvas := imaging.New(CanvasWidth, CanvasHeight, canvasFill)
	at := image.Pt(floorDiv(CanvasWidth-nw, 2), floorDiv(CanvasHeight-nh, 2))
	return imaging.Paste(canvas, resized, at)
}
