package imagepkg

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/disintegration/imaging"
)

const (
	logoWidthFraction = 0.15
	edgeInset         = 40
)

// Position names a corner of the base image.
type Position string

const (
	BottomLeft  Position = "bottom_left"
	BottomRight Position = "bottom_right"
	TopLeft     Position = "top_left"
	TopRight    Position = "top_right"
)

// ParsePosition validates a corner name.
func ParsePosition(s string) (Position, error) {
	switch p := Position(s); p {
	case BottomLeft, BottomRight, TopLeft, TopRight:
		return p, nil
	}
	return "", fmt.Errorf("unknown position %q (want bottom_left, bottom_right, top_left or top_right)", s)
}

// Mirror returns the corner on the other side horizontally.
func (p Position) Mirror() Position {
	switch p {
	case BottomLeft:
		return BottomRight
	case BottomRight:
		return BottomLeft
	case TopLeft:
		return TopRight
	default:
		return TopLeft
	}
}

// Box is the placed bounds of an overlay in base-image coordinates.
type Box struct {
	X, Y, W, H int
}

// Rect converts the box to an image.Rectangle.
func (b Box) Rect() image.Rectangle {
	return image.Rect(b.X, b.Y, b.X+b.W, b.Y+b.H)
}

// cornerOrigin returns the top-left point for a w×h overlay inset from the
// given corner of a bw×bh base. Unknown positions fall back to top_right.
func cornerOrigin(pos Position, bw, bh, w, h int) image.Point {
	switch pos {
	case BottomLeft:
		return image.Pt(edgeInset, bh-h-edgeInset)
	case BottomRight:
		return image.Pt(bw-w-edgeInset, bh-h-edgeInset)
	case TopLeft:
		return image.Pt(edgeInset, edgeInset)
	default:
		return image.Pt(bw-w-edgeInset, edgeInset)
	}
}

// LogoSize returns the logo dimensions for a base of width baseW: 15% of the
// base width, height keeping the logo's aspect ratio.
func LogoSize(baseW, logoW, logoH int) (int, int) {
	w := int(float64(baseW) * logoWidthFraction)
	if logoW <= 0 {
		return w, 0
	}
	return w, int(float64(w) * (float64(logoH) / float64(logoW)))
}

// AddLogo loads the logo at path and composites it onto base at pos. On any
// failure the error is logged and base is returned unchanged with a nil box.
func AddLogo(base *image.NRGBA, path string, pos Position) (*image.NRGBA, *Box) {
	logo, err := LoadImage(path)
	if err != nil {
		slog.Warn("Error adding logo", "path", path, "error", err)
		return base, nil
	}
	out, box, err := PlaceLogo(base, logo, pos)
	if err != nil {
		slog.Warn("Error adding logo", "path", path, "error", err)
		return base, nil
	}
	return out, box
}

// PlaceLogo resizes logo to 15% of the base width and pastes it at pos using
// the logo's alpha channel as the mask.
func PlaceLogo(base *image.NRGBA, logo image.Image, pos Position) (*image.NRGBA, *Box, error) {
	bb := base.Bounds()
	lb := logo.Bounds()
	w, h := LogoSize(bb.Dx(), lb.Dx(), lb.Dy())
	if w <= 0 || h <= 0 {
		return base, nil, fmt.Errorf("logo would be %dx%d on a %dx%d base", w, h, bb.Dx(), bb.Dy())
	}

	return PlaceOverlay(base, imaging.Resize(logo, w, h, imaging.Lanczos), pos)
}

// PlaceOverlay composites overlay at its own size onto base at pos, inset
// from the edges, blending by the overlay's alpha.
func PlaceOverlay(base *image.NRGBA, overlay image.Image, pos Position) (*image.NRGBA, *Box, error) {
	bb := base.Bounds()
	ob := overlay.Bounds()
	if ob.Dx() <= 0 || ob.Dy() <= 0 {
		return base, nil, fmt.Errorf("empty overlay")
	}
	at := cornerOrigin(pos, bb.Dx(), bb.Dy(), ob.Dx(), ob.Dy())
	out := imaging.Overlay(base, overlay, at, 1.0)
	box := &Box{X: at.X, Y: at.Y, W: ob.Dx(), H: ob.Dy()}
	slog.Debug("Placed overlay", "position", pos, "box", box.Rect())
	return out, box, nil
}
