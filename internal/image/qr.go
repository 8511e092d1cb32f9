package imagepkg

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"log/slog"

	qrcode "github.com/skip2/go-qrcode"
)

const qrWidthFraction = 0.10

// GenerateQRImage returns a size×size QR code for text.
func GenerateQRImage(text string, size int) (image.Image, error) {
	b, err := qrcode.Encode(text, qrcode.Medium, size)
	if err != nil {
		return nil, err
	}
	return png.Decode(bytes.NewReader(b))
}

// AddQRCode stamps a QR code for text at pos, sized to 10% of the base width.
// Failures are logged and base is returned unchanged.
func AddQRCode(base *image.NRGBA, text string, pos Position) (*image.NRGBA, *Box) {
	if text == "" {
		return base, nil
	}
	b := base.Bounds()
	size := int(float64(b.Dx()) * qrWidthFraction)
	if size <= 0 {
		slog.Warn("Image too small for QR code", "width", b.Dx())
		return base, nil
	}
	qr, err := GenerateQRImage(text, size)
	if err != nil {
		slog.Warn("Error generating QR code", "error", fmt.Errorf("qr %q: %w", text, err))
		return base, nil
	}
	out, box, err := PlaceOverlay(base, qr, pos)
	if err != nil {
		slog.Warn("Error adding QR code", "error", err)
		return base, nil
	}
	return out, box
}
