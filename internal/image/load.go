package imagepkg

import (
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"github.com/youruser/postcard/internal/util"
)

// LoadImage opens and decodes an image file (JPEG, PNG, GIF, WEBP), applying
// any EXIF orientation, and returns a mutable NRGBA copy.
func LoadImage(path string) (*image.NRGBA, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("decode %s: empty image", path)
	}
	return imaging.Clone(img), nil
}

// LoadOpaqueImage is LoadImage with the alpha channel dropped: every pixel
// keeps its color channels and becomes fully opaque.
func LoadOpaqueImage(path string) (*image.NRGBA, error) {
	img, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
	return img, nil
}

// SavePNG writes img to path as PNG, creating parent directories. The file is
// always PNG regardless of the extension in path.
func SavePNG(img image.Image, path string) error {
	if err := util.EnsureParentDir(path); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := imaging.Encode(f, img, imaging.PNG); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}
