package imagepkg

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// Font source kinds.
const (
	FontFile   = "file"
	FontGoBold = "gobold"
	FontBasic  = "basic"
)

// FontSource is one entry in the ordered caption font chain.
type FontSource struct {
	Kind string `yaml:"kind"`
	Path string `yaml:"path,omitempty"`
}

func (s FontSource) String() string {
	if s.Path != "" {
		return s.Kind + ":" + s.Path
	}
	return s.Kind
}

// DefaultFonts is the chain tried when no fonts are configured.
var DefaultFonts = []FontSource{
	{Kind: FontFile, Path: "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf"},
	{Kind: FontFile, Path: "/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf"},
	{Kind: FontGoBold},
	{Kind: FontBasic},
}

var (
	goBoldOnce sync.Once
	goBold     *opentype.Font
	goBoldErr  error
)

// loadGoBold parses the embedded Go Bold font once.
func loadGoBold() (*opentype.Font, error) {
	goBoldOnce.Do(func() {
		parsed, err := opentype.Parse(gobold.TTF)
		if err != nil {
			goBoldErr = fmt.Errorf("parse embedded font: %w", err)
			return
		}
		goBold = parsed
	})
	return goBold, goBoldErr
}

func (s FontSource) face(size float64) (font.Face, error) {
	var parsed *opentype.Font
	switch s.Kind {
	case FontBasic:
		return basicfont.Face7x13, nil
	case FontGoBold:
		f, err := loadGoBold()
		if err != nil {
			return nil, err
		}
		parsed = f
	case FontFile:
		data, err := os.ReadFile(s.Path)
		if err != nil {
			return nil, err
		}
		f, err := opentype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", s.Path, err)
		}
		parsed = f
	default:
		return nil, fmt.Errorf("unknown font kind %q", s.Kind)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	return face, nil
}

// ResolveFace walks sources in order and returns the first face that loads.
// The basic bitmap face terminates every chain, so this never fails.
func ResolveFace(sources []FontSource, size float64) (font.Face, FontSource) {
	if size < 1 {
		size = 1
	}
	for _, s := range sources {
		face, err := s.face(size)
		if err != nil {
			slog.Debug("Font source unavailable", "font", s.String(), "error", err)
			continue
		}
		return face, s
	}
	slog.Warn("No caption font could be loaded, using built-in bitmap font")
	return basicfont.Face7x13, FontSource{Kind: FontBasic}
}

func closeFace(face font.Face) {
	if face == basicfont.Face7x13 {
		return
	}
	if closer, ok := face.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
}
