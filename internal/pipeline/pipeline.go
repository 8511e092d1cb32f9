package pipeline

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	imagepkg "github.com/youruser/postcard/internal/image"
	"github.com/youruser/postcard/internal/locate"
)

// Options configures a single run.
type Options struct {
	Root         string
	BaseImage    string // explicit base image; must exist when set
	Logo         string // explicit logo; dropped with a warning when missing
	Output       string
	Caption      string
	EraseText    string
	LogoPosition imagepkg.Position
	Fonts        []imagepkg.FontSource
	QRText       string
}

// Result describes what a run produced.
type Result struct {
	Base    string
	Logo    string
	Output  string
	LogoBox *imagepkg.Box
	Width   int
	Height  int
}

// ResolveInputs finds the base and logo images under opts.Root and applies
// the explicit overrides.
func ResolveInputs(opts Options) (locate.Result, error) {
	found, locErr := locate.Locate(opts.Root, opts.Output)

	if opts.BaseImage != "" {
		if !exists(opts.BaseImage) {
			return locate.Result{}, fmt.Errorf("%w at: %s", ErrBaseImageNotFound, opts.BaseImage)
		}
		if locErr != nil {
			slog.Debug("Locator found nothing, using explicit image", "error", locErr)
		}
		found.Base = opts.BaseImage
	} else if locErr != nil {
		return locate.Result{}, locErr
	}

	if opts.Logo != "" {
		if exists(opts.Logo) {
			found.Logo = opts.Logo
		} else {
			slog.Warn("Logo not found, continuing without logo", "path", opts.Logo)
			found.Logo = ""
		}
	}
	return found, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Run executes locate, erase, logo, caption, QR badge and canvas formatting
// in order and writes the PNG.
func Run(opts Options) (*Result, error) {
	slog.Info("Searching for image files...", "root", opts.Root)
	files, err := ResolveInputs(opts)
	if err != nil {
		if errors.Is(err, locate.ErrNoBaseImage) {
			slog.Error("Christmas image not found! Looking for files with 'christmas' in the name or any image file.")
		}
		return nil, err
	}
	slog.Info("Found christmas image", "path", files.Base)
	if files.HasLogo() {
		slog.Info("Found logo", "path", files.Logo)
	} else if opts.Logo == "" {
		slog.Warn("Logo file not found, looking for files with 'logo' or 'nimex' in the name. Continuing without logo...")
	}

	img, err := imagepkg.LoadOpaqueImage(files.Base)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBaseImageDecode, err)
	}
	slog.Info("Loaded christmas image", "width", img.Bounds().Dx(), "height", img.Bounds().Dy())

	slog.Info("Removing text", "text", opts.EraseText)
	img = imagepkg.EraseText(img, opts.EraseText)

	pos := opts.LogoPosition
	if pos == "" {
		pos = imagepkg.BottomLeft
	}
	var logoBox *imagepkg.Box
	if files.HasLogo() {
		slog.Info("Adding logo...", "position", pos)
		img, logoBox = imagepkg.AddLogo(img, files.Logo, pos)
	}

	mode := imagepkg.CenterBottom
	if logoBox != nil {
		mode = imagepkg.BelowLogo
	}
	slog.Info("Adding message", "caption", opts.Caption, "mode", mode)
	img = imagepkg.DrawCaption(img, opts.Caption, mode, logoBox, opts.Fonts)

	if opts.QRText != "" {
		slog.Info("Adding QR code", "position", pos.Mirror())
		img, _ = imagepkg.AddQRCode(img, opts.QRText, pos.Mirror())
	}

	slog.Info("Formatting as LinkedIn post", "width", imagepkg.CanvasWidth, "height", imagepkg.CanvasHeight)
	post := imagepkg.FormatCanvas(img)

	if err := imagepkg.SavePNG(post, opts.Output); err != nil {
		return nil, fmt.Errorf("saving %s: %w", opts.Output, err)
	}
	slog.Info("Saved LinkedIn post", "path", opts.Output, "width", post.Bounds().Dx(), "height", post.Bounds().Dy())

	return &Result{
		Base:    files.Base,
		Logo:    files.Logo,
		Output:  opts.Output,
		LogoBox: logoBox,
		Width:   post.Bounds().Dx(),
		Height:  post.Bounds().Dy(),
	}, nil
}
