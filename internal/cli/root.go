package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/youruser/postcard/internal/config"
	imagepkg "github.com/youruser/postcard/internal/image"
	"github.com/youruser/postcard/internal/pipeline"
)

type flags struct {
	configPath   string
	root         string
	baseImage    string
	logo         string
	output       string
	caption      string
	logoPosition string
	qrText       string
	verbose      bool
}

// NewRootCmd builds the postcard command.
func NewRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "postcard",
		Short: "Compose a LinkedIn Christmas post from a photo and a logo",
		Long: `Postcard finds a Christmas photo and a company logo under a directory,
paints over the text band at the bottom of the photo, adds the logo and a
greeting, and writes a 1200x627 PNG ready for a LinkedIn post.`,
		Example: `  # Discover images under /workspace
  postcard

  # Explicit inputs
  postcard --christmas-image photos/tree.jpg --logo brand/logo.png --output post.png`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd.OutOrStdout(), f.verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(f.configPath)
			if err != nil {
				return err
			}
			opts, err := f.options(cmd, cfg)
			if err != nil {
				return err
			}
			_, err = pipeline.Run(opts)
			return err
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.configPath, "config", "", "Path to a YAML config file")
	fl.StringVar(&f.root, "root", config.DefaultRoot, "Directory searched for the photo and logo")
	fl.StringVar(&f.baseImage, "christmas-image", "", "Path to Christmas image file")
	fl.StringVar(&f.logo, "logo", "", "Path to logo file")
	fl.StringVar(&f.output, "output", "", "Output PNG file path (default <root>/"+config.DefaultOutputName+")")
	fl.StringVar(&f.caption, "caption", config.DefaultCaption, "Greeting drawn on the image")
	fl.StringVar(&f.logoPosition, "logo-position", string(imagepkg.BottomLeft), "Logo corner: bottom_left, bottom_right, top_left or top_right")
	fl.StringVar(&f.qrText, "qr-text", "", "Optional text encoded as a QR code opposite the logo")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

// options merges explicitly set flags over the config file.
func (f *flags) options(cmd *cobra.Command, cfg *config.Config) (pipeline.Options, error) {
	changed := cmd.Flags().Changed
	if changed("root") {
		cfg.Root = f.root
	}
	if changed("output") {
		cfg.Output = f.output
	}
	if changed("caption") {
		cfg.Caption = f.caption
	}
	if changed("logo-position") {
		cfg.LogoPosition = f.logoPosition
	}
	if changed("qr-text") {
		cfg.QR.Text = f.qrText
	}

	pos, err := imagepkg.ParsePosition(cfg.LogoPosition)
	if err != nil {
		return pipeline.Options{}, err
	}

	return pipeline.Options{
		Root:         cfg.Root,
		BaseImage:    f.baseImage,
		Logo:         f.logo,
		Output:       cfg.OutputPath(),
		Caption:      cfg.Caption,
		EraseText:    cfg.EraseText,
		LogoPosition: pos,
		Fonts:        cfg.Fonts,
		QRText:       cfg.QR.Text,
	}, nil
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}
