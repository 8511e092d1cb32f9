package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	imagepkg "github.com/youruser/postcard/internal/image"
)

const (
	DefaultRoot       = "/workspace"
	DefaultOutputName = "christmas_linkedin_post.png"
	DefaultCaption    = "May this christmas bring prosperity, love and success to your life"
	DefaultEraseText  = "and happy newyear"
)

// Config holds run settings loaded from an optional YAML file.
type Config struct {
	Root         string                `yaml:"root"`
	Output       string                `yaml:"output"`
	Caption      string                `yaml:"caption"`
	EraseText    string                `yaml:"erase_text"`
	LogoPosition string                `yaml:"logo_position"`
	Fonts        []imagepkg.FontSource `yaml:"fonts"`
	QR           QRConfig              `yaml:"qr"`
}

type QRConfig struct {
	Text string `yaml:"text"`
}

// Default returns the built-in settings.
func Default() Config {
	fonts := make([]imagepkg.FontSource, len(imagepkg.DefaultFonts))
	copy(fonts, imagepkg.DefaultFonts)
	return Config{
		Root:         DefaultRoot,
		Caption:      DefaultCaption,
		EraseText:    DefaultEraseText,
		LogoPosition: string(imagepkg.BottomLeft),
		Fonts:        fonts,
	}
}

// LoadConfig reads path over the defaults. An empty path, a missing file or
// an empty file yield the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return &cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return &cfg, nil
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field values that cannot be fixed up silently.
func (c *Config) Validate() error {
	if _, err := imagepkg.ParsePosition(c.LogoPosition); err != nil {
		return fmt.Errorf("logo_position: %w", err)
	}
	for i, f := range c.Fonts {
		switch f.Kind {
		case imagepkg.FontFile:
			if f.Path == "" {
				return fmt.Errorf("fonts[%d]: file font needs a path", i)
			}
		case imagepkg.FontGoBold, imagepkg.FontBasic:
		default:
			return fmt.Errorf("fonts[%d]: unknown kind %q", i, f.Kind)
		}
	}
	return nil
}

// OutputPath returns Output, or the default file name under Root.
func (c *Config) OutputPath() string {
	if c.Output != "" {
		return c.Output
	}
	return filepath.Join(c.Root, DefaultOutputName)
}
