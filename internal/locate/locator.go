package locate

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Locate walks root and guesses which image is the base photo and which is
// the logo. Files listed in exclude are ignored. Walk order is lexical, so
// "first match" is stable between runs.
func Locate(root string, exclude ...string) (Result, error) {
	cands, err := collect(root, exclude)
	if err != nil {
		return Result{}, err
	}
	if len(cands) == 0 {
		return Result{}, fmt.Errorf("%w under %s", ErrNoBaseImage, root)
	}

	res := classify(cands)
	if res.Base == "" {
		if c, ok := largest(cands); ok {
			slog.Debug("No christmas-named image, using largest file", "path", c.Path, "bytes", c.Size)
			res.Base = c.Path
		}
	}
	if res.Logo == "" {
		if c, ok := smallLogo(cands, res.Base); ok {
			slog.Debug("No logo-named image, using first small file", "path", c.Path, "bytes", c.Size)
			res.Logo = c.Path
		}
	}
	return res, nil
}

func collect(root string, exclude []string) ([]candidate, error) {
	skip := map[string]bool{}
	for _, e := range exclude {
		if e == "" {
			continue
		}
		if abs, err := filepath.Abs(e); err == nil {
			skip[abs] = true
		}
	}

	var out []candidate
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			// unreadable entries are skipped
			slog.Debug("Skipping unreadable entry", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		name := d.Name()
		if d.IsDir() {
			if path != root && isHidden(name) {
				return filepath.SkipDir
			}
			return nil
		}
		if skipFile(name) || !IsImageName(name) {
			return nil
		}
		if abs, err := filepath.Abs(path); err == nil {
			if skip[abs] {
				return nil
			}
			path = abs
		}
		// size of the target for symlinks
		info, err := os.Stat(path)
		if err != nil {
			slog.Debug("Skipping file without stat info", "path", path, "error", err)
			return nil
		}
		if info.IsDir() {
			return nil
		}
		out = append(out, candidate{
			Path: path,
			Name: strings.ToLower(name),
			Size: info.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	return out, nil
}
