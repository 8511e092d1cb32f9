package locate

import (
	"path/filepath"
	"strings"
)

// logoSizeLimit is the upper bound for a file to be guessed as a logo.
const logoSizeLimit = 5 * 1024 * 1024

var imageExts = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

var skippedExts = []string{".py", ".html", ".htm", ".sh"}

func hasAnySuffix(name string, suffixes []string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(name, s) {
			return true
		}
	}
	return false
}

// IsImageName reports whether name carries one of the supported image
// extensions, ignoring case.
func IsImageName(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range imageExts {
		if ext == e {
			return true
		}
	}
	return false
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

func skipFile(name string) bool {
	if isHidden(name) {
		return true
	}
	return hasAnySuffix(strings.ToLower(name), skippedExts)
}

func isBaseName(lower string) bool {
	return strings.Contains(lower, "christmas") && !strings.Contains(lower, "logo")
}

func isLogoName(lower string) bool {
	return strings.Contains(lower, "logo") || strings.Contains(lower, "nimex")
}

// classify applies the name rules in walk order. A base-named file never
// falls through to the logo rule, even once a base is already chosen.
func classify(cands []candidate) Result {
	var res Result
	for _, c := range cands {
		if isBaseName(c.Name) {
			if res.Base == "" {
				res.Base = c.Path
			}
			continue
		}
		if isLogoName(c.Name) && res.Logo == "" {
			res.Logo = c.Path
		}
	}
	return res
}

// largest returns the biggest candidate, keeping the earliest on ties.
func largest(cands []candidate) (candidate, bool) {
	var best candidate
	found := false
	for _, c := range cands {
		if !found || c.Size > best.Size {
			best = c
			found = true
		}
	}
	return best, found
}

// smallLogo returns the first candidate other than base under the size limit.
func smallLogo(cands []candidate, base string) (candidate, bool) {
	for _, c := range cands {
		if c.Path == base {
			continue
		}
		if c.Size < logoSizeLimit {
			return c, true
		}
	}
	return candidate{}, false
}
