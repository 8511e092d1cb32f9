package locate

import "errors"

// ErrNoBaseImage is returned when the scanned tree holds no usable image.
var ErrNoBaseImage = errors.New("no base image found")

// Result holds the resolved input files. Logo is empty when no logo was found.
type Result struct {
	Base string
	Logo string
}

// HasLogo reports whether a logo path was resolved.
func (r Result) HasLogo() bool {
	return r.Logo != ""
}

// candidate is an image file seen during the walk.
type candidate struct {
	Path string
	Name string // lowercased base name
	Size int64
}
