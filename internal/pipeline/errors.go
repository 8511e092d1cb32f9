package pipeline

import "errors"

var (
	// ErrBaseImageNotFound means an explicit base image path does not exist.
	ErrBaseImageNotFound = errors.New("christmas image not found")

	// ErrBaseImageDecode means the base image could not be read or decoded.
	ErrBaseImageDecode = errors.New("error loading christmas image")
)
