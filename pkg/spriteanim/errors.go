package spriteanim

import "errors"

var (
	// ErrFileNotFound is returned when a sprite-animation document does not
	// exist at the given path.
	ErrFileNotFound = errors.New("spriteanim: resource file not found")
	// ErrInvalidFormat is returned when a sprite-animation document is
	// structurally malformed or names an unknown type tag.
	ErrInvalidFormat = errors.New("spriteanim: invalid resource format")
)
