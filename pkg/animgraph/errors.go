package animgraph

import "errors"

var (
	// ErrFileNotFound is returned when a resource document does not exist
	// at the given path.
	ErrFileNotFound = errors.New("animgraph: resource file not found")
	// ErrInvalidFormat is returned when a resource document is structurally
	// malformed or names an unknown type tag.
	ErrInvalidFormat = errors.New("animgraph: invalid resource format")
	// ErrReferenceError is returned when a mutator references a layer,
	// state, or transition that does not exist.
	ErrReferenceError = errors.New("animgraph: dangling reference")
	// ErrKindMismatch is returned when a parameter value's kind does not
	// match the parameter it is being assigned to.
	ErrKindMismatch = errors.New("animgraph: parameter kind mismatch")
)
