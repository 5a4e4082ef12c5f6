package docs

import "errors"

var (
	// ErrNotFound is returned when the documentation root or a crate
	// directory does not exist.
	ErrNotFound = errors.New("documentation not found")

	// ErrMalformedFileName is returned for an .html page whose name does not
	// follow the <kind>.<name>.html convention. It aborts the whole lookup.
	ErrMalformedFileName = errors.New("malformed documentation file name")

	// ErrInvalidCrateName is returned for crate names that are not a single
	// path element.
	ErrInvalidCrateName = errors.New("invalid crate name")
)
