package denovo

import "errors"

// Common errors.
var (
	ErrInvalidFormat = errors.New("not a Denovo output file")
	ErrMissingMarker = errors.New("no denovo or denovo-forward group at file root")
	ErrCoordinates   = errors.New("invalid mesh coordinates")
	ErrUnknownField  = errors.New("unknown field")
	ErrUnknownUnit   = errors.New("unknown code unit")
	ErrClosed        = errors.New("dataset is closed")
)
