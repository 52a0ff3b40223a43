package api

import (
	"errors"
	"fmt"
)

// Sentinel kinds for API errors.
var (
	ErrBadRequest       = errors.New("bad request")
	ErrMissingFile      = errors.New("missing file field")
	ErrUnsupportedTable = errors.New("unsupported table format")
	ErrUploadTooLarge   = errors.New("upload too large")
)

// newKind tags a sentinel kind with the failing operation.
func newKind(op string, kind error) error {
	return fmt.Errorf("%s: %w", op, kind)
}

// wrapKind tags a sentinel kind and its cause with the failing operation.
func wrapKind(op string, kind, err error) error {
	return fmt.Errorf("%s: %w: %w", op, kind, err)
}
