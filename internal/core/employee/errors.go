package employee

import "errors"

var (
	ErrInvalidSource     = errors.New("employee: invalid source")
	ErrInvalidIdentifier = errors.New("employee: invalid identifier")
	ErrNotFound          = errors.New("employee: not found")
)
