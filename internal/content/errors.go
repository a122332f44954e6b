package content

import "errors"

var (
	// ErrInvalid wraps every content validation failure.
	ErrInvalid = errors.New("content: invalid")
	// ErrDuplicate reports an id or slug used twice.
	ErrDuplicate = errors.New("content: duplicate key")
)
