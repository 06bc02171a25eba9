package decoder

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrDecode matches every failure returned by this package.
var ErrDecode = errors.New("could not open or find the image")

// ErrTooLarge is the cause when the image header exceeds the pixel limit.
var ErrTooLarge = errors.New("image exceeds pixel limit")

// Error reports why a file could not be turned into a buffer.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("decode: %v", e.Err)
	}
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool { return target == ErrDecode }
