package pixel

import (
	"errors"
	"fmt"
)

// Kind classifies the failures the rendering core can report.
type Kind uint8

const (
	// IndexOutOfBounds is a pixel access outside the buffer dimensions.
	IndexOutOfBounds Kind = iota + 1
	// LayoutFailure means the font shaper could not lay out the text.
	LayoutFailure
)

func (k Kind) String() string {
	switch k {
	case IndexOutOfBounds:
		return "index out of bounds"
	case LayoutFailure:
		return "layout failure"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Error is the only error type produced by pixel, raster and glyph.
type Error struct {
	Kind Kind
	Op   string
	X, Y int
	Err  error
}

// Sentinels for errors.Is. Any *Error with the same Kind matches.
var (
	ErrIndexOutOfBounds = &Error{Kind: IndexOutOfBounds}
	ErrLayoutFailure    = &Error{Kind: LayoutFailure}
)

func (e *Error) Error() string {
	msg := "pixel: " + e.Kind.String()
	if e.Op != "" {
		msg = e.Op + ": " + e.Kind.String()
	}
	if e.Kind == IndexOutOfBounds {
		msg += fmt.Sprintf(" at (%d, %d)", e.X, e.Y)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// IsKind reports whether any error in err's chain is an *Error of kind k.
func IsKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}
