package combiner

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies every failure the combiner can report.
type Kind int

const (
	KindUnknown Kind = iota
	MissingArgument
	UnableToReadImageFromPath
	BufferTooSmall
	DifferentImageFormats
	UnableToParseImage
	UnableToSaveImage
	IndexOutOfBounds
)

func (k Kind) String() string {
	switch k {
	case MissingArgument:
		return "missing argument"
	case UnableToReadImageFromPath:
		return "unable to read image from path"
	case BufferTooSmall:
		return "buffer too small"
	case DifferentImageFormats:
		return "different image formats"
	case UnableToParseImage:
		return "unable to parse image"
	case UnableToSaveImage:
		return "unable to save image"
	case IndexOutOfBounds:
		return "index out of bounds"
	default:
		return "unknown"
	}
}

// Error is the single error type surfaced by the pipeline. Detail names the
// path or argument position involved, Err is the underlying cause if any.
type Error struct {
	Kind   Kind
	Detail string
	Err    error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is(err, &Error{Kind: k}) match on kind alone.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Detail == "" && t.Err == nil
}

// newError builds an *Error. The cause gets a stack attached so that %+v on
// the top-level error shows where the failure happened.
func newError(kind Kind, detail string, cause error) *Error {
	if cause != nil {
		cause = errors.WithStack(cause)
	}
	return &Error{Kind: kind, Detail: detail, Err: cause}
}

// NewError is newError for collaborators outside the package.
func NewError(kind Kind, detail string, cause error) error {
	return newError(kind, detail, cause)
}

// KindOf digs through any wrapping and reports the kind of err, or
// KindUnknown when err was not produced by this package.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return KindUnknown
}

func missingArgument(position int, role string) *Error {
	return newError(MissingArgument, fmt.Sprintf("position %d: %s", position, role), nil)
}
