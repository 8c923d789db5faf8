package svg

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifies the ways converting a file can fail.
type ErrorKind int

// These are the failure classes reported by the converter
const (
	UnknownError ErrorKind = iota
	FileAccessError
	XMLParseError
	MissingAttributeError
	NumberFormatError
	PreconditionError
	NamingError
)

var kindNames = map[ErrorKind]string{
	UnknownError:          "unknown",
	FileAccessError:       "file access",
	XMLParseError:         "xml parse",
	MissingAttributeError: "missing attribute",
	NumberFormatError:     "number format",
	PreconditionError:     "precondition",
	NamingError:           "naming",
}

func (k ErrorKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is a classified conversion failure. Err, when set, is the
// underlying cause.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s error: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s error: %s: %v", e.Kind, e.Msg, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind ErrorKind, err error, format string, args ...interface{}) error {
	return errors.WithStack(&Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err})
}

// KindOf returns the kind of the first *Error in err's chain, or
// UnknownError.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return UnknownError
}
