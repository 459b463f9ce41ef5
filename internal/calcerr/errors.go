// Package calcerr defines the error taxonomy shared by the calculator packages.
//
// Input problems are expected, per-request conditions and are reported as *Error
// values of one of four kinds. Anything else reaching the host is a defect.
package calcerr

import (
	"errors"
	"fmt"

	"golang.org/x/text/message"
)

// Sentinels for errors.Is checks.
var (
	ErrFormat           = errors.New("format error")
	ErrValidation       = errors.New("validation error")
	ErrMissingParameter = errors.New("missing parameter")
	ErrAmbiguous        = errors.New("ambiguous input")

	// ErrInconsistent marks a simulation that produced no matching interval.
	// It is an internal defect, never an input error.
	ErrInconsistent = errors.New("inconsistent simulation")
)

// Kind classifies an input error.
type Kind int

const (
	KindFormat Kind = iota + 1
	KindValidation
	KindMissingParameter
	KindAmbiguity
)

// String returns the kind name used in log attributes.
func (k Kind) String() string {
	switch k {
	case KindFormat:
		return "format"
	case KindValidation:
		return "validation"
	case KindMissingParameter:
		return "missing_parameter"
	case KindAmbiguity:
		return "ambiguity"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindFormat:
		return ErrFormat
	case KindValidation:
		return ErrValidation
	case KindMissingParameter:
		return ErrMissingParameter
	case KindAmbiguity:
		return ErrAmbiguous
	default:
		return nil
	}
}

// Error is a request-level input error.
// Format is also the message catalog key, so the error can be rendered in
// any registered locale.
type Error struct {
	Kind   Kind
	Format string
	Args   []any

	// Example is an unambiguous phrasing shown with ambiguity errors.
	Example string
}

func (e *Error) Error() string {
	return fmt.Sprintf(e.Format, e.Args...)
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// Localize renders the message through p.
func (e *Error) Localize(p *message.Printer) string {
	return p.Sprintf(e.Format, e.Args...)
}

// Formatf returns a FormatError.
func Formatf(format string, args ...any) error {
	return &Error{Kind: KindFormat, Format: format, Args: args}
}

// Validationf returns a ValidationError.
func Validationf(format string, args ...any) error {
	return &Error{Kind: KindValidation, Format: format, Args: args}
}

// Missingf returns a MissingParameterError.
func Missingf(format string, args ...any) error {
	return &Error{Kind: KindMissingParameter, Format: format, Args: args}
}

// Ambiguousf returns an AmbiguityError carrying an unambiguous example phrasing.
func Ambiguousf(example, format string, args ...any) error {
	return &Error{Kind: KindAmbiguity, Format: format, Args: args, Example: example}
}

// As extracts the *Error from err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
