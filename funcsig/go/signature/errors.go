package signature

import (
	"errors"
	"fmt"
)

// Kind is the category of a validation failure.
type Kind int

const (
	// MalformedSignature means the text does not have the shape
	// "type name(arg:type, ...)".
	MalformedSignature Kind = iota + 1
	// InvalidName means a function or argument name is badly formed, repeated,
	// or equal to a type name.
	InvalidName
	// InvalidType means a type is not recognized, or a custom type is declared
	// with two different element types.
	InvalidType
)

// String returns the snake_case name used in logs, metrics and the JSON API.
func (k Kind) String() string {
	switch k {
	case MalformedSignature:
		return "malformed_signature"
	case InvalidName:
		return "invalid_name"
	case InvalidType:
		return "invalid_type"
	default:
		return "unknown"
	}
}

var (
	// ErrValidation matches every error returned by Parse.
	ErrValidation = errors.New("signature validation failed")

	// ErrMalformedSignature, ErrInvalidName and ErrInvalidType match the
	// errors of the corresponding Kind.
	ErrMalformedSignature = errors.New("malformed signature")
	ErrInvalidName        = errors.New("invalid name")
	ErrInvalidType        = errors.New("invalid type")
)

// ValidationError is returned when a signature cannot be parsed.
type ValidationError struct {
	Kind Kind
	Msg  string
}

// Error implements error.
func (e *ValidationError) Error() string {
	return e.Msg
}

// Is lets errors.Is match the sentinel of e's Kind, and ErrValidation.
func (e *ValidationError) Is(target error) bool {
	switch target {
	case ErrValidation:
		return true
	case ErrMalformedSignature:
		return e.Kind == MalformedSignature
	case ErrInvalidName:
		return e.Kind == InvalidName
	case ErrInvalidType:
		return e.Kind == InvalidType
	}
	return false
}

// KindOf returns the Kind of the first ValidationError in err's chain.
func KindOf(err error) (Kind, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Kind, true
	}
	return 0, false
}

func newError(kind Kind, format string, args ...interface{}) *ValidationError {
	return &ValidationError{
		Kind: kind,
		Msg:  fmt.Sprintf(format, args...),
	}
}
