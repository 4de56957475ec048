package schema

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a validation failure.
type ErrorKind string

const (
	MissingRequiredField       ErrorKind = "missing_required_field"
	UnexpectedField            ErrorKind = "unexpected_field"
	InvalidEnumValue           ErrorKind = "invalid_enum_value"
	MalformedScalar            ErrorKind = "malformed_scalar"
	UnsupportedFlagCombination ErrorKind = "unsupported_flag_combination"
	ConditionalSchemaViolation ErrorKind = "conditional_schema_violation"
	// TypeMismatch is a record, sequence or string found where another
	// shape was declared.
	TypeMismatch ErrorKind = "type_mismatch"
)

// Sentinels matched by errors.Is against a *ValidationError of that kind.
var (
	ErrMissingRequiredField       = errors.New("missing required field")
	ErrUnexpectedField            = errors.New("unexpected field")
	ErrInvalidEnumValue           = errors.New("invalid enum value")
	ErrMalformedScalar            = errors.New("malformed scalar")
	ErrUnsupportedFlagCombination = errors.New("unsupported flag combination")
	ErrConditionalSchemaViolation = errors.New("conditional schema violation")
	ErrTypeMismatch               = errors.New("type mismatch")
)

var kindErrors = map[ErrorKind]error{
	MissingRequiredField:       ErrMissingRequiredField,
	UnexpectedField:            ErrUnexpectedField,
	InvalidEnumValue:           ErrInvalidEnumValue,
	MalformedScalar:            ErrMalformedScalar,
	UnsupportedFlagCombination: ErrUnsupportedFlagCombination,
	ConditionalSchemaViolation: ErrConditionalSchemaViolation,
	TypeMismatch:               ErrTypeMismatch,
}

// ValidationError is the single failure that ends a validation call.
type ValidationError struct {
	Kind   ErrorKind
	Path   string // slash separated path of the offending node
	Reason string // human-readable cause
	Value  any    // offending value, if any
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid tag: %s", e.Reason)
	}
	return fmt.Sprintf("invalid tag %q: %s", e.Path, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return kindErrors[e.Kind]
}

// NewError builds a ValidationError without a path. When a hook returns it,
// the engine fills in the path of the field being processed.
func NewError(kind ErrorKind, value any, format string, args ...any) *ValidationError {
	return &ValidationError{Kind: kind, Reason: fmt.Sprintf(format, args...), Value: value}
}

// AsValidationError unwraps err to a *ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// KindOf returns the kind of err, or "" when err is not a validation error.
func KindOf(err error) ErrorKind {
	if verr, ok := AsValidationError(err); ok {
		return verr.Kind
	}
	return ""
}

func missing(path, name string) error {
	return &ValidationError{Kind: MissingRequiredField, Path: path, Reason: fmt.Sprintf("the tag %q is missing", name)}
}

func unexpected(path, name string) error {
	return &ValidationError{Kind: UnexpectedField, Path: path, Reason: fmt.Sprintf("unexpected tag %q", name)}
}

func badEnum(path string, value any) error {
	return &ValidationError{Kind: InvalidEnumValue, Path: path, Reason: fmt.Sprintf("unexpected constant value %q", fmt.Sprint(value)), Value: value}
}

func mismatch(path, expected string, value any) error {
	return &ValidationError{Kind: TypeMismatch, Path: path, Reason: expected + " is expected", Value: value}
}

// withPath attaches path to a hook error that did not set one. Other errors
// are wrapped so they still name the field.
func withPath(err error, path string) error {
	verr, ok := err.(*ValidationError)
	if !ok {
		if _, nested := AsValidationError(err); nested {
			return err
		}
		return fmt.Errorf("invalid tag %q: %w", path, err)
	}
	if verr.Path != "" {
		return verr
	}
	cp := *verr
	cp.Path = path
	return &cp
}
