package errors

import (
	"errors"
	"fmt"
)

// Kind classifies why a raw value was rejected.
type Kind int

const (
	KindUnknown Kind = iota
	KindEmpty
	KindInvalidFormat
	KindOverflow
	KindUnderflow
	KindTooManyDecimals
)

// Sentinels matched by ParseError.Is so callers can write errors.Is(err, ErrOverflow).
var (
	ErrEmpty           = errors.New("empty value")
	ErrInvalidFormat   = errors.New("invalid format")
	ErrOverflow        = errors.New("overflow")
	ErrUnderflow       = errors.New("underflow")
	ErrTooManyDecimals = errors.New("too many decimals")
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindInvalidFormat:
		return "invalid_format"
	case KindOverflow:
		return "overflow"
	case KindUnderflow:
		return "underflow"
	case KindTooManyDecimals:
		return "too_many_decimals"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindEmpty:
		return ErrEmpty
	case KindInvalidFormat:
		return ErrInvalidFormat
	case KindOverflow:
		return ErrOverflow
	case KindUnderflow:
		return ErrUnderflow
	case KindTooManyDecimals:
		return ErrTooManyDecimals
	default:
		return nil
	}
}

// ParseError reports a rejected value. Values rejected by a precision class
// carry the class name; documents rejected while decoding carry Path and Line.
type ParseError struct {
	Kind    Kind
	Class   string
	Limit   int
	Bound   string
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError of the given kind.
func NewParseError(kind Kind, class, message string, err error) error {
	if message == "" && err != nil {
		message = err.Error()
	}
	return &ParseError{Kind: kind, Class: class, Message: message, Err: err}
}

// NewEmptyError reports a value that is empty once cleaned.
func NewEmptyError(class string) error {
	return &ParseError{Kind: KindEmpty, Class: class, Message: "value is empty"}
}

// NewOverflowError reports a value above the class maximum.
func NewOverflowError(class, bound string) error {
	return &ParseError{
		Kind:    KindOverflow,
		Class:   class,
		Bound:   bound,
		Message: fmt.Sprintf("value exceeds %s maximum %s", class, bound),
	}
}

// NewUnderflowError reports a value below the class minimum.
func NewUnderflowError(class, bound string) error {
	return &ParseError{
		Kind:    KindUnderflow,
		Class:   class,
		Bound:   bound,
		Message: fmt.Sprintf("value is below %s minimum %s", class, bound),
	}
}

// NewTooManyDecimalsError reports a fractional part longer than limit.
func NewTooManyDecimalsError(class string, limit int) error {
	return &ParseError{
		Kind:    KindTooManyDecimals,
		Class:   class,
		Limit:   limit,
		Message: fmt.Sprintf("too many decimal places: max %d", limit),
	}
}

// NewFileError reports a document that could not be decoded.
func NewFileError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Kind: KindInvalidFormat, Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	switch {
	case e.Path != "" && e.Line > 0:
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	case e.Path != "":
		return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
	case e.Class != "":
		return fmt.Sprintf("parse error: %s: %s", e.Class, e.Message)
	default:
		return fmt.Sprintf("parse error: %s", e.Message)
	}
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches the sentinel of the error kind.
func (e *ParseError) Is(target error) bool {
	if e == nil {
		return false
	}
	sentinel := e.Kind.sentinel()
	return sentinel != nil && target == sentinel
}

// KindOf returns the kind of the first ParseError in err's chain.
func KindOf(err error) Kind {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Kind
	}
	return KindUnknown
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
