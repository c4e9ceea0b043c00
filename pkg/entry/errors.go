package entry

import (
	"errors"
	"fmt"
	"io/fs"
)

// Code classifies an error for transport (CLI JSON output, MCP results).
type Code string

const (
	CodeParse      Code = "PARSE_ERROR"
	CodeNotFound   Code = "NOT_FOUND"
	CodeIO         Code = "IO_ERROR"
	CodeValidation Code = "VALIDATION_ERROR"
	CodeInternal   Code = "INTERNAL_ERROR"
)

// ParseError is returned for a malformed timestamp token.
type ParseError struct {
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("entry: malformed token %q: %v", e.Token, e.Err)
	}
	return fmt.Sprintf("entry: malformed token %q: want %d characters as YYMMDD-HHMMSS", e.Token, TokenLen)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Code implements Coder.
func (e *ParseError) Code() Code { return CodeParse }

// NotFoundError is returned when a named file does not exist.
type NotFoundError struct {
	Name string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("entry %q not found", e.Name)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, fs.ErrNotExist) hold for every NotFoundError.
func (e *NotFoundError) Is(target error) bool { return target == fs.ErrNotExist }

// Code implements Coder.
func (e *NotFoundError) Code() Code { return CodeNotFound }

// IOError wraps a filesystem failure.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Code implements Coder.
func (e *IOError) Code() Code { return CodeIO }

// ValidationError reports a missing or malformed argument.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Code implements Coder.
func (e *ValidationError) Code() Code { return CodeValidation }

// Coder is implemented by every error in this package.
type Coder interface {
	Code() Code
}

// CodeOf returns the code of the first Coder in err's chain.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var c Coder
	if errors.As(err, &c) {
		return c.Code()
	}
	return CodeInternal
}

// IsNotFound reports whether err is or wraps a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsValidation reports whether err is or wraps a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
