package frm2schema

import (
	"errors"
)

// Code classifies a failure of the reconstruction pipeline
type Code string

const (
	// CodeUsage indicates the tool was invoked incorrectly
	CodeUsage Code = "USAGE"
	// CodeFormat indicates the file content cannot be a table definition
	CodeFormat Code = "FORMAT"
	// CodeIO indicates the file could not be opened or read
	CodeIO Code = "IO"
)

func (c Code) String() string {
	return string(c)
}

// Sentinels for errors.Is, matched by code only.
var (
	ErrUsage  = &Error{Code: CodeUsage}
	ErrFormat = &Error{Code: CodeFormat}
	ErrIO     = &Error{Code: CodeIO}
)

type Error struct {
	Code Code
	// Op is the operation that failed, e.g. "ReadFrm"
	Op string
	// Path is the file being processed, if any
	Path    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	var msg string
	if e.Op != "" {
		msg += e.Op + ": "
	}
	if e.Path != "" {
		msg += e.Path + ": "
	}
	msg += string(e.Code)
	if e.Message != "" {
		msg += ": " + e.Message
	} else if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same code, falling back
// to the wrapped error otherwise.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	if e.Err != nil {
		return errors.Is(e.Err, target)
	}
	return false
}

func UsageError(op, message string) *Error {
	return &Error{Code: CodeUsage, Op: op, Message: message}
}

func FormatError(op, path, message string) *Error {
	return &Error{Code: CodeFormat, Op: op, Path: path, Message: message}
}

func IOError(op, path string, err error) *Error {
	return &Error{Code: CodeIO, Op: op, Path: path, Err: err}
}

// CodeOf extracts the code of err, or "" if err is not an *Error.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
