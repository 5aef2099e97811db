package cmd

import (
	"errors"
	"log/slog"
	"strings"
)

// Error represents a CLI command error with structured logging support.
type Error struct {
	base  *Error
	msg   string
	err   error
	attrs []slog.Attr
}

func NewError(msg string) *Error {
	return &Error{msg: msg}
}

func (e *Error) Error() string {
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is e or the sentinel e was derived from.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}

	return e == t || (e.base != nil && e.base == t)
}

func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{base: e.sentinel(), msg: e.msg, err: err, attrs: e.attrs}
}

// With adds attributes to the error for structured logging.
func (e *Error) With(attrs ...slog.Attr) *Error {
	a := make([]slog.Attr, len(e.attrs), len(e.attrs)+len(attrs))
	copy(a, e.attrs)

	return &Error{base: e.sentinel(), msg: e.msg, err: e.err, attrs: append(a, attrs...)}
}

func (e *Error) sentinel() *Error {
	if e.base != nil {
		return e.base
	}

	return e
}

var (
	ErrLoad        = NewError("load document")
	ErrDefine      = NewError("apply define")
	ErrFormat      = NewError("unsupported output format")
	ErrMarshal     = NewError("marshal output")
	ErrWriteOutput = NewError("write output")
	ErrWriteConfig = NewError("write configuration file")
	ErrFileExists  = NewError("file exists (use --force to overwrite)")
	ErrBatch       = NewError("batch failed")
)
