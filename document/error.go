package document

import (
	"errors"
	"log/slog"
	"strings"
)

// Sentinel errors returned by the loader. Each is refined with
// [Error.Wrap] and [Error.With] before it reaches the caller, so test with
// [errors.Is] against the sentinel.
var (
	ErrReadInput   = NewError("failed to read document")
	ErrDecode      = NewError("malformed document")
	ErrUnknownTag  = NewError("unknown syntax tag")
	ErrScopeValue  = NewError("unsupported scope value")
	ErrDefine      = NewError("define failed")
	ErrNoSuchName  = NewError("no such expression")
	ErrEmptyRoot   = NewError("expression has no root")
	ErrDuplicateID = NewError("duplicate expression name")
)

// Error is an error carrying structured logging attributes.
type Error struct {
	base  *Error
	msg   string
	err   error
	attrs []slog.Attr
}

// NewError returns an Error with message msg.
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

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is e or the sentinel e was derived from.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}

	return e == t || (e.base != nil && e.base == t)
}

// LogValue implements [slog.LogValuer].
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

// Wrap returns a copy of e wrapping err.
func (e *Error) Wrap(err error) *Error {
	return &Error{base: e.root(), msg: e.msg, err: err, attrs: e.attrs}
}

// With returns a copy of e with attrs appended.
func (e *Error) With(attrs ...slog.Attr) *Error {
	a := make([]slog.Attr, len(e.attrs), len(e.attrs)+len(attrs))
	copy(a, e.attrs)

	return &Error{base: e.root(), msg: e.msg, err: e.err, attrs: append(a, attrs...)}
}

func (e *Error) root() *Error {
	if e.base != nil {
		return e.base
	}

	return e
}
