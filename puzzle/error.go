package puzzle

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Predefined errors (sentinel values).
var (
	ErrReadInput  = NewError("failed to read input")
	ErrParse      = NewError("parse error")
	ErrEmptyInput = NewError("empty input")
	ErrInvariant  = NewError("invariant violation")
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
//
// Values derived from a sentinel with [Error.Wrap] or [Error.With] still
// match that sentinel under [errors.Is].
type Error struct {
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
	kind  *Error      // Sentinel this error derives from
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	e := &Error{msg: msg}
	e.kind = e

	return e
}

// WrapError wraps a standard error into an Error.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	// "<msg>: <err>", "<msg>", "<err>" or "", depending on which are set.
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the sentinel e was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && e.kind != nil && e.kind == t.kind
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		var lv slog.LogValuer
		if errors.As(e.err, &lv) {
			attrs = append(attrs, slog.Any("cause", lv))
		} else {
			attrs = append(attrs, slog.String("cause", e.err.Error()))
		}
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs, // Share attrs
		kind:  e.kind,
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
		kind:  e.kind,
	}
}

// ParseError reports a line of input that does not match the grammar.
type ParseError struct {
	Line   int    // 1-based line number, counting blank lines
	Text   string // Offending line
	Reason string
	Err    error // Optional underlying cause, e.g. from strconv
}

// NewParseError returns a ParseError for the given line.
func NewParseError(line int, text, reason string) *ParseError {
	return &ParseError{Line: line, Text: text, Reason: reason}
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%s: line %d: %s: %q", ErrParse.msg, e.Line, e.Reason, e.Text)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap returns the cause (if any) together with [ErrParse].
func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrParse, e.Err}
	}

	return []error{ErrParse}
}

// LogValue implements slog.LogValuer.
func (e *ParseError) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("error", ErrParse.msg),
		slog.Int("line", e.Line),
		slog.String("text", e.Text),
		slog.String("reason", e.Reason),
	}

	if e.Err != nil {
		attrs = append(attrs, slog.String("cause", e.Err.Error()))
	}

	return slog.GroupValue(attrs...)
}

// InvariantError reports a record that breaks a guarantee of the input,
// typically a set intersection that should hold exactly one element.
type InvariantError struct {
	Record int      // 1-based index of the record or group
	Items  []string // Elements found where exactly one was required
	Reason string
}

// Error implements the error interface.
func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s: record %d: %s (found %d: %s)",
		ErrInvariant.msg, e.Record, e.Reason,
		len(e.Items), strings.Join(e.Items, ","))
}

// Unwrap returns [ErrInvariant].
func (e *InvariantError) Unwrap() error { return ErrInvariant }

// LogValue implements slog.LogValuer.
func (e *InvariantError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("error", ErrInvariant.msg),
		slog.Int("record", e.Record),
		slog.String("reason", e.Reason),
		slog.Any("items", e.Items),
	)
}
