package binerr

import (
	"errors"
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Error kinds.
var (
	ErrOpenFailed = errors.New("open failed")
	ErrNotOpen    = errors.New("no file open")
	ErrIOFailure  = errors.New("i/o failure")
	ErrEndOfData  = errors.New("end of data")
)

// Error is a failure of a given kind plus the context collected while it
// propagated. Context holds "origin: message" entries, innermost first.
type Error struct {
	Kind    error
	Context []string
	Cause   error
}

// New returns an error of the given kind raised at origin.
func New(kind error, origin, msg string) *Error {
	return &Error{
		Kind:    kind,
		Context: []string{entry(origin, msg)},
	}
}

// Wrap is New with an underlying cause. The cause gets a stack trace attached
// so that %+v prints where the OS error surfaced.
func Wrap(kind, cause error, origin, msg string) *Error {
	e := New(kind, origin, msg)
	if cause != nil {
		e.Cause = pkgerrors.WithStack(cause)
	}
	return e
}

// Annotate adds one context entry to err. An *Error is copied with the entry
// appended and keeps its kind. An error that wraps an *Error becomes the cause
// of a new *Error of the same kind, so its own text and sentinels survive.
// Any other error is wrapped with fmt.Errorf so errors.Is still reaches it.
// Annotate returns nil for a nil err.
func Annotate(err error, origin, msg string) error {
	if err == nil {
		return nil
	}

	if e, ok := err.(*Error); ok {
		ctx := make([]string, len(e.Context), len(e.Context)+1)
		copy(ctx, e.Context)
		return &Error{
			Kind:    e.Kind,
			Context: append(ctx, entry(origin, msg)),
			Cause:   e.Cause,
		}
	}

	if kind := KindOf(err); kind != nil {
		return &Error{
			Kind:    kind,
			Context: []string{entry(origin, msg)},
			Cause:   err,
		}
	}

	return fmt.Errorf("%s: %w", entry(origin, msg), err)
}

// KindOf returns the kind of err, or nil if err does not carry one.
func KindOf(err error) error {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return nil
}

// Trace returns the context of err outermost first, ready for printing. The
// text a foreign wrapper adds around an *Error gets an entry of its own.
func Trace(err error) []string {
	var out []string
	for err != nil {
		e, ok := err.(*Error)
		if !ok {
			var inner *Error
			if !errors.As(err, &inner) {
				return append(out, err.Error())
			}
			msg := strings.TrimSuffix(strings.TrimSuffix(err.Error(), inner.Error()), ": ")
			if msg != "" {
				out = append(out, msg)
			}
			err = inner
			continue
		}

		for i := len(e.Context) - 1; i >= 0; i-- {
			out = append(out, e.Context[i])
		}

		var inner *Error
		if e.Cause == nil || !errors.As(e.Cause, &inner) {
			break
		}
		err = e.Cause
	}
	return out
}

func (e *Error) Error() string {
	var sb strings.Builder
	for i := len(e.Context) - 1; i >= 0; i-- {
		sb.WriteString(e.Context[i])
		sb.WriteString(": ")
	}
	switch {
	case e.Cause == nil:
		sb.WriteString(e.Kind.Error())
	case errors.Is(e.Cause, e.Kind):
		// the cause already ends in the kind
		sb.WriteString(e.Cause.Error())
	default:
		sb.WriteString(e.Kind.Error())
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}
	return sb.String()
}

// Format prints the cause's stack trace for %+v.
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') && e.Cause != nil {
			fmt.Fprintf(s, "%s\n%+v", e.Error(), e.Cause)
			return
		}
		fallthrough
	case 's':
		fmt.Fprint(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	default:
		fmt.Fprint(s, e.Error())
	}
}

func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

func entry(origin, msg string) string {
	if origin == "" {
		return msg
	}
	return origin + ": " + msg
}
