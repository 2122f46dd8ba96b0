// Package rterr implements the runtime error kinds surfaced by the core
// (spec.md §7) as a single error type, returned as an ordinary Go error
// through every Accept/dispatch call on the unwind path. Raise/Recover
// remain as a panic/recover pair backing a single defensive net at
// Interpreter.Run's top level, not the primary propagation mechanism.
package rterr

import "fmt"

// Kind enumerates the error kinds spec.md §7 names.
type Kind uint8

const (
	KindUnresolvedIdentifier Kind = iota
	KindNoSuchMethod
	KindTypeMisuse
	KindIndexError
	KindArityMismatch
	KindInterpreterBug
	// KindUserRaised wraps a value the surface language raised explicitly
	// via the `raise` construct (SPEC_FULL.md §4), as opposed to a failure
	// the core itself detected.
	KindUserRaised
)

func (k Kind) String() string {
	switch k {
	case KindUnresolvedIdentifier:
		return "unresolved identifier"
	case KindNoSuchMethod:
		return "no such method"
	case KindTypeMisuse:
		return "type misuse"
	case KindIndexError:
		return "index error"
	case KindArityMismatch:
		return "arity mismatch"
	case KindInterpreterBug:
		return "interpreter bug"
	case KindUserRaised:
		return "raised"
	default:
		return "unknown error"
	}
}

// Error is the single error type every core failure is reported as.
type Error struct {
	Kind    Kind
	Message string
	// Frames is a snapshot of the current-self stack (innermost first) at
	// the point of failure, for diagnostics; it carries no behavior.
	Frames []string
	// Raised holds the user-level value passed to `raise`, only set when
	// Kind == KindUserRaised.
	Raised any
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// New constructs an *Error of the given kind.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Raise panics with an *Error, which Recover (or Interpreter.Run) turns
// back into a normal Go error at the nearest boundary that cares.
func Raise(e *Error) {
	panic(e)
}

// Recover should be deferred at a boundary that must convert a raised
// *Error into a returned Go error (interpreter top level, a `rescue`
// handler, a native clause that must not let a re-entrant dispatch's panic
// escape silently — spec.md §7's "must not silently swallow errors"
// applies to rescue handlers, not to this helper, which always reports
// what it caught). On a non-*Error panic it re-panics, since only
// core-raised errors are part of this unwinding contract.
func Recover(out *error) {
	if r := recover(); r != nil {
		if e, ok := r.(*Error); ok {
			*out = e
			return
		}
		panic(r)
	}
}
