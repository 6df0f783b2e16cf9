package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Kind identifies the condition behind an *Error. Every kind is itself an
// error, so that errors.Is(err, ErrFinishedPattern) matches any *Error of
// that kind.
type Kind uint

// ORDER IN WHICH THE ERROR CONSTANTS APPEAR MATTERS.
const (
	// ErrUnknown indicates a generic error.
	ErrUnknown Kind = iota

	// ErrInvalidConfig indicates an out-of-range enum argument or an
	// inconsistent set of node options.
	ErrInvalidConfig

	// ErrInvalidFlagName indicates an empty flag name, a name starting
	// with the flag introducer, or one rejected by the flag validator.
	ErrInvalidFlagName

	// ErrLongFlagIsNotUnique indicates that two nodes share the same name.
	ErrLongFlagIsNotUnique

	// ErrShortFlagIsNotUnique indicates that two nodes share a flag token.
	ErrShortFlagIsNotUnique

	// ErrInvalidMemberReference indicates a member name with no node.
	ErrInvalidMemberReference

	// ErrInvalidPatternMember indicates a member that is neither a node
	// name nor a node.
	ErrInvalidPatternMember

	// ErrCircularReferences indicates a cycle in node membership.
	ErrCircularReferences

	// ErrFinishedPattern indicates a value offered to a node that does
	// not accept any more of them.
	ErrFinishedPattern

	// ErrUnfinishedPattern indicates a node closed without the values it
	// requires.
	ErrUnfinishedPattern

	// ErrInvalidArgument indicates an unknown token while no node is open
	// to receive it as a value.
	ErrInvalidArgument

	// ErrArgumentOutOfContext indicates a known flag used outside of any
	// context declaring it as a member.
	ErrArgumentOutOfContext

	// ErrDoubleUniqueArgument indicates a unique flag used twice.
	ErrDoubleUniqueArgument

	// ErrDoublePrimalArgument indicates a primal flag used twice in the
	// same open context.
	ErrDoublePrimalArgument

	// ErrTooManyMembersUsed indicates a second distinct member in a
	// context accepting only one.
	ErrTooManyMembersUsed

	// ErrMissingMember indicates a context closed before any of its
	// required members was used.
	ErrMissingMember
)

func (k Kind) String() string {
	kinds := [...]string{
		"unknown",                  // ErrUnknown
		"invalid config",           // ErrInvalidConfig
		"invalid flag name",        // ErrInvalidFlagName
		"long flag is not unique",  // ErrLongFlagIsNotUnique
		"short flag is not unique", // ErrShortFlagIsNotUnique
		"invalid member reference", // ErrInvalidMemberReference
		"invalid pattern member",   // ErrInvalidPatternMember
		"circular references",      // ErrCircularReferences
		"finished pattern",         // ErrFinishedPattern
		"unfinished pattern",       // ErrUnfinishedPattern
		"invalid argument",         // ErrInvalidArgument
		"argument out of context",  // ErrArgumentOutOfContext
		"double unique argument",   // ErrDoubleUniqueArgument
		"double primal argument",   // ErrDoublePrimalArgument
		"too many members used",    // ErrTooManyMembersUsed
		"missing member",           // ErrMissingMember
	}
	if int(k) >= len(kinds) {
		return "unrecognized error type"
	}

	return kinds[k]
}

func (k Kind) Error() string {
	return k.String()
}

// Runtime reports whether the kind is raised while parsing tokens,
// as opposed to while declaring or compiling a grammar.
func (k Kind) Runtime() bool {
	return k >= ErrFinishedPattern
}

// EOL is how the end of input is shown in messages.
const EOL = "<EOL>"

// Error represents a grammar or parsing error. It always carries a Kind,
// and depending on it, the flags, tokens and context path involved.
type Error struct {
	// The type of error
	Kind Kind

	// The error message
	Message string

	// Flag is the flag of the node (or context) the error is about.
	Flag string

	// Token is the offending token. It is empty when EOL is set.
	Token string

	// EOL is true when the error was triggered by the end of input.
	EOL bool

	// Path lists the flags of the contexts open when the error occurred,
	// from the top level down.
	Path []string

	// Arity describes the value requirements of the node, for errors
	// raised by value accumulators.
	Arity string

	// Used is the member already used in a context accepting only one.
	Used string

	// Expected lists the flags that would have been accepted instead.
	Expected []string

	// Suggestion is the closest known flag to an unknown token, if any.
	Suggestion string

	// Cycle is the membership path forming a circular reference.
	Cycle []string

	err error // Wrapped error (for errors.Unwrap)
}

// Error returns the error's message.
func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}

	return e.Kind.String() + ": " + e.Message
}

// Unwrap returns both the kind of the error and the wrapped cause, if any.
func (e *Error) Unwrap() []error {
	if e.err == nil {
		return []error{e.Kind}
	}

	return []error{e.Kind, e.err}
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := []slog.Attr{slog.String("kind", e.Kind.String())}

	if e.Message != "" {
		attrs = append(attrs, slog.String("error", e.Message))
	}

	if e.Flag != "" {
		attrs = append(attrs, slog.String("flag", e.Flag))
	}

	if e.Token != "" || e.EOL {
		attrs = append(attrs, slog.String("token", e.token()))
	}

	if len(e.Path) > 0 {
		attrs = append(attrs, slog.Any("path", e.Path))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(attrs...)
}

// Diagnostic renders the error as a single human-readable line.
func (e *Error) Diagnostic() string {
	switch e.Kind {
	case ErrFinishedPattern, ErrUnfinishedPattern:
		return fmt.Sprintf("%q %s: %s", e.Flag, e.Arity, quote(e.token()))

	case ErrInvalidArgument:
		msg := fmt.Sprintf("%q is neither a flag nor a value of an open flag", e.Token)
		if e.Suggestion != "" {
			msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
		}

		return msg

	case ErrArgumentOutOfContext:
		msg := fmt.Sprintf("%q is not a member of the following contexts: %s", e.Token, contexts(e.Path))
		if len(e.Expected) > 0 {
			msg += fmt.Sprintf(" (expected under %s)", either(e.Expected, "or"))
		}

		return msg

	case ErrDoubleUniqueArgument:
		return fmt.Sprintf("%q cannot be used more than once", e.Token)

	case ErrDoublePrimalArgument:
		return fmt.Sprintf("%q cannot be used more than once in its context: %s", e.Token, context(e.Flag))

	case ErrTooManyMembersUsed:
		return fmt.Sprintf("%q cannot be passed to context %s as it already has %q", e.Token, context(e.Flag), e.Used)

	case ErrMissingMember:
		return fmt.Sprintf("%q expected: %s, but got: %s", e.Flag, either(e.Expected, "or"), quote(e.token()))

	default:
		return e.Error()
	}
}

func (e *Error) token() string {
	if e.EOL {
		return EOL
	}

	return e.Token
}

func quote(token string) string {
	if token == EOL {
		return token
	}

	return fmt.Sprintf("%q", token)
}

func context(flag string) string {
	if flag == "" {
		return "top level"
	}

	return fmt.Sprintf("%q", flag)
}

func contexts(path []string) string {
	if len(path) == 0 {
		return "no context"
	}

	return either(path, ",")
}

func either(flags []string, sep string) string {
	quoted := make([]string, len(flags))
	for i, flag := range flags {
		quoted[i] = fmt.Sprintf("%q", flag)
	}

	if sep == "," {
		return strings.Join(quoted, ", ")
	}

	return strings.Join(quoted, " "+sep+" ")
}

// New returns a new error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
	}
}

// Newf returns a new error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return New(kind, fmt.Sprintf(format, args...))
}

// Wrap returns a new error of the given kind, wrapping a cause.
func Wrap(kind Kind, cause error, format string, args ...any) *Error {
	e := Newf(kind, format, args...)
	e.err = cause

	return e
}

// As returns the *Error in err's chain, if any.
func As(err error) (*Error, bool) {
	var ret *Error
	if errors.As(err, &ret) {
		return ret, true
	}

	return nil, false
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
