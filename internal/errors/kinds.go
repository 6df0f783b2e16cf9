package errors

import (
	"fmt"
	"strings"
)

//
// Grammar errors --------------------------------------------------------- //
//

// InvalidFlagName returns an error for a flag name refused by a node.
func InvalidFlagName(name string, cause error) *Error {
	if cause == nil {
		return &Error{Kind: ErrInvalidFlagName, Message: fmt.Sprintf("flag name %q", name), Flag: name}
	}

	e := Wrap(ErrInvalidFlagName, cause, "flag name %q: %v", name, cause)
	e.Flag = name

	return e
}

// LongFlagIsNotUnique returns an error for a node name declared twice.
func LongFlagIsNotUnique(name string) *Error {
	e := Newf(ErrLongFlagIsNotUnique, "long flag is used more than once: %q", name)
	e.Flag = name

	return e
}

// ShortFlagIsNotUnique returns an error for a flag token owned by two nodes.
func ShortFlagIsNotUnique(flag, owner, other string) *Error {
	e := Newf(ErrShortFlagIsNotUnique, "flag %q is used by both %q and %q", flag, owner, other)
	e.Flag = flag

	return e
}

// InvalidMemberReference returns an error for a member name without node.
func InvalidMemberReference(parent, member string) *Error {
	e := Newf(ErrInvalidMemberReference, "member %q of %q does not name any node", member, parent)
	e.Flag = parent
	e.Token = member

	return e
}

// InvalidPatternMember returns an error for a member of an unsupported type.
func InvalidPatternMember(parent string, member any) *Error {
	e := Newf(ErrInvalidPatternMember, "members of %q should be node names or nodes, not %T", parent, member)
	e.Flag = parent

	return e
}

// CircularReferences returns an error for a membership cycle.
func CircularReferences(cycle []string) *Error {
	e := Newf(ErrCircularReferences, "%s", strings.Join(cycle, " -> "))
	e.Cycle = cycle

	return e
}

//
// Parsing errors --------------------------------------------------------- //
//

// FinishedPattern returns an error for a value offered to a node that
// does not take it. The arity describes what the node accepts.
func FinishedPattern(flag, token, arity string) *Error {
	return &Error{
		Kind:    ErrFinishedPattern,
		Message: fmt.Sprintf("%s %s: %q", flag, arity, token),
		Flag:    flag,
		Token:   token,
		Arity:   arity,
	}
}

// UnfinishedPattern returns an error for a node closed, by the next token
// or the end of input, before receiving the values it needs.
func UnfinishedPattern(flag, next string, eol bool, arity string) *Error {
	e := &Error{
		Kind:  ErrUnfinishedPattern,
		Flag:  flag,
		Token: next,
		EOL:   eol,
		Arity: arity,
	}
	e.Message = fmt.Sprintf("%s %s: %s", flag, arity, quote(e.token()))

	return e
}

// InvalidArgument returns an error for a token nobody accepts.
func InvalidArgument(token string, path []string, suggestion string) *Error {
	return &Error{
		Kind:       ErrInvalidArgument,
		Message:    fmt.Sprintf("%q", token),
		Token:      token,
		Path:       path,
		Suggestion: suggestion,
	}
}

// ArgumentOutOfContext returns an error for a flag used where none of the
// open contexts declares it. Parents lists the flags of its contexts.
func ArgumentOutOfContext(token string, path, parents []string) *Error {
	return &Error{
		Kind:     ErrArgumentOutOfContext,
		Message:  fmt.Sprintf("%q is not a member of %s", token, contexts(path)),
		Token:    token,
		Path:     path,
		Expected: parents,
	}
}

// DoubleUniqueArgument returns an error for a unique flag used twice.
func DoubleUniqueArgument(token string, path []string) *Error {
	return &Error{
		Kind:    ErrDoubleUniqueArgument,
		Message: fmt.Sprintf("%q", token),
		Token:   token,
		Path:    path,
	}
}

// DoublePrimalArgument returns an error for a primal flag used twice in
// the context opened by the given flag (empty at top level).
func DoublePrimalArgument(context, token string, path []string) *Error {
	return &Error{
		Kind:    ErrDoublePrimalArgument,
		Message: fmt.Sprintf("%q in %s", token, contextName(context)),
		Flag:    context,
		Token:   token,
		Path:    path,
	}
}

// TooManyMembersUsed returns an error for a second distinct member used
// in a context accepting only one.
func TooManyMembersUsed(context, used, token string, path []string) *Error {
	return &Error{
		Kind:    ErrTooManyMembersUsed,
		Message: fmt.Sprintf("%q in %s already has %q", token, contextName(context), used),
		Flag:    context,
		Token:   token,
		Path:    path,
		Used:    used,
	}
}

// MissingMember returns an error for a context closed, by the next token
// or the end of input, before using any of the expected members.
func MissingMember(context, next string, eol bool, expected []string, path []string) *Error {
	e := &Error{
		Kind:     ErrMissingMember,
		Flag:     context,
		Token:    next,
		EOL:      eol,
		Path:     path,
		Expected: expected,
	}
	e.Message = fmt.Sprintf("%s expected %s, got %s", context, either(expected, "or"), quote(e.token()))

	return e
}

func contextName(flag string) string {
	if flag == "" {
		return "top level"
	}

	return flag
}
