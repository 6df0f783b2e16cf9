package argon

import (
	"github.com/reeflective/argon/internal/errors"
)

// === Public Errors ===

// Error is a grammar or usage error. Its Kind can be matched with
// errors.Is, as in errors.Is(err, argon.ErrMissingMember).
type Error = errors.Error

// Kind identifies the condition behind an *Error.
type Kind = errors.Kind

// AsError returns the *Error in the chain of err, if any.
func AsError(err error) (*Error, bool) {
	return errors.As(err)
}

// Grammar errors, returned while declaring nodes and compiling schemes.
const (
	// ErrInvalidConfig indicates an out-of-range enum or inconsistent node options.
	ErrInvalidConfig = errors.ErrInvalidConfig

	// ErrInvalidFlagName indicates a flag name refused by the validator.
	ErrInvalidFlagName = errors.ErrInvalidFlagName

	// ErrLongFlagIsNotUnique indicates two nodes with the same name.
	ErrLongFlagIsNotUnique = errors.ErrLongFlagIsNotUnique

	// ErrShortFlagIsNotUnique indicates two nodes sharing a flag.
	ErrShortFlagIsNotUnique = errors.ErrShortFlagIsNotUnique

	// ErrInvalidMemberReference indicates a member name with no node.
	ErrInvalidMemberReference = errors.ErrInvalidMemberReference

	// ErrInvalidPatternMember indicates a member that is neither a name nor a node.
	ErrInvalidPatternMember = errors.ErrInvalidPatternMember

	// ErrCircularReferences indicates a cycle in node membership.
	ErrCircularReferences = errors.ErrCircularReferences
)

// Usage errors, returned while parsing tokens.
const (
	ErrFinishedPattern      = errors.ErrFinishedPattern
	ErrUnfinishedPattern    = errors.ErrUnfinishedPattern
	ErrInvalidArgument      = errors.ErrInvalidArgument
	ErrArgumentOutOfContext = errors.ErrArgumentOutOfContext
	ErrDoubleUniqueArgument = errors.ErrDoubleUniqueArgument
	ErrDoublePrimalArgument = errors.ErrDoublePrimalArgument
	ErrTooManyMembersUsed   = errors.ErrTooManyMembersUsed
	ErrMissingMember        = errors.ErrMissingMember
)
