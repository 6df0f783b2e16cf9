package grammar

import (
	"fmt"
	"strings"

	"github.com/reeflective/argon/internal/values"
)

// FlagCardinality restricts the number of uses of a node's flags.
type FlagCardinality int

const (
	// Common flags can be used any number of times, anywhere.
	Common FlagCardinality = iota

	// Primal flags can be used once in every context.
	Primal

	// Unique flags can be used once in the whole input.
	Unique
)

func (c FlagCardinality) String() string {
	switch c {
	case Common:
		return "common"
	case Primal:
		return "primal"
	case Unique:
		return "unique"
	default:
		return fmt.Sprintf("flag-cardinality(%d)", int(c))
	}
}

// Valid reports whether c is a known flag cardinality.
func (c FlagCardinality) Valid() bool { return c >= Common && c <= Unique }

// ParseFlagCardinality returns the cardinality named s.
func ParseFlagCardinality(s string) (FlagCardinality, error) {
	for _, c := range []FlagCardinality{Common, Primal, Unique} {
		if strings.EqualFold(strings.TrimSpace(s), c.String()) {
			return c, nil
		}
	}

	return Common, fmt.Errorf("unknown flag cardinality %q", s)
}

// MemberCardinality restricts the number of distinct members used in a context.
type MemberCardinality int

const (
	// One member only, possibly repeated, in the context.
	One MemberCardinality = iota

	// Any members in the context.
	Any
)

func (c MemberCardinality) String() string {
	switch c {
	case One:
		return "one"
	case Any:
		return "any"
	default:
		return fmt.Sprintf("member-cardinality(%d)", int(c))
	}
}

// Valid reports whether c is a known member cardinality.
func (c MemberCardinality) Valid() bool { return c == One || c == Any }

// ParseMemberCardinality returns the member cardinality named s.
func ParseMemberCardinality(s string) (MemberCardinality, error) {
	for _, c := range []MemberCardinality{One, Any} {
		if strings.EqualFold(strings.TrimSpace(s), c.String()) {
			return c, nil
		}
	}

	return Any, fmt.Errorf("unknown member cardinality %q", s)
}

// Necessity tells if something must be present.
type Necessity int

const (
	Optional Necessity = iota
	Required
)

func (n Necessity) String() string {
	switch n {
	case Optional:
		return "optional"
	case Required:
		return "required"
	default:
		return fmt.Sprintf("necessity(%d)", int(n))
	}
}

// Valid reports whether n is a known necessity.
func (n Necessity) Valid() bool { return n == Optional || n == Required }

// Shape aliases, so that grammars can be declared from this package only.
const (
	Switch      = values.Switch
	Single      = values.Single
	CommonArray = values.CommonArray
	UniqueArray = values.UniqueArray
	NamedValues = values.NamedValues
)
