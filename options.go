package argon

import (
	"io"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/reeflective/argon/internal/grammar"
	"github.com/reeflective/argon/internal/parser"
	"github.com/reeflective/argon/internal/scheme"
	"github.com/reeflective/argon/internal/values"
)

// === Node Options ===

// NodeOption is a functional option for declaring nodes.
type NodeOption = grammar.OptFunc

// Short adds short flag names to the node, used with the short prefix.
func Short(names ...string) NodeOption { return grammar.Short(names...) }

// LongPrefix sets the prefix of the long flag ("--" by default).
func LongPrefix(prefix string) NodeOption { return grammar.LongPrefix(prefix) }

// ShortPrefix sets the prefix of the short flags ("-" by default).
func ShortPrefix(prefix string) NodeOption { return grammar.ShortPrefix(prefix) }

// WithFlagCardinality restricts the number of uses of the node flags.
func WithFlagCardinality(c FlagCardinality) NodeOption { return grammar.WithFlagCardinality(c) }

// WithValueShape sets the shape of the node value.
func WithValueShape(s Shape) NodeOption { return grammar.WithValueShape(s) }

// WithValueNecessity tells if a value must follow the node flags.
func WithValueNecessity(n Necessity) NodeOption { return grammar.WithValueNecessity(n) }

// Members sets the members of the node context. Members are either node
// names or *Node values.
func Members(members ...any) NodeOption { return grammar.Members(members...) }

// WithMemberCardinality restricts the number of distinct members used
// in the node context.
func WithMemberCardinality(c MemberCardinality) NodeOption { return grammar.WithMemberCardinality(c) }

// WithMemberNecessity tells if a member must be used in the node context.
func WithMemberNecessity(n Necessity) NodeOption { return grammar.WithMemberNecessity(n) }

// Delimiter sets the string separating a flag from its value in the same
// token, like "=" in "--name=value".
func Delimiter(delim string) NodeOption { return grammar.Delimiter(delim) }

// Immediate allows the value to be glued to a flag, like "-n3".
func Immediate(val bool) NodeOption { return grammar.Immediate(val) }

// Groupable allows the short flags to be grouped, like "-abc".
func Groupable(val bool) NodeOption { return grammar.Groupable(val) }

// DoubleDash sets the marker after which all tokens are values of the node.
func DoubleDash(marker string) NodeOption { return grammar.DoubleDash(marker) }

// Validator sets the function checking the node flag names.
func Validator(val ValidateFunc) NodeOption { return grammar.Validator(val) }

// Description sets a one-paragraph description of the node.
func Description(text string) NodeOption { return grammar.Description(text) }

// Blocks sets the help section of the node.
func Blocks(section *Section) NodeOption { return grammar.Blocks(section) }

// === Scheme Options ===

// SchemeOption is a functional option for compiling schemes. Scheme
// options override the same options of every node.
type SchemeOption = scheme.OptFunc

// AllGroupable sets the Groupable option of all nodes.
func AllGroupable(groupable bool) SchemeOption { return scheme.Groupable(groupable) }

// AllImmediate sets the Immediate option of all nodes.
func AllImmediate(immediate bool) SchemeOption { return scheme.Immediate(immediate) }

// AllDelimiter sets the Delimiter option of all nodes.
func AllDelimiter(delimiter string) SchemeOption { return scheme.Delimiter(delimiter) }

// === Parsing Options ===

// Option is a functional option for parsing.
type Option = parser.OptFunc

// WithDiagnostics writes usage errors to w as one-line messages, instead
// of returning them.
func WithDiagnostics(w io.Writer) Option { return parser.WithDiagnostics(w) }

// WithLogger sets the logger receiving a debug record for each parsing step.
func WithLogger(logger *slog.Logger) Option { return parser.WithLogger(logger) }

// === Validation ===

// ValidateFunc checks a flag name.
type ValidateFunc = grammar.ValidateFunc

// DefaultValidator accepts names made of ASCII letters, digits, '_' and '-'.
func DefaultValidator(name string) error { return grammar.DefaultValidator(name) }

// AcceptAny accepts any flag name.
func AcceptAny(name string) error { return grammar.AcceptAny(name) }

// NewValidator checks flag names with a go-playground validation tag,
// like "alphanum" or a tag registered on validate.
func NewValidator(validate *validator.Validate, tag string) ValidateFunc {
	return grammar.NewValidator(validate, tag)
}

// === Enums ===

// FlagCardinality restricts the number of uses of a node flags.
type FlagCardinality = grammar.FlagCardinality

// MemberCardinality restricts the number of distinct members used in a context.
type MemberCardinality = grammar.MemberCardinality

// Necessity tells if something must be present.
type Necessity = grammar.Necessity

// Shape describes how a node collects its values.
type Shape = values.Shape

const (
	Common = grammar.Common
	Primal = grammar.Primal
	Unique = grammar.Unique

	One = grammar.One
	Any = grammar.Any

	Optional = grammar.Optional
	Required = grammar.Required

	Switch      = values.Switch
	Single      = values.Single
	CommonArray = values.CommonArray
	UniqueArray = values.UniqueArray
	NamedValues = values.NamedValues
)
