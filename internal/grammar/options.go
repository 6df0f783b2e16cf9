package grammar

import (
	"github.com/reeflective/argon/internal/values"
)

// OptFunc sets values in Opts structure.
type OptFunc func(opt *Opts)

// Opts specifies the declaration of a node.
type Opts struct {
	// Short names of the node, without prefix.
	Short []string

	// Prefix of the long flag, "--" by default.
	LongPrefix string

	// Prefix of the short flags, "-" by default.
	ShortPrefix string

	// FlagCardinality restricts how often the node may be used.
	FlagCardinality FlagCardinality

	// ValueShape is the kind of value the node takes.
	ValueShape values.Shape

	// ValueNecessity tells if the node must be given value(s).
	ValueNecessity Necessity

	// Members are node names (string) or nodes (*Node).
	Members []any

	// MemberCardinality restricts how many distinct members may be used.
	MemberCardinality MemberCardinality

	// MemberNecessity tells if at least one member must be used.
	MemberNecessity Necessity

	// Delimiter separates a flag from its value in a single token.
	Delimiter string

	// Immediate allows the value to be glued to the flag.
	Immediate bool

	// Groupable allows short flags to be grouped in a single token.
	Groupable bool

	// DoubleDash is the token after which all input is taken as values.
	DoubleDash string

	// Validator checks every flag name before prefixing.
	Validator ValidateFunc

	// Description is the help text of the node.
	Description string

	// Section, if not nil, replaces the generated description blocks.
	Section *Section
}

// DefOpts returns the default declaration options.
func DefOpts() *Opts {
	return &Opts{
		LongPrefix:        "--",
		ShortPrefix:       "-",
		FlagCardinality:   Common,
		ValueShape:        values.Single,
		ValueNecessity:    Required,
		MemberCardinality: Any,
		MemberNecessity:   Optional,
		Validator:         DefaultValidator,
	}
}

// Apply applies the given options to the current options.
func (o *Opts) Apply(optFuncs ...OptFunc) *Opts {
	for _, f := range optFuncs {
		if f != nil {
			f(o)
		}
	}

	return o
}

// Short adds short names to the node.
func Short(names ...string) OptFunc {
	return func(opt *Opts) { opt.Short = append(opt.Short, names...) }
}

// LongPrefix sets the prefix of the long flag.
func LongPrefix(prefix string) OptFunc { return func(opt *Opts) { opt.LongPrefix = prefix } }

// ShortPrefix sets the prefix of short flags.
func ShortPrefix(prefix string) OptFunc { return func(opt *Opts) { opt.ShortPrefix = prefix } }

// WithFlagCardinality sets how often the node may be used.
func WithFlagCardinality(c FlagCardinality) OptFunc {
	return func(opt *Opts) { opt.FlagCardinality = c }
}

// WithValueShape sets the kind of value the node takes.
func WithValueShape(s values.Shape) OptFunc {
	return func(opt *Opts) { opt.ValueShape = s }
}

// WithValueNecessity sets if values must be given to the node.
func WithValueNecessity(n Necessity) OptFunc {
	return func(opt *Opts) { opt.ValueNecessity = n }
}

// Members adds members to the node, as names or nodes.
func Members(members ...any) OptFunc {
	return func(opt *Opts) { opt.Members = append(opt.Members, members...) }
}

// WithMemberCardinality sets how many distinct members may be used.
func WithMemberCardinality(c MemberCardinality) OptFunc {
	return func(opt *Opts) { opt.MemberCardinality = c }
}

// WithMemberNecessity sets if at least one member must be used.
func WithMemberNecessity(n Necessity) OptFunc {
	return func(opt *Opts) { opt.MemberNecessity = n }
}

// Delimiter sets the flag/value separator, as in --flag=value.
func Delimiter(delim string) OptFunc { return func(opt *Opts) { opt.Delimiter = delim } }

// Immediate allows values glued to the flag, as in -Ivalue.
func Immediate(val bool) OptFunc { return func(opt *Opts) { opt.Immediate = val } }

// Groupable allows grouping of short flags, as in -abc.
func Groupable(val bool) OptFunc { return func(opt *Opts) { opt.Groupable = val } }

// DoubleDash sets the marker after which all tokens are values.
func DoubleDash(marker string) OptFunc { return func(opt *Opts) { opt.DoubleDash = marker } }

// Validator sets the flag name validator.
func Validator(val ValidateFunc) OptFunc { return func(opt *Opts) { opt.Validator = val } }

// Description sets the help text of the node.
func Description(text string) OptFunc { return func(opt *Opts) { opt.Description = text } }

// Blocks sets the description blocks of the node.
func Blocks(section *Section) OptFunc { return func(opt *Opts) { opt.Section = section } }
