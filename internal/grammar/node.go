package grammar

import (
	"fmt"
	"slices"
	"strings"

	"github.com/reeflective/argon/internal/errors"
	"github.com/reeflective/argon/internal/values"
)

// flagIntroducer cannot start a flag name: it belongs to prefixes.
const flagIntroducer = "-"

// Node is an immutable grammar declaration: a named flag with its aliases,
// the cardinality of its uses, the shape of its value, and its members.
// A node with members opens a context, in which only its members are valid.
type Node struct {
	name        string
	longFlag    string
	shortFlags  []string
	shortPrefix string
	cardinality FlagCardinality
	shape       values.Shape
	valueNeed   Necessity
	members     []any
	memberCard  MemberCardinality
	memberNeed  Necessity
	delimiter   string
	immediate   bool
	groupable   bool
	doubleDash  string
	description *Section
}

// New declares a node. The name is also the long flag of the node, once
// prefixed. It fails with ErrInvalidFlagName when a flag name is empty,
// starts with '-' or is refused by the validator, and ErrInvalidConfig
// when an option is out of range.
func New(name string, optFuncs ...OptFunc) (*Node, error) {
	return newNode(name, DefOpts().Apply(optFuncs...))
}

// NewProgram declares the node standing for the program itself: a unique
// switch, without prefix, accepting any name (such as a path). Options
// can override these defaults. A program must declare members.
func NewProgram(name string, optFuncs ...OptFunc) (*Node, error) {
	opts := DefOpts().Apply(
		LongPrefix(""),
		WithFlagCardinality(Unique),
		WithValueShape(values.Switch),
		Validator(AcceptAny),
	).Apply(optFuncs...)

	if len(opts.Members) == 0 {
		return nil, errors.Newf(errors.ErrInvalidConfig, "missing or empty members for program %q", name)
	}

	if opts.Section == nil {
		text := name
		if opts.Description != "" {
			text += " - " + opts.Description
		}

		opts.Section = NewSection(&Header{Text: "NAME"}, &Paragraph{Text: text})
	}

	return newNode(name, opts)
}

func newNode(name string, opts *Opts) (*Node, error) {
	validate := opts.Validator
	if validate == nil {
		validate = DefaultValidator
	}

	shorts := make([]string, 0, len(opts.Short))
	for _, short := range opts.Short {
		if !slices.Contains(shorts, short) {
			shorts = append(shorts, short)
		}
	}

	for _, flag := range append([]string{name}, shorts...) {
		if err := checkFlagName(flag, validate); err != nil {
			return nil, err
		}
	}

	if err := checkOpts(name, opts); err != nil {
		return nil, err
	}

	node := &Node{
		name:        name,
		longFlag:    opts.LongPrefix + name,
		shortPrefix: opts.ShortPrefix,
		cardinality: opts.FlagCardinality,
		shape:       opts.ValueShape,
		valueNeed:   opts.ValueNecessity,
		members:     slices.Clone(opts.Members),
		memberCard:  opts.MemberCardinality,
		memberNeed:  opts.MemberNecessity,
		delimiter:   opts.Delimiter,
		immediate:   opts.Immediate,
		groupable:   opts.Groupable,
		doubleDash:  opts.DoubleDash,
		description: opts.Section,
	}

	for _, short := range shorts {
		node.shortFlags = append(node.shortFlags, opts.ShortPrefix+short)
	}

	slices.Sort(node.shortFlags)

	if node.description == nil {
		node.description = NewSection(
			&FlagsLine{Placeholder: node.shape.Placeholder(node.valueNeed == Required)},
			&Paragraph{Text: opts.Description},
		)
	}

	return node, nil
}

func checkFlagName(flag string, validate ValidateFunc) error {
	if flag == "" {
		return errors.InvalidFlagName(flag, nil)
	}

	if strings.HasPrefix(flag, flagIntroducer) {
		return errors.InvalidFlagName(flag, fmt.Errorf("cannot start with %q", flagIntroducer))
	}

	if err := validate(flag); err != nil {
		return errors.InvalidFlagName(flag, err)
	}

	return nil
}

func checkOpts(name string, opts *Opts) error {
	switch {
	case !opts.FlagCardinality.Valid():
		return errors.Newf(errors.ErrInvalidConfig, "%q: invalid flag cardinality %s", name, opts.FlagCardinality)
	case !opts.ValueShape.Valid():
		return errors.Newf(errors.ErrInvalidConfig, "%q: invalid value shape %s", name, opts.ValueShape)
	case !opts.ValueNecessity.Valid():
		return errors.Newf(errors.ErrInvalidConfig, "%q: invalid value necessity %s", name, opts.ValueNecessity)
	case !opts.MemberCardinality.Valid():
		return errors.Newf(errors.ErrInvalidConfig, "%q: invalid member cardinality %s", name, opts.MemberCardinality)
	case !opts.MemberNecessity.Valid():
		return errors.Newf(errors.ErrInvalidConfig, "%q: invalid member necessity %s", name, opts.MemberNecessity)
	case opts.DoubleDash != "" && !opts.ValueShape.IsArray():
		return errors.Newf(errors.ErrInvalidConfig, "%q: double-dash marker %q needs an array value, not %s",
			name, opts.DoubleDash, opts.ValueShape)
	}

	return nil
}

// Name returns the unique name of the node.
func (n *Node) Name() string { return n.name }

// LongFlag returns the prefixed long flag.
func (n *Node) LongFlag() string { return n.longFlag }

// ShortFlags returns the prefixed short flags, sorted.
func (n *Node) ShortFlags() []string { return slices.Clone(n.shortFlags) }

// ShortPrefix returns the prefix of the short flags.
func (n *Node) ShortPrefix() string { return n.shortPrefix }

// Flags returns all flag tokens of the node, long flag first.
func (n *Node) Flags() []string {
	return append([]string{n.longFlag}, n.shortFlags...)
}

// FlagCardinality returns how often the node may be used.
func (n *Node) FlagCardinality() FlagCardinality { return n.cardinality }

// ValueShape returns the kind of value the node takes.
func (n *Node) ValueShape() values.Shape { return n.shape }

// ValueNecessity returns whether values must be given to the node.
func (n *Node) ValueNecessity() Necessity { return n.valueNeed }

// Members returns the declared members: names (string) or nodes (*Node).
func (n *Node) Members() []any { return slices.Clone(n.members) }

// MemberCardinality returns how many distinct members may be used.
func (n *Node) MemberCardinality() MemberCardinality { return n.memberCard }

// MemberNecessity returns whether a member must be used.
func (n *Node) MemberNecessity() Necessity { return n.memberNeed }

// Delimiter returns the flag/value separator, if any.
func (n *Node) Delimiter() string { return n.delimiter }

// Immediate reports whether values may be glued to the flag.
func (n *Node) Immediate() bool { return n.immediate }

// Groupable reports whether short flags may be grouped.
func (n *Node) Groupable() bool { return n.groupable }

// DoubleDash returns the raw passthrough marker, if any.
func (n *Node) DoubleDash() string { return n.doubleDash }

// Description returns the help blocks of the node.
func (n *Node) Description() *Section { return n.description }

// NewAccumulator returns a fresh value accumulator for one use of the node.
func (n *Node) NewAccumulator(flag string) values.Accumulator {
	return values.New(n.shape, flag, n.valueNeed == Required)
}
