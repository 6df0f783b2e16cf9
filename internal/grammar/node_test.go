package grammar

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reeflective/argon/internal/errors"
	"github.com/reeflective/argon/internal/values"
)

//
// Tests -----------------------------------------------------------------------------------
//

func TestNew(t *testing.T) {
	t.Parallel()

	node, err := New("target",
		Short("t", "T", "t"),
		WithFlagCardinality(Primal),
		WithValueShape(NamedValues),
		WithValueNecessity(Optional),
		Members("milestone", "label-name"),
		WithMemberCardinality(One),
		WithMemberNecessity(Required),
		Delimiter("="),
		Immediate(true),
		Description("Select a target."),
	)
	require.NoError(t, err)

	assert.Equal(t, "target", node.Name())
	assert.Equal(t, "--target", node.LongFlag())
	assert.Equal(t, []string{"-T", "-t"}, node.ShortFlags())
	assert.Equal(t, []string{"--target", "-T", "-t"}, node.Flags())
	assert.Equal(t, Primal, node.FlagCardinality())
	assert.Equal(t, NamedValues, node.ValueShape())
	assert.Equal(t, Optional, node.ValueNecessity())
	assert.Equal(t, []any{"milestone", "label-name"}, node.Members())
	assert.Equal(t, One, node.MemberCardinality())
	assert.Equal(t, Required, node.MemberNecessity())
	assert.Equal(t, "=", node.Delimiter())
	assert.True(t, node.Immediate())
	assert.False(t, node.Groupable())
	assert.Empty(t, node.DoubleDash())

	require.NotNil(t, node.Description())
	assert.Equal(t, "Select a target.", node.Description().Summary())

	flags, ok := node.Description().Blocks[0].(*FlagsLine)
	require.True(t, ok)
	assert.Equal(t, "[<key> <value>...]", flags.Placeholder)
}

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	node, err := New("value")
	require.NoError(t, err)

	assert.Equal(t, Common, node.FlagCardinality())
	assert.Equal(t, Single, node.ValueShape())
	assert.Equal(t, Required, node.ValueNecessity())
	assert.Equal(t, Any, node.MemberCardinality())
	assert.Equal(t, Optional, node.MemberNecessity())
	assert.Empty(t, node.Members())
}

func TestNewNilOption(t *testing.T) {
	t.Parallel()

	node, err := New("value", nil, Short("v"), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"-v"}, node.ShortFlags())

	program, err := NewProgram("pmt", Members("value"), nil)
	require.NoError(t, err)
	assert.Equal(t, "pmt", program.LongFlag())
}

func TestNewPrefixes(t *testing.T) {
	t.Parallel()

	node, err := New("set", LongPrefix(""), ShortPrefix("+"), Short("s"))
	require.NoError(t, err)
	assert.Equal(t, []string{"set", "+s"}, node.Flags())
}

func TestNewInvalid(t *testing.T) {
	t.Parallel()

	tt := []struct {
		name   string
		flag   string
		opts   []OptFunc
		expErr error
	}{
		{name: "Empty name", flag: "", expErr: errors.ErrInvalidFlagName},
		{name: "Prefixed name", flag: "--value", expErr: errors.ErrInvalidFlagName},
		{name: "Prefixed short", flag: "value", opts: []OptFunc{Short("-v")}, expErr: errors.ErrInvalidFlagName},
		{name: "Invalid character", flag: "va lue", expErr: ErrInvalidCharacter},
		{name: "Non ASCII character", flag: "valué", expErr: errors.ErrInvalidFlagName},
		{name: "Flag cardinality", flag: "value", opts: []OptFunc{WithFlagCardinality(7)}, expErr: errors.ErrInvalidConfig},
		{name: "Value shape", flag: "value", opts: []OptFunc{WithValueShape(7)}, expErr: errors.ErrInvalidConfig},
		{name: "Value necessity", flag: "value", opts: []OptFunc{WithValueNecessity(-1)}, expErr: errors.ErrInvalidConfig},
		{name: "Member cardinality", flag: "value", opts: []OptFunc{WithMemberCardinality(3)}, expErr: errors.ErrInvalidConfig},
		{name: "Member necessity", flag: "value", opts: []OptFunc{WithMemberNecessity(3)}, expErr: errors.ErrInvalidConfig},
		{name: "Double dash on single", flag: "value", opts: []OptFunc{DoubleDash("--")}, expErr: errors.ErrInvalidConfig},
		{name: "Double dash on named values", flag: "value", opts: []OptFunc{
			DoubleDash("--"), WithValueShape(NamedValues),
		}, expErr: errors.ErrInvalidConfig},
	}

	for _, test := range tt {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			node, err := New(test.flag, test.opts...)
			require.ErrorIs(t, err, test.expErr)
			require.Nil(t, node)
		})
	}
}

func TestDoubleDashOnArrays(t *testing.T) {
	t.Parallel()

	for _, shape := range []values.Shape{CommonArray, UniqueArray} {
		node, err := New("rest", WithValueShape(shape), DoubleDash("--"))
		require.NoError(t, err)
		assert.Equal(t, "--", node.DoubleDash())
	}
}

func TestCustomValidator(t *testing.T) {
	t.Parallel()

	validate := validator.New()
	require.NoError(t, validate.RegisterValidation("lower", func(fl validator.FieldLevel) bool {
		for _, r := range fl.Field().String() {
			if r < 'a' || r > 'z' {
				return false
			}
		}

		return true
	}))

	_, err := New("value", Validator(NewValidator(validate, "lower")))
	require.NoError(t, err)

	_, err = New("Value", Validator(NewValidator(validate, "lower")))
	require.ErrorIs(t, err, errors.ErrInvalidFlagName)
	require.Contains(t, err.Error(), "lower")

	_, err = New("va.lue", Validator(AcceptAny))
	require.NoError(t, err)
}

func TestNewProgram(t *testing.T) {
	t.Parallel()

	program, err := NewProgram("./bin/pmt", Members("set", "add"), WithMemberCardinality(One),
		Description("project management tool"))
	require.NoError(t, err)

	assert.Equal(t, "./bin/pmt", program.LongFlag())
	assert.Equal(t, Unique, program.FlagCardinality())
	assert.Equal(t, Switch, program.ValueShape())
	assert.Equal(t, One, program.MemberCardinality())

	header, ok := program.Description().Blocks[0].(*Header)
	require.True(t, ok)
	assert.Equal(t, "NAME", header.Text)
	assert.Equal(t, "./bin/pmt - project management tool", program.Description().Summary())

	_, err = NewProgram("pmt")
	require.ErrorIs(t, err, errors.ErrInvalidConfig)

	_, err = NewProgram("-pmt", Members("set"))
	require.ErrorIs(t, err, errors.ErrInvalidFlagName)
}

func TestParseEnums(t *testing.T) {
	t.Parallel()

	c, err := ParseFlagCardinality("Primal")
	require.NoError(t, err)
	assert.Equal(t, Primal, c)

	_, err = ParseFlagCardinality("rare")
	require.Error(t, err)

	m, err := ParseMemberCardinality("one")
	require.NoError(t, err)
	assert.Equal(t, One, m)

	_, err = ParseMemberCardinality("two")
	require.Error(t, err)

	assert.Equal(t, "unique", Unique.String())
	assert.Equal(t, "required", Required.String())
}
