package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reeflective/argon/internal/errors"
)

func TestSwitch(t *testing.T) {
	t.Parallel()

	acc := New(Switch, "--bool", true)
	require.Equal(t, "--bool", acc.Flag())

	err := acc.Add("alpha")
	require.ErrorIs(t, err, errors.ErrFinishedPattern)

	value, err := acc.Close("", true)
	require.NoError(t, err)
	require.Equal(t, true, value)
}

func TestSingle(t *testing.T) {
	t.Parallel()

	t.Run("Set once", func(t *testing.T) {
		t.Parallel()

		acc := New(Single, "--value", true)
		require.NoError(t, acc.Add("a"))

		err := acc.Add("b")
		require.ErrorIs(t, err, errors.ErrFinishedPattern)

		perr, ok := errors.As(err)
		require.True(t, ok)
		assert.Equal(t, "--value", perr.Flag)
		assert.Equal(t, "b", perr.Token)

		value, err := acc.Close("", true)
		require.NoError(t, err)
		require.Equal(t, "a", value)
	})

	t.Run("Required but unset", func(t *testing.T) {
		t.Parallel()

		acc := New(Single, "--value", true)
		_, err := acc.Close("--bool", false)
		require.ErrorIs(t, err, errors.ErrUnfinishedPattern)

		perr, _ := errors.As(err)
		assert.Equal(t, "--bool", perr.Token)
		assert.False(t, perr.EOL)
	})

	t.Run("Optional and unset", func(t *testing.T) {
		t.Parallel()

		acc := New(Single, "--value", false)
		value, err := acc.Close("", true)
		require.NoError(t, err)
		require.Nil(t, value)
	})
}

func TestArrays(t *testing.T) {
	t.Parallel()

	tokens := []string{"a", "b", "c", "a", "b", "c", "d"}

	tt := []struct {
		name     string
		shape    Shape
		expected []string
	}{
		{name: "Common array keeps duplicates", shape: CommonArray, expected: tokens},
		{name: "Unique array drops duplicates", shape: UniqueArray, expected: []string{"a", "b", "c", "d"}},
	}

	for _, test := range tt {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			acc := New(test.shape, "--list", true)
			for _, token := range tokens {
				require.NoError(t, acc.Add(token))
			}

			value, err := acc.Close("", true)
			require.NoError(t, err)
			require.Equal(t, test.expected, value)
		})

		t.Run(test.name+" (empty)", func(t *testing.T) {
			t.Parallel()

			_, err := New(test.shape, "--list", true).Close("", true)
			require.ErrorIs(t, err, errors.ErrUnfinishedPattern)

			value, err := New(test.shape, "--list", false).Close("", true)
			require.NoError(t, err)
			require.Empty(t, value)
		})
	}
}

func TestNamedValues(t *testing.T) {
	t.Parallel()

	acc := New(NamedValues, "--map", true)
	for _, token := range []string{"a", "1", "b", "2", "a", "3"} {
		require.NoError(t, acc.Add(token))
	}

	value, err := acc.Close("", true)
	require.NoError(t, err)
	require.Equal(t, map[string]string{"a": "3", "b": "2"}, value)

	dangling := New(NamedValues, "--map", false)
	require.NoError(t, dangling.Add("a"))

	_, err = dangling.Close("", true)
	require.ErrorIs(t, err, errors.ErrUnfinishedPattern)

	perr, _ := errors.As(err)
	require.True(t, perr.EOL)
	require.Contains(t, perr.Diagnostic(), errors.EOL)

	_, err = New(NamedValues, "--map", true).Close("--other", false)
	require.ErrorIs(t, err, errors.ErrUnfinishedPattern)
}

func TestShape(t *testing.T) {
	t.Parallel()

	for _, shape := range []Shape{Switch, Single, CommonArray, UniqueArray, NamedValues} {
		parsed, err := ParseShape(shape.String())
		require.NoError(t, err)
		require.Equal(t, shape, parsed)
	}

	_, err := ParseShape("tuple")
	require.Error(t, err)
	require.False(t, Shape(42).Valid())

	assert.True(t, CommonArray.IsArray())
	assert.False(t, NamedValues.IsArray())
	assert.Equal(t, "[<value>...]", UniqueArray.Placeholder(false))
	assert.Equal(t, "<key> <value>...", NamedValues.Placeholder(true))
	assert.Empty(t, Switch.Placeholder(true))
}
