package argon_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/carapace-sh/carapace"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reeflective/argon"
)

func TestCompileErrors(t *testing.T) {
	t.Parallel()

	a, err := argon.NewNode("a", argon.Members("b"))
	require.NoError(t, err)

	b, err := argon.NewNode("b", argon.Members("a"))
	require.NoError(t, err)

	_, err = argon.Compile([]*argon.Node{a, b})
	require.ErrorIs(t, err, argon.ErrCircularReferences)

	gerr, ok := argon.AsError(err)
	require.True(t, ok)
	assert.Equal(t, argon.ErrCircularReferences, gerr.Kind)
	assert.False(t, gerr.Kind.Runtime())

	_, err = argon.NewNode("bad name")
	require.ErrorIs(t, err, argon.ErrInvalidFlagName)

	_, err = argon.NewNode("a", argon.WithValueShape(argon.Shape(42)))
	require.ErrorIs(t, err, argon.ErrInvalidConfig)
}

func TestSchemeOptions(t *testing.T) {
	t.Parallel()

	verbose, err := argon.NewNode("verbose", argon.Short("v"), argon.WithValueShape(argon.Switch))
	require.NoError(t, err)

	quiet, err := argon.NewNode("quiet", argon.Short("q"), argon.WithValueShape(argon.Switch))
	require.NoError(t, err)

	name, err := argon.NewNode("name", argon.Short("n"))
	require.NoError(t, err)

	nodes := []*argon.Node{verbose, quiet, name}

	s, err := argon.Compile(nodes, argon.AllGroupable(true), argon.AllImmediate(true), argon.AllDelimiter("="))
	require.NoError(t, err)

	tree, err := s.Parse([]string{"-vq", "--name=alice"})
	require.NoError(t, err)
	assert.Equal(t, argon.Tree{
		{Name: "verbose", Flag: "-v", Value: true},
		{Name: "quiet", Flag: "-q", Value: true},
		{Name: "name", Flag: "--name", Value: "alice"},
	}, tree)

	s, err = argon.Compile(nodes)
	require.NoError(t, err)

	_, err = s.Parse([]string{"-vq"})
	require.ErrorIs(t, err, argon.ErrInvalidArgument)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "grammar.yaml")
	require.NoError(t, os.WriteFile(path, []byte("nodes:\n  - name: bool\n    value: switch\n"), 0o600))

	s, err := argon.Load(path)
	require.NoError(t, err)

	tree, err := s.Parse([]string{"--bool"})
	require.NoError(t, err)

	node, found := tree.Find("bool")
	require.True(t, found)
	assert.Equal(t, true, node.Value)

	_, err = argon.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
	require.ErrorIs(t, err, argon.ErrInvalidConfig)

	require.NoError(t, os.WriteFile(path, []byte("nodes: []\n"), 0o600))

	_, err = argon.Load(path)
	require.ErrorIs(t, err, argon.ErrInvalidConfig)
}

func TestUsageErrors(t *testing.T) {
	t.Parallel()

	s := pmt()

	_, err := s.Parse([]string{"pmt", "set"})
	require.ErrorIs(t, err, argon.ErrUnfinishedPattern)

	var gerr *argon.Error
	require.True(t, errors.As(err, &gerr))
	assert.True(t, gerr.EOL)
	assert.True(t, gerr.Kind.Runtime())
}

func TestCompletions(t *testing.T) {
	s := pmt()

	cmd := &cobra.Command{Use: "pmt", Run: func(*cobra.Command, []string) {}}
	s.BindCompletions(cmd, false)

	carapace.Test(t)

	action := s.Completions([]string{"pmt", "set", "issues"})
	assert.NotNil(t, action)
}
