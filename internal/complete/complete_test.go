package complete

import (
	"testing"

	"github.com/carapace-sh/carapace"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reeflective/argon/internal/grammar"
	"github.com/reeflective/argon/internal/parser"
	"github.com/reeflective/argon/internal/scheme"
)

func remoteScheme(t *testing.T) *scheme.Scheme {
	t.Helper()

	remote, err := grammar.New("remote", grammar.WithValueShape(grammar.Switch),
		grammar.Members("add", "remove"), grammar.Description("Manage remotes."))
	require.NoError(t, err)

	add, err := grammar.New("add", grammar.Short("a"), grammar.Description("Add a remote."))
	require.NoError(t, err)

	remove, err := grammar.New("remove", grammar.Description("Remove a remote."))
	require.NoError(t, err)

	s, err := scheme.Compile([]*grammar.Node{remote, add, remove})
	require.NoError(t, err)

	return s
}

//
// Tests -----------------------------------------------------------------------------------
//

func TestDescribed(t *testing.T) {
	t.Parallel()

	s := remoteScheme(t)

	flags, err := parser.Expect(s, []string{"--remote"})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"--add", "Add a remote.",
		"--remove", "Remove a remote.",
		"-a", "Add a remote.",
	}, described(s, flags))
}

// TestCompletions calls the carapace engine test routine
// on a command completing scheme flags after a double dash.
func TestCompletions(t *testing.T) {
	t.Parallel()

	s := remoteScheme(t)

	cmd := &cobra.Command{Use: "parse", Run: func(*cobra.Command, []string) {}}
	Bind(cmd, func(carapace.Context) (*scheme.Scheme, error) { return s, nil }, true)

	carapace.Test(t)
}
