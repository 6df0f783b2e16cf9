// Package complete builds carapace completions from a compiled scheme:
// the candidates are the flags accepted after the words already typed.
package complete

import (
	"github.com/carapace-sh/carapace"
	"github.com/spf13/cobra"

	"github.com/reeflective/argon/internal/errors"
	"github.com/reeflective/argon/internal/parser"
	"github.com/reeflective/argon/internal/scheme"
)

// LoadFunc returns the scheme to complete with. It is called on each
// completion, so that the scheme can depend on flags already parsed.
type LoadFunc func(ctx carapace.Context) (*scheme.Scheme, error)

// ActionFlags completes the flags accepted after the given tokens.
// Usage errors in the tokens are shown as a completion message.
func ActionFlags(s *scheme.Scheme, tokens []string) carapace.Action {
	flags, err := parser.Expect(s, tokens)
	if err != nil {
		if gerr, ok := errors.As(err); ok {
			return carapace.ActionMessage(gerr.Diagnostic())
		}

		return carapace.ActionMessage(err.Error())
	}

	return carapace.ActionValuesDescribed(described(s, flags)...).Tag("flags")
}

// Callback returns a completion callback replaying the words already
// typed against the scheme returned by load.
func Callback(load LoadFunc) carapace.CompletionCallback {
	return func(ctx carapace.Context) carapace.Action {
		s, err := load(ctx)
		if err != nil {
			return carapace.ActionMessage(err.Error())
		}

		return ActionFlags(s, ctx.Args)
	}
}

// Bind registers the scheme completions for the words passed to cmd after
// a double dash, or for all its positional words if dash is false.
func Bind(cmd *cobra.Command, load LoadFunc, dash bool) *carapace.Carapace {
	comps := carapace.Gen(cmd)
	action := carapace.ActionCallback(Callback(load))

	if dash {
		comps.DashAnyCompletion(action)
	} else {
		comps.PositionalAnyCompletion(action)
	}

	return comps
}

// described pairs each flag with the summary of its node.
func described(s *scheme.Scheme, flags []string) []string {
	values := make([]string, 0, 2*len(flags))

	for _, flag := range flags {
		var desc string
		if entry, found := s.Lookup(flag); found {
			desc = entry.Description().Summary()
		}

		values = append(values, flag, desc)
	}

	return values
}
