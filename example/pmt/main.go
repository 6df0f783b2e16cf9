package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/carapace-sh/carapace"
	"github.com/spf13/cobra"

	"github.com/reeflective/argon"
)

//
// This file contains a small project management tool, whose command line
// is entirely parsed with a grammar instead of cobra flags:
//
//	pmt set issues -t milestones -m open -v status closed
//	pmt add labels -t issues -m -- --not-a-flag v2
//

func grammar() (*argon.Scheme, error) {
	var nodes []*argon.Node

	program, err := argon.NewProgram("pmt",
		argon.Members("set", "add"),
		argon.WithMemberCardinality(argon.One),
		argon.WithMemberNecessity(argon.Required),
		argon.Description("A project management tool."))
	if err != nil {
		return nil, err
	}

	nodes = append(nodes, program)

	// Actions
	for _, action := range []string{"set", "add"} {
		node, err := argon.NewNode(action,
			argon.LongPrefix(""),
			argon.WithFlagCardinality(argon.Unique),
			argon.Members("target", "values"),
			argon.Description(strings.ToUpper(action[:1])+action[1:]+" properties of a resource."))
		if err != nil {
			return nil, err
		}

		nodes = append(nodes, node)
	}

	// Targets and values
	target, err := argon.NewNode("target",
		argon.Short("t"),
		argon.Members("milestone", "label-name"),
		argon.Description("Select the target resources."))
	if err != nil {
		return nil, err
	}

	values, err := argon.NewNode("values",
		argon.Short("v"),
		argon.WithValueShape(argon.NamedValues),
		argon.WithFlagCardinality(argon.Primal),
		argon.Description("Property names and values."))
	if err != nil {
		return nil, err
	}

	milestone, err := argon.NewNode("milestone",
		argon.Short("m"),
		argon.WithValueShape(argon.UniqueArray),
		argon.WithFlagCardinality(argon.Primal),
		argon.DoubleDash("--"),
		argon.Description("Filter targets by milestone."))
	if err != nil {
		return nil, err
	}

	label, err := argon.NewNode("label-name",
		argon.Short("L"),
		argon.WithFlagCardinality(argon.Primal),
		argon.Description("Filter targets by label."))
	if err != nil {
		return nil, err
	}

	nodes = append(nodes, target, values, milestone, label)

	return argon.Compile(nodes, argon.AllDelimiter("="), argon.AllImmediate(true))
}

func main() {
	s, err := grammar()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:                "pmt",
		Short:              "A project management tool parsed with a grammar",
		SilenceUsage:       true,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := s.Parse(append([]string{"pmt"}, args...), argon.WithDiagnostics(cmd.ErrOrStderr()))
			if err != nil || tree == nil {
				return err
			}

			for branch := range tree.DepthFirst() {
				path := strings.Join(append(branch.Path, branch.Name), ".")
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %v\n", path, branch.Value)
			}

			return nil
		},
	}

	// Completions: the program name is not part of the words to complete.
	comps := carapace.Gen(rootCmd)
	comps.PositionalAnyCompletion(carapace.ActionCallback(func(ctx carapace.Context) carapace.Action {
		return s.Completions(append([]string{"pmt"}, ctx.Args...))
	}))
	comps.Standalone()

	// Execute the command (application here)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
