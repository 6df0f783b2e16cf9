package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reeflective/argon/internal/parser"
)

var errInvalidTokens = errors.New("invalid tokens")

// formats are the values accepted by parse --format.
var formats = []string{"tree", "pairs", "depth", "breadth", "yaml"}

func newCheckCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Compile a grammar file and print its flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.load()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d nodes, %d flags, roots: %s\n",
				len(s.Entries()), len(s.Flags()), strings.Join(s.Roots(), ", "))

			for _, flag := range s.Flags() {
				entry, _ := s.Lookup(flag)
				fmt.Fprintf(out, "%-24s %s\n", flag, entry.Name())
			}

			return nil
		},
	}
}

func newHierarchyCommand(opts *options) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "hierarchy",
		Short: "Print the context hierarchy of a grammar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.load()
			if err != nil {
				return err
			}

			if plain {
				for _, line := range s.HierarchyLines() {
					fmt.Fprintln(cmd.OutOrStdout(), line)
				}

				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderHierarchy(s))

			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print indented lines instead of a tree")

	return cmd
}

func newParseCommand(opts *options) *cobra.Command {
	var (
		format   string
		diagnose bool
	)

	cmd := &cobra.Command{
		Use:   "parse [flags] -- tokens...",
		Short: "Parse tokens with a grammar and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.load()
			if err != nil {
				return err
			}

			parseOpts := []parser.OptFunc{parser.WithLogger(opts.logger)}
			if diagnose {
				parseOpts = append(parseOpts, parser.WithDiagnostics(cmd.ErrOrStderr()))
			}

			tree, err := parser.Parse(s, tokens(cmd, args), parseOpts...)
			if err != nil {
				return err
			}

			if tree == nil && diagnose {
				return errInvalidTokens
			}

			return render(cmd.OutOrStdout(), tree, format)
		},
	}

	enumFlag(cmd.Flags(), &format, "format", "f", "tree", "output format", formats...)
	cmd.Flags().BoolVarP(&diagnose, "diagnose", "d", false, "print usage errors as one-line diagnostics")

	return cmd
}

func newExpectCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expect [flags] -- tokens...",
		Short: "Print the flags accepted after some tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.load()
			if err != nil {
				return err
			}

			flags, err := parser.Expect(s, tokens(cmd, args), parser.WithLogger(opts.logger))
			if err != nil {
				return err
			}

			for _, flag := range flags {
				entry, _ := s.Lookup(flag)
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s %s\n", flag, entry.Description().Summary())
			}

			return nil
		},
	}

	return cmd
}
