package main

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/goccy/go-yaml"

	"github.com/reeflective/argon/internal/result"
	"github.com/reeflective/argon/internal/scheme"
)

var (
	flagStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	enumStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// render writes a parse result in the given format.
func render(w io.Writer, nodes result.Tree, format string) error {
	switch format {
	case "tree":
		_, err := fmt.Fprintln(w, renderTree(nodes))

		return err

	case "pairs":
		for name, value := range nodes.Pairs() {
			if _, err := fmt.Fprintf(w, "%s = %s\n", name, formatValue(value)); err != nil {
				return err
			}
		}

	case "depth":
		for branch := range nodes.DepthFirst() {
			path := strings.Join(append(branch.Path, branch.Name), ".")
			if _, err := fmt.Fprintf(w, "%s = %s\n", path, formatValue(branch.Value)); err != nil {
				return err
			}
		}

	case "breadth":
		for branch := range nodes.BreadthFirst() {
			if _, err := fmt.Fprintf(w, "%s.%s = %s\n", branch.Parent, branch.Name, formatValue(branch.Value)); err != nil {
				return err
			}
		}

	case "yaml":
		return yaml.NewEncoder(w, yaml.Indent(2)).Encode(nodes)

	default:
		return fmt.Errorf("invalid --format: %q (expected one of %s)", format, strings.Join(formats, ", "))
	}

	return nil
}

// renderTree draws the result nodes with their values.
func renderTree(nodes result.Tree) string {
	root := tree.New().
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(enumStyle)

	for _, node := range nodes {
		root.Child(resultBranch(node))
	}

	return root.String()
}

func resultBranch(node *result.Node) any {
	label := flagStyle.Render(node.Flag) + " " + valueStyle.Render(formatValue(node.Value))
	if len(node.Children) == 0 {
		return label
	}

	branch := tree.Root(label).Enumerator(tree.RoundedEnumerator).EnumeratorStyle(enumStyle)
	for _, child := range node.Children {
		branch.Child(resultBranch(child))
	}

	return branch
}

// renderHierarchy draws the context hierarchy of a scheme.
func renderHierarchy(s *scheme.Scheme) string {
	var walk func(ctx *scheme.Context) []any

	walk = func(ctx *scheme.Context) []any {
		children := make([]any, 0, ctx.Len())

		for _, name := range ctx.Members() {
			member, _ := ctx.Member(name)
			entry, _ := s.Entry(name)
			label := flagStyle.Render(strings.Join(entry.Flags(), ", "))

			if member.Len() == 0 {
				children = append(children, label)

				continue
			}

			children = append(children, tree.Root(label).
				Enumerator(tree.RoundedEnumerator).
				EnumeratorStyle(enumStyle).
				Child(walk(member)...))
		}

		return children
	}

	return tree.New().
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(enumStyle).
		Child(walk(s.Hierarchy())...).
		String()
}

// formatValue prints node values the same way for all formats.
func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "<unset>"
	case string:
		return fmt.Sprintf("%q", v)
	case []string:
		quoted := make([]string, len(v))
		for i, item := range v {
			quoted[i] = fmt.Sprintf("%q", item)
		}

		return "[" + strings.Join(quoted, ", ") + "]"
	case map[string]string:
		pairs := make([]string, 0, len(v))
		for _, key := range slices.Sorted(maps.Keys(v)) {
			pairs = append(pairs, fmt.Sprintf("%q: %q", key, v[key]))
		}

		return "{" + strings.Join(pairs, ", ") + "}"
	default:
		return fmt.Sprint(v)
	}
}
