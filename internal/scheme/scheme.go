// Package scheme compiles grammar nodes into a scheme: the table of flag
// tokens, the membership graph, checked for cycles, and the immutable
// context hierarchy walked by the parser.
package scheme

import (
	"maps"
	"slices"

	"github.com/reeflective/argon/internal/errors"
	"github.com/reeflective/argon/internal/grammar"
)

// Entry is a node as compiled in a scheme: its splitting settings
// may be overridden by the scheme options.
type Entry struct {
	*grammar.Node

	delimiter string
	immediate bool
	groupable bool
}

// Delimiter returns the effective flag/value separator.
func (e *Entry) Delimiter() string { return e.delimiter }

// Immediate reports whether values may be glued to the flag.
func (e *Entry) Immediate() bool { return e.immediate }

// Groupable reports whether short flags may be grouped.
func (e *Entry) Groupable() bool { return e.groupable }

// Scheme is a compiled grammar. It is immutable and can be shared
// between concurrent parses.
type Scheme struct {
	entries   map[string]*Entry
	order     []string
	flags     map[string]*Entry
	graph     *graph
	parents   *graph
	roots     []string
	hierarchy *Context
}

// Compile checks the nodes and their members, and builds the scheme.
// Nodes given as members are registered as well, and need not be
// passed again. No partial scheme is returned on error.
func Compile(nodes []*grammar.Node, optFuncs ...OptFunc) (*Scheme, error) {
	opts := DefOpts().Apply(optFuncs...)

	scheme := &Scheme{
		entries: map[string]*Entry{},
		flags:   map[string]*Entry{},
		graph:   newGraph(),
		parents: newGraph(),
	}

	for _, node := range nodes {
		if err := scheme.register(node, opts); err != nil {
			return nil, err
		}
	}

	if err := scheme.buildFlags(); err != nil {
		return nil, err
	}

	if err := scheme.buildGraph(); err != nil {
		return nil, err
	}

	if _, cycle := scheme.graph.sort(); cycle != nil {
		return nil, errors.CircularReferences(cycle)
	}

	for _, name := range scheme.order {
		if len(scheme.parents.adjacent(name)) == 0 {
			scheme.roots = append(scheme.roots, name)
		}
	}

	scheme.hierarchy = materialize(scheme.graph, "", scheme.roots, map[string]*Context{})

	return scheme, nil
}

func (s *Scheme) register(node *grammar.Node, opts Opts) error {
	if node == nil {
		return errors.New(errors.ErrInvalidConfig, "nil node")
	}

	if existing, found := s.entries[node.Name()]; found {
		if existing.Node == node {
			return nil
		}

		return errors.LongFlagIsNotUnique(node.Name())
	}

	entry := &Entry{
		Node:      node,
		delimiter: node.Delimiter(),
		immediate: node.Immediate(),
		groupable: node.Groupable(),
	}

	if opts.Delimiter != nil {
		entry.delimiter = *opts.Delimiter
	}

	if opts.Immediate != nil {
		entry.immediate = *opts.Immediate
	}

	if opts.Groupable != nil {
		entry.groupable = *opts.Groupable
	}

	s.entries[node.Name()] = entry
	s.order = append(s.order, node.Name())
	s.graph.addVertex(node.Name())

	for _, member := range node.Members() {
		if nested, ok := member.(*grammar.Node); ok && nested != nil {
			if err := s.register(nested, opts); err != nil {
				return err
			}
		}
	}

	return nil
}

func (s *Scheme) buildFlags() error {
	for _, name := range s.order {
		entry := s.entries[name]

		for _, flag := range entry.Flags() {
			if owner, taken := s.flags[flag]; taken && owner != entry {
				return errors.ShortFlagIsNotUnique(flag, owner.Name(), name)
			}

			s.flags[flag] = entry
		}
	}

	return nil
}

func (s *Scheme) buildGraph() error {
	for _, name := range s.order {
		for _, member := range s.entries[name].Members() {
			var target string

			switch m := member.(type) {
			case string:
				if _, found := s.entries[m]; !found {
					return errors.InvalidMemberReference(name, m)
				}

				target = m
			case *grammar.Node:
				if m == nil {
					return errors.InvalidPatternMember(name, member)
				}

				target = m.Name()
			default:
				return errors.InvalidPatternMember(name, member)
			}

			s.graph.addEdge(name, target)
			s.parents.addEdge(target, name)
		}
	}

	return nil
}

// Lookup returns the node owning a flag token.
func (s *Scheme) Lookup(flag string) (*Entry, bool) {
	entry, found := s.flags[flag]

	return entry, found
}

// Entry returns the node of the given name.
func (s *Scheme) Entry(name string) (*Entry, bool) {
	entry, found := s.entries[name]

	return entry, found
}

// Entries returns all nodes, in registration order.
func (s *Scheme) Entries() []*Entry {
	entries := make([]*Entry, 0, len(s.order))
	for _, name := range s.order {
		entries = append(entries, s.entries[name])
	}

	return entries
}

// Flags returns all flag tokens, sorted.
func (s *Scheme) Flags() []string {
	return slices.Sorted(maps.Keys(s.flags))
}

// Roots returns the names of the nodes that are not members of any other.
func (s *Scheme) Roots() []string {
	return slices.Clone(s.roots)
}

// Parents returns the names of the nodes declaring the named node as member.
func (s *Scheme) Parents(name string) []string {
	return slices.Clone(s.parents.adjacent(name))
}

// Members returns the names of the declared members of the named node.
func (s *Scheme) Members(name string) []string {
	return slices.Clone(s.graph.adjacent(name))
}

// Hierarchy returns the top-level context, whose members are the roots.
func (s *Scheme) Hierarchy() *Context {
	return s.hierarchy
}

// HierarchyLines returns the context hierarchy as indented lines.
func (s *Scheme) HierarchyLines() []string {
	return s.hierarchy.Lines()
}
