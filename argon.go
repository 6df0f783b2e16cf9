// Package argon parses command-line token streams with declarative grammars.
//
// A grammar is a set of nodes. Each node owns flags (its long name and some
// short names), takes values of a given shape, and may be the context of
// other nodes, its members. Nodes are compiled into a scheme, which checks
// that flags are unique and that membership has no cycles, and which builds
// the context hierarchy used by the parser.
//
// Parsing a token stream with a scheme returns a tree of the nodes used,
// with their values. Usage errors are returned as *Error values, with a
// Kind that can be matched with errors.Is.
//
// Grammars can be declared in Go with NewNode and NewProgram, or loaded
// from YAML documents with Load and Decode.
package argon

import (
	"io"

	"github.com/carapace-sh/carapace"
	"github.com/spf13/cobra"

	"github.com/reeflective/argon/internal/complete"
	"github.com/reeflective/argon/internal/grammar"
	"github.com/reeflective/argon/internal/loader"
	"github.com/reeflective/argon/internal/parser"
	"github.com/reeflective/argon/internal/result"
	"github.com/reeflective/argon/internal/scheme"
)

// === Primary Entry Points ===

// Node is the declaration of a grammar node.
type Node = grammar.Node

// NewNode declares a node named name. Its long flag is the name with the
// long prefix ("--" by default).
func NewNode(name string, opts ...NodeOption) (*Node, error) {
	return grammar.New(name, opts...)
}

// NewProgram declares a node standing for a program name: its only flag is
// the name, without prefix, and it takes no value.
func NewProgram(name string, opts ...NodeOption) (*Node, error) {
	return grammar.NewProgram(name, opts...)
}

// Scheme is a compiled grammar. It is immutable, and can be used by
// several parsers at once.
type Scheme struct {
	*scheme.Scheme
}

// Entry is a node of a scheme, with the scheme-wide options applied.
type Entry = scheme.Entry

// Context is a level of the context hierarchy of a scheme.
type Context = scheme.Context

// Compile checks the nodes and builds their scheme. Member nodes given as
// values are compiled along with their parents.
func Compile(nodes []*Node, opts ...SchemeOption) (*Scheme, error) {
	s, err := scheme.Compile(nodes, opts...)
	if err != nil {
		return nil, err
	}

	return &Scheme{Scheme: s}, nil
}

// Load reads a YAML grammar file and compiles it.
func Load(path string) (*Scheme, error) {
	doc, err := loader.Load(path)
	if err != nil {
		return nil, err
	}

	s, err := doc.Compile()
	if err != nil {
		return nil, err
	}

	return &Scheme{Scheme: s}, nil
}

// Decode reads a YAML grammar and compiles it.
func Decode(r io.Reader) (*Scheme, error) {
	doc, err := loader.Decode(r)
	if err != nil {
		return nil, err
	}

	s, err := doc.Compile()
	if err != nil {
		return nil, err
	}

	return &Scheme{Scheme: s}, nil
}

// Parse matches all tokens against the scheme, and returns the top-level
// nodes used with their members.
//
// With WithDiagnostics, usage errors are written as one-line messages
// and Parse returns a nil tree and a nil error. A valid empty input
// yields an empty, non-nil tree.
func (s *Scheme) Parse(tokens []string, opts ...Option) (Tree, error) {
	return parser.Parse(s.Scheme, tokens, opts...)
}

// Expect returns the flags that would be accepted after the tokens, which
// may end with nodes still waiting for values or members.
func (s *Scheme) Expect(tokens []string, opts ...Option) ([]string, error) {
	return parser.Expect(s.Scheme, tokens, opts...)
}

// === Results ===

// Tree is the list of top-level nodes found by a parse.
type Tree = result.Tree

// ResultNode is a node found by a parse, with its value and the members
// used in its context.
type ResultNode = result.Node

// Branch is a node visited by a traversal of a tree, with its ancestors.
type Branch = result.Branch

// === Completions ===

// Completions returns a carapace action completing the flags accepted
// after the tokens.
func (s *Scheme) Completions(tokens []string) carapace.Action {
	return complete.ActionFlags(s.Scheme, tokens)
}

// BindCompletions completes the positional words of cmd with the scheme,
// or only the words after a double dash if dash is true.
func (s *Scheme) BindCompletions(cmd *cobra.Command, dash bool) *carapace.Carapace {
	return complete.Bind(cmd, func(carapace.Context) (*scheme.Scheme, error) {
		return s.Scheme, nil
	}, dash)
}

// === Help Text ===

// Block is a piece of help text attached to a node.
type Block = grammar.Block

// Section groups help text blocks.
type Section = grammar.Section

// Header is a title line.
type Header = grammar.Header

// Paragraph is a block of wrapped text.
type Paragraph = grammar.Paragraph

// Span is a block of text without trailing blank line.
type Span = grammar.Span

// FlagsLine stands for the flags of the node owning the section.
type FlagsLine = grammar.FlagsLine

// Ref stands for the description of another node.
type Ref = grammar.Ref

// NewSection returns a section made of the given blocks.
func NewSection(blocks ...Block) *Section {
	return grammar.NewSection(blocks...)
}
