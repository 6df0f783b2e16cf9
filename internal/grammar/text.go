package grammar

import "strings"

// Block is a piece of help text attached to a node. Blocks are plain
// data: rendering them (wrapping, indentation, colors) is left to the
// help writer consuming them.
type Block interface {
	block()
}

// Section groups blocks. A section may also reference other nodes by
// name, through Ref blocks, so that help pages can be assembled from
// the descriptions of several nodes.
type Section struct {
	Blocks []Block
	Indent int
}

// Header is a title line, usually rendered strong.
type Header struct {
	Text string
}

// Paragraph is an indented block of wrapped text.
type Paragraph struct {
	Text string
}

// Span is an indented block of text, without trailing blank line.
type Span struct {
	Text string
}

// FlagsLine stands for the flags of the node owning the section,
// followed by the value placeholder.
type FlagsLine struct {
	Placeholder string
	NewLine     bool
}

// Ref stands for the description section of another node.
type Ref struct {
	Name string
}

func (*Section) block()   {}
func (*Header) block()    {}
func (*Paragraph) block() {}
func (*Span) block()      {}
func (*FlagsLine) block() {}
func (*Ref) block()       {}

// NewSection returns a section made of the given blocks.
func NewSection(blocks ...Block) *Section {
	return &Section{Blocks: blocks}
}

// Summary returns the text of the first paragraph found in the section,
// depth first, or an empty string.
func (s *Section) Summary() string {
	if s == nil {
		return ""
	}

	for _, b := range s.Blocks {
		switch block := b.(type) {
		case *Paragraph:
			return strings.TrimSpace(block.Text)
		case *Section:
			if text := block.Summary(); text != "" {
				return text
			}
		}
	}

	return ""
}
