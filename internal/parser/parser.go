// Package parser matches token streams against a compiled scheme.
//
// Parsing walks the context hierarchy of the scheme: each flag token opens
// the node owning it, which must be a member of one of the open contexts.
// Nodes that are not ancestors of the new one are closed on the way, and
// their values are checked. Other tokens are values of the last open node,
// unless they can be split into a flag and its value.
package parser

import (
	"fmt"
	"slices"
	"strings"

	"github.com/reeflective/argon/internal/errors"
	"github.com/reeflective/argon/internal/grammar"
	"github.com/reeflective/argon/internal/result"
	"github.com/reeflective/argon/internal/scheme"
)

// Parse matches all tokens against the scheme and returns the top-level
// nodes used, an empty tree for an empty input. Usage errors are returned
// as *errors.Error, unless the options ask for diagnostics: the error
// message is then written, and both the tree and the error are nil.
func Parse(s *scheme.Scheme, tokens []string, optFuncs ...OptFunc) (result.Tree, error) {
	opts := DefOpts().Apply(optFuncs...)
	log := opts.Logger

	log.Debug("raw command", "tokens", strings.Join(tokens, " "))
	log.Debug("context hierarchy", "lines", s.HierarchyLines())
	log.Debug("all flags", "flags", strings.Join(s.Flags(), ", "))

	m := newMachine(s, tokens, log)

	tree, err := m.parse()
	if err == nil {
		return tree, nil
	}

	log.Debug("parse failed", "error", err)

	gerr, ok := errors.As(err)
	if !ok || opts.Diagnostics == nil || !gerr.Kind.Runtime() {
		return nil, err
	}

	if _, werr := fmt.Fprintln(opts.Diagnostics, gerr.Diagnostic()); werr != nil {
		return nil, werr
	}

	return nil, nil
}

func (m *machine) parse() (result.Tree, error) {
	if err := m.run(); err != nil {
		return nil, err
	}

	return m.finish()
}

// Expect replays the tokens against the scheme, without closing the nodes
// left open, and returns the flags that would be accepted next. It returns
// no flags once a double-dash marker has been seen, and the usage error
// found while replaying, if any.
func Expect(s *scheme.Scheme, tokens []string, optFuncs ...OptFunc) ([]string, error) {
	opts := DefOpts().Apply(optFuncs...)

	m := newMachine(s, tokens, opts.Logger)
	if err := m.run(); err != nil {
		return nil, err
	}

	if m.slurping {
		return nil, nil
	}

	var flags []string

	for i := len(m.frames) - 1; i >= 0; i-- {
		current := m.frames[i]
		flags = append(flags, m.candidates(current)...)

		if !m.closable(current) {
			break
		}
	}

	slices.Sort(flags)

	return slices.Compact(flags), nil
}

// candidates returns the flags of the members that can still be opened
// in the frame.
func (m *machine) candidates(f *frame) []string {
	var flags []string

	for _, name := range f.ctx.Members() {
		entry, found := m.scheme.Entry(name)
		if !found {
			continue
		}

		if f.restricted && f.oneName != "" && f.oneName != name {
			continue
		}

		switch entry.FlagCardinality() {
		case grammar.Unique:
			if _, used := m.uniques[name]; used {
				continue
			}
		case grammar.Primal:
			if _, used := f.primals[name]; used {
				continue
			}
		}

		flags = append(flags, entry.Flags()...)
	}

	return flags
}

// closable reports whether the frame could be closed now.
func (m *machine) closable(f *frame) bool {
	if f.acc == nil || f.needMember {
		return false
	}

	_, err := f.acc.Close("", true)

	return err == nil
}
