package parser

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/reeflective/argon/internal/errors"
	"github.com/reeflective/argon/internal/grammar"
	"github.com/reeflective/argon/internal/result"
	"github.com/reeflective/argon/internal/scheme"
	"github.com/reeflective/argon/internal/values"
)

// frame is an open node: the context it opened, its value so far and the
// members already closed in it. The bottom frame stands for the top level
// and has neither entry nor accumulator.
type frame struct {
	entry    *scheme.Entry
	ctx      *scheme.Context
	acc      values.Accumulator
	children []*result.Node

	// Set when the node accepts a single distinct member.
	restricted bool
	oneName    string
	oneFlag    string

	primals    map[string]struct{}
	needMember bool
}

// flag returns the token that opened the node, or nothing at top level.
func (f *frame) flag() string {
	if f.acc == nil {
		return ""
	}

	return f.acc.Flag()
}

// outcome of one step of the context search.
type outcome int

const (
	matched outcome = iota
	closedOneLevel
	exhausted
)

// machine walks the context hierarchy of a scheme along the input tokens.
// A machine is used for a single parse.
type machine struct {
	scheme   *scheme.Scheme
	log      *slog.Logger
	input    *stream
	frames   []*frame
	uniques  map[string]struct{}
	slurping bool
}

func newMachine(s *scheme.Scheme, tokens []string, log *slog.Logger) *machine {
	root := &frame{
		ctx:      s.Hierarchy(),
		children: []*result.Node{},
		primals:  map[string]struct{}{},
	}

	return &machine{
		scheme:  s,
		log:     log,
		input:   newStream(slices.Clone(tokens)),
		frames:  []*frame{root},
		uniques: map[string]struct{}{},
	}
}

// run processes all input tokens, leaving the frames open.
func (m *machine) run() error {
	for {
		token, ok := m.input.next()
		if !ok {
			return nil
		}

		if err := m.step(token); err != nil {
			return err
		}
	}
}

// finish closes all open frames and returns the top-level nodes.
func (m *machine) finish() (result.Tree, error) {
	for {
		res, err := m.seek(nil, "", nil)
		if err != nil {
			return nil, err
		}

		if res == exhausted {
			return m.frames[0].children, nil
		}
	}
}

func (m *machine) step(token string) error {
	entry, found := m.scheme.Lookup(token)
	if !found {
		return m.consume(token)
	}

	if entry.FlagCardinality() == grammar.Unique {
		if _, used := m.uniques[entry.Name()]; used {
			return errors.DoubleUniqueArgument(token, m.path())
		}

		m.uniques[entry.Name()] = struct{}{}
	}

	path := m.path()

	for {
		res, err := m.seek(entry, token, path)
		if err != nil {
			return err
		}

		if res == matched {
			return m.open(entry, token)
		}
	}
}

// seek checks whether the entry is a member of the current context, and
// closes the current frame otherwise. A nil entry closes everything.
func (m *machine) seek(entry *scheme.Entry, token string, path []string) (outcome, error) {
	if entry != nil && m.top().ctx.Has(entry.Name()) {
		return matched, nil
	}

	if len(m.frames) == 1 {
		if entry == nil {
			return exhausted, nil
		}

		return exhausted, errors.ArgumentOutOfContext(token, path, m.parentFlags(entry.Name()))
	}

	return closedOneLevel, m.close(token, entry == nil)
}

// open pushes a frame for the entry, once the constraints of the current
// context are checked.
func (m *machine) open(entry *scheme.Entry, token string) error {
	parent := m.top()
	name := entry.Name()

	if parent.restricted {
		if parent.oneName != "" && parent.oneName != name {
			return errors.TooManyMembersUsed(parent.flag(), parent.oneFlag, token, m.path())
		}

		if parent.oneName == "" {
			parent.oneName, parent.oneFlag = name, token
		}
	}

	if entry.FlagCardinality() == grammar.Primal {
		if _, used := parent.primals[name]; used {
			return errors.DoublePrimalArgument(parent.flag(), token, m.path())
		}

		parent.primals[name] = struct{}{}
	}

	parent.needMember = false

	ctx, _ := parent.ctx.Member(name)

	m.frames = append(m.frames, &frame{
		entry:      entry,
		ctx:        ctx,
		acc:        entry.NewAccumulator(token),
		restricted: entry.MemberCardinality() == grammar.One,
		primals:    map[string]struct{}{},
		needMember: entry.MemberNecessity() == grammar.Required && ctx.Len() > 0,
	})

	m.log.Debug("open", "flag", token, "node", name, "depth", len(m.frames)-1)

	return nil
}

// close pops the current frame and appends its node to the parent.
func (m *machine) close(next string, eol bool) error {
	top := m.top()

	if top.needMember {
		return errors.MissingMember(top.flag(), next, eol, m.memberFlags(top), m.path())
	}

	value, err := top.acc.Close(next, eol)
	if err != nil {
		if gerr, ok := errors.As(err); ok {
			gerr.Path = m.path()
		}

		return err
	}

	m.frames = m.frames[:len(m.frames)-1]

	parent := m.top()
	parent.children = append(parent.children, &result.Node{
		Name:     top.entry.Name(),
		Flag:     top.flag(),
		Value:    value,
		Children: top.children,
	})

	m.log.Debug("close", "flag", top.flag(), "value", value, "depth", len(m.frames))

	return nil
}

// consume handles a token that is not a flag: it is either split into
// a flag and a value, or given as a value to the open node.
func (m *machine) consume(token string) error {
	if flag, value, ok := m.split(token); ok {
		m.log.Debug("split", "token", token, "flag", flag, "value", value)
		m.input.push(flag, value)

		return nil
	}

	top := m.top()
	if top.acc == nil {
		return errors.InvalidArgument(token, m.path(), suggest(token, m.scheme.Flags()))
	}

	if marker := top.entry.DoubleDash(); marker != "" && token == marker {
		m.slurping = true
		rest := m.input.drain()

		m.log.Debug("double dash", "flag", top.flag(), "tokens", len(rest))

		for _, raw := range rest {
			if err := m.add(top, raw); err != nil {
				return err
			}
		}

		return nil
	}

	return m.add(top, token)
}

func (m *machine) add(top *frame, token string) error {
	if err := top.acc.Add(token); err != nil {
		if gerr, ok := errors.As(err); ok {
			gerr.Path = m.path()
		}

		return err
	}

	m.log.Debug("value", "flag", top.flag(), "token", token)

	return nil
}

// split tries, in order: a flag and its value joined by the delimiter
// of the flag node, grouped short flags, and a value glued to its flag.
func (m *machine) split(token string) (flag, value string, ok bool) {
	entries := m.scheme.Entries()

	for _, entry := range entries {
		delim := entry.Delimiter()
		if delim == "" {
			continue
		}

		left, right, found := strings.Cut(token, delim)
		if found && left != "" && right != "" && slices.Contains(entry.Flags(), left) {
			return left, right, true
		}
	}

	for _, entry := range entries {
		if !entry.Groupable() {
			continue
		}

		for _, short := range entry.ShortFlags() {
			rest, found := strings.CutPrefix(token, short)
			if !found || rest == "" {
				continue
			}

			next := entry.ShortPrefix() + rest
			if _, known := m.scheme.Lookup(next[:len(entry.ShortPrefix())+1]); known {
				return short, next, true
			}
		}
	}

	for _, entry := range entries {
		if !entry.Immediate() {
			continue
		}

		for _, candidate := range entry.Flags() {
			if len(candidate) > len(flag) && len(token) > len(candidate) && strings.HasPrefix(token, candidate) {
				flag, value, ok = candidate, token[len(candidate):], true
			}
		}
	}

	return flag, value, ok
}

func (m *machine) top() *frame {
	return m.frames[len(m.frames)-1]
}

// path returns the flags of the open nodes, from the top level.
func (m *machine) path() []string {
	path := make([]string, 0, len(m.frames)-1)
	for _, f := range m.frames[1:] {
		path = append(path, f.flag())
	}

	return path
}

func (m *machine) memberFlags(f *frame) []string {
	var flags []string

	for _, name := range f.ctx.Members() {
		if entry, found := m.scheme.Entry(name); found {
			flags = append(flags, entry.LongFlag())
		}
	}

	slices.Sort(flags)

	return flags
}

func (m *machine) parentFlags(name string) []string {
	var flags []string

	for _, parent := range m.scheme.Parents(name) {
		if entry, found := m.scheme.Entry(parent); found {
			flags = append(flags, entry.LongFlag())
		}
	}

	slices.Sort(flags)

	return flags
}
