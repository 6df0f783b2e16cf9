package scheme

import (
	"slices"
	"strings"
)

// Context is a node of the context hierarchy: the set of members valid
// once the node named Name is open. The top-level context has no name,
// and the grammar root nodes as members. Contexts are immutable.
type Context struct {
	name    string
	members map[string]*Context
	order   []string
}

// Name returns the name of the node opening the context.
func (c *Context) Name() string { return c.name }

// Has reports whether the named node is a direct member of the context.
func (c *Context) Has(name string) bool {
	_, ok := c.members[name]

	return ok
}

// Member returns the context opened by the named member.
func (c *Context) Member(name string) (*Context, bool) {
	ctx, ok := c.members[name]

	return ctx, ok
}

// Members returns the names of the direct members, sorted.
func (c *Context) Members() []string {
	return slices.Clone(c.order)
}

// Len returns the number of direct members.
func (c *Context) Len() int { return len(c.order) }

// Lines returns the hierarchy below the context, one member per line,
// sorted, indented with "... " per level. Contexts end with ':'.
func (c *Context) Lines() []string {
	var lines []string

	var walk func(ctx *Context, depth int)
	walk = func(ctx *Context, depth int) {
		for _, name := range ctx.order {
			member := ctx.members[name]
			line := strings.Repeat("... ", depth) + name

			if member.Len() > 0 {
				line += ":"
			}

			lines = append(lines, line)
			walk(member, depth+1)
		}
	}

	walk(c, 0)

	return lines
}

// Walk calls fn for every context below c, depth first, with the names
// of the contexts leading to it. Returning false skips the members.
func (c *Context) Walk(fn func(path []string, ctx *Context) bool) {
	var walk func(ctx *Context, path []string)
	walk = func(ctx *Context, path []string) {
		for _, name := range ctx.order {
			member := ctx.members[name]
			memberPath := append(slices.Clone(path), name)

			if fn(memberPath, member) {
				walk(member, memberPath)
			}
		}
	}

	walk(c, nil)
}

// materialize builds the context of every vertex reachable from the
// given names. The graph must be acyclic. A node member of several
// contexts shares the same immutable sub-hierarchy.
func materialize(g *graph, name string, names []string, built map[string]*Context) *Context {
	ctx := &Context{name: name, members: make(map[string]*Context, len(names))}

	for _, member := range names {
		sub, done := built[member]
		if !done {
			sub = materialize(g, member, g.adjacent(member), built)
			built[member] = sub
		}

		ctx.members[member] = sub
		ctx.order = append(ctx.order, member)
	}

	slices.Sort(ctx.order)

	return ctx
}
