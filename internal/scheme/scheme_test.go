package scheme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reeflective/argon/internal/errors"
	"github.com/reeflective/argon/internal/grammar"
)

func mustNode(t *testing.T, name string, opts ...grammar.OptFunc) *grammar.Node {
	t.Helper()

	node, err := grammar.New(name, opts...)
	require.NoError(t, err)

	return node
}

//
// Tests -----------------------------------------------------------------------------------
//

func TestCompile(t *testing.T) {
	t.Parallel()

	title := mustNode(t, "title", grammar.Short("t"))
	label := mustNode(t, "label", grammar.Members("title"))
	issue := mustNode(t, "issue", grammar.Members("title", label))
	verbose := mustNode(t, "verbose", grammar.Short("v"), grammar.WithValueShape(grammar.Switch))

	scheme, err := Compile([]*grammar.Node{title, issue, verbose})
	require.NoError(t, err)

	assert.Equal(t, []string{"issue", "verbose"}, scheme.Roots())
	assert.Equal(t, []string{"--issue", "--label", "--title", "--verbose", "-t", "-v"}, scheme.Flags())
	assert.ElementsMatch(t, []string{"issue", "label"}, scheme.Parents("title"))
	assert.Equal(t, []string{"title", "label"}, scheme.Members("issue"))

	entry, found := scheme.Lookup("-t")
	require.True(t, found)
	assert.Equal(t, "title", entry.Name())

	_, found = scheme.Lookup("--nope")
	assert.False(t, found)

	top := scheme.Hierarchy()
	assert.Equal(t, []string{"issue", "verbose"}, top.Members())

	issueCtx, found := top.Member("issue")
	require.True(t, found)
	assert.Equal(t, []string{"label", "title"}, issueCtx.Members())

	labelCtx, found := issueCtx.Member("label")
	require.True(t, found)
	assert.True(t, labelCtx.Has("title"))
	assert.False(t, labelCtx.Has("issue"))

	assert.Equal(t, []string{
		"issue:",
		"... label:",
		"... ... title",
		"... title",
		"verbose",
	}, scheme.HierarchyLines())
}

func TestCompileHierarchyMirrorsMembership(t *testing.T) {
	t.Parallel()

	a := mustNode(t, "a", grammar.Members("b", "c"))
	b := mustNode(t, "b", grammar.Members("d"))
	c := mustNode(t, "c", grammar.Members("d"))
	d := mustNode(t, "d")

	scheme, err := Compile([]*grammar.Node{d, c, b, a})
	require.NoError(t, err)

	scheme.Hierarchy().Walk(func(path []string, ctx *Context) bool {
		name := path[len(path)-1]
		assert.ElementsMatch(t, scheme.Members(name), ctx.Members(), "members of %v", path)

		return true
	})

	assert.Equal(t, []string{"a"}, scheme.Roots())
}

func TestCompileErrors(t *testing.T) {
	t.Parallel()

	tt := []struct {
		name   string
		nodes  func(t *testing.T) []*grammar.Node
		expErr error
	}{
		{
			name: "Duplicate name",
			nodes: func(t *testing.T) []*grammar.Node {
				return []*grammar.Node{mustNode(t, "value"), mustNode(t, "value")}
			},
			expErr: errors.ErrLongFlagIsNotUnique,
		},
		{
			name: "Duplicate nested name",
			nodes: func(t *testing.T) []*grammar.Node {
				return []*grammar.Node{
					mustNode(t, "value"),
					mustNode(t, "parent", grammar.Members(mustNode(t, "value"))),
				}
			},
			expErr: errors.ErrLongFlagIsNotUnique,
		},
		{
			name: "Duplicate short flag",
			nodes: func(t *testing.T) []*grammar.Node {
				return []*grammar.Node{
					mustNode(t, "value", grammar.Short("v")),
					mustNode(t, "verbose", grammar.Short("v")),
				}
			},
			expErr: errors.ErrShortFlagIsNotUnique,
		},
		{
			name: "Short flag clashing with long flag",
			nodes: func(t *testing.T) []*grammar.Node {
				return []*grammar.Node{
					mustNode(t, "value", grammar.ShortPrefix("--"), grammar.Short("verbose")),
					mustNode(t, "verbose"),
				}
			},
			expErr: errors.ErrShortFlagIsNotUnique,
		},
		{
			name: "Unknown member",
			nodes: func(t *testing.T) []*grammar.Node {
				return []*grammar.Node{mustNode(t, "parent", grammar.Members("child"))}
			},
			expErr: errors.ErrInvalidMemberReference,
		},
		{
			name: "Invalid member type",
			nodes: func(t *testing.T) []*grammar.Node {
				return []*grammar.Node{mustNode(t, "parent", grammar.Members(42))}
			},
			expErr: errors.ErrInvalidPatternMember,
		},
		{
			name: "Nil member node",
			nodes: func(t *testing.T) []*grammar.Node {
				var nested *grammar.Node

				return []*grammar.Node{mustNode(t, "parent", grammar.Members(nested))}
			},
			expErr: errors.ErrInvalidPatternMember,
		},
		{
			name: "Self reference",
			nodes: func(t *testing.T) []*grammar.Node {
				return []*grammar.Node{mustNode(t, "loop", grammar.Members("loop"))}
			},
			expErr: errors.ErrCircularReferences,
		},
		{
			name: "Cycle",
			nodes: func(t *testing.T) []*grammar.Node {
				return []*grammar.Node{
					mustNode(t, "a", grammar.Members("b")),
					mustNode(t, "b", grammar.Members("c")),
					mustNode(t, "c", grammar.Members("a")),
				}
			},
			expErr: errors.ErrCircularReferences,
		},
		{
			name: "Nil node",
			nodes: func(*testing.T) []*grammar.Node {
				return []*grammar.Node{nil}
			},
			expErr: errors.ErrInvalidConfig,
		},
	}

	for _, test := range tt {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			scheme, err := Compile(test.nodes(t))
			require.ErrorIs(t, err, test.expErr)
			require.Nil(t, scheme)
		})
	}
}

func TestCompileCyclePath(t *testing.T) {
	t.Parallel()

	_, err := Compile([]*grammar.Node{
		mustNode(t, "root", grammar.Members("a")),
		mustNode(t, "a", grammar.Members("b")),
		mustNode(t, "b", grammar.Members("a")),
	})

	gerr, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b", "a"}, gerr.Cycle)
}

func TestCompileOverrides(t *testing.T) {
	t.Parallel()

	node := mustNode(t, "value", grammar.Delimiter("="), grammar.Immediate(true))

	scheme, err := Compile([]*grammar.Node{node}, Delimiter(":"), Groupable(true))
	require.NoError(t, err)

	entry, found := scheme.Entry("value")
	require.True(t, found)
	assert.Equal(t, ":", entry.Delimiter())
	assert.True(t, entry.Immediate())
	assert.True(t, entry.Groupable())

	// The declared node is left untouched.
	assert.Equal(t, "=", node.Delimiter())
	assert.False(t, node.Groupable())
}

func TestGraphSort(t *testing.T) {
	t.Parallel()

	g := newGraph()
	g.addEdge("a", "b")
	g.addEdge("b", "c")
	g.addEdge("a", "c")
	g.addVertex("d")

	order, cycle := g.sort()
	require.Nil(t, cycle)
	assert.Less(t, indexOf(order, "a"), indexOf(order, "b"))
	assert.Less(t, indexOf(order, "b"), indexOf(order, "c"))
	assert.Len(t, order, 4)
}

func indexOf(list []string, v string) int {
	for i, item := range list {
		if item == v {
			return i
		}
	}

	return -1
}
