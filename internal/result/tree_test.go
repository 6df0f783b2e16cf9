package result

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() Tree {
	return Tree{
		{Name: "pmt", Flag: "pmt", Value: true, Children: []*Node{
			{Name: "set", Flag: "set", Value: true, Children: []*Node{
				{Name: "milestone", Flag: "milestone", Value: []string{"v1"}},
				{Name: "label", Flag: "label", Value: "bug"},
			}},
			{Name: "verbose", Flag: "-v", Value: true},
		}},
		{Name: "env", Flag: "--env", Value: map[string]string{"a": "1"}},
	}
}

//
// Tests -----------------------------------------------------------------------------------
//

func TestDepthFirst(t *testing.T) {
	t.Parallel()

	var names, parents []string

	var paths [][]string

	for branch := range sample().DepthFirst() {
		names = append(names, branch.Name)
		parents = append(parents, branch.Parent)
		paths = append(paths, branch.Path)
	}

	assert.Equal(t, []string{"pmt", "set", "milestone", "label", "verbose", "env"}, names)
	assert.Equal(t, []string{"", "pmt", "set", "set", "pmt", ""}, parents)
	assert.Equal(t, []string{"pmt", "set"}, paths[2])
	assert.Empty(t, paths[5])
}

func TestBreadthFirst(t *testing.T) {
	t.Parallel()

	var names, parents []string

	for branch := range sample().BreadthFirst() {
		names = append(names, branch.Name)
		parents = append(parents, branch.Parent)
	}

	assert.Equal(t, []string{"pmt", "env", "set", "verbose", "milestone", "label"}, names)
	assert.Equal(t, []string{"", "", "pmt", "pmt", "set", "set"}, parents)
}

func TestOrdersYieldSamePairs(t *testing.T) {
	t.Parallel()

	tree := sample()

	pairs := map[string]any{}
	for name, value := range tree.Pairs() {
		pairs[name] = value
	}

	depth := map[string]any{}
	for branch := range tree.DepthFirst() {
		depth[branch.Name] = branch.Value
	}

	breadth := map[string]any{}
	for branch := range tree.BreadthFirst() {
		breadth[branch.Name] = branch.Value
	}

	assert.Len(t, pairs, 6)
	assert.Equal(t, pairs, depth)
	assert.Equal(t, pairs, breadth)
	assert.ElementsMatch(t, keys(pairs), keys(breadth))
}

func TestTraversalsStop(t *testing.T) {
	t.Parallel()

	count := 0
	for range sample().BreadthFirst() {
		count++
		if count == 2 {
			break
		}
	}

	assert.Equal(t, 2, count)

	count = 0
	for range sample().Pairs() {
		count++
		if count == 3 {
			break
		}
	}

	assert.Equal(t, 3, count)
}

func TestTraversalsRestart(t *testing.T) {
	t.Parallel()

	seq := sample().DepthFirst()

	first, second := 0, 0
	for range seq {
		first++
	}

	for range seq {
		second++
	}

	assert.Equal(t, first, second)
}

func TestFind(t *testing.T) {
	t.Parallel()

	node, found := sample().Find("label")
	require.True(t, found)
	assert.Equal(t, "bug", node.Value)

	_, found = sample().Find("nothing")
	assert.False(t, found)
}

func keys(m map[string]any) []string {
	var list []string
	for k := range maps.Keys(m) {
		list = append(list, k)
	}

	return list
}
