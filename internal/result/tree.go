// Package result holds the output of a parse: a tree of the nodes used,
// in input order, with their values, and the ways to walk it.
package result

import (
	"iter"
	"slices"
)

// Node is one use of a grammar node. Children are the members used while
// its context was open, in input order.
type Node struct {
	// Name of the grammar node.
	Name string `yaml:"name" json:"name"`

	// Flag is the token that opened the node.
	Flag string `yaml:"flag" json:"flag"`

	// Value is bool, string, nil, []string or map[string]string,
	// depending on the value shape of the node.
	Value any `yaml:"value" json:"value"`

	Children []*Node `yaml:"children,omitempty" json:"children,omitempty"`
}

// Tree is the list of top-level nodes of a parse.
type Tree []*Node

// Branch is a node yielded by tree walks, with its position.
type Branch struct {
	// Parent is the name of the enclosing node, empty at top level.
	Parent string

	Name     string
	Value    any
	Children []*Node

	// Path lists the names of the enclosing nodes from the top level,
	// the node itself excluded.
	Path []string
}

// Pairs yields (name, value) of every node, depth first, regardless of
// nesting.
func (t Tree) Pairs() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for branch := range t.DepthFirst() {
			if !yield(branch.Name, branch.Value) {
				return
			}
		}
	}
}

// DepthFirst yields every node, with its parent and path, parents first.
func (t Tree) DepthFirst() iter.Seq[Branch] {
	return func(yield func(Branch) bool) {
		var walk func(nodes []*Node, path []string) bool
		walk = func(nodes []*Node, path []string) bool {
			for _, node := range nodes {
				if !yield(newBranch(node, path)) {
					return false
				}

				if !walk(node.Children, append(path, node.Name)) {
					return false
				}
			}

			return true
		}

		walk(t, nil)
	}
}

// BreadthFirst yields every node, with its parent and path, level by level.
func (t Tree) BreadthFirst() iter.Seq[Branch] {
	type queued struct {
		node *Node
		path []string
	}

	return func(yield func(Branch) bool) {
		queue := make([]queued, 0, len(t))
		for _, node := range t {
			queue = append(queue, queued{node: node})
		}

		for len(queue) > 0 {
			item := queue[0]
			queue = queue[1:]

			if !yield(newBranch(item.node, item.path)) {
				return
			}

			path := append(slices.Clone(item.path), item.node.Name)
			for _, child := range item.node.Children {
				queue = append(queue, queued{node: child, path: path})
			}
		}
	}
}

// Find returns the first node of the given name, depth first.
func (t Tree) Find(name string) (*Node, bool) {
	var found *Node

	var walk func(nodes []*Node) bool
	walk = func(nodes []*Node) bool {
		for _, node := range nodes {
			if node.Name == name {
				found = node

				return true
			}

			if walk(node.Children) {
				return true
			}
		}

		return false
	}

	return found, walk(t)
}

func newBranch(node *Node, path []string) Branch {
	branch := Branch{
		Name:     node.Name,
		Value:    node.Value,
		Children: node.Children,
		Path:     slices.Clone(path),
	}

	if len(path) > 0 {
		branch.Parent = path[len(path)-1]
	}

	return branch
}
