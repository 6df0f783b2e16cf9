package scheme

import "slices"

// graph is a directed graph of node names, keeping insertion
// order of vertices and edges so that compilation is deterministic.
type graph struct {
	vertices []string
	edges    map[string][]string
}

func newGraph() *graph {
	return &graph{edges: map[string][]string{}}
}

func (g *graph) addVertex(v string) {
	if _, exists := g.edges[v]; exists {
		return
	}

	g.vertices = append(g.vertices, v)
	g.edges[v] = nil
}

func (g *graph) addEdge(from, to string) {
	g.addVertex(from)
	g.addVertex(to)

	if !slices.Contains(g.edges[from], to) {
		g.edges[from] = append(g.edges[from], to)
	}
}

func (g *graph) adjacent(v string) []string {
	return g.edges[v]
}

// sort returns the vertices in topological order. If the graph has a
// cycle, it returns the path of the first one found instead, starting
// and ending with the same vertex.
func (g *graph) sort() (order, cycle []string) {
	const (
		unvisited = iota
		visiting
		visited
	)

	state := make(map[string]int, len(g.vertices))
	stack := make([]string, 0, len(g.vertices))
	order = make([]string, 0, len(g.vertices))

	var visit func(v string) bool
	visit = func(v string) bool {
		state[v] = visiting
		stack = append(stack, v)

		for _, next := range g.edges[v] {
			switch state[next] {
			case visiting:
				start := slices.Index(stack, next)
				cycle = append(slices.Clone(stack[start:]), next)

				return false
			case unvisited:
				if !visit(next) {
					return false
				}
			}
		}

		stack = stack[:len(stack)-1]
		state[v] = visited
		order = append(order, v)

		return true
	}

	for _, v := range g.vertices {
		if state[v] == unvisited && !visit(v) {
			return nil, cycle
		}
	}

	slices.Reverse(order)

	return order, nil
}
