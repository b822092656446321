package module

import (
	"errors"
	"sort"
	"sync"

	graphlib "github.com/dominikbraun/graph"
)

// Graph is the module graph: modules as vertices, importer-to-dependency
// edges. Safe for concurrent use.
type Graph struct {
	mu sync.RWMutex
	g  graphlib.Graph[string, *Module]
}

// NewGraph returns an empty module graph
func NewGraph() *Graph {
	return &Graph{
		g: graphlib.New(func(m *Module) string { return m.ID.String() }, graphlib.Directed()),
	}
}

// AddModule inserts a module. Inserting the same id twice is a no-op.
func (g *Graph) AddModule(m *Module) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	err := g.g.AddVertex(m)
	if errors.Is(err, graphlib.ErrVertexAlreadyExists) {
		return nil
	}
	return err
}

// AddEdge records that from depends on to. Duplicate edges are a no-op;
// both modules must already be present.
func (g *Graph) AddEdge(from, to ID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	err := g.g.AddEdge(from.String(), to.String())
	if errors.Is(err, graphlib.ErrEdgeAlreadyExists) {
		return nil
	}
	return err
}

// Module returns the module with the given id
func (g *Graph) Module(id ID) (*Module, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	m, err := g.g.Vertex(id.String())
	if err != nil {
		return nil, false
	}
	return m, true
}

// Len returns the number of modules in the graph
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, err := g.g.Order()
	if err != nil {
		return 0
	}
	return n
}

// Modules returns every module ordered lexicographically by id
func (g *Graph) Modules() []*Module {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj, err := g.g.AdjacencyMap()
	if err != nil {
		return nil
	}
	keys := make([]string, 0, len(adj))
	for k := range adj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]*Module, 0, len(keys))
	for _, k := range keys {
		if m, err := g.g.Vertex(k); err == nil {
			out = append(out, m)
		}
	}
	return out
}

// PotModules returns the members of a pot in deterministic graph order:
// dependency-first where the member edges form a DAG, with lexicographic
// tie-breaking, falling back to plain lexicographic order when the members
// contain a cycle. Members missing from the graph are an error.
func (g *Graph) PotModules(ids []ID) ([]*Module, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	members := make(map[string]*Module, len(ids))
	for _, id := range ids {
		m, err := g.g.Vertex(id.String())
		if err != nil {
			return nil, err
		}
		members[id.String()] = m
	}

	order, err := g.memberOrder(members)
	if err != nil {
		// Cyclic member set; fall back to lexicographic order.
		order = make([]string, 0, len(members))
		for k := range members {
			order = append(order, k)
		}
		sort.Strings(order)
	}

	out := make([]*Module, 0, len(order))
	for _, k := range order {
		out = append(out, members[k])
	}
	return out, nil
}

// memberOrder topologically sorts the member-induced subgraph with edges
// inverted, so dependencies sort before their importers
func (g *Graph) memberOrder(members map[string]*Module) ([]string, error) {
	adj, err := g.g.AdjacencyMap()
	if err != nil {
		return nil, err
	}

	sub := graphlib.New(graphlib.StringHash, graphlib.Directed())
	for k := range members {
		if err := sub.AddVertex(k); err != nil {
			return nil, err
		}
	}
	for from, edges := range adj {
		if _, ok := members[from]; !ok {
			continue
		}
		for to := range edges {
			if _, ok := members[to]; !ok {
				continue
			}
			err := sub.AddEdge(to, from)
			if err != nil && !errors.Is(err, graphlib.ErrEdgeAlreadyExists) {
				return nil, err
			}
		}
	}

	return graphlib.StableTopologicalSort(sub, func(a, b string) bool { return a < b })
}
