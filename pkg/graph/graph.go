package graph

import (
	"fmt"
	"iter"
	"sync"
)

// Graph is an in-memory property graph with forward adjacency.
//
// Vertices are addressed both by their 64-bit id and by a dense index in
// [0, VertexCount()) assigned in load order. Kernels keep their per-vertex state
// in slices indexed by the dense index. A Graph is immutable once built; only the
// reversed and undirected views are derived lazily and cached.
type Graph struct {
	directed    bool
	vertexTypes []PropertyType
	edgeTypes   []PropertyType

	ids         []int64       // dense index -> vertex id
	index       map[int64]int // vertex id -> dense index
	vertexProps [][]Value

	adj       [][]int     // dense index -> dense indices of out-neighbors, in arrival order
	edgeProps [][][]Value // aligned with adj
	edgeCount int

	reversed   derivedView
	undirected derivedView
}

// derivedView caches a graph computed from its owner. The derived graph holds no
// reference back to the graph it was computed from.
type derivedView struct {
	once sync.Once
	g    *Graph
}

func (v *derivedView) get(derive func() *Graph) *Graph {
	v.once.Do(func() {
		v.g = derive()
	})
	return v.g
}

// Neighbor is one outgoing edge as seen from its source vertex
type Neighbor struct {
	ID         int64
	Properties []Value
}

// Directed reports whether the graph was loaded as a directed graph
func (g *Graph) Directed() bool { return g.directed }

// VertexCount returns the number of vertices
func (g *Graph) VertexCount() int { return len(g.ids) }

// EdgeCount returns the number of edges. For a loaded undirected graph this is the
// number of edge records, not the number of mirrored adjacency entries.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// VertexPropertyTypes returns the declared vertex property types
func (g *Graph) VertexPropertyTypes() []PropertyType { return g.vertexTypes }

// EdgePropertyTypes returns the declared edge property types
func (g *Graph) EdgePropertyTypes() []PropertyType { return g.edgeTypes }

// Vertices returns a restartable sequence of all vertex ids in load order
func (g *Graph) Vertices() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for _, id := range g.ids {
			if !yield(id) {
				return
			}
		}
	}
}

// HasVertex reports whether id is part of the graph
func (g *Graph) HasVertex(id int64) bool {
	_, ok := g.index[id]
	return ok
}

// Index returns the dense index of a vertex id
func (g *Graph) Index(id int64) (int, bool) {
	i, ok := g.index[id]
	return i, ok
}

// ID returns the vertex id at dense index i
func (g *Graph) ID(i int) int64 { return g.ids[i] }

// Adjacent returns the dense indices of the out-neighbors of the vertex at dense
// index i, in adjacency order. The slice is shared and must not be modified.
func (g *Graph) Adjacent(i int) []int { return g.adj[i] }

// OutDegree returns the number of outgoing edges, duplicates included
func (g *Graph) OutDegree(i int) int { return len(g.adj[i]) }

// EdgeValues returns the properties of the k-th outgoing edge of the vertex at dense index i
func (g *Graph) EdgeValues(i, k int) []Value { return g.edgeProps[i][k] }

func (g *Graph) lookup(id int64) (int, error) {
	i, ok := g.index[id]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownVertex, id)
	}
	return i, nil
}

// OutNeighbors returns the outgoing edges of v in adjacency order
func (g *Graph) OutNeighbors(v int64) ([]Neighbor, error) {
	i, err := g.lookup(v)
	if err != nil {
		return nil, err
	}

	neighbors := make([]Neighbor, len(g.adj[i]))
	for k, j := range g.adj[i] {
		neighbors[k] = Neighbor{ID: g.ids[j], Properties: g.edgeProps[i][k]}
	}
	return neighbors, nil
}

// VertexProperties returns the property values of v
func (g *Graph) VertexProperties(v int64) ([]Value, error) {
	i, err := g.lookup(v)
	if err != nil {
		return nil, err
	}
	return g.vertexProps[i], nil
}

// EdgeProperty returns property p of the neighborIndex-th outgoing edge of v
func (g *Graph) EdgeProperty(v int64, neighborIndex, p int) (Value, error) {
	i, err := g.lookup(v)
	if err != nil {
		return Value{}, err
	}
	if neighborIndex < 0 || neighborIndex >= len(g.adj[i]) {
		return Value{}, fmt.Errorf("%w: vertex %d has no edge %d", ErrOutOfRange, v, neighborIndex)
	}
	props := g.edgeProps[i][neighborIndex]
	if p < 0 || p >= len(props) {
		return Value{}, fmt.Errorf("%w: edge property %d", ErrOutOfRange, p)
	}
	return props[p], nil
}

// ToReversed returns the graph with every edge direction swapped. The view is
// computed on first use and cached. An undirected graph is its own reverse.
func (g *Graph) ToReversed() *Graph {
	if !g.directed {
		return g
	}
	return g.reversed.get(g.deriveReversed)
}

// ToUndirected returns a view holding every edge in both directions. The view is
// computed on first use and cached. An undirected graph is already symmetric and
// is returned as is.
func (g *Graph) ToUndirected() *Graph {
	if !g.directed {
		return g
	}
	return g.undirected.get(g.deriveUndirected)
}

// derive returns an empty graph sharing g's vertex set
func (g *Graph) derive(directed bool) *Graph {
	n := len(g.ids)
	return &Graph{
		directed:    directed,
		vertexTypes: g.vertexTypes,
		edgeTypes:   g.edgeTypes,
		ids:         g.ids,
		index:       g.index,
		vertexProps: g.vertexProps,
		adj:         make([][]int, n),
		edgeProps:   make([][][]Value, n),
	}
}

func (g *Graph) deriveReversed() *Graph {
	r := g.derive(true)
	indegree := g.inDegrees()
	for i := range r.adj {
		r.adj[i] = make([]int, 0, indegree[i])
		r.edgeProps[i] = make([][]Value, 0, indegree[i])
	}
	for u, targets := range g.adj {
		for k, v := range targets {
			r.adj[v] = append(r.adj[v], u)
			r.edgeProps[v] = append(r.edgeProps[v], g.edgeProps[u][k])
		}
	}
	r.edgeCount = g.edgeCount
	return r
}

func (g *Graph) deriveUndirected() *Graph {
	u := g.derive(false)
	indegree := g.inDegrees()
	for i := range u.adj {
		size := len(g.adj[i]) + indegree[i]
		u.adj[i] = append(make([]int, 0, size), g.adj[i]...)
		u.edgeProps[i] = append(make([][]Value, 0, size), g.edgeProps[i]...)
	}
	for src, targets := range g.adj {
		for k, dst := range targets {
			u.adj[dst] = append(u.adj[dst], src)
			u.edgeProps[dst] = append(u.edgeProps[dst], g.edgeProps[src][k])
		}
	}
	u.edgeCount = g.edgeCount
	return u
}

func (g *Graph) inDegrees() []int {
	indegree := make([]int, len(g.ids))
	for _, targets := range g.adj {
		for _, v := range targets {
			indegree[v]++
		}
	}
	return indegree
}
