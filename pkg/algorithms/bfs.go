package algorithms

import (
	"fmt"
	"math"

	"github.com/ritzau/graphalytics-go/pkg/graph"
	"github.com/ritzau/graphalytics-go/pkg/logging"
)

// Unreachable is the BFS distance of vertices the source cannot reach
const Unreachable int64 = math.MaxInt64

// BreadthFirstSearch computes hop distances from a source vertex.
// Edges are followed in the graph's own direction; callers wanting to ignore
// direction pass the undirected view.
type BreadthFirstSearch struct {
	graph  *graph.Graph
	source int64
}

// NewBreadthFirstSearch creates a BFS kernel
func NewBreadthFirstSearch(g *graph.Graph, source int64) *BreadthFirstSearch {
	return &BreadthFirstSearch{
		graph:  g,
		source: source,
	}
}

// Run performs the search. A vertex is marked visited when it is enqueued, so its
// distance is fixed by the first vertex that discovers it.
func (b *BreadthFirstSearch) Run() (IntOutput, error) {
	g := b.graph
	src, ok := g.Index(b.source)
	if !ok {
		return nil, fmt.Errorf("bfs source: %w: %d", graph.ErrUnknownVertex, b.source)
	}

	logging.Debug("starting breadth-first search", "source", b.source, "vertices", g.VertexCount())

	n := g.VertexCount()
	distances := make([]int64, n)
	for i := range distances {
		distances[i] = Unreachable
	}
	distances[src] = 0

	queue := make([]int, 0, n)
	queue = append(queue, src)
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for _, v := range g.Adjacent(u) {
			if distances[v] == Unreachable {
				distances[v] = distances[u] + 1
				queue = append(queue, v)
			}
		}
	}

	logging.Debug("finished breadth-first search", "reached", len(queue))
	return newIntOutput(g, distances), nil
}
