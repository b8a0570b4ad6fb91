package algorithms

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/ritzau/graphalytics-go/pkg/graph"
	"github.com/ritzau/graphalytics-go/pkg/logging"
)

// ShortestPaths runs Dijkstra's algorithm from a source vertex. The weight of an
// edge is its first property. Negative weights are not checked.
type ShortestPaths struct {
	graph  *graph.Graph
	source int64
}

// NewShortestPaths creates an SSSP kernel
func NewShortestPaths(g *graph.Graph, source int64) *ShortestPaths {
	return &ShortestPaths{
		graph:  g,
		source: source,
	}
}

// Run computes the distance from the source to every vertex, +Inf if unreachable.
// The queue may hold several entries per vertex; entries for vertices that are
// already finalized are dropped when popped.
func (sp *ShortestPaths) Run() (FloatOutput, error) {
	g := sp.graph
	src, ok := g.Index(sp.source)
	if !ok {
		return nil, fmt.Errorf("sssp source: %w: %d", graph.ErrUnknownVertex, sp.source)
	}
	if len(g.EdgePropertyTypes()) == 0 {
		return nil, ErrMissingWeights
	}

	n := g.VertexCount()
	logging.Debug("starting single-source shortest paths", "source", sp.source, "vertices", n)

	distances := make([]float64, n)
	for i := range distances {
		distances[i] = math.Inf(1)
	}
	distances[src] = 0

	finalized := make([]bool, n)
	pq := make(distanceQueue, 0, n)
	heap.Push(&pq, queueEntry{vertex: src, distance: 0})

	settled := 0
	for pq.Len() > 0 {
		entry := heap.Pop(&pq).(queueEntry)
		u := entry.vertex
		if finalized[u] {
			continue
		}
		finalized[u] = true
		settled++

		for k, v := range g.Adjacent(u) {
			candidate := distances[u] + g.EdgeValues(u, k)[0].Float()
			if candidate < distances[v] {
				distances[v] = candidate
				heap.Push(&pq, queueEntry{vertex: v, distance: candidate})
			}
		}
	}

	logging.Debug("finished single-source shortest paths", "reached", settled)
	return newFloatOutput(g, distances), nil
}

type queueEntry struct {
	vertex   int
	distance float64
}

// distanceQueue is a min-heap of queue entries ordered by distance
type distanceQueue []queueEntry

func (q distanceQueue) Len() int           { return len(q) }
func (q distanceQueue) Less(i, j int) bool { return q[i].distance < q[j].distance }
func (q distanceQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }

func (q *distanceQueue) Push(x any) {
	*q = append(*q, x.(queueEntry))
}

func (q *distanceQueue) Pop() any {
	old := *q
	last := old[len(old)-1]
	*q = old[:len(old)-1]
	return last
}
