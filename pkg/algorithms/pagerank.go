package algorithms

import (
	"fmt"
	"math"

	"github.com/ritzau/graphalytics-go/pkg/graph"
	"github.com/ritzau/graphalytics-go/pkg/logging"
)

// PageRank computes ranks for a fixed number of iterations
type PageRank struct {
	graph         *graph.Graph
	dampingFactor float64
	iterations    int
}

// NewPageRank creates a PageRank kernel
func NewPageRank(g *graph.Graph, dampingFactor float64, iterations int) *PageRank {
	return &PageRank{
		graph:         g,
		dampingFactor: dampingFactor,
		iterations:    iterations,
	}
}

// Run always performs exactly the configured number of iterations; there is no
// convergence check. Rank held by dangling vertices is spread evenly over all
// vertices in every iteration.
func (pr *PageRank) Run() (FloatOutput, error) {
	d := pr.dampingFactor
	if math.IsNaN(d) || d <= 0 || d >= 1 {
		return nil, fmt.Errorf("%w: damping factor %v", ErrInvalidParameter, d)
	}
	if pr.iterations < 0 {
		return nil, fmt.Errorf("%w: iterations %d", ErrInvalidParameter, pr.iterations)
	}

	g := pr.graph
	n := g.VertexCount()
	if n == 0 {
		return FloatOutput{}, nil
	}
	incoming := g.ToReversed()

	logging.Debug("starting pagerank", "vertices", n, "dampingFactor", d, "iterations", pr.iterations)

	numVertices := float64(n)
	ranks := make([]float64, n)
	next := make([]float64, n)
	for i := range ranks {
		ranks[i] = 1.0 / numVertices
	}

	for it := 0; it < pr.iterations; it++ {
		danglingSum := 0.0
		for v := 0; v < n; v++ {
			if g.OutDegree(v) == 0 {
				danglingSum += ranks[v]
			}
		}

		for v := 0; v < n; v++ {
			sum := 0.0
			for _, u := range incoming.Adjacent(v) {
				sum += ranks[u] / float64(g.OutDegree(u))
			}
			next[v] = (1.0-d)/numVertices + d*(sum+danglingSum/numVertices)
		}

		ranks, next = next, ranks
		logging.Trace("pagerank iteration", "iteration", it+1, "danglingSum", danglingSum)
	}

	logging.Debug("finished pagerank")
	return newFloatOutput(g, ranks), nil
}
