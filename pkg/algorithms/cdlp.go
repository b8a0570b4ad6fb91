package algorithms

import (
	"fmt"

	"github.com/ritzau/graphalytics-go/pkg/graph"
	"github.com/ritzau/graphalytics-go/pkg/logging"
)

// LabelPropagation detects communities by synchronous label propagation
type LabelPropagation struct {
	graph         *graph.Graph
	maxIterations int
	iterations    int
}

// NewLabelPropagation creates a CDLP kernel that runs at most maxIterations rounds
func NewLabelPropagation(g *graph.Graph, maxIterations int) *LabelPropagation {
	return &LabelPropagation{
		graph:         g,
		maxIterations: maxIterations,
	}
}

// Iterations returns the number of rounds the last Run performed
func (lp *LabelPropagation) Iterations() int { return lp.iterations }

// Run propagates labels until a round changes nothing or maxIterations is reached.
//
// Each vertex starts with its own id as label. In every round a vertex adopts the
// most frequent label among the neighbors reached over outgoing and incoming
// edges, the smallest label winning ties. New labels are computed from the
// previous round only. A vertex without neighbors takes label 0.
func (lp *LabelPropagation) Run() (IntOutput, error) {
	if lp.maxIterations < 0 {
		return nil, fmt.Errorf("%w: max iterations %d", ErrInvalidParameter, lp.maxIterations)
	}

	g := lp.graph
	n := g.VertexCount()

	// On an undirected graph the incoming edges mirror the outgoing ones, which
	// would only double every count.
	var incoming *graph.Graph
	if g.Directed() {
		incoming = g.ToReversed()
	}

	logging.Debug("starting label propagation", "vertices", n, "maxIterations", lp.maxIterations)

	labels := make([]int64, n)
	next := make([]int64, n)
	for i := range labels {
		labels[i] = g.ID(i)
	}

	histogram := make(map[int64]int)
	lp.iterations = 0
	for lp.iterations < lp.maxIterations {
		lp.iterations++
		changed := false

		for v := 0; v < n; v++ {
			clear(histogram)
			for _, u := range g.Adjacent(v) {
				histogram[labels[u]]++
			}
			if incoming != nil {
				for _, u := range incoming.Adjacent(v) {
					histogram[labels[u]]++
				}
			}

			best := mostFrequentLabel(histogram)
			next[v] = best
			changed = changed || best != labels[v]
		}

		labels, next = next, labels
		logging.Trace("label propagation round", "iteration", lp.iterations, "changed", changed)

		if !changed {
			break
		}
	}

	logging.Debug("finished label propagation", "iterations", lp.iterations)
	return newIntOutput(g, labels), nil
}

// mostFrequentLabel picks the highest count, breaking ties by the smallest label.
// An empty histogram yields 0.
func mostFrequentLabel(histogram map[int64]int) int64 {
	var best int64
	bestCount := 0
	for label, count := range histogram {
		if count > bestCount || (count == bestCount && label < best) {
			best = label
			bestCount = count
		}
	}
	return best
}
