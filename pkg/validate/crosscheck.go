package validate

import (
	"fmt"
	"math"

	"github.com/ritzau/graphalytics-go/pkg/algorithms"
	"github.com/ritzau/graphalytics-go/pkg/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// CrossCheck recomputes BFS, WCC and SSSP results with gonum and compares them
// against out. Other algorithms return ErrNotCheckable.
func CrossCheck(g *graph.Graph, params algorithms.Params, out algorithms.Output) error {
	switch p := params.(type) {
	case algorithms.BFSParams:
		levels, ok := out.(algorithms.IntOutput)
		if !ok {
			return fmt.Errorf("bfs output has type %T", out)
		}
		return checkBFS(g, p.Source, levels)
	case algorithms.WCCParams:
		components, ok := out.(algorithms.IntOutput)
		if !ok {
			return fmt.Errorf("wcc output has type %T", out)
		}
		return checkComponents(g, components)
	case algorithms.SSSPParams:
		distances, ok := out.(algorithms.FloatOutput)
		if !ok {
			return fmt.Errorf("sssp output has type %T", out)
		}
		return checkShortestPaths(g, p.Source, distances)
	default:
		return fmt.Errorf("%w: %v", ErrNotCheckable, params.Kind())
	}
}

func checkBFS(g *graph.Graph, source int64, levels algorithms.IntOutput) error {
	if !g.HasVertex(source) {
		return fmt.Errorf("%w: %d", graph.ErrUnknownVertex, source)
	}

	shortest := path.DijkstraFrom(simple.Node(source), g.GonumWeighted(graph.UnitWeight))

	m := &mismatches{total: g.VertexCount()}
	for id := range g.Vertices() {
		want := algorithms.Unreachable
		if d := shortest.WeightTo(id); !math.IsInf(d, 1) {
			want = int64(d)
		}
		if got, ok := levels[id]; !ok || got != want {
			m.add("vertex %d: gonum depth %d, got %d", id, want, got)
		}
	}
	return m.err()
}

// checkComponents verifies that vertices share a label exactly when gonum puts
// them in the same component
func checkComponents(g *graph.Graph, labels algorithms.IntOutput) error {
	components := topo.ConnectedComponents(g.GonumUndirected())

	m := &mismatches{total: g.VertexCount()}
	owner := make(map[int64]int, len(components))
	for c, nodes := range components {
		label := labels[nodes[0].ID()]
		if other, taken := owner[label]; taken {
			m.add("label %d used by components %d and %d", label, other, c)
			continue
		}
		owner[label] = c

		for _, n := range nodes[1:] {
			if got, ok := labels[n.ID()]; !ok || got != label {
				m.add("vertex %d labelled %d, component uses %d", n.ID(), got, label)
			}
		}
	}
	return m.err()
}

func checkShortestPaths(g *graph.Graph, source int64, distances algorithms.FloatOutput) error {
	if !g.HasVertex(source) {
		return fmt.Errorf("%w: %d", graph.ErrUnknownVertex, source)
	}
	if len(g.EdgePropertyTypes()) == 0 {
		return algorithms.ErrMissingWeights
	}
	if hasNegativeWeight(g) {
		return fmt.Errorf("%w: negative edge weights", ErrNotCheckable)
	}

	weighted := g.GonumWeighted(func(props []graph.Value) float64 {
		return props[0].Float()
	})
	shortest := path.DijkstraFrom(simple.Node(source), weighted)

	m := &mismatches{total: g.VertexCount()}
	for id := range g.Vertices() {
		want := shortest.WeightTo(id)
		got, ok := distances[id]
		if !ok || !withinEpsilon(want, got) {
			m.add("vertex %d: gonum distance %s, got %s", id,
				algorithms.FormatFloat(want), algorithms.FormatFloat(got))
		}
	}
	return m.err()
}

func hasNegativeWeight(g *graph.Graph) bool {
	for v := range g.VertexCount() {
		for k := range g.Adjacent(v) {
			if g.EdgeValues(v, k)[0].Float() < 0 {
				return true
			}
		}
	}
	return false
}
