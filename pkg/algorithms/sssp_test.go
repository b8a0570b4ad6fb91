package algorithms

import (
	"errors"
	"math"
	"testing"

	"github.com/ritzau/graphalytics-go/pkg/graph"
)

func TestSSSPWeighted(t *testing.T) {
	g := buildWeightedGraph(t, true, []int64{1, 2, 3, 4, 5}, []weightedEdge{
		{1, 2, 5},
		{1, 3, 1},
		{3, 2, 1.5},
		{2, 4, 0.25},
		{4, 1, 0},
	})

	dist, err := NewShortestPaths(g, 1).Run()
	if err != nil {
		t.Fatalf("SSSP failed: %v", err)
	}

	want := map[int64]float64{1: 0, 2: 2.5, 3: 1, 4: 2.75, 5: math.Inf(1)}
	for v, d := range want {
		if dist[v] != d {
			t.Errorf("Distance of %d: expected %v, got %v", v, d, dist[v])
		}
	}
}

func TestSSSPRelaxationHolds(t *testing.T) {
	edges := []weightedEdge{
		{1, 2, 2}, {1, 3, 7}, {2, 3, 3}, {2, 4, 8}, {3, 4, 1}, {4, 5, 2}, {3, 5, 9}, {5, 1, 4}, {2, 2, 1},
	}
	g := buildWeightedGraph(t, false, []int64{1, 2, 3, 4, 5}, edges)

	dist, err := NewShortestPaths(g, 1).Run()
	if err != nil {
		t.Fatalf("SSSP failed: %v", err)
	}

	if dist[1] != 0 {
		t.Errorf("Expected source distance 0, got %v", dist[1])
	}
	for _, e := range edges {
		// Undirected: both directions must satisfy the bound
		if dist[e.to] > dist[e.from]+e.weight || dist[e.from] > dist[e.to]+e.weight {
			t.Errorf("Edge %d-%d (w=%v) violates %v / %v", e.from, e.to, e.weight, dist[e.from], dist[e.to])
		}
	}
	if dist[5] != 4 || dist[4] != 6 {
		t.Errorf("Expected distances 4 and 6 to vertices 5 and 4, got %v and %v", dist[5], dist[4])
	}
}

func TestSSSPIntegerWeights(t *testing.T) {
	b, err := graph.NewBuilder(true, nil, []graph.PropertyType{graph.Integer})
	if err != nil {
		t.Fatalf("NewBuilder() failed: %v", err)
	}
	for _, v := range []int64{1, 2} {
		if err := b.AddVertex(v, nil); err != nil {
			t.Fatalf("AddVertex() failed: %v", err)
		}
	}
	if err := b.AddEdge(1, 2, []string{"3"}); err != nil {
		t.Fatalf("AddEdge() failed: %v", err)
	}

	dist, err := NewShortestPaths(b.Build(), 1).Run()
	if err != nil {
		t.Fatalf("SSSP failed: %v", err)
	}
	if dist[2] != 3 {
		t.Errorf("Expected distance 3, got %v", dist[2])
	}
}

func TestSSSPErrors(t *testing.T) {
	g := chain(t)
	if _, err := NewShortestPaths(g, 42).Run(); !errors.Is(err, graph.ErrUnknownVertex) {
		t.Errorf("Expected ErrUnknownVertex, got %v", err)
	}

	b, err := graph.NewBuilder(true, nil, nil)
	if err != nil {
		t.Fatalf("NewBuilder() failed: %v", err)
	}
	if err := b.AddVertex(1, nil); err != nil {
		t.Fatalf("AddVertex() failed: %v", err)
	}
	if _, err := NewShortestPaths(b.Build(), 1).Run(); !errors.Is(err, ErrMissingWeights) {
		t.Errorf("Expected ErrMissingWeights, got %v", err)
	}
}
