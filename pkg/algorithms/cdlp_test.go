package algorithms

import (
	"errors"
	"maps"
	"testing"
)

func twoTriangles(t *testing.T) *LabelPropagation {
	g := buildGraph(t, false, []int64{1, 2, 3, 4, 5, 6},
		[][2]int64{{1, 2}, {2, 3}, {3, 1}, {4, 5}, {5, 6}, {6, 4}})
	return NewLabelPropagation(g, 10)
}

func TestCDLPConverges(t *testing.T) {
	lp := twoTriangles(t)

	labels, err := lp.Run()
	if err != nil {
		t.Fatalf("CDLP failed: %v", err)
	}

	want := IntOutput{1: 1, 2: 1, 3: 1, 4: 4, 5: 4, 6: 4}
	if !maps.Equal(labels, want) {
		t.Errorf("Expected %v, got %v", want, labels)
	}
	if lp.Iterations() != 3 {
		t.Errorf("Expected 3 iterations, got %d", lp.Iterations())
	}
}

func TestCDLPSynchronousUpdate(t *testing.T) {
	g := buildGraph(t, false, []int64{1, 2, 3, 4, 5, 6},
		[][2]int64{{1, 2}, {2, 3}, {3, 1}, {4, 5}, {5, 6}, {6, 4}})

	// After one round every vertex holds the smallest label of its two neighbors
	// as they were before the round.
	labels, err := NewLabelPropagation(g, 1).Run()
	if err != nil {
		t.Fatalf("CDLP failed: %v", err)
	}

	want := IntOutput{1: 2, 2: 1, 3: 1, 4: 5, 5: 4, 6: 4}
	if !maps.Equal(labels, want) {
		t.Errorf("Expected %v, got %v", want, labels)
	}
}

func TestCDLPStopsAtMaxIterations(t *testing.T) {
	// Two vertices swapping labels never reach a fixed point
	g := buildGraph(t, true, []int64{1, 2}, [][2]int64{{1, 2}})
	lp := NewLabelPropagation(g, 5)

	labels, err := lp.Run()
	if err != nil {
		t.Fatalf("CDLP failed: %v", err)
	}

	if lp.Iterations() != 5 {
		t.Errorf("Expected 5 iterations, got %d", lp.Iterations())
	}
	want := IntOutput{1: 2, 2: 1}
	if !maps.Equal(labels, want) {
		t.Errorf("Expected %v, got %v", want, labels)
	}
}

func TestCDLPUsesIncomingEdges(t *testing.T) {
	// 4 only has incoming edges; its neighbors 1, 2, 3 all point at it and
	// 1, 2 also point at 3.
	g := buildGraph(t, true, []int64{1, 2, 3, 4}, [][2]int64{{1, 4}, {2, 4}, {3, 4}, {1, 3}, {2, 3}})

	labels, err := NewLabelPropagation(g, 1).Run()
	if err != nil {
		t.Fatalf("CDLP failed: %v", err)
	}

	// 3: out {4}, in {1, 2} -> tie between 1, 2 and 4, smallest wins
	if labels[3] != 1 {
		t.Errorf("Expected label 1 for vertex 3, got %d", labels[3])
	}
	// 4: in {1, 2, 3}
	if labels[4] != 1 {
		t.Errorf("Expected label 1 for vertex 4, got %d", labels[4])
	}
}

func TestCDLPDuplicateEdgesAddVotes(t *testing.T) {
	// 1 sees label 3 twice and label 2 once
	g := buildGraph(t, true, []int64{1, 2, 3}, [][2]int64{{1, 2}, {1, 3}, {1, 3}})

	labels, err := NewLabelPropagation(g, 1).Run()
	if err != nil {
		t.Fatalf("CDLP failed: %v", err)
	}
	if labels[1] != 3 {
		t.Errorf("Expected duplicate edges to make label 3 win, got %d", labels[1])
	}
}

func TestCDLPIsolatedVertexTakesLabelZero(t *testing.T) {
	g := buildGraph(t, true, []int64{1, 2, 7}, [][2]int64{{1, 2}})

	labels, err := NewLabelPropagation(g, 3).Run()
	if err != nil {
		t.Fatalf("CDLP failed: %v", err)
	}
	if labels[7] != 0 {
		t.Errorf("Expected isolated vertex to take label 0, got %d", labels[7])
	}
}

func TestCDLPIsolatedVertexCountsAsChange(t *testing.T) {
	g := buildGraph(t, true, []int64{7}, nil)

	lp := NewLabelPropagation(g, 5)
	labels, err := lp.Run()
	if err != nil {
		t.Fatalf("CDLP failed: %v", err)
	}
	if labels[7] != 0 {
		t.Errorf("Expected label 0, got %d", labels[7])
	}
	// Round 1 relabels 7 to 0, round 2 finds the fixed point
	if lp.Iterations() != 2 {
		t.Errorf("Expected 2 iterations, got %d", lp.Iterations())
	}
}

func TestMostFrequentLabel(t *testing.T) {
	tests := []struct {
		name      string
		histogram map[int64]int
		want      int64
	}{
		{"empty", map[int64]int{}, 0},
		{"highest count", map[int64]int{5: 1, 9: 3}, 9},
		{"tie picks smallest", map[int64]int{5: 2, 3: 2, 9: 2}, 3},
		{"negative labels", map[int64]int{-4: 1, 2: 1}, -4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mostFrequentLabel(tt.histogram); got != tt.want {
				t.Errorf("mostFrequentLabel() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCDLPFixedPointIsStable(t *testing.T) {
	lp := twoTriangles(t)
	first, err := lp.Run()
	if err != nil {
		t.Fatalf("CDLP failed: %v", err)
	}

	g := lp.graph
	again, err := NewLabelPropagation(g, lp.Iterations()+1).Run()
	if err != nil {
		t.Fatalf("CDLP failed: %v", err)
	}
	if !maps.Equal(first, again) {
		t.Errorf("Expected fixed point to be stable, got %v then %v", first, again)
	}
}

func TestCDLPZeroIterations(t *testing.T) {
	lp := twoTriangles(t)
	lp.maxIterations = 0

	labels, err := lp.Run()
	if err != nil {
		t.Fatalf("CDLP failed: %v", err)
	}
	for id, label := range labels {
		if id != label {
			t.Errorf("Expected initial label %d, got %d", id, label)
		}
	}

	lp.maxIterations = -1
	if _, err := lp.Run(); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Expected ErrInvalidParameter, got %v", err)
	}
}
