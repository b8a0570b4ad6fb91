package algorithms

import (
	"errors"
	"math"
	"testing"
)

const tolerance = 1e-12

func rankSum(ranks FloatOutput) float64 {
	sum := 0.0
	for _, r := range ranks {
		sum += r
	}
	return sum
}

func TestPageRankOneIteration(t *testing.T) {
	// 3 is dangling
	g := buildGraph(t, true, []int64{1, 2, 3}, [][2]int64{{1, 2}, {2, 3}})

	ranks, err := NewPageRank(g, 0.85, 1).Run()
	if err != nil {
		t.Fatalf("PageRank failed: %v", err)
	}

	// (1-d)/n + d*(in + dangling/n), dangling = 1/3
	want := map[int64]float64{
		1: 0.15/3 + 0.85*(1.0/3/3),
		2: 0.15/3 + 0.85*(1.0/3+1.0/3/3),
		3: 0.15/3 + 0.85*(1.0/3+1.0/3/3),
	}
	for v, r := range want {
		if math.Abs(ranks[v]-r) > tolerance {
			t.Errorf("Rank of %d: expected %v, got %v", v, r, ranks[v])
		}
	}
}

func TestPageRankSumsToOne(t *testing.T) {
	g := buildGraph(t, true, []int64{1, 2, 3, 4, 5, 6},
		[][2]int64{{1, 2}, {1, 3}, {1, 3}, {2, 1}, {3, 4}, {4, 1}, {4, 2}, {5, 5}})

	for _, damping := range []float64{0.01, 0.5, 0.85, 0.99} {
		for _, iterations := range []int{1, 2, 10, 50} {
			ranks, err := NewPageRank(g, damping, iterations).Run()
			if err != nil {
				t.Fatalf("PageRank failed: %v", err)
			}
			if sum := rankSum(ranks); math.Abs(sum-1) > 1e-9 {
				t.Errorf("d=%v n=%d: expected ranks to sum to 1, got %v", damping, iterations, sum)
			}
		}
	}
}

func TestPageRankRunsAllIterations(t *testing.T) {
	g := buildGraph(t, true, []int64{1, 2, 3}, [][2]int64{{1, 2}, {2, 3}})

	one, err := NewPageRank(g, 0.85, 1).Run()
	if err != nil {
		t.Fatalf("PageRank failed: %v", err)
	}
	two, err := NewPageRank(g, 0.85, 2).Run()
	if err != nil {
		t.Fatalf("PageRank failed: %v", err)
	}

	if one[1] == two[1] && one[2] == two[2] && one[3] == two[3] {
		t.Errorf("Expected a second iteration to change ranks, got %v twice", one)
	}
}

func TestPageRankUndirectedRegular(t *testing.T) {
	g := buildGraph(t, false, []int64{1, 2, 3}, [][2]int64{{1, 2}, {2, 3}, {3, 1}})

	ranks, err := NewPageRank(g, 0.85, 20).Run()
	if err != nil {
		t.Fatalf("PageRank failed: %v", err)
	}
	for v, r := range ranks {
		if math.Abs(r-1.0/3) > tolerance {
			t.Errorf("Rank of %d: expected 1/3, got %v", v, r)
		}
	}
}

func TestPageRankZeroIterations(t *testing.T) {
	g := chain(t)

	ranks, err := NewPageRank(g, 0.85, 0).Run()
	if err != nil {
		t.Fatalf("PageRank failed: %v", err)
	}
	for v, r := range ranks {
		if r != 0.25 {
			t.Errorf("Rank of %d: expected initial 0.25, got %v", v, r)
		}
	}
}

func TestPageRankInvalidParameters(t *testing.T) {
	g := chain(t)

	for _, d := range []float64{-0.1, 0, 1, 1.5, math.NaN()} {
		if _, err := NewPageRank(g, d, 1).Run(); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("damping %v: expected ErrInvalidParameter, got %v", d, err)
		}
	}
	if _, err := NewPageRank(g, 0.85, -1).Run(); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Expected ErrInvalidParameter for negative iterations, got %v", err)
	}
}

func TestPageRankEmptyGraph(t *testing.T) {
	g := buildGraph(t, true, nil, nil)

	ranks, err := NewPageRank(g, 0.85, 3).Run()
	if err != nil {
		t.Fatalf("PageRank failed: %v", err)
	}
	if len(ranks) != 0 {
		t.Errorf("Expected no ranks, got %v", ranks)
	}
}
