package algorithms

import (
	"slices"

	"github.com/ritzau/graphalytics-go/pkg/graph"
	"github.com/ritzau/graphalytics-go/pkg/logging"
)

// ClusteringCoefficient computes the local clustering coefficient of every vertex
type ClusteringCoefficient struct {
	graph *graph.Graph
}

// NewClusteringCoefficient creates an LCC kernel
func NewClusteringCoefficient(g *graph.Graph) *ClusteringCoefficient {
	return &ClusteringCoefficient{graph: g}
}

// Run computes, for each vertex v with neighborhood N(v) (in and out neighbors,
// duplicates and v itself removed), the number of edges u->w with u, w in N(v)
// divided by |N(v)|*(|N(v)|-1). Vertices with fewer than two neighbors get 0.
//
// Neighbor sets are kept as sorted slices of dense indices and intersected by merging.
func (c *ClusteringCoefficient) Run() (FloatOutput, error) {
	g := c.graph
	undirected := g.ToUndirected()
	n := g.VertexCount()

	logging.Debug("starting local clustering coefficient", "vertices", n)

	outSets := make([][]int, n)
	neighborhoods := make([][]int, n)
	for v := 0; v < n; v++ {
		outSets[v] = uniqueSorted(g.Adjacent(v), -1)
		neighborhoods[v] = uniqueSorted(undirected.Adjacent(v), v)
	}

	coefficients := make([]float64, n)
	for v := 0; v < n; v++ {
		neighbors := neighborhoods[v]
		degree := len(neighbors)
		if degree < 2 {
			continue
		}

		triangles := 0
		for _, u := range neighbors {
			triangles += countCommon(outSets[u], neighbors, u)
		}
		coefficients[v] = float64(triangles) / (float64(degree) * (float64(degree) - 1.0))
	}

	logging.Debug("finished local clustering coefficient")
	return newFloatOutput(g, coefficients), nil
}

// uniqueSorted returns the distinct values of adjacent in ascending order,
// leaving out exclude. Passing the vertex itself drops self-loops so that
// coefficients stay within [0,1].
func uniqueSorted(adjacent []int, exclude int) []int {
	set := make([]int, 0, len(adjacent))
	for _, v := range adjacent {
		if v != exclude {
			set = append(set, v)
		}
	}
	slices.Sort(set)
	return slices.Compact(set)
}

// countCommon counts the values present in both sorted sets, ignoring skip
func countCommon(a, b []int, skip int) int {
	count := 0
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			if a[i] != skip {
				count++
			}
			i++
			j++
		}
	}
	return count
}
