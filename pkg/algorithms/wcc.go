package algorithms

import (
	"github.com/ritzau/graphalytics-go/pkg/graph"
	"github.com/ritzau/graphalytics-go/pkg/logging"
)

// ConnectedComponents partitions the graph into weakly connected components
type ConnectedComponents struct {
	graph *graph.Graph
}

// NewConnectedComponents creates a WCC kernel
func NewConnectedComponents(g *graph.Graph) *ConnectedComponents {
	return &ConnectedComponents{graph: g}
}

// Run labels every vertex with a component id. Vertices are visited in load order;
// each unlabeled vertex opens a new component (ids 0, 1, 2, ...) which is then
// flood-filled over the undirected view.
func (c *ConnectedComponents) Run() (IntOutput, error) {
	g := c.graph.ToUndirected()
	n := g.VertexCount()

	logging.Debug("starting connected components", "vertices", n)

	components := make([]int64, n)
	for i := range components {
		components[i] = -1
	}

	var numComponents int64
	queue := make([]int, 0, n)
	for start := 0; start < n; start++ {
		if components[start] >= 0 {
			continue
		}

		id := numComponents
		numComponents++
		components[start] = id

		queue = append(queue[:0], start)
		for head := 0; head < len(queue); head++ {
			for _, v := range g.Adjacent(queue[head]) {
				if components[v] < 0 {
					components[v] = id
					queue = append(queue, v)
				}
			}
		}
	}

	logging.Debug("finished connected components", "components", numComponents)
	return newIntOutput(g, components), nil
}
