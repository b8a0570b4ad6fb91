package graph

import (
	"math"

	"gonum.org/v1/gonum/graph/simple"
)

// WeightFunc derives an edge weight from the edge's property values
type WeightFunc func(props []Value) float64

// UnitWeight gives every edge weight 1
func UnitWeight([]Value) float64 { return 1 }

// GonumUndirected returns the graph as a gonum undirected graph keyed by vertex id.
// Parallel edges collapse into one and self-loops are dropped.
func (g *Graph) GonumUndirected() *simple.UndirectedGraph {
	ug := simple.NewUndirectedGraph()
	for _, id := range g.ids {
		ug.AddNode(simple.Node(id))
	}

	for u, targets := range g.adj {
		for _, v := range targets {
			if u == v {
				continue
			}
			ug.SetEdge(ug.NewEdge(simple.Node(g.ids[u]), simple.Node(g.ids[v])))
		}
	}
	return ug
}

// GonumWeighted returns the graph as a gonum weighted directed graph keyed by
// vertex id. Parallel edges collapse into the lightest one and self-loops are dropped.
func (g *Graph) GonumWeighted(weight WeightFunc) *simple.WeightedDirectedGraph {
	wg := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for _, id := range g.ids {
		wg.AddNode(simple.Node(id))
	}

	for u, targets := range g.adj {
		from := g.ids[u]
		for k, v := range targets {
			if u == v {
				continue
			}
			to := g.ids[v]
			w := weight(g.edgeProps[u][k])

			if existing := wg.WeightedEdge(from, to); existing != nil && existing.Weight() <= w {
				continue
			}
			wg.SetWeightedEdge(wg.NewWeightedEdge(simple.Node(from), simple.Node(to), w))
		}
	}
	return wg
}
