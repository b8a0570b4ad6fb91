package algorithms

import (
	"maps"
	"math"
	"slices"
	"strconv"

	"github.com/ritzau/graphalytics-go/pkg/graph"
)

// Output is a kernel result: one value per vertex id
type Output interface {
	Len() int
	// IDs returns the vertex ids in ascending order
	IDs() []int64
	// Text returns the textual form of the value for id
	Text(id int64) string
}

// IntOutput holds integer results (distances, component ids, labels)
type IntOutput map[int64]int64

// FloatOutput holds real results (ranks, coefficients, path lengths)
type FloatOutput map[int64]float64

func (o IntOutput) Len() int     { return len(o) }
func (o IntOutput) IDs() []int64 { return slices.Sorted(maps.Keys(o)) }

func (o IntOutput) Text(id int64) string {
	return strconv.FormatInt(o[id], 10)
}

func (o FloatOutput) Len() int     { return len(o) }
func (o FloatOutput) IDs() []int64 { return slices.Sorted(maps.Keys(o)) }

// Text formats the value with the shortest representation that round-trips.
// Unbounded values are written as "infinity".
func (o FloatOutput) Text(id int64) string {
	return FormatFloat(o[id])
}

// FormatFloat formats a real result value
func FormatFloat(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "infinity"
	case math.IsInf(v, -1):
		return "-infinity"
	default:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
}

func newIntOutput(g *graph.Graph, values []int64) IntOutput {
	out := make(IntOutput, len(values))
	for i, v := range values {
		out[g.ID(i)] = v
	}
	return out
}

func newFloatOutput(g *graph.Graph, values []float64) FloatOutput {
	out := make(FloatOutput, len(values))
	for i, v := range values {
		out[g.ID(i)] = v
	}
	return out
}
