package algorithms

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ritzau/graphalytics-go/pkg/graph"
)

var (
	// ErrUnsupportedAlgorithm is returned when dispatching on an algorithm outside the fixed six
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

	// ErrInvalidParameter is returned for out-of-range algorithm parameters
	ErrInvalidParameter = errors.New("invalid algorithm parameter")

	// ErrMissingWeights is returned by SSSP when edges carry no weight property
	ErrMissingWeights = errors.New("graph has no edge weights")
)

// Kind identifies one of the benchmark algorithms
type Kind int

const (
	KindBFS Kind = iota + 1
	KindWCC
	KindCDLP
	KindPageRank
	KindLCC
	KindSSSP
)

var kindNames = map[Kind]string{
	KindBFS:      "bfs",
	KindWCC:      "wcc",
	KindCDLP:     "cdlp",
	KindPageRank: "pr",
	KindLCC:      "lcc",
	KindSSSP:     "sssp",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps an algorithm name (bfs, wcc, cdlp, pr, lcc, sssp) to its Kind.
// "pagerank" is accepted as an alias of "pr".
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "pagerank" {
		return KindPageRank, nil
	}
	for kind, n := range kindNames {
		if n == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
}

// Params carries the parameters of one algorithm run. The concrete type selects
// the kernel.
type Params interface {
	Kind() Kind
}

// BFSParams configures a breadth-first search
type BFSParams struct {
	Source int64
}

// WCCParams configures a weakly-connected-components run
type WCCParams struct{}

// CDLPParams configures label propagation
type CDLPParams struct {
	MaxIterations int
}

// PageRankParams configures PageRank
type PageRankParams struct {
	DampingFactor float64
	Iterations    int
}

// LCCParams configures a local clustering coefficient run
type LCCParams struct{}

// SSSPParams configures single-source shortest paths
type SSSPParams struct {
	Source int64
}

func (BFSParams) Kind() Kind      { return KindBFS }
func (WCCParams) Kind() Kind      { return KindWCC }
func (CDLPParams) Kind() Kind     { return KindCDLP }
func (PageRankParams) Kind() Kind { return KindPageRank }
func (LCCParams) Kind() Kind      { return KindLCC }
func (SSSPParams) Kind() Kind     { return KindSSSP }

// Run executes the kernel selected by params on g and returns its result mapping
func Run(g *graph.Graph, params Params) (Output, error) {
	switch p := params.(type) {
	case BFSParams:
		return wrap(NewBreadthFirstSearch(g, p.Source).Run())
	case WCCParams:
		return wrap(NewConnectedComponents(g).Run())
	case CDLPParams:
		return wrap(NewLabelPropagation(g, p.MaxIterations).Run())
	case PageRankParams:
		return wrap(NewPageRank(g, p.DampingFactor, p.Iterations).Run())
	case LCCParams:
		return wrap(NewClusteringCoefficient(g).Run())
	case SSSPParams:
		return wrap(NewShortestPaths(g, p.Source).Run())
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedAlgorithm, params)
	}
}

func wrap[T Output](out T, err error) (Output, error) {
	if err != nil {
		return nil, err
	}
	return out, nil
}
