package validate

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ritzau/graphalytics-go/pkg/algorithms"
)

var (
	// ErrMismatch is returned when an output differs from the reference
	ErrMismatch = errors.New("output mismatch")

	// ErrNotCheckable is returned by CrossCheck for algorithms without an independent oracle
	ErrNotCheckable = errors.New("no independent check available")
)

// Epsilon is the relative error tolerated for real-valued outputs
const Epsilon = 1e-4

const maxReported = 5

// mismatches collects differing vertices and reports the first few
type mismatches struct {
	total    int
	count    int
	examples []string
}

func (m *mismatches) add(format string, args ...any) {
	m.count++
	if len(m.examples) < maxReported {
		m.examples = append(m.examples, fmt.Sprintf(format, args...))
	}
}

func (m *mismatches) err() error {
	if m.count == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d of %d vertices differ (%s)",
		ErrMismatch, m.count, m.total, strings.Join(m.examples, "; "))
}

// Compare checks actual against the expected "<id> <value>" tokens using the
// rule for kind: BFS and CDLP must match exactly, WCC must describe the same
// partition, PageRank, LCC and SSSP must agree within Epsilon.
func Compare(kind algorithms.Kind, expected map[int64]string, actual algorithms.Output) error {
	m := &mismatches{total: len(expected)}

	ids := actual.IDs()
	for _, id := range ids {
		if _, ok := expected[id]; !ok {
			m.add("vertex %d not expected", id)
		}
	}
	if actual.Len() < len(expected) {
		seen := make(map[int64]struct{}, len(ids))
		for _, id := range ids {
			seen[id] = struct{}{}
		}
		for id := range expected {
			if _, ok := seen[id]; !ok {
				m.add("vertex %d missing", id)
			}
		}
	}
	if m.count > 0 {
		return m.err()
	}

	switch kind {
	case algorithms.KindBFS, algorithms.KindCDLP:
		return compareExact(expected, actual, m)
	case algorithms.KindWCC:
		return compareEquivalence(expected, actual, m)
	case algorithms.KindPageRank, algorithms.KindLCC, algorithms.KindSSSP:
		return compareEpsilon(expected, actual, m)
	default:
		return fmt.Errorf("%w: %v", algorithms.ErrUnsupportedAlgorithm, kind)
	}
}

func compareExact(expected map[int64]string, actual algorithms.Output, m *mismatches) error {
	for _, id := range actual.IDs() {
		want, err := parseInt(expected[id])
		if err != nil {
			return fmt.Errorf("expected value of vertex %d: %w", id, err)
		}
		got, err := parseInt(actual.Text(id))
		if err != nil {
			return fmt.Errorf("actual value of vertex %d: %w", id, err)
		}
		if want != got {
			m.add("vertex %d expected %s got %s", id, expected[id], actual.Text(id))
		}
	}
	return m.err()
}

// compareEquivalence accepts any relabelling that maps expected components
// one-to-one onto actual components
func compareEquivalence(expected map[int64]string, actual algorithms.Output, m *mismatches) error {
	forward := make(map[string]string)
	backward := make(map[string]string)

	for _, id := range actual.IDs() {
		want, got := expected[id], actual.Text(id)

		if mapped, ok := forward[want]; ok && mapped != got {
			m.add("vertex %d in component %s, expected with component %s", id, got, mapped)
			continue
		}
		if mapped, ok := backward[got]; ok && mapped != want {
			m.add("vertex %d merges expected components %s and %s", id, mapped, want)
			continue
		}
		forward[want] = got
		backward[got] = want
	}
	return m.err()
}

func compareEpsilon(expected map[int64]string, actual algorithms.Output, m *mismatches) error {
	for _, id := range actual.IDs() {
		want, err := strconv.ParseFloat(expected[id], 64)
		if err != nil {
			return fmt.Errorf("expected value of vertex %d: %w", id, err)
		}
		got, err := strconv.ParseFloat(actual.Text(id), 64)
		if err != nil {
			return fmt.Errorf("actual value of vertex %d: %w", id, err)
		}
		if !withinEpsilon(want, got) {
			m.add("vertex %d expected %s got %s", id, expected[id], actual.Text(id))
		}
	}
	return m.err()
}

func withinEpsilon(want, got float64) bool {
	if want == got {
		return true
	}
	if math.IsInf(want, 0) || math.IsInf(got, 0) || math.IsNaN(want) || math.IsNaN(got) {
		return false
	}
	return math.Abs(want-got) <= Epsilon*math.Abs(want)
}

// parseInt reads an integer result, accepting "infinity" for unreachable vertices
func parseInt(token string) (int64, error) {
	if strings.EqualFold(token, "infinity") || strings.EqualFold(token, "inf") {
		return algorithms.Unreachable, nil
	}
	return strconv.ParseInt(token, 10, 64)
}
