package output

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

// Check is the outcome of one validation step of a run
type Check struct {
	Name   string
	Passed bool
	Detail string
}

// RunSummary is everything the console report shows about a benchmark run
type RunSummary struct {
	Name           string
	RunID          string
	Algorithm      string
	Directed       bool
	Vertices       int
	Edges          int
	LoadTime       time.Duration
	ProcessingTime time.Duration
	OutputPath     string
	Checks         []Check
}

// Passed reports whether every check of the run passed
func (s RunSummary) Passed() bool {
	for _, c := range s.Checks {
		if !c.Passed {
			return false
		}
	}
	return true
}

// PrintRunReport prints a coloured summary of a benchmark run
func PrintRunReport(w io.Writer, s RunSummary) {
	bold := color.New(color.Bold)
	red := color.New(color.FgRed)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	cyan := color.New(color.FgCyan)

	bold.Fprintln(w, "Graphalytics - Run Report")
	bold.Fprintln(w, "=========================")
	if s.Name != "" {
		fmt.Fprintf(w, "Graph: %s\n", s.Name)
	}
	fmt.Fprintf(w, "Run: %s\n", s.RunID)
	cyan.Fprintf(w, "Algorithm: %s\n", s.Algorithm)

	kind := "undirected"
	if s.Directed {
		kind = "directed"
	}
	fmt.Fprintf(w, "Graph size: %s vertices, %s edges (%s)\n",
		humanize.Comma(int64(s.Vertices)), humanize.Comma(int64(s.Edges)), kind)
	fmt.Fprintf(w, "Load time: %s\n", s.LoadTime.Round(time.Microsecond))
	bold.Fprintf(w, "Processing time: %s\n", s.ProcessingTime.Round(time.Microsecond))
	if s.OutputPath != "" {
		fmt.Fprintf(w, "Output: %s\n", s.OutputPath)
	}
	fmt.Fprintln(w)

	if len(s.Checks) == 0 {
		yellow.Fprintln(w, "No validation requested")
		return
	}

	for _, c := range s.Checks {
		if c.Passed {
			green.Fprintf(w, "  ✓ %s", c.Name)
		} else {
			red.Fprintf(w, "  ✗ %s", c.Name)
		}
		if c.Detail != "" {
			fmt.Fprintf(w, ": %s", c.Detail)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)

	if s.Passed() {
		green.Fprintln(w, "Summary: all checks passed")
	} else {
		red.Fprintln(w, "Summary: validation failed")
	}
}
