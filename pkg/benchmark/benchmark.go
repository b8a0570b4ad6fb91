package benchmark

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ritzau/graphalytics-go/pkg/algorithms"
	"github.com/ritzau/graphalytics-go/pkg/graph"
	"github.com/ritzau/graphalytics-go/pkg/loader"
	"github.com/ritzau/graphalytics-go/pkg/logging"
	"github.com/ritzau/graphalytics-go/pkg/output"
	"github.com/ritzau/graphalytics-go/pkg/validate"
)

// Job describes one benchmark run: the input graph, the algorithm and what to do
// with its result
type Job struct {
	Name       string
	VertexPath string
	EdgePath   string
	Graph      loader.Options
	Params     algorithms.Params

	// OutputPath receives the result file when set
	OutputPath string
	// ExpectedPath is a reference output to validate against when set
	ExpectedPath string
	// CrossCheck recomputes the result with an independent implementation where one exists
	CrossCheck bool
}

// Report is the outcome of a benchmark run
type Report struct {
	RunID          string
	Name           string
	Algorithm      algorithms.Kind
	Directed       bool
	Vertices       int
	Edges          int
	LoadTime       time.Duration
	ProcessingTime time.Duration
	OutputPath     string
	Output         algorithms.Output
	Checks         []output.Check
}

// Passed reports whether every requested check passed
func (r *Report) Passed() bool {
	return r.Summary().Passed()
}

// Summary converts the report for the console printer
func (r *Report) Summary() output.RunSummary {
	return output.RunSummary{
		Name:           r.Name,
		RunID:          r.RunID,
		Algorithm:      r.Algorithm.String(),
		Directed:       r.Directed,
		Vertices:       r.Vertices,
		Edges:          r.Edges,
		LoadTime:       r.LoadTime,
		ProcessingTime: r.ProcessingTime,
		OutputPath:     r.OutputPath,
		Checks:         r.Checks,
	}
}

// Run loads the graph described by job and executes the benchmark on it
func Run(ctx context.Context, job Job) (*Report, error) {
	if job.Params == nil {
		return nil, fmt.Errorf("%w: no algorithm selected", algorithms.ErrUnsupportedAlgorithm)
	}

	ctx, done := logging.StartRun(ctx, "benchmark",
		"name", job.Name,
		"algorithm", job.Params.Kind(),
	)

	_, loaded := logging.StartRun(ctx, "load", "vertices", job.VertexPath, "edges", job.EdgePath)
	g, err := loader.LoadFiles(job.VertexPath, job.EdgePath, job.Graph)
	loadTime := loaded(err)
	if err != nil {
		done(err)
		return nil, fmt.Errorf("loading graph: %w", err)
	}

	report, err := Execute(ctx, g, job)
	if report != nil {
		report.LoadTime = loadTime
	}
	done(err)
	return report, err
}

// Execute runs the benchmark on an already loaded graph. A failed validation is
// recorded in the report, not returned as an error.
func Execute(ctx context.Context, g *graph.Graph, job Job) (*Report, error) {
	if job.Params == nil {
		return nil, fmt.Errorf("%w: no algorithm selected", algorithms.ErrUnsupportedAlgorithm)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := &Report{
		RunID:      logging.GetRunID(ctx),
		Name:       job.Name,
		Algorithm:  job.Params.Kind(),
		Directed:   g.Directed(),
		Vertices:   g.VertexCount(),
		Edges:      g.EdgeCount(),
		OutputPath: job.OutputPath,
	}

	processCtx, processed := logging.StartRun(ctx, "processing", "algorithm", job.Params.Kind())
	out, err := algorithms.Run(g, job.Params)
	report.ProcessingTime = processed(err)
	if err != nil {
		return nil, fmt.Errorf("running %v: %w", job.Params.Kind(), err)
	}
	report.Output = out

	logging.DebugContext(processCtx, "processing time",
		"algorithm", job.Params.Kind(),
		"micros", report.ProcessingTime.Microseconds(),
		"results", out.Len(),
	)

	if job.OutputPath != "" {
		if err := output.WriteResultsFile(job.OutputPath, out); err != nil {
			return nil, fmt.Errorf("writing output: %w", err)
		}
		logging.InfoContext(ctx, "wrote output", "path", job.OutputPath)
	}

	if job.ExpectedPath != "" {
		report.Checks = append(report.Checks, validateExpected(ctx, job, out))
	}

	if job.CrossCheck {
		if check, ok := crossCheck(ctx, g, job.Params, out); ok {
			report.Checks = append(report.Checks, check)
		}
	}

	return report, nil
}

func validateExpected(ctx context.Context, job Job, out algorithms.Output) output.Check {
	check := output.Check{Name: "expected output " + job.ExpectedPath}

	expected, err := loader.ReadResultsFile(job.ExpectedPath)
	if err == nil {
		err = validate.Compare(job.Params.Kind(), expected, out)
	}
	if err != nil {
		logging.WarnContext(ctx, "validation failed", "expected", job.ExpectedPath, "error", err)
		check.Detail = err.Error()
		return check
	}

	logging.InfoContext(ctx, "validation passed", "expected", job.ExpectedPath)
	check.Passed = true
	return check
}

// crossCheck returns false when no independent implementation exists for the algorithm
func crossCheck(ctx context.Context, g *graph.Graph, params algorithms.Params, out algorithms.Output) (output.Check, bool) {
	check := output.Check{Name: "cross-check (gonum)"}

	err := validate.CrossCheck(g, params, out)
	switch {
	case errors.Is(err, validate.ErrNotCheckable):
		logging.InfoContext(ctx, "cross-check skipped", "algorithm", params.Kind(), "reason", err)
		return check, false
	case err != nil:
		logging.WarnContext(ctx, "cross-check failed", "algorithm", params.Kind(), "error", err)
		check.Detail = err.Error()
		return check, true
	}

	logging.InfoContext(ctx, "cross-check passed", "algorithm", params.Kind())
	check.Passed = true
	return check, true
}
