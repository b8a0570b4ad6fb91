package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ritzau/graphalytics-go/pkg/benchmark"
	"github.com/ritzau/graphalytics-go/pkg/config"
	"github.com/ritzau/graphalytics-go/pkg/logging"
	"github.com/ritzau/graphalytics-go/pkg/output"
	"github.com/spf13/pflag"
)

func main() {
	// Parse command-line flags
	flags := pflag.NewFlagSet("graphalytics", pflag.ExitOnError)
	config.RegisterFlags(flags)
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: graphalytics --vertices <file> --edges <file> --algorithm <name> [options]\n\n")
		flags.PrintDefaults()
	}
	_ = flags.Parse(os.Args[1:])

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	level, err := logging.ParseLevel(cfg.Verbosity, cfg.VerboseCnt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logging.Setup(os.Stderr, level, cfg.JSONLogs)

	if err := cfg.Resolve(); err != nil {
		logging.Fatal("resolving dataset", "error", err)
	}
	if err := cfg.Validate(); err != nil {
		logging.Fatal("invalid configuration", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := run(ctx, cfg)
	if err != nil {
		stop()
		logging.Fatal("benchmark failed", "error", err)
	}

	// Print colorized run report to console
	output.PrintRunReport(os.Stdout, report.Summary())
	if !report.Passed() {
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) (*benchmark.Report, error) {
	opts, err := cfg.GraphOptions()
	if err != nil {
		return nil, err
	}
	params, err := cfg.Params()
	if err != nil {
		return nil, err
	}

	return benchmark.Run(ctx, benchmark.Job{
		Name:         cfg.GraphName(),
		VertexPath:   cfg.Vertices,
		EdgePath:     cfg.Edges,
		Graph:        opts,
		Params:       params,
		OutputPath:   cfg.OutputPath(),
		ExpectedPath: cfg.Expected,
		CrossCheck:   cfg.CrossCheck,
	})
}
