package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/ritzau/graphalytics-go/pkg/algorithms"
	"github.com/ritzau/graphalytics-go/pkg/finder"
	"github.com/ritzau/graphalytics-go/pkg/graph"
	"github.com/ritzau/graphalytics-go/pkg/loader"
	"github.com/spf13/pflag"
)

// DefaultFile is read from the working directory when no --config is given
const DefaultFile = "graphalytics.toml"

const envPrefix = "GRAPHALYTICS_"

// ErrMissingInput is returned when the vertex or edge file is not configured
var ErrMissingInput = errors.New("missing input")

// Config holds all configuration for a benchmark run
type Config struct {
	Name             string   `koanf:"name"`
	GraphDir         string   `koanf:"graph-dir"`
	Vertices         string   `koanf:"vertices"`
	Edges            string   `koanf:"edges"`
	Directed         bool     `koanf:"directed"`
	VertexProperties []string `koanf:"vertex-properties"`
	EdgeProperties   []string `koanf:"edge-properties"`

	Algorithm     string  `koanf:"algorithm"`
	Source        int64   `koanf:"source"`
	MaxIterations int     `koanf:"max-iterations"`
	DampingFactor float64 `koanf:"damping-factor"`
	Iterations    int     `koanf:"iterations"`

	OutputDir  string `koanf:"output-dir"`
	Output     string `koanf:"output"`
	Expected   string `koanf:"expected"`
	CrossCheck bool   `koanf:"cross-check"`

	Verbosity  string `koanf:"verbosity"`
	VerboseCnt int    `koanf:"verbose"`
	JSONLogs   bool   `koanf:"json-logs"`
}

// Defaults returns the built-in configuration values
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"name":              "",
		"graph-dir":         "",
		"vertices":          "",
		"edges":             "",
		"directed":          false,
		"vertex-properties": []string{},
		"edge-properties":   []string{},
		"algorithm":         "",
		"source":            int64(0),
		"max-iterations":    10,
		"damping-factor":    0.85,
		"iterations":        10,
		"output-dir":        "",
		"output":            "",
		"expected":          "",
		"cross-check":       false,
		"verbosity":         "",
		"verbose":           0,
		"json-logs":         false,
	}
}

// RegisterFlags defines the command-line flags that Load understands
func RegisterFlags(f *pflag.FlagSet) {
	f.String("config", "", "Configuration file (default "+DefaultFile+" if present)")
	f.String("name", "", "Graph name used in reports and output file names")
	f.String("graph-dir", "", "Directory searched for <name>.v, <name>.e and <name>-<ALGORITHM> reference outputs")
	f.StringP("vertices", "V", "", "Vertex file: one \"<id> [properties...]\" per line")
	f.StringP("edges", "E", "", "Edge file: one \"<src> <dst> [properties...]\" per line")
	f.BoolP("directed", "d", false, "Treat edges as directed")
	f.StringSlice("vertex-properties", nil, "Vertex property types (int, real)")
	f.StringSlice("edge-properties", nil, "Edge property types (int, real); the first is the SSSP weight")
	f.StringP("algorithm", "a", "", "Algorithm: bfs, wcc, cdlp, pr, lcc, sssp")
	f.Int64P("source", "s", 0, "Source vertex for bfs and sssp")
	f.Int("max-iterations", 10, "Maximum iterations for cdlp")
	f.Float64("damping-factor", 0.85, "Damping factor for pr")
	f.Int("iterations", 10, "Iterations for pr")
	f.String("output-dir", "", "Directory for the result file (named <name>-<ALGORITHM>)")
	f.StringP("output", "o", "", "Result file path (overrides --output-dir)")
	f.String("expected", "", "Reference result file to validate against")
	f.Bool("cross-check", false, "Recompute bfs, wcc and sssp with gonum and compare")
	f.String("verbosity", "", "Log level: trace, debug, info, warn, error")
	f.CountP("verbose", "v", "Increase log verbosity (-v debug, -vv trace)")
	f.Bool("json-logs", false, "Write logs as JSON")
}

// Load loads configuration from defaults, config file, environment variables, and flags.
// Priority: Flags > Env > Config File > Defaults
func Load(f *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(makeMapProvider(Defaults()), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config File - an explicit --config must exist, the default file is optional
	if path := configPath(f); path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	} else {
		_ = k.Load(file.Provider(DefaultFile), toml.Parser())
	}

	// 3. Environment Variables
	// Prefix: GRAPHALYTICS_ (e.g., GRAPHALYTICS_MAX_ITERATIONS=20)
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(
			strings.TrimPrefix(s, envPrefix)), "_", "-")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags
	if f != nil {
		if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Lists from the environment arrive as one comma separated value
	cfg.VertexProperties = splitList(cfg.VertexProperties)
	cfg.EdgeProperties = splitList(cfg.EdgeProperties)

	return &cfg, nil
}

func configPath(f *pflag.FlagSet) string {
	if f == nil || f.Lookup("config") == nil {
		return ""
	}
	path, _ := f.GetString("config")
	return path
}

func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// Resolve fills in the vertex, edge and expected files of the named dataset
// from graph-dir. Explicitly configured paths are kept.
func (c *Config) Resolve() error {
	if c.GraphDir == "" || (c.Vertices != "" && c.Edges != "") {
		return nil
	}
	if c.Name == "" {
		return fmt.Errorf("%w: name of a dataset in %s", ErrMissingInput, c.GraphDir)
	}

	ds, err := finder.FindDataset(c.GraphDir, c.Name)
	if err != nil {
		return err
	}
	if c.Vertices == "" {
		c.Vertices = ds.VertexPath
	}
	if c.Edges == "" {
		c.Edges = ds.EdgePath
	}
	if c.Expected == "" {
		c.Expected = ds.Expected[strings.ToUpper(c.algorithmName())]
	}
	return nil
}

// Validate checks that the configuration describes a runnable benchmark
func (c *Config) Validate() error {
	if c.Vertices == "" {
		return fmt.Errorf("%w: vertex file (--vertices)", ErrMissingInput)
	}
	if c.Edges == "" {
		return fmt.Errorf("%w: edge file (--edges)", ErrMissingInput)
	}
	if _, err := c.GraphOptions(); err != nil {
		return err
	}
	_, err := c.Params()
	return err
}

// GraphOptions returns the loader options for the configured graph
func (c *Config) GraphOptions() (loader.Options, error) {
	vertexTypes, err := graph.ParsePropertyTypes(c.VertexProperties)
	if err != nil {
		return loader.Options{}, fmt.Errorf("vertex-properties: %w", err)
	}
	edgeTypes, err := graph.ParsePropertyTypes(c.EdgeProperties)
	if err != nil {
		return loader.Options{}, fmt.Errorf("edge-properties: %w", err)
	}
	return loader.Options{
		Directed:         c.Directed,
		VertexProperties: vertexTypes,
		EdgeProperties:   edgeTypes,
	}, nil
}

// Params maps the configured algorithm onto its parameter variant
func (c *Config) Params() (algorithms.Params, error) {
	kind, err := algorithms.ParseKind(c.Algorithm)
	if err != nil {
		return nil, err
	}

	switch kind {
	case algorithms.KindBFS:
		return algorithms.BFSParams{Source: c.Source}, nil
	case algorithms.KindWCC:
		return algorithms.WCCParams{}, nil
	case algorithms.KindCDLP:
		if c.MaxIterations < 0 {
			return nil, fmt.Errorf("%w: max-iterations %d", algorithms.ErrInvalidParameter, c.MaxIterations)
		}
		return algorithms.CDLPParams{MaxIterations: c.MaxIterations}, nil
	case algorithms.KindPageRank:
		if c.DampingFactor <= 0 || c.DampingFactor >= 1 {
			return nil, fmt.Errorf("%w: damping-factor %v", algorithms.ErrInvalidParameter, c.DampingFactor)
		}
		if c.Iterations < 0 {
			return nil, fmt.Errorf("%w: iterations %d", algorithms.ErrInvalidParameter, c.Iterations)
		}
		return algorithms.PageRankParams{DampingFactor: c.DampingFactor, Iterations: c.Iterations}, nil
	case algorithms.KindLCC:
		return algorithms.LCCParams{}, nil
	case algorithms.KindSSSP:
		return algorithms.SSSPParams{Source: c.Source}, nil
	default:
		return nil, fmt.Errorf("%w: %v", algorithms.ErrUnsupportedAlgorithm, kind)
	}
}

// GraphName is the configured name, or the vertex file name without extension
func (c *Config) GraphName() string {
	if c.Name != "" {
		return c.Name
	}
	base := filepath.Base(c.Vertices)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// OutputPath is where the result file goes, empty when no output was requested
func (c *Config) OutputPath() string {
	if c.Output != "" {
		return c.Output
	}
	if c.OutputDir == "" {
		return ""
	}
	return filepath.Join(c.OutputDir, c.GraphName()+"-"+strings.ToUpper(c.algorithmName()))
}

func (c *Config) algorithmName() string {
	if kind, err := algorithms.ParseKind(c.Algorithm); err == nil {
		return kind.String()
	}
	return c.Algorithm
}

// Helper to use map as a provider
type mapProvider struct {
	m map[string]interface{}
}

func makeMapProvider(m map[string]interface{}) *mapProvider {
	return &mapProvider{m: m}
}

func (p *mapProvider) Read() (map[string]interface{}, error) {
	return p.m, nil
}

func (p *mapProvider) ReadBytes() ([]byte, error) {
	return nil, fmt.Errorf("not implemented")
}
