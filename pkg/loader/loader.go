package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/ritzau/graphalytics-go/pkg/graph"
	"github.com/ritzau/graphalytics-go/pkg/logging"
)

// ErrMalformedLine is returned for lines that do not start with the expected ids
var ErrMalformedLine = errors.New("malformed line")

const maxLineSize = 1 << 20

// VertexRecord is one line of a vertex file: id [properties...]
type VertexRecord struct {
	ID     int64
	Values []string
}

// EdgeRecord is one line of an edge file: source destination [properties...]
type EdgeRecord struct {
	Source      int64
	Destination int64
	Values      []string
}

// Options describes the graph stored in a vertex/edge file pair
type Options struct {
	Directed         bool
	VertexProperties []graph.PropertyType
	EdgeProperties   []graph.PropertyType
}

// scanFields calls fn with the whitespace-separated fields of every non-empty line
func scanFields(r io.Reader, fn func(lineNo int, fields []string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if err := fn(lineNo, fields); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func parseID(lineNo int, token string) (int64, error) {
	id, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: %w: invalid vertex id %q", lineNo, ErrMalformedLine, token)
	}
	return id, nil
}

// ReadVertices streams the records of a vertex file
func ReadVertices(r io.Reader, fn func(VertexRecord) error) error {
	return scanFields(r, func(lineNo int, fields []string) error {
		id, err := parseID(lineNo, fields[0])
		if err != nil {
			return err
		}
		if err := fn(VertexRecord{ID: id, Values: fields[1:]}); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		return nil
	})
}

// ReadEdges streams the records of an edge file
func ReadEdges(r io.Reader, fn func(EdgeRecord) error) error {
	return scanFields(r, func(lineNo int, fields []string) error {
		if len(fields) < 2 {
			return fmt.Errorf("line %d: %w: expected source and destination", lineNo, ErrMalformedLine)
		}
		src, err := parseID(lineNo, fields[0])
		if err != nil {
			return err
		}
		dst, err := parseID(lineNo, fields[1])
		if err != nil {
			return err
		}
		if err := fn(EdgeRecord{Source: src, Destination: dst, Values: fields[2:]}); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		return nil
	})
}

// Load builds a graph from a vertex stream followed by an edge stream
func Load(vertices, edges io.Reader, opts Options) (*graph.Graph, error) {
	b, err := graph.NewBuilder(opts.Directed, opts.VertexProperties, opts.EdgeProperties)
	if err != nil {
		return nil, err
	}

	if err := ReadVertices(vertices, func(v VertexRecord) error {
		return b.AddVertex(v.ID, v.Values)
	}); err != nil {
		return nil, fmt.Errorf("reading vertices: %w", err)
	}

	if err := ReadEdges(edges, func(e EdgeRecord) error {
		return b.AddEdge(e.Source, e.Destination, e.Values)
	}); err != nil {
		return nil, fmt.Errorf("reading edges: %w", err)
	}

	return b.Build(), nil
}

// LoadFiles builds a graph from a vertex file and an edge file
func LoadFiles(vertexPath, edgePath string, opts Options) (*graph.Graph, error) {
	vertexFile, err := os.Open(vertexPath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = vertexFile.Close() }()

	edgeFile, err := os.Open(edgePath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = edgeFile.Close() }()

	logging.Debug("loading graph",
		"vertexFile", vertexPath,
		"vertexFileSize", fileSize(vertexFile),
		"edgeFile", edgePath,
		"edgeFileSize", fileSize(edgeFile),
	)

	g, err := Load(vertexFile, edgeFile, opts)
	if err != nil {
		return nil, err
	}

	logging.Info("loaded graph",
		"vertices", humanize.Comma(int64(g.VertexCount())),
		"edges", humanize.Comma(int64(g.EdgeCount())),
		"directed", g.Directed(),
	)
	return g, nil
}

func fileSize(f *os.File) string {
	info, err := f.Stat()
	if err != nil {
		return "unknown"
	}
	return humanize.Bytes(uint64(info.Size()))
}
