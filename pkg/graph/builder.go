package graph

import (
	"fmt"
)

// Builder assembles a Graph from a vertex stream followed by an edge stream
type Builder struct {
	g *Graph
}

// NewBuilder creates a builder for a graph with the given directedness and
// per-graph property types
func NewBuilder(directed bool, vertexTypes, edgeTypes []PropertyType) (*Builder, error) {
	if err := validateTypes(vertexTypes); err != nil {
		return nil, fmt.Errorf("vertex properties: %w", err)
	}
	if err := validateTypes(edgeTypes); err != nil {
		return nil, fmt.Errorf("edge properties: %w", err)
	}

	return &Builder{
		g: &Graph{
			directed:    directed,
			vertexTypes: vertexTypes,
			edgeTypes:   edgeTypes,
			index:       make(map[int64]int),
		},
	}, nil
}

// AddVertex adds a vertex with its raw property tokens.
// Returns ErrPropertyArity if the token count differs from the declared types.
func (b *Builder) AddVertex(id int64, tokens []string) error {
	if _, exists := b.g.index[id]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicateVertex, id)
	}

	values, err := parseValues(b.g.vertexTypes, tokens)
	if err != nil {
		return fmt.Errorf("vertex %d: %w", id, err)
	}

	b.g.index[id] = len(b.g.ids)
	b.g.ids = append(b.g.ids, id)
	b.g.vertexProps = append(b.g.vertexProps, values)
	b.g.adj = append(b.g.adj, nil)
	b.g.edgeProps = append(b.g.edgeProps, nil)
	return nil
}

// AddEdge appends an edge to the adjacency of its source vertex. For undirected
// graphs the mirrored edge is appended to the destination as well, sharing the
// same property values. Both endpoints must have been added already.
func (b *Builder) AddEdge(source, destination int64, tokens []string) error {
	src, ok := b.g.index[source]
	if !ok {
		return fmt.Errorf("edge %d->%d: %w: %d", source, destination, ErrUnknownVertex, source)
	}
	dst, ok := b.g.index[destination]
	if !ok {
		return fmt.Errorf("edge %d->%d: %w: %d", source, destination, ErrUnknownVertex, destination)
	}

	values, err := parseValues(b.g.edgeTypes, tokens)
	if err != nil {
		return fmt.Errorf("edge %d->%d: %w", source, destination, err)
	}

	b.g.adj[src] = append(b.g.adj[src], dst)
	b.g.edgeProps[src] = append(b.g.edgeProps[src], values)
	if !b.g.directed {
		b.g.adj[dst] = append(b.g.adj[dst], src)
		b.g.edgeProps[dst] = append(b.g.edgeProps[dst], values)
	}
	b.g.edgeCount++
	return nil
}

// VertexCount returns the number of vertices added so far
func (b *Builder) VertexCount() int { return len(b.g.ids) }

// Build returns the assembled graph. The builder must not be used afterwards.
func (b *Builder) Build() *Graph {
	g := b.g
	b.g = nil
	return g
}
