// Package digraph: the labeled digraph store.
// Deterministic by construction: vertex and edge walks run in sorted
// order, and every mutation validates eagerly against the sentinels
// below.
package digraph

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for digraph construction.
var (
	// ErrEmptyVertexID indicates an empty vertex identifier.
	ErrEmptyVertexID = errors.New("digraph: vertex ID is empty")

	// ErrEmptyEdgeLabel indicates an empty edge label.
	ErrEmptyEdgeLabel = errors.New("digraph: edge label is empty")

	// ErrDuplicateEdgeLabel indicates a label already used by another edge.
	ErrDuplicateEdgeLabel = errors.New("digraph: edge labels must be unique")

	// ErrEdgeExists indicates a second edge between the same ordered pair.
	ErrEdgeExists = errors.New("digraph: edge already exists between these vertices")
)

// DiGraph is a directed graph with uniquely labeled edges.
type DiGraph struct {
	vertices map[string]struct{}
	out      map[string]map[string]string // from → to → label
	in       map[string]map[string]string // to → from → label
	labels   map[string]struct{}
}

// New creates an empty DiGraph.
func New() *DiGraph {
	return &DiGraph{
		vertices: make(map[string]struct{}),
		out:      make(map[string]map[string]string),
		in:       make(map[string]map[string]string),
		labels:   make(map[string]struct{}),
	}
}

// AddVertex inserts a vertex. Adding an existing vertex is a no-op.
func (g *DiGraph) AddVertex(id string) error {
	if id == "" {
		return fmt.Errorf("AddVertex: %w", ErrEmptyVertexID)
	}
	g.vertices[id] = struct{}{}

	return nil
}

// AddEdge inserts the directed edge from→to carrying label, creating
// missing endpoints. One edge per ordered pair; labels are unique
// across the graph. Self-loops are allowed.
func (g *DiGraph) AddEdge(from, to, label string) error {
	if from == "" || to == "" {
		return fmt.Errorf("AddEdge: %w", ErrEmptyVertexID)
	}
	if label == "" {
		return fmt.Errorf("AddEdge: %w", ErrEmptyEdgeLabel)
	}
	if _, used := g.labels[label]; used {
		return fmt.Errorf("AddEdge(%q): %w", label, ErrDuplicateEdgeLabel)
	}
	if _, ok := g.out[from][to]; ok {
		return fmt.Errorf("AddEdge(%q→%q): %w", from, to, ErrEdgeExists)
	}

	g.vertices[from] = struct{}{}
	g.vertices[to] = struct{}{}
	if g.out[from] == nil {
		g.out[from] = make(map[string]string)
	}
	if g.in[to] == nil {
		g.in[to] = make(map[string]string)
	}
	g.out[from][to] = label
	g.in[to][from] = label
	g.labels[label] = struct{}{}

	return nil
}

// Vertices returns the vertex IDs in sorted order.
func (g *DiGraph) Vertices() []string {
	out := make([]string, 0, len(g.vertices))
	for v := range g.vertices {
		out = append(out, v)
	}
	sort.Strings(out)

	return out
}

// Labels returns the edge labels — the groundset — in sorted order.
func (g *DiGraph) Labels() []string {
	out := make([]string, 0, len(g.labels))
	for l := range g.labels {
		out = append(out, l)
	}
	sort.Strings(out)

	return out
}

// step is one traversal move: an edge used forward (positive) or
// backward (negative).
type step struct {
	to       string
	label    string
	positive bool
}

// steps returns every move available from vertex id, forward edges
// first, each group in sorted target order.
func (g *DiGraph) steps(id string) []step {
	var out []step
	for _, to := range sortedKeys(g.out[id]) {
		out = append(out, step{to: to, label: g.out[id][to], positive: true})
	}
	for _, from := range sortedKeys(g.in[id]) {
		out = append(out, step{to: from, label: g.in[id][from], positive: false})
	}

	return out
}

// sortedKeys returns the keys of m in sorted order.
func sortedKeys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
