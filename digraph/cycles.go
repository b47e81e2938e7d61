// Package digraph: simple-cycle enumeration and circuit extraction.
// Cycles are discovered by depth-first search over traversal steps
// (edge + direction), deduplicated through a canonical minimal-rotation
// signature. The two orientations of a cycle produce different step
// signs and are therefore kept as distinct circuits.
package digraph

import (
	"fmt"

	"github.com/katalvlaran/orimat/oriom"
	"github.com/katalvlaran/orimat/signedset"
)

// CircuitData enumerates the simple cycles of the graph and returns one
// (positives, negatives) pair per non-degenerate directed cycle:
// forward-edge labels positive, backward-edge labels negative. The
// output, over Labels() as groundset, is raw circuit data for
// oriom.NewCircuitsFromParts.
func (g *DiGraph) CircuitData() []signedset.Parts {
	seen := make(map[string]struct{})
	var data []signedset.Parts

	// Launch a DFS from every vertex; signature dedupe collapses the
	// rotations of each cycle discovered from different starts.
	for _, start := range g.Vertices() {
		visited := map[string]struct{}{start: {}}
		g.visit(start, start, visited, nil, seen, &data)
	}

	return data
}

// Circuits builds the validated circuit oriented matroid of the graph.
func (g *DiGraph) Circuits() (*oriom.Circuits, error) {
	m, err := oriom.NewCircuitsFromParts(g.CircuitData(), g.Labels())
	if err != nil {
		return nil, fmt.Errorf("digraph: Circuits: %w", err)
	}

	return m, nil
}

// visit extends the step path from current, recording every cycle that
// closes back at start. Vertices stay distinct along the path, so each
// recorded cycle is simple.
func (g *DiGraph) visit(
	start, current string,
	visited map[string]struct{},
	path []step,
	seen map[string]struct{},
	data *[]signedset.Parts,
) {
	for _, s := range g.steps(current) {
		// 1) Closing step: back at the start, a full cycle is on the path.
		if s.to == start {
			recordCycle(append(path, s), seen, data)
			continue
		}
		// 2) Extension step: only into vertices not yet on the path.
		if _, ok := visited[s.to]; ok {
			continue
		}
		visited[s.to] = struct{}{}
		g.visit(start, s.to, visited, append(path, s), seen, data)
		delete(visited, s.to)
	}
}

// recordCycle canonicalizes the step cycle, drops degenerate cycles
// (an edge used in both directions) and rotation duplicates, and
// appends the signed label pair.
func recordCycle(cycle []step, seen map[string]struct{}, data *[]signedset.Parts) {
	// 1) Split labels by traversal direction.
	pos, neg := signedset.NewSet(), signedset.NewSet()
	tokens := make([]string, len(cycle))
	for i, s := range cycle {
		if s.positive {
			pos.Add(s.label)
			tokens[i] = "+" + s.label
		} else {
			neg.Add(s.label)
			tokens[i] = "-" + s.label
		}
	}

	// 2) An edge traversed both ways cancels itself: not a circuit.
	if pos.Inter(neg).Len() > 0 {
		return
	}

	// 3) Canonical signature: the minimal rotation of the step tokens.
	// Orientation is preserved — the reversed cycle signs differently
	// and keeps its own signature.
	sig := joinSig(minimalRotation(tokens))
	if _, dup := seen[sig]; dup {
		return
	}
	seen[sig] = struct{}{}

	*data = append(*data, signedset.Parts{
		Positives: pos.Sorted(),
		Negatives: neg.Sorted(),
	})
}
