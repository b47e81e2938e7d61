// Package digraph turns a labeled directed graph into raw circuit data
// for an oriented matroid.
//
// Every edge carries a unique label; labels form the groundset. Each
// simple cycle of the graph — traversing edges forward (positive) or
// backward (negative) — yields one circuit candidate: the labels of the
// forward edges go positive, the labels of the backward edges negative.
// A cycle whose forward and backward label sets intersect is degenerate
// (an edge immediately undone by its own reversal) and is discarded.
// Both traversal directions of every cycle are enumerated, so the
// emitted family is closed under negation by construction.
//
// Enumeration is depth-first with a canonical minimal-rotation
// signature per directed cycle, deduplicating rotations of the same
// cycle while keeping the two orientations distinct. Iteration order is
// sorted everywhere, so the output is deterministic.
//
// Complexity: O(V + E + C·L) for C simple cycles of average length L.
package digraph
