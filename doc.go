// Package orimat is your in-memory toolkit for building and interrogating
// oriented matroids — from the raw signed-set algebra up to face lattices
// and tope posets.
//
// 🚀 What is orimat?
//
//	A pure-Go combinatorics library that brings together:
//		• Signed sets: negation, composition, separation, reorientation
//		• Axiom engines: circuit, vector and covector validation
//		• Order structures: face poset, face lattice, tope poset
//		• Structural predicates: loops, parallel pairs, simple, acyclic, simplicial
//		• Minors: deletion and restriction by groundset subsets
//		• Adapters: labeled digraphs, central hyperplane arrangements,
//		  point configurations → raw signed-set data
//
// ✨ Why choose orimat?
//
//   - Fail-fast guarantees – invalid axiom systems never construct
//   - Deterministic – fixed iteration orders, reproducible error reporting
//   - Pure Go – no cgo, no hidden deps
//   - Value semantics – every operation returns a fresh, immutable result
//
// Under the hood, everything is organized in small focused packages:
//
//	signedset/   — the Set and SignedSet algebra all axioms are built on
//	oriom/       — Circuits, Vectors, Covectors: validation, minors, rank
//	faces/       — poset/lattice builders: topes, intervals, tope order
//	digraph/     — labeled digraph → circuit data (simple-cycle adapter)
//	arrangement/ — central hyperplane arrangement → covector data
//	pointconfig/ — point configuration → circuit data (affine dependencies)
//	linalg/      — small Gaussian-elimination kernels used by the adapters
//
// Quick example — the rank-1 oriented matroid on one element:
//
//	cov, _ := oriom.NewCovectors([][]int{{1}, {-1}, {0}}, []string{"e"})
//	cov.Topes() // → (+) and (−)
//
// Dive into each package's doc.go for axioms, complexity notes and
// worked examples.
//
//	go get github.com/katalvlaran/orimat
package orimat
