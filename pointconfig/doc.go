// Package pointconfig converts a finite point configuration into
// circuit data for the oriom package.
//
// What it does:
//
//   - Stores points of Rᵈ with optional custom labels (default p1..pn).
//   - Homogenizes each point (appends a 1-coordinate) so that affine
//     dependencies Σcᵢ·pᵢ = 0, Σcᵢ = 0 become linear ones.
//   - Scans point subsets in lexicographic order; each minimal
//     dependent subset with a one-dimensional dependency space yields
//     a signed circuit (positive coefficients, negative coefficients)
//     and its negation.
//
// Minimality is enforced by the coefficient test: a dependency with a
// zero coefficient means a proper subset is already dependent, so the
// subset is skipped and the smaller circuit is found on its own.
//
// Sign extraction uses an epsilon threshold (WithEpsilon, default
// linalg.DefaultEps). Each circuit is oriented so the lowest-index
// point of its support is positive, then emitted with its negation.
//
// Complexity: O(Σₖ C(n,k)·d³) over subset sizes k ≤ d+2 — circuits of
// n points in Rᵈ never exceed d+2 points.
//
// See also: package arrangement for the covector-side adapter and
// package oriom for the circuit axioms.
package pointconfig
