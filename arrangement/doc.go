// Package arrangement converts a central hyperplane arrangement into
// covector data for the oriom package.
//
// What it does:
//
//   - Stores hyperplanes through the origin in Rᵈ as their normal
//     vectors, with optional custom labels (default h1..hn).
//   - Extracts cocircuits: for every (d−1)-subset of normals with a
//     one-dimensional common orthogonal space, the sign vector of a
//     kernel generator and its negation.
//   - Closes the cocircuits under composition, together with the zero
//     vector, yielding every covector of the arrangement.
//
// Model & assumptions:
//
//   - The arrangement must be essential: the normals span Rᵈ. A
//     non-essential arrangement is rejected at construction
//     (ErrNotEssential); drop the unused coordinates first.
//   - Sign extraction uses an epsilon threshold (WithEpsilon,
//     default linalg.DefaultEps) to absorb floating-point noise.
//
// Determinism: hyperplanes keep their input order, candidate subsets
// are scanned in lexicographic index order, and the covector list is
// emitted in sorted sign-vector order.
//
// Complexity: O(C(n,d−1)·d³) for cocircuit extraction over n
// hyperplanes in Rᵈ, plus the composition closure (output-sensitive).
//
// See also: package pointconfig for the circuit-side adapter and
// package oriom for the covector axioms.
package arrangement
