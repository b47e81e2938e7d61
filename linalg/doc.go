// Package linalg provides the two small dense-matrix kernels the
// geometric adapters need: matrix rank and the generator of a
// one-dimensional nullspace, both via partial-pivot Gaussian
// elimination under an explicit epsilon policy.
//
// Values within epsilon of zero are treated as zero; the default
// (DefaultEps) suits well-conditioned small inputs, and WithEpsilon
// overrides it. All failures are package sentinels matched with
// errors.Is; inputs are never mutated.
//
// This is deliberately not a general linear-algebra library — only the
// operations the hyperplane-arrangement and point-configuration
// adapters exercise are provided.
package linalg
