// Package oriom: the polymorphic surface shared by all representations.
package oriom

import (
	"fmt"

	"github.com/katalvlaran/orimat/signedset"
)

// OrientedMatroid is the contract every representation satisfies: an
// ordered groundset, the defining family, a full re-check of the
// representation's axioms, and the underlying matroid's rank.
type OrientedMatroid interface {
	// Groundset returns the ordered groundset labels.
	Groundset() []string

	// Elements returns the defining family for the representation.
	Elements() []signedset.SignedSet

	// Validate re-runs the representation's axiom checks.
	Validate() error

	// Rank returns the rank of the underlying matroid.
	Rank() int
}

// Compile-time interface conformance.
var (
	_ OrientedMatroid = (*Circuits)(nil)
	_ OrientedMatroid = (*Vectors)(nil)
	_ OrientedMatroid = (*Covectors)(nil)
)

// circuitser is satisfied by representations that define circuits.
type circuitser interface {
	Circuits() []signedset.SignedSet
}

// covectorser is satisfied by representations that define covectors.
type covectorser interface {
	Covectors() []signedset.SignedSet
}

// vectorser is satisfied by representations that define vectors.
type vectorser interface {
	Vectors() []signedset.SignedSet
}

// CircuitsOf returns the circuits of m, or ErrNoSuchDerived when the
// representation does not define them.
func CircuitsOf(m OrientedMatroid) ([]signedset.SignedSet, error) {
	if c, ok := m.(circuitser); ok {
		return c.Circuits(), nil
	}

	return nil, fmt.Errorf("CircuitsOf: %w", ErrNoSuchDerived)
}

// VectorsOf returns the vectors of m, or ErrNoSuchDerived when the
// representation does not define them.
func VectorsOf(m OrientedMatroid) ([]signedset.SignedSet, error) {
	if v, ok := m.(vectorser); ok {
		return v.Vectors(), nil
	}

	return nil, fmt.Errorf("VectorsOf: %w", ErrNoSuchDerived)
}

// CovectorsOf returns the covectors of m, or ErrNoSuchDerived when the
// representation does not define them.
func CovectorsOf(m OrientedMatroid) ([]signedset.SignedSet, error) {
	if l, ok := m.(covectorser); ok {
		return l.Covectors(), nil
	}

	return nil, fmt.Errorf("CovectorsOf: %w", ErrNoSuchDerived)
}
