// Package oriom: raw-data materialization shared by all collection
// constructors. Turns any accepted input form into a slice of
// SignedSets over one agreed groundset, or fails with a construction
// sentinel.
package oriom

import (
	"fmt"

	"github.com/katalvlaran/orimat/signedset"
)

// materializeSigns builds elements from sign vectors aligned with
// ground. A nil ground falls back to positional labels, as FromSigns
// does. Repeated rows are kept once.
func materializeSigns(data [][]int, ground []string) ([]signedset.SignedSet, []string, error) {
	if len(data) == 0 {
		return nil, nil, ErrEmptyCollection
	}
	out := make([]signedset.SignedSet, 0, len(data))
	for i, row := range data {
		x, err := signedset.FromSigns(ground, row)
		if err != nil {
			return nil, nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, x)
	}
	out = dedupe(out)

	return out, out[0].Groundset(), nil
}

// materializeParts builds elements from (positives, negatives[, zeroes])
// triples. When ground is nil it is inferred once, as the sorted union
// of every label referenced anywhere in data, so all elements agree on
// one groundset.
func materializeParts(data []signedset.Parts, ground []string) ([]signedset.SignedSet, []string, error) {
	if len(data) == 0 {
		return nil, nil, ErrEmptyCollection
	}
	if ground == nil {
		all := signedset.NewSet()
		for _, p := range data {
			for _, l := range p.Positives {
				all.Add(l)
			}
			for _, l := range p.Negatives {
				all.Add(l)
			}
			for _, l := range p.Zeroes {
				all.Add(l)
			}
		}
		ground = all.Sorted()
	}

	out := make([]signedset.SignedSet, 0, len(data))
	for i, p := range data {
		x, err := signedset.FromParts(ground, p)
		if err != nil {
			return nil, nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, x)
	}
	out = dedupe(out)

	return out, out[0].Groundset(), nil
}

// adoptElements takes ready-made SignedSets and verifies they all share
// one groundset (order included). Repeated elements are kept once.
func adoptElements(elements []signedset.SignedSet) ([]signedset.SignedSet, []string, error) {
	if len(elements) == 0 {
		return nil, nil, ErrEmptyCollection
	}
	ground := elements[0].Groundset()
	out := make([]signedset.SignedSet, len(elements))
	for i, x := range elements {
		g := x.Groundset()
		if len(g) != len(ground) {
			return nil, nil, fmt.Errorf("element %d: %w", i, ErrMixedGroundsets)
		}
		for k := range g {
			if g[k] != ground[k] {
				return nil, nil, fmt.Errorf("element %d: %w", i, ErrMixedGroundsets)
			}
		}
		out[i] = x.Clone()
	}

	return dedupe(out), ground, nil
}

// index builds a fingerprint→position lookup used by the membership
// tests inside the axiom checks.
func index(elements []signedset.SignedSet) map[string]int {
	idx := make(map[string]int, len(elements))
	for i, x := range elements {
		if _, seen := idx[x.Fingerprint()]; !seen {
			idx[x.Fingerprint()] = i
		}
	}

	return idx
}

// contains reports membership of x in the indexed family.
func contains(idx map[string]int, x signedset.SignedSet) bool {
	_, ok := idx[x.Fingerprint()]
	return ok
}
