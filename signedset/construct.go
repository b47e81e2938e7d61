// Package signedset: constructors.
//
// Four input forms are accepted, mirroring how raw signed-set data
// arrives from external producers:
//
//  1. FromSigns / ParseSigns — a sign vector aligned with the groundset
//  2. FromParts             — a (positives, negatives[, zeroes]) triple
//  3. FromSignMap           — a label→sign mapping
//  4. Clone                 — an existing SignedSet
//
// Every constructor normalizes its input to the exact partition
// invariant and fails fast with a package sentinel otherwise.
package signedset

import (
	"fmt"
	"sort"
)

// checkGroundset rejects duplicate labels and returns the groundset as
// both the ordered slice and a membership set.
func checkGroundset(ground []string) ([]string, Set, error) {
	gs := make(Set, len(ground))
	for _, l := range ground {
		if gs.Has(l) {
			return nil, nil, fmt.Errorf("groundset label %q: %w", l, ErrDuplicateLabel)
		}
		gs.Add(l)
	}
	ordered := make([]string, len(ground))
	copy(ordered, ground)

	return ordered, gs, nil
}

// inferGroundset builds a deterministic groundset from referenced
// labels: the sorted union.
func inferGroundset(referenced Set) []string {
	out := referenced.Sorted()
	sort.Strings(out)

	return out
}

// FromSigns builds a SignedSet from a numeric sign vector aligned with
// ground. Each entry must be -1, 0 or +1. When ground is nil, positional
// labels "0".."n-1" are used, matching index-labeled groundsets.
func FromSigns(ground []string, signs []int) (SignedSet, error) {
	if ground == nil {
		ground = make([]string, len(signs))
		for i := range signs {
			ground[i] = fmt.Sprintf("%d", i)
		}
	}
	if len(signs) != len(ground) {
		return SignedSet{}, fmt.Errorf("FromSigns: %d signs for %d labels: %w",
			len(signs), len(ground), ErrLengthMismatch)
	}
	ordered, _, err := checkGroundset(ground)
	if err != nil {
		return SignedSet{}, fmt.Errorf("FromSigns: %w", err)
	}

	pos, neg, zero := make(Set), make(Set), make(Set)
	for i, s := range signs {
		switch s {
		case 1:
			pos.Add(ordered[i])
		case -1:
			neg.Add(ordered[i])
		case 0:
			zero.Add(ordered[i])
		default:
			return SignedSet{}, fmt.Errorf("FromSigns: entry %d is %d: %w", i, s, ErrBadSign)
		}
	}

	return SignedSet{pos: pos, neg: neg, zero: zero, ground: ordered}, nil
}

// ParseSigns builds a SignedSet from textual sign tokens: "+", "-",
// and "0" or "" for zero. Layout rules match FromSigns.
func ParseSigns(ground []string, tokens []string) (SignedSet, error) {
	signs := make([]int, len(tokens))
	for i, t := range tokens {
		switch t {
		case "+":
			signs[i] = 1
		case "-":
			signs[i] = -1
		case "0", "":
			signs[i] = 0
		default:
			return SignedSet{}, fmt.Errorf("ParseSigns: token %d is %q: %w", i, t, ErrBadSignToken)
		}
	}

	return FromSigns(ground, signs)
}

// FromParts builds a SignedSet from a (positives, negatives[, zeroes])
// triple. When parts.Zeroes is nil they are inferred as the groundset
// minus the support. When ground is nil it is inferred as the sorted
// union of all referenced labels.
func FromParts(ground []string, parts Parts) (SignedSet, error) {
	pos := NewSet(parts.Positives...)
	neg := NewSet(parts.Negatives...)
	var zero Set
	if parts.Zeroes != nil {
		zero = NewSet(parts.Zeroes...)
	}

	// 1) The three component sets must be pairwise disjoint.
	if len(pos.Inter(neg)) > 0 ||
		(zero != nil && (len(pos.Inter(zero)) > 0 || len(neg.Inter(zero)) > 0)) {
		return SignedSet{}, fmt.Errorf("FromParts: %w", ErrOverlap)
	}

	// 2) Settle the groundset: given, or inferred from the references.
	referenced := pos.Union(neg)
	if zero != nil {
		referenced = referenced.Union(zero)
	}
	if ground == nil {
		ground = inferGroundset(referenced)
	}
	ordered, gs, err := checkGroundset(ground)
	if err != nil {
		return SignedSet{}, fmt.Errorf("FromParts: %w", err)
	}

	// 3) Every referenced label must live in the groundset.
	for _, l := range referenced.Sorted() {
		if !gs.Has(l) {
			return SignedSet{}, fmt.Errorf("FromParts: label %q: %w", l, ErrNotInGroundset)
		}
	}

	// 4) Infer zeroes when absent; otherwise the partition must be exact.
	if zero == nil {
		zero = gs.Diff(pos).Diff(neg)
	} else if !gs.IsSubsetOf(referenced) {
		return SignedSet{}, fmt.Errorf("FromParts: %w", ErrIncompletePartition)
	}

	return SignedSet{pos: pos, neg: neg, zero: zero, ground: ordered}, nil
}

// FromSignMap builds a SignedSet from a label→sign mapping. Labels of
// the groundset absent from m default to zero; keys outside the
// groundset are rejected. When ground is nil it is inferred as the
// sorted key set.
func FromSignMap(ground []string, m map[string]int) (SignedSet, error) {
	if ground == nil {
		keys := make(Set, len(m))
		for l := range m {
			keys.Add(l)
		}
		ground = inferGroundset(keys)
	}
	ordered, gs, err := checkGroundset(ground)
	if err != nil {
		return SignedSet{}, fmt.Errorf("FromSignMap: %w", err)
	}

	pos, neg, zero := make(Set), make(Set), make(Set)
	// Walk the map via the sorted key list so the first failure is
	// deterministic.
	keys := make([]string, 0, len(m))
	for l := range m {
		keys = append(keys, l)
	}
	sort.Strings(keys)
	for _, l := range keys {
		if !gs.Has(l) {
			return SignedSet{}, fmt.Errorf("FromSignMap: label %q: %w", l, ErrNotInGroundset)
		}
		switch m[l] {
		case 1:
			pos.Add(l)
		case -1:
			neg.Add(l)
		case 0:
			zero.Add(l)
		default:
			return SignedSet{}, fmt.Errorf("FromSignMap: label %q has sign %d: %w", l, m[l], ErrBadSign)
		}
	}
	// Unmentioned labels default to zero.
	for _, l := range ordered {
		if !pos.Has(l) && !neg.Has(l) && !zero.Has(l) {
			zero.Add(l)
		}
	}

	return SignedSet{pos: pos, neg: neg, zero: zero, ground: ordered}, nil
}
