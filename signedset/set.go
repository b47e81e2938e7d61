// Package signedset: finite label sets.
//
// Set is the unordered building block under SignedSet. It is a plain
// map[string]struct{} with the handful of set-algebra operations the
// axiom checks need. Operations returning a Set always allocate a fresh
// one; receivers are never mutated except by Add, which is only used
// while a set is still being assembled.
package signedset

import "sort"

// Set is a finite set of groundset labels.
type Set map[string]struct{}

// NewSet builds a Set from the given labels. Duplicates collapse.
func NewSet(labels ...string) Set {
	s := make(Set, len(labels))
	for _, l := range labels {
		s[l] = struct{}{}
	}

	return s
}

// Has reports whether label is a member.
func (s Set) Has(label string) bool {
	_, ok := s[label]
	return ok
}

// Add inserts label. Only for sets still under construction.
func (s Set) Add(label string) {
	s[label] = struct{}{}
}

// Len returns the number of members.
func (s Set) Len() int {
	return len(s)
}

// Union returns a fresh set holding every member of s and other.
func (s Set) Union(other Set) Set {
	out := make(Set, len(s)+len(other))
	for l := range s {
		out[l] = struct{}{}
	}
	for l := range other {
		out[l] = struct{}{}
	}

	return out
}

// Inter returns a fresh set holding the members common to s and other.
func (s Set) Inter(other Set) Set {
	// Scan the smaller operand to keep the walk minimal.
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(Set)
	for l := range small {
		if _, ok := large[l]; ok {
			out[l] = struct{}{}
		}
	}

	return out
}

// Diff returns a fresh set holding the members of s not in other.
func (s Set) Diff(other Set) Set {
	out := make(Set)
	for l := range s {
		if _, ok := other[l]; !ok {
			out[l] = struct{}{}
		}
	}

	return out
}

// IsSubsetOf reports whether every member of s is also in other.
func (s Set) IsSubsetOf(other Set) bool {
	if len(s) > len(other) {
		return false
	}
	for l := range s {
		if _, ok := other[l]; !ok {
			return false
		}
	}

	return true
}

// Equal reports whether s and other hold exactly the same members.
func (s Set) Equal(other Set) bool {
	return len(s) == len(other) && s.IsSubsetOf(other)
}

// Clone returns an independent copy of s.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for l := range s {
		out[l] = struct{}{}
	}

	return out
}

// Sorted returns the members in lexicographic order.
// Map iteration order is unspecified; every user-visible walk goes
// through Sorted so output and error reporting stay deterministic.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for l := range s {
		out = append(out, l)
	}
	sort.Strings(out)

	return out
}
