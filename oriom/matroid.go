// Package oriom: underlying-matroid rank computations.
//
// Two routes, one per representation side:
//
//   - covector side: the flats of the underlying matroid are the zero
//     sets of the covectors; ordered by inclusion they form a graded
//     poset whose longest chain has rank+1 flats.
//   - circuit side: a subset is independent iff it contains no circuit
//     support; the rank is the size of the largest independent subset.
package oriom

import "github.com/katalvlaran/orimat/signedset"

// distinctZeroSets collects the zero set of every element, deduplicated,
// in first-occurrence order.
func distinctZeroSets(elements []signedset.SignedSet) []signedset.Set {
	var flats []signedset.Set
	seen := make(map[string]struct{})
	for _, x := range elements {
		z := x.Zeroes()
		key := ""
		for _, l := range z.Sorted() {
			key += l + ","
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		flats = append(flats, z)
	}

	return flats
}

// flatsRank returns the longest strict inclusion chain length minus one
// over the given flats. Memoized DFS on the containment order, O(k²)
// subset tests for k flats.
func flatsRank(flats []signedset.Set) int {
	memo := make([]int, len(flats))
	var chain func(i int) int
	chain = func(i int) int {
		if memo[i] != 0 {
			return memo[i]
		}
		best := 1
		for j := range flats {
			if i == j {
				continue
			}
			// j strictly below i in the containment order.
			if flats[j].IsSubsetOf(flats[i]) && !flats[j].Equal(flats[i]) {
				if h := chain(j) + 1; h > best {
					best = h
				}
			}
		}
		memo[i] = best

		return best
	}

	height := 0
	for i := range flats {
		if c := chain(i); c > height {
			height = c
		}
	}
	if height == 0 {
		return 0
	}

	return height - 1
}

// circuitRank returns the size of the largest subset of ground that
// contains no circuit support. Exhaustive over subsets of the
// non-covered labels via recursion; groundsets in practice are small.
func circuitRank(ground []string, supports []signedset.Set) int {
	best := 0
	current := signedset.NewSet()

	var extend func(i int)
	extend = func(i int) {
		if current.Len() > best {
			best = current.Len()
		}
		if i >= len(ground) {
			return
		}
		// Branch 1: take ground[i] if it keeps independence.
		current.Add(ground[i])
		independent := true
		for _, s := range supports {
			if s.IsSubsetOf(current) {
				independent = false
				break
			}
		}
		if independent {
			extend(i + 1)
		}
		delete(current, ground[i])
		// Branch 2: skip ground[i]. Prune when even taking everything
		// left cannot beat the best found so far.
		if current.Len()+len(ground)-i-1 > best {
			extend(i + 1)
		}
	}
	extend(0)

	return best
}
