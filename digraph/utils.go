package digraph

import (
	"strings"
)

// joinSig concatenates the tokens of c with commas into one signature string.
// Time Complexity: O(total length of tokens).
func joinSig(c []string) string {
	return strings.Join(c, ",")
}

// minimalRotation finds the lexicographically minimal rotation of s using
// Booth's algorithm, giving every rotation of a cycle the same canonical
// form. Reversal is deliberately NOT folded in: the token signs already
// distinguish the two traversal orientations and both must survive dedupe.
// Time Complexity: O(n).
func minimalRotation(s []string) []string {
	doubled := append(append([]string(nil), s...), s...) // duplicate sequence
	n := len(s)                                          // original length
	f := make([]int, 2*n)                                // failure link array
	for i := range f {
		f[i] = -1
	}
	k := 0                     // starting index of minimal rotation
	for j := 1; j < 2*n; j++ { // scan the doubled sequence
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] { // found smaller element
				k = j - i - 1
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] { // mismatch or i == -1
			if doubled[j] < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1 // extend match length
		}
	}
	// 4) Extract the rotation of length n starting at k.
	res := make([]string, n)
	for i := 0; i < n; i++ {
		res[i] = doubled[k+i]
	}

	return res
}
