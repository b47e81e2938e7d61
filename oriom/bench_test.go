package oriom_test

import (
	"testing"

	"github.com/katalvlaran/orimat/oriom"
)

// signCube enumerates every sign vector over m labels, 3^m rows in
// lexicographic order. The full cube is the covector family of the
// coordinate arrangement in R^m and a valid vector family as well, so
// it exercises the validators without any rejection shortcut.
func signCube(m int) [][]int {
	rows := [][]int{{}}
	for k := 0; k < m; k++ {
		next := make([][]int, 0, 3*len(rows))
		for _, r := range rows {
			for _, s := range []int{-1, 0, 1} {
				row := make([]int, len(r), len(r)+1)
				copy(row, r)
				next = append(next, append(row, s))
			}
		}
		rows = next
	}

	return rows
}

// BenchmarkNewCovectors_Cube4 measures covector validation on the full
// sign cube over 4 labels (81 covectors).
//
// Complexity: elimination dominates at O(n³·m) with n=81, m=4.
func BenchmarkNewCovectors_Cube4(b *testing.B) {
	// 1. Build the input rows once, outside the timed loop.
	rows := signCube(4)

	// 2. Time construction and validation together; both run on every
	//    call.
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = oriom.NewCovectors(rows, nil)
	}
}

// BenchmarkNewVectors_Cube4 measures vector validation on the same
// family. Vector elimination searches a wider candidate set than the
// covector variant, so the two benchmarks bracket the axiom engines.
func BenchmarkNewVectors_Cube4(b *testing.B) {
	rows := signCube(4)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = oriom.NewVectors(rows, nil)
	}
}

// BenchmarkFacePoset_Cube4 measures the O(n²·m) face-poset build on a
// validated 81-covector system, excluding validation time.
func BenchmarkFacePoset_Cube4(b *testing.B) {
	// 1. Validate once; only the poset build is timed.
	m, err := oriom.NewCovectors(signCube(4), nil)
	if err != nil {
		b.Fatalf("NewCovectors: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.FacePoset()
	}
}
