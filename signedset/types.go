// Package signedset: sentinel error set and shared value types.
// All construction and query failures in this package are one of the
// sentinels below; tests and callers match them via errors.Is. Wrapping
// with extra context happens only at outer boundaries via fmt.Errorf
// with %w, never by re-declaring the sentinel.
package signedset

import "errors"

// Sentinel errors for signed-set construction and queries.
var (
	// ErrNotInGroundset indicates an operation referenced a label outside the groundset.
	ErrNotInGroundset = errors.New("signedset: label not in groundset")

	// ErrDuplicateLabel indicates the supplied groundset repeats a label.
	ErrDuplicateLabel = errors.New("signedset: duplicate label in groundset")

	// ErrLengthMismatch indicates a sign vector whose length differs from the groundset.
	ErrLengthMismatch = errors.New("signedset: sign vector length differs from groundset")

	// ErrBadSign indicates a numeric sign outside {-1, 0, +1}.
	ErrBadSign = errors.New("signedset: sign must be -1, 0 or +1")

	// ErrBadSignToken indicates a textual sign outside {"+", "-", "0", ""}.
	ErrBadSignToken = errors.New("signedset: sign token must be +, -, 0 or empty")

	// ErrOverlap indicates positives, negatives and zeroes are not pairwise disjoint.
	ErrOverlap = errors.New("signedset: positives, negatives and zeroes must be disjoint")

	// ErrIncompletePartition indicates a groundset label with no assigned sign.
	ErrIncompletePartition = errors.New("signedset: every groundset label must be positive, negative or zero")
)

// Parts is the (positives, negatives[, zeroes]) construction form.
// Zeroes may be nil, in which case they are inferred as the groundset
// minus the support.
type Parts struct {
	Positives []string
	Negatives []string
	Zeroes    []string
}

// Format selects how a SignedSet renders itself.
type Format int

const (
	// FormatSet renders the three component sets, one per line.
	FormatSet Format = iota

	// FormatVector renders the sign vector in groundset order, e.g. (1,-1,0).
	FormatVector
)
