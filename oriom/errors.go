// Package oriom: sentinel error set.
// One sentinel per distinct axiom violation, so callers can tell "not a
// circuit system" apart from "not a covector system" with errors.Is.
// Validators return the first violation and nothing else; no partial
// results, no recovery.
package oriom

import "errors"

// Construction and axiom-violation sentinels.
var (
	// ErrEmptyCollection indicates a collection built from no elements.
	ErrEmptyCollection = errors.New("oriom: collection needs at least one element")

	// ErrMixedGroundsets indicates elements that disagree on the groundset.
	ErrMixedGroundsets = errors.New("oriom: all elements must share one groundset")

	// ErrZeroElementForbidden indicates the zero signed set among circuits (axiom C1).
	ErrZeroElementForbidden = errors.New("oriom: zero signed set not allowed")

	// ErrZeroElementRequired indicates a vector/covector family missing the
	// all-zero element (axiom V1/L1).
	ErrZeroElementRequired = errors.New("oriom: all-zero element is required")

	// ErrMissingOpposite indicates a family not closed under negation (axiom 2).
	ErrMissingOpposite = errors.New("oriom: every element needs an opposite")

	// ErrSupportContained indicates nested circuit supports between
	// non-opposite circuits (axiom C3).
	ErrSupportContained = errors.New("oriom: only an element and its opposite may have nested supports")

	// ErrCompositionNotClosed indicates a composition leaving the family (axiom V3/L3).
	ErrCompositionNotClosed = errors.New("oriom: composition must stay in the collection")

	// ErrEliminationFailed indicates the elimination axiom found no witness (axiom 4).
	ErrEliminationFailed = errors.New("oriom: elimination failed")
)

// Domain errors on structural queries.
var (
	// ErrLoopElement indicates a parallelism query on a loop.
	ErrLoopElement = errors.New("oriom: element is a loop")

	// ErrNoSuchDerived indicates a derived family the representation does not define.
	ErrNoSuchDerived = errors.New("oriom: derived family not defined for this representation")
)
