// Package signedset implements the signed-subset algebra that every
// oriented-matroid axiom system is built on.
//
// A SignedSet assigns one of {+, −, 0} to each label of a finite ordered
// groundset, stored as three disjoint label sets whose union is exactly
// the groundset. SignedSets are immutable values: every operation
// (Negate, Compose, Reorient, …) returns a fresh instance and never
// mutates its receiver.
//
// Construction accepts the four standard input forms:
//
//   - a sign vector aligned with the groundset (FromSigns / ParseSigns)
//   - a (positives, negatives[, zeroes]) triple (FromParts)
//   - a label→sign mapping (FromSignMap)
//   - an existing SignedSet (Clone)
//
// When no groundset is supplied it is inferred as the sorted union of
// all referenced labels, so one construction is always reproducible.
//
// All construction errors are package sentinels and can be matched with
// errors.Is. No function in this package panics on user input.
package signedset
