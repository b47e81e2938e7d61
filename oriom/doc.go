// Package oriom implements oriented matroids through their three
// cryptomorphic signed-set axiom systems: circuits, vectors and
// covectors.
//
// Each representation is a value type (Circuits, Vectors, Covectors)
// owning an ordered groundset and an ordered family of signed sets.
// Construction is fail-fast: the constructor materializes the raw data,
// verifies every element shares the groundset, then runs the
// representation's full axiom check — the first violated axiom aborts
// construction with a distinct sentinel error, and no partially-valid
// collection ever escapes.
//
// Axiom checks are the expensive core: the elimination axioms cost
// O(n³·m) over n elements and m groundset labels. All iteration runs in
// insertion/groundset order, so the first reported violation is
// deterministic.
//
// On top of a validated covector system the package derives the
// structural queries of the theory: face poset and lattice, topes and
// the tope poset (via package faces), minors (Deletion, Restriction),
// loops, parallel elements, and the simple/acyclic/simplicial
// predicates. The underlying matroid's rank comes from the zero-set
// flats ordered by inclusion (covector side) or from circuit supports
// (circuit side).
//
// Raw data enters in any of the signed-set input forms — sign vectors,
// part triples, existing elements — and adapters (package digraph,
// arrangement, pointconfig) produce exactly those forms.
package oriom
