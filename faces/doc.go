// Package faces builds the order structures derived from a validated
// covector collection: the (big) face poset, its completion to the face
// lattice by one synthetic top, the topes (maximal covectors), and the
// tope poset relative to a base tope.
//
// Orders are materialized as explicit relation matrices — only the
// operations the oriented-matroid queries actually need are provided:
// maximal/minimal extraction, interval extraction, longest-chain height
// and the boolean-interval test behind tope simpliciality. No general
// lattice machinery is carried.
//
// Relations:
//
//   - Face poset:  Y ≤ X  ⟺  S(Y,X) = ∅ and supp(Y) ⊆ supp(X)
//   - Face lattice: the face poset plus a synthetic top above everything
//   - Tope poset:  X ≤ Y  ⟺  S(B,X) ⊆ S(B,Y) for the chosen base tope B
//
// Building a poset over n covectors on m labels costs O(n²·m);
// everything after that is matrix walks.
package faces
