// Package polyaffine implements a symbolic integer polyhedral
// reasoning engine for loop-nest dependence analysis: a partially
// ordered set over symbolic parameters (package poset), an abstract
// polyhedron with Fourier-Motzkin variable elimination (package
// polyhedron), and the comparator protocol those two build on
// (package comparator).
//
// The engine is organized into single-purpose subpackages:
//
//	interval/   — saturating int64 interval arithmetic
//	bipartite/  — boolean max bipartite matching (Kuhn's algorithm)
//	mpoly/      — symbolic monomials and polynomials
//	poset/      — partially ordered set of parameter differences
//	comparator/ — sound-incomplete comparator protocol over coefficient rows
//	imatrix/    — dense column-oriented integer matrix
//	polyhedron/ — abstract polyhedron, Fourier-Motzkin, redundancy elimination
//
// Every decision procedure in this engine is sound but incomplete:
// a predicate returning false means "unknown," never "definitely false."
package polyaffine
