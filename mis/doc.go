// Package mis computes a maximal independent set with Luby's randomized
// algorithm, expressed entirely with the masked operations of package graphblas.
//
// Each round every candidate draws a random score scaled by 1/(1+2·degree),
// which favours low-degree vertices. A candidate whose score beats every
// candidate neighbour joins the set; it and its neighbours leave the candidate
// pool. Rounds repeat until no candidates remain.
//
// The graph is read structurally: any present off-diagonal entry is an edge,
// its value is ignored and self-loops are skipped. The matrix should be
// symmetric (undirected). Vertices without neighbours are always members.
//
// Results are reproducible for a given WithSeed value.
package mis
