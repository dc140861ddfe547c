// Package matrix derives the dense, ID-indexed adjacency matrix the Prim
// engine reads neighbors and weights from.
//
// The matrix is square with side MaxVertexID+1, so row i belongs to the
// vertex whose ID is i (row 0 and rows of deleted IDs stay zero). Entry
// [i][j] holds the weight of edge {i, j} and is mirrored to [j][i]; zero
// means "no edge", which makes a zero-weight edge indistinguishable from a
// missing one.
//
// Memory is O(maxID²). That is fine for hand-drawn graphs of a few dozen
// vertices and is the reason this representation should not be reused for
// large graphs.
package matrix
