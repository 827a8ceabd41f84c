// Package matrix implements the dense matrix primitive the simplex
// engine treats as an external collaborator: a mutable, 1-indexed grid
// of field elements with in-place row operations.
package matrix

import "github.com/qsolve/simplex/elt"

// Matrix is a mutable dense m×p grid of field elements, 1-indexed in
// every method below. Buffers returned by GetRow/GetColumn are ordinary
// (0-indexed) Go slices; their length is the spec's "length tag."
type Matrix[E elt.Element[E]] interface {
	// Dimensions returns (rows, cols).
	Dimensions() (int, int)
	Get(r, c int) E
	Set(r, c int, v E)
	GetRow(r int) []E
	GetColumn(c int) []E
	SetRow(r int, row []E)
	SetColumn(c int, col []E)
	// ScaleRow sets row r to k·row r, in place.
	ScaleRow(r int, k E)
	// SubMult sets row i to row i − k·row j, in place.
	SubMult(i, j int, k E)
}
