// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

// Block is a rectangular selection of numeric data with one column
// per requested header. Columns are in header order and rows are in
// selection order.
type Block struct {
	// Headers names each column of the block.
	Headers []string

	// Cols holds the data, column-major. Every column has N
	// values.
	Cols [][]float64

	// N is the number of selected rows. It is kept separately so
	// a block with no headers still knows its height.
	N int
}

// Shape returns the number of rows and columns in b.
func (b *Block) Shape() (rows, cols int) {
	return b.N, len(b.Cols)
}

// Col returns column j of b.
func (b *Block) Col(j int) []float64 {
	return b.Cols[j]
}

// At returns the value at row i, column j.
func (b *Block) At(i, j int) float64 {
	return b.Cols[j][i]
}

// Row returns a copy of row i of b.
func (b *Block) Row(i int) []float64 {
	row := make([]float64, len(b.Cols))
	for j, col := range b.Cols {
		row[j] = col[i]
	}
	return row
}
