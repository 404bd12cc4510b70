// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import "fmt"

// Rows selects rows of a Table. The zero Rows selects every row.
// A subset is kept in the order given and may repeat rows.
//
// An explicit empty subset, Subset(), selects no rows at all. It is
// distinct from All.
type Rows struct {
	idx    []int
	subset bool
}

// All returns a Rows that selects every row of a table.
func All() Rows {
	return Rows{}
}

// Subset returns a Rows that selects exactly the rows idx, in order.
func Subset(idx ...int) Rows {
	return Rows{append([]int{}, idx...), true}
}

// IsAll reports whether r selects every row.
func (r Rows) IsAll() bool {
	return !r.subset
}

// Indexes returns the selected row indexes, or nil if r selects
// every row.
func (r Rows) Indexes() []int {
	if !r.subset {
		return nil
	}
	return append([]int{}, r.idx...)
}

// Count returns the number of rows r selects from a table of n rows.
func (r Rows) Count(n int) int {
	if !r.subset {
		return n
	}
	return len(r.idx)
}

func (r Rows) String() string {
	if !r.subset {
		return "all rows"
	}
	return fmt.Sprintf("rows %v", r.idx)
}

// resolve checks r against a table of n rows. It returns nil for
// all rows.
func (r Rows) resolve(n int) ([]int, error) {
	if !r.subset {
		return nil, nil
	}
	for _, i := range r.idx {
		if i < 0 || i >= n {
			return nil, fmt.Errorf("row %d of %d: %w", i, n, ErrRowIndex)
		}
	}
	return r.idx, nil
}
