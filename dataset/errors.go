// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import "errors"

var (
	// ErrMissingColumn is returned when a requested header is not
	// a column of the table.
	ErrMissingColumn = errors.New("missing column")

	// ErrLevelMismatch is returned when a column has no level
	// registry, or when its integer codes and string labels do
	// not pair up.
	ErrLevelMismatch = errors.New("level mismatch")

	// ErrRowIndex is returned when a row subset names a row
	// outside the table.
	ErrRowIndex = errors.New("row index out of range")
)
