// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset implements an in-memory table of named numeric and
// categorical columns.
//
// Numeric columns hold float64 values and use NaN as the missing
// marker. Categorical columns hold integer codes, and each has a
// registry of levels pairing every code with a string label. Both
// kinds of column can be selected into a numeric Block; categorical
// codes are converted to float64.
//
// The columns are stored in a go-gg table, which Grouping exposes for
// printing or plotting.
package dataset

import (
	"fmt"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

// Levels is the level registry of a categorical column. Codes[i] is
// the integer code stored in the column for the level whose label is
// Labels[i].
type Levels struct {
	Codes  []int
	Labels []string
}

func (lv Levels) check() error {
	if len(lv.Codes) != len(lv.Labels) {
		return fmt.Errorf("%d codes but %d labels: %w", len(lv.Codes), len(lv.Labels), ErrLevelMismatch)
	}
	seen := make(map[int]bool, len(lv.Codes))
	for _, code := range lv.Codes {
		if seen[code] {
			return fmt.Errorf("code %d registered twice: %w", code, ErrLevelMismatch)
		}
		seen[code] = true
	}
	return nil
}

func (lv Levels) copy() Levels {
	return Levels{append([]int{}, lv.Codes...), append([]string{}, lv.Labels...)}
}

// Table is an immutable set of equal-length columns.
type Table struct {
	tab    *table.Table
	levels map[string]Levels
}

// Len returns the number of rows in t.
func (t *Table) Len() int {
	return t.tab.Len()
}

// Headers returns the column names of t in the order they were added.
func (t *Table) Headers() []string {
	return t.tab.Columns()
}

// IsCategorical reports whether header is a categorical column of t.
func (t *Table) IsCategorical(header string) bool {
	_, ok := t.levels[header]
	return ok
}

// Grouping returns the go-gg table underlying t. Categorical columns
// appear as []int codes. The caller must not modify it.
func (t *Table) Grouping() *table.Table {
	return t.tab
}

// column returns header's data as float64s. The result may alias t's
// storage.
func (t *Table) column(header string) ([]float64, error) {
	switch seq := t.tab.Column(header).(type) {
	case nil:
		return nil, fmt.Errorf("column %q: %w", header, ErrMissingColumn)
	case []float64:
		return seq, nil
	default:
		var xs []float64
		slice.Convert(&xs, seq)
		return xs, nil
	}
}

// Select returns the block of headers over rows. The block's columns
// are in header order and its rows are in the order rows gives them,
// or table order for all rows. The block never aliases t.
func (t *Table) Select(headers []string, rows Rows) (*Block, error) {
	idx, err := rows.resolve(t.Len())
	if err != nil {
		return nil, err
	}
	b := &Block{
		Headers: append([]string{}, headers...),
		Cols:    make([][]float64, len(headers)),
		N:       rows.Count(t.Len()),
	}
	for j, header := range headers {
		col, err := t.column(header)
		if err != nil {
			return nil, err
		}
		switch {
		case idx == nil:
			b.Cols[j] = append([]float64{}, col...)
		case len(idx) == 0:
			b.Cols[j] = []float64{}
		default:
			b.Cols[j] = slice.Select(col, idx).([]float64)
		}
	}
	return b, nil
}

func (t *Table) registry(header string) (Levels, error) {
	if t.tab.Column(header) == nil {
		return Levels{}, fmt.Errorf("column %q: %w", header, ErrMissingColumn)
	}
	lv, ok := t.levels[header]
	if !ok {
		return Levels{}, fmt.Errorf("column %q is not categorical: %w", header, ErrLevelMismatch)
	}
	return lv, nil
}

// Levels returns the level registry of the categorical column header.
func (t *Table) Levels(header string) (Levels, error) {
	lv, err := t.registry(header)
	if err != nil {
		return Levels{}, err
	}
	return lv.copy(), nil
}

// LevelsInt returns the integer codes of header's levels, in level
// order.
func (t *Table) LevelsInt(header string) ([]int, error) {
	lv, err := t.registry(header)
	if err != nil {
		return nil, err
	}
	return append([]int{}, lv.Codes...), nil
}

// LevelsStr returns the string labels of header's levels, in level
// order.
func (t *Table) LevelsStr(header string) ([]string, error) {
	lv, err := t.registry(header)
	if err != nil {
		return nil, err
	}
	return append([]string{}, lv.Labels...), nil
}

// Builder constructs a Table column by column. The first error
// encountered is reported by Done and later calls are ignored.
//
// Adding a column with an existing name replaces it.
type Builder struct {
	names  []string
	cols   map[string]table.Slice
	levels map[string]Levels
	n      int
	err    error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		cols:   make(map[string]table.Slice),
		levels: make(map[string]Levels),
		n:      -1,
	}
}

func (b *Builder) add(name string, seq table.Slice, n int) bool {
	if b.err != nil {
		return false
	}
	if _, ok := b.cols[name]; ok && len(b.names) == 1 {
		// Replacing the only column may change the length.
		b.n = -1
	}
	if b.n >= 0 && n != b.n {
		b.err = fmt.Errorf("column %q has %d rows, but table has %d rows", name, n, b.n)
		return false
	}
	if _, ok := b.cols[name]; !ok {
		b.names = append(b.names, name)
	}
	b.cols[name] = seq
	delete(b.levels, name)
	b.n = n
	return true
}

// Numeric adds a numeric column. NaN values are missing.
func (b *Builder) Numeric(name string, xs []float64) *Builder {
	b.add(name, append([]float64{}, xs...), len(xs))
	return b
}

// Coded adds a categorical column of integer codes with the level
// registry lv. Every code in codes must be registered in lv.
func (b *Builder) Coded(name string, codes []int, lv Levels) *Builder {
	if b.err != nil {
		return b
	}
	if err := lv.check(); err != nil {
		b.err = fmt.Errorf("column %q: %w", name, err)
		return b
	}
	known := make(map[int]bool, len(lv.Codes))
	for _, code := range lv.Codes {
		known[code] = true
	}
	for i, code := range codes {
		if !known[code] {
			b.err = fmt.Errorf("column %q row %d: unregistered code %d: %w", name, i, code, ErrLevelMismatch)
			return b
		}
	}
	if b.add(name, append([]int{}, codes...), len(codes)) {
		b.levels[name] = lv.copy()
	}
	return b
}

// Categorical adds a categorical column from string values. Levels
// are registered in order of first appearance and coded 0, 1, ....
func (b *Builder) Categorical(name string, vals []string) *Builder {
	codes, labels := intern(vals)
	lv := Levels{Labels: labels, Codes: make([]int, len(labels))}
	for i := range lv.Codes {
		lv.Codes[i] = i
	}
	return b.Coded(name, codes, lv)
}

// Done returns the constructed Table.
func (b *Builder) Done() (*Table, error) {
	if b.err != nil {
		return nil, b.err
	}
	tb := table.NewBuilder(nil)
	for _, name := range b.names {
		tb.Add(name, b.cols[name])
	}
	levels := make(map[string]Levels, len(b.levels))
	for name, lv := range b.levels {
		levels[name] = lv
	}
	return &Table{tb.Done(), levels}, nil
}

// intern assigns each distinct string in vals a dense code in order
// of first appearance.
func intern(vals []string) (codes []int, labels []string) {
	index := make(map[string]int)
	codes = make([]int, len(vals))
	for i, v := range vals {
		code, ok := index[v]
		if !ok {
			code = len(labels)
			index[v] = code
			labels = append(labels, v)
		}
		codes[i] = code
	}
	return codes, labels
}
