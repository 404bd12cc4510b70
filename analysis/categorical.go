// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analysis

import (
	"fmt"
	"math"

	"github.com/aclements/descstat/dataset"
	"github.com/aclements/descstat/figure"
)

// A LevelRegistry enumerates the levels of categorical columns.
// LevelsInt and LevelsStr must return the same number of levels in
// the same order.
type LevelRegistry interface {
	LevelsInt(header string) ([]int, error)
	LevelsStr(header string) ([]string, error)
}

// CatData is a dataset with categorical columns. *dataset.Table
// implements CatData.
type CatData interface {
	Selector
	LevelRegistry
}

// Categorical is an Analysis with grouped statistics over
// integer-coded categorical columns. Results are reported against the
// levels' string labels.
type Categorical struct {
	*Analysis
	data CatData
}

// NewCategorical returns a Categorical analysis of data that draws
// into figs. See New.
func NewCategorical(data CatData, figs *figure.Context) *Categorical {
	return &Categorical{New(data, figs), data}
}

// SetData makes c analyze data from now on.
func (c *Categorical) SetData(data CatData) {
	c.Analysis.SetData(data)
	c.data = data
}

func (c *Categorical) levels(header string) ([]int, []string, error) {
	codes, err := c.data.LevelsInt(header)
	if err != nil {
		return nil, nil, err
	}
	labels, err := c.data.LevelsStr(header)
	if err != nil {
		return nil, nil, err
	}
	if len(codes) != len(labels) {
		return nil, nil, fmt.Errorf("column %q: %d codes but %d labels: %w", header, len(codes), len(labels), ErrLevelMismatch)
	}
	return codes, labels, nil
}

func (c *Categorical) column(header string) ([]float64, error) {
	b, err := c.data.Select([]string{header}, dataset.All())
	if err != nil {
		return nil, err
	}
	return b.Cols[0], nil
}

// eq returns the mask of col == code.
func eq(col []float64, code int) []bool {
	mask := make([]bool, len(col))
	for i, x := range col {
		mask[i] = x == float64(code)
	}
	return mask
}

// and returns the element-wise conjunction of two masks.
func and(m1, m2 []bool) []bool {
	mask := make([]bool, len(m1))
	for i := range mask {
		mask[i] = m1[i] && m2[i]
	}
	return mask
}

func count(mask []bool) int {
	n := 0
	for _, m := range mask {
		if m {
			n++
		}
	}
	return n
}

// CatCount counts the rows at each level of the categorical column
// header. It returns the counts and labels in level order.
func (c *Categorical) CatCount(header string) ([]int, []string, error) {
	codes, labels, err := c.levels(header)
	if err != nil {
		return nil, nil, err
	}
	col, err := c.column(header)
	if err != nil {
		return nil, nil, err
	}
	counts := make([]int, len(codes))
	for i, code := range codes {
		counts[i] = count(eq(col, code))
	}
	return counts, labels, nil
}

// CatMean returns the mean of the numeric column numeric over the rows
// at each level of the categorical column categorical, ignoring
// missing values. A level with no non-missing values has a NaN mean.
// It returns the means and labels in level order.
func (c *Categorical) CatMean(numeric, categorical string) ([]float64, []string, error) {
	codes, labels, err := c.levels(categorical)
	if err != nil {
		return nil, nil, err
	}
	b, err := c.data.Select([]string{numeric, categorical}, dataset.All())
	if err != nil {
		return nil, nil, err
	}
	xs, cats := b.Cols[0], b.Cols[1]
	means := make([]float64, len(codes))
	for i, code := range codes {
		sum, n := 0.0, 0
		for r, in := range eq(cats, code) {
			if in && !math.IsNaN(xs[r]) {
				sum += xs[r]
				n++
			}
		}
		if n == 0 {
			means[i] = math.NaN()
			continue
		}
		means[i] = sum / float64(n)
	}
	return means, labels, nil
}

// CatCount2 counts the rows at each combination of levels of the
// categorical columns header1 and header2. counts[i][j] is the number
// of rows at level i of header1 and level j of header2.
func (c *Categorical) CatCount2(header1, header2 string) (counts [][]int, labels1, labels2 []string, err error) {
	codes1, labels1, err := c.levels(header1)
	if err != nil {
		return nil, nil, nil, err
	}
	codes2, labels2, err := c.levels(header2)
	if err != nil {
		return nil, nil, nil, err
	}
	b, err := c.data.Select([]string{header1, header2}, dataset.All())
	if err != nil {
		return nil, nil, nil, err
	}
	masks2 := make([][]bool, len(codes2))
	for j, code := range codes2 {
		masks2[j] = eq(b.Cols[1], code)
	}
	counts = make([][]int, len(codes1))
	for i, code1 := range codes1 {
		mask1 := eq(b.Cols[0], code1)
		counts[i] = make([]int, len(codes2))
		for j := range codes2 {
			counts[i][j] = count(and(mask1, masks2[j]))
		}
	}
	return counts, labels1, labels2, nil
}
