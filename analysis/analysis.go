// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package analysis computes descriptive statistics over the columns
// of a dataset and draws scatter plots of them.
//
// Every statistic takes a list of headers and a dataset.Rows and
// returns one value per header, in header order. Statistics are pure:
// calling one twice with the same arguments gives the same result.
//
// Categorical extends Analysis with level counts and grouped means
// for integer-coded categorical columns.
package analysis

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/aclements/descstat/dataset"
	"github.com/aclements/descstat/figure"
	"github.com/aclements/go-moremath/stats"
)

// A Selector selects a rectangular block of data by header and row.
// *dataset.Table implements Selector.
//
// The returned Block may share storage with the Selector. Analysis
// never modifies a Block it did not allocate.
type Selector interface {
	Select(headers []string, rows dataset.Rows) (*dataset.Block, error)
}

var (
	// ErrMissingColumn is returned when a header is not in the
	// dataset.
	ErrMissingColumn = dataset.ErrMissingColumn

	// ErrLevelMismatch is returned when a categorical level
	// lookup fails.
	ErrLevelMismatch = dataset.ErrLevelMismatch

	// ErrEmptySelection is returned when a statistic is
	// requested over zero rows.
	ErrEmptySelection = errors.New("empty selection")

	// ErrDegenerateVariance is returned when a computation needs
	// data with non-zero spread and does not have it.
	ErrDegenerateVariance = errors.New("degenerate variance")
)

// Analysis computes statistics of a dataset and draws into a
// figure.Context.
type Analysis struct {
	data Selector
	figs *figure.Context
}

// New returns an Analysis of data that draws into figs. If figs is
// nil, the Analysis gets its own Context that discards figures on
// Show.
func New(data Selector, figs *figure.Context) *Analysis {
	if figs == nil {
		figs = figure.NewContext(nil)
	}
	return &Analysis{data, figs}
}

// SetData makes a analyze data from now on.
func (a *Analysis) SetData(data Selector) {
	a.data = data
}

// Data returns the dataset a analyzes.
func (a *Analysis) Data() Selector {
	return a.data
}

// Figures returns the Context a draws into.
func (a *Analysis) Figures() *figure.Context {
	return a.figs
}

func (a *Analysis) selectData(headers []string, rows dataset.Rows) (*dataset.Block, error) {
	return a.data.Select(headers, rows)
}

// nonEmpty is like selectData, but fails on a selection of zero
// rows.
func (a *Analysis) nonEmpty(op string, headers []string, rows dataset.Rows) (*dataset.Block, error) {
	b, err := a.selectData(headers, rows)
	if err != nil {
		return nil, err
	}
	if b.N == 0 {
		return nil, fmt.Errorf("%s of %v over %v: %w", op, headers, rows, ErrEmptySelection)
	}
	return b, nil
}

// Min returns the minimum of each header over rows. A column with a
// missing value has a NaN minimum.
func (a *Analysis) Min(headers []string, rows dataset.Rows) ([]float64, error) {
	mins, _, err := a.Range(headers, rows)
	return mins, err
}

// Max returns the maximum of each header over rows. A column with a
// missing value has a NaN maximum.
func (a *Analysis) Max(headers []string, rows dataset.Rows) ([]float64, error) {
	_, maxs, err := a.Range(headers, rows)
	return maxs, err
}

// Range returns the minimum and maximum of each header over rows.
func (a *Analysis) Range(headers []string, rows dataset.Rows) (mins, maxs []float64, err error) {
	b, err := a.nonEmpty("range", headers, rows)
	if err != nil {
		return nil, nil, err
	}
	mins = make([]float64, len(b.Cols))
	maxs = make([]float64, len(b.Cols))
	for j, col := range b.Cols {
		mins[j], maxs[j] = bounds(col)
	}
	return mins, maxs, nil
}

func bounds(xs []float64) (lo, hi float64) {
	for _, x := range xs {
		if math.IsNaN(x) {
			return x, x
		}
	}
	return stats.Bounds(xs)
}

// Mean returns the arithmetic mean of each header over rows.
func (a *Analysis) Mean(headers []string, rows dataset.Rows) ([]float64, error) {
	b, err := a.nonEmpty("mean", headers, rows)
	if err != nil {
		return nil, err
	}
	return means(b), nil
}

func means(b *dataset.Block) []float64 {
	out := make([]float64, len(b.Cols))
	for j, col := range b.Cols {
		sum := 0.0
		for _, x := range col {
			sum += x
		}
		out[j] = sum / float64(b.N)
	}
	return out
}

// Var returns the sample variance of each header over rows, with
// n-1 in the denominator. With fewer than two rows the variance is
// undefined and Var returns NaN for every header.
func (a *Analysis) Var(headers []string, rows dataset.Rows) ([]float64, error) {
	b, err := a.selectData(headers, rows)
	if err != nil {
		return nil, err
	}
	vars := make([]float64, len(b.Cols))
	if b.N <= 1 {
		for j := range vars {
			vars[j] = math.NaN()
		}
		return vars, nil
	}
	mean, err := a.Mean(headers, rows)
	if err != nil {
		return nil, err
	}
	for j, col := range b.Cols {
		ss := 0.0
		for _, x := range col {
			d := x - mean[j]
			ss += d * d
		}
		vars[j] = ss / float64(b.N-1)
	}
	return vars, nil
}

// Std returns the sample standard deviation of each header over
// rows. It is NaN where Var is.
func (a *Analysis) Std(headers []string, rows dataset.Rows) ([]float64, error) {
	vars, err := a.Var(headers, rows)
	if err != nil {
		return nil, err
	}
	for j, v := range vars {
		vars[j] = math.Sqrt(v)
	}
	return vars, nil
}

// Median returns the median of each header over rows. For an even
// number of rows it is the mean of the two middle values. A column
// with a missing value has a NaN median.
func (a *Analysis) Median(headers []string, rows dataset.Rows) ([]float64, error) {
	b, err := a.nonEmpty("median", headers, rows)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(b.Cols))
	for j, col := range b.Cols {
		out[j] = median(col)
	}
	return out, nil
}

func median(xs []float64) float64 {
	for _, x := range xs {
		if math.IsNaN(x) {
			return x
		}
	}
	xs = append([]float64(nil), xs...)
	sort.Float64s(xs)
	n := len(xs)
	if n%2 == 0 {
		return (xs[n/2-1] + xs[n/2]) / 2
	}
	return xs[n/2]
}

// Mode returns the most frequent value of each header over rows. If
// several values are equally frequent, Mode returns the smallest.
// Missing values are never the mode; a column with only missing
// values is an empty selection.
func (a *Analysis) Mode(headers []string, rows dataset.Rows) ([]float64, error) {
	b, err := a.nonEmpty("mode", headers, rows)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(b.Cols))
	for j, col := range b.Cols {
		m, ok := mode(col)
		if !ok {
			return nil, fmt.Errorf("mode of %q: all values missing: %w", headers[j], ErrEmptySelection)
		}
		out[j] = m
	}
	return out, nil
}

func mode(xs []float64) (float64, bool) {
	counts := make(map[float64]int)
	for _, x := range xs {
		if !math.IsNaN(x) {
			counts[x]++
		}
	}
	best, bestN := math.NaN(), 0
	for x, n := range counts {
		if n > bestN || n == bestN && x < best {
			best, bestN = x, n
		}
	}
	return best, bestN > 0
}

// Skewness returns Pearson's second skewness coefficient,
// 3(mean - median)/std, of each header over rows.
func (a *Analysis) Skewness(headers []string, rows dataset.Rows) ([]float64, error) {
	mean, err := a.Mean(headers, rows)
	if err != nil {
		return nil, err
	}
	med, err := a.Median(headers, rows)
	if err != nil {
		return nil, err
	}
	std, err := a.Std(headers, rows)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(headers))
	for j := range out {
		out[j] = 3 * (mean[j] - med[j]) / std[j]
	}
	return out, nil
}
