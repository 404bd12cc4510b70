// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analysis

import (
	"fmt"
	"math"

	"github.com/aclements/descstat/dataset"
	"github.com/aclements/go-moremath/fit"
	"github.com/aclements/go-moremath/stats"
)

// Line is a fitted line y = Slope*x + Intercept.
type Line struct {
	Slope, Intercept float64
}

// At evaluates l at x.
func (l Line) At(x float64) float64 {
	return l.Slope*x + l.Intercept
}

func (l Line) String() string {
	return fmt.Sprintf("y = %g x + %g", l.Slope, l.Intercept)
}

// Fit fits depVar as a linear function of indVar over rows by
// ordinary least squares. Rows where either value is missing are
// skipped. Fit fails with ErrDegenerateVariance if fewer than two rows
// remain or indVar is constant over them.
func (a *Analysis) Fit(indVar, depVar string, rows dataset.Rows) (Line, error) {
	b, err := a.selectData([]string{indVar, depVar}, rows)
	if err != nil {
		return Line{}, err
	}
	var xs, ys []float64
	for i := 0; i < b.N; i++ {
		x, y := b.At(i, 0), b.At(i, 1)
		if math.IsNaN(x) || math.IsNaN(y) {
			continue
		}
		xs, ys = append(xs, x), append(ys, y)
	}
	if len(xs) < 2 {
		return Line{}, fmt.Errorf("fit %s on %s: %d points: %w", depVar, indVar, len(xs), ErrDegenerateVariance)
	}
	if lo, hi := stats.Bounds(xs); lo == hi {
		return Line{}, fmt.Errorf("fit %s on %s: %s is constant: %w", depVar, indVar, indVar, ErrDegenerateVariance)
	}

	r := fit.PolynomialRegression(xs, ys, nil, 1)
	return Line{Slope: r.Coefficients[1], Intercept: r.Coefficients[0]}, nil
}
