// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analysis

import (
	"github.com/aclements/descstat/dataset"
	"github.com/aclements/go-gg/table"
)

// Summarize returns a table with one row per header and a column for
// each statistic: "header", "n", "min", "max", "mean", "var", "std",
// "median", "mode", and "skewness".
func (a *Analysis) Summarize(headers []string, rows dataset.Rows) (*table.Table, error) {
	b, err := a.nonEmpty("summary", headers, rows)
	if err != nil {
		return nil, err
	}
	ns := make([]int, len(headers))
	for j := range ns {
		ns[j] = b.N
	}

	mins, maxs, err := a.Range(headers, rows)
	if err != nil {
		return nil, err
	}
	tb := table.NewBuilder(nil).
		Add("header", append([]string{}, headers...)).
		Add("n", ns).
		Add("min", mins).
		Add("max", maxs)
	for _, stat := range []struct {
		name string
		f    func([]string, dataset.Rows) ([]float64, error)
	}{
		{"mean", a.Mean},
		{"var", a.Var},
		{"std", a.Std},
		{"median", a.Median},
		{"mode", a.Mode},
		{"skewness", a.Skewness},
	} {
		vals, err := stat.f(headers, rows)
		if err != nil {
			return nil, err
		}
		tb.Add(stat.name, vals)
	}
	return tb.Done(), nil
}
