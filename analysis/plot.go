// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analysis

import (
	"fmt"

	"github.com/aclements/descstat/dataset"
	"github.com/aclements/descstat/figure"
)

// DefaultPairPlotSize is the size of a pair plot created with a zero
// size.
var DefaultPairPlotSize = figure.Size{W: 12, H: 12}

const (
	pairLabelSize = 10
	pairAlpha     = 0.5
)

// Scatter draws a scatter plot of indVar (on the x axis) against
// depVar on the current Axes of a's Context and returns the plotted
// values. It does not show the plot.
func (a *Analysis) Scatter(indVar, depVar, title string) (xs, ys []float64, err error) {
	b, err := a.selectData([]string{indVar, depVar}, dataset.All())
	if err != nil {
		return nil, nil, err
	}
	xs = append([]float64(nil), b.Cols[0]...)
	ys = append([]float64(nil), b.Cols[1]...)

	ax := a.figs.Gca()
	ax.Scatter(xs, ys, figure.Style{})
	ax.Title = title
	ax.XLabel = indVar
	ax.YLabel = depVar
	return xs, ys, nil
}

// PairPlot draws a new figure with a len(vars) by len(vars) grid of
// scatter plots. The Axes in row j, column i plots vars[i] on the x
// axis against vars[j] on the y axis. Columns share x limits and rows
// share y limits. Only the first column has y axis labels and only the
// last row has x axis labels; every Axes has tick marks.
//
// A zero size means DefaultPairPlotSize. PairPlot does not show the
// figure, and it leaves no current Axes, so a following Scatter draws
// on a new figure.
func (a *Analysis) PairPlot(vars []string, size figure.Size, title string) (*figure.Figure, [][]*figure.Axes, error) {
	if len(vars) == 0 {
		return nil, nil, fmt.Errorf("pair plot: no variables")
	}
	b, err := a.selectData(vars, dataset.All())
	if err != nil {
		return nil, nil, err
	}
	if size == (figure.Size{}) {
		size = DefaultPairPlotSize
	}

	n := len(vars)
	fig, axes := a.figs.Subplots(n, n, size, figure.ShareCol, figure.ShareRow)
	fig.Title = title
	for i, x := range vars {
		for j, y := range vars {
			ax := axes[j][i]
			if j == n-1 {
				ax.XLabel = x
				ax.LabelSize = pairLabelSize
			}
			if i == 0 {
				ax.YLabel = y
				ax.LabelSize = pairLabelSize
			}
			color := figure.RGB(float64(i)/float64(n), float64(j)/float64(n), 0.5)
			ax.Scatter(b.Cols[i], b.Cols[j], figure.Style{Color: color, Alpha: pairAlpha})
		}
	}
	// The grid is complete. Later drawing starts a new figure.
	a.figs.SetCurrent(nil)
	return fig, axes, nil
}

// Show displays every figure drawn so far.
func (a *Analysis) Show() error {
	return a.figs.Show()
}
