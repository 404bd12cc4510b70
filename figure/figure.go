// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package figure describes plots as plain data.
//
// A Figure is a grid of Axes. Each Axes holds labels and a list of
// Series to draw. Nothing in this package draws anything; a Display
// (see package render) turns figures into images.
//
// Axes in the same figure may share axis limits. Sharing follows the
// usual subplot conventions: with x shared within columns, the Axes
// in a column have the same x limits and only the bottom row shows x
// tick labels; with y shared within rows, the Axes in a row have the
// same y limits and only the first column shows y tick labels.
package figure

import (
	"fmt"
	"image/color"
	"math"

	"github.com/aclements/go-moremath/stats"
)

// Size is the size of a figure in inches.
type Size struct {
	W, H float64
}

// DefaultSize is used for figures created with a zero Size.
var DefaultSize = Size{6.4, 4.8}

// Share specifies which Axes of a figure share limits along one
// axis.
type Share int

const (
	// ShareNone gives every Axes independent limits.
	ShareNone Share = iota
	// ShareAll gives every Axes in the figure the same limits.
	ShareAll
	// ShareRow shares limits among Axes in the same row.
	ShareRow
	// ShareCol shares limits among Axes in the same column.
	ShareCol
)

func (s Share) String() string {
	switch s {
	case ShareNone:
		return "none"
	case ShareAll:
		return "all"
	case ShareRow:
		return "row"
	case ShareCol:
		return "col"
	}
	return fmt.Sprintf("Share(%d)", int(s))
}

// Style controls how a Series is drawn.
type Style struct {
	// Color is the color of points or lines. nil means black.
	Color color.Color

	// Alpha is the opacity in (0, 1]. 0 means fully opaque.
	Alpha float64

	// Size is the point radius or line width in points. 0 means
	// the renderer's default.
	Size float64
}

// RGBA returns the effective color of s, with Alpha applied.
func (s Style) RGBA() color.NRGBA {
	c := s.Color
	if c == nil {
		c = color.Black
	}
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	if s.Alpha > 0 && s.Alpha < 1 {
		nc.A = uint8(math.Round(float64(nc.A) * s.Alpha))
	}
	return nc
}

// RGB returns an opaque color from components in [0, 1].
func RGB(r, g, b float64) color.Color {
	c := func(x float64) uint8 {
		return uint8(math.Round(255 * math.Max(0, math.Min(1, x))))
	}
	return color.NRGBA{c(r), c(g), c(b), 0xff}
}

// Kind is the kind of mark a Series draws.
type Kind int

const (
	// Points draws a marker at each (X, Y).
	Points Kind = iota
	// Line connects successive (X, Y) with line segments.
	Line
)

// Series is one set of (X, Y) data on an Axes.
type Series struct {
	Kind  Kind
	X, Y  []float64
	Style Style
}

// Axes is one cell of a Figure's grid.
type Axes struct {
	fig      *Figure
	row, col int

	Title          string
	XLabel, YLabel string

	// LabelSize is the font size of the axis labels in points. 0
	// means the figure's FontSize.
	LabelSize float64

	// XTickLabels and YTickLabels report whether tick labels are
	// drawn along each axis. Tick marks are always drawn.
	XTickLabels, YTickLabels bool

	Series []Series
}

// Figure returns the figure a belongs to.
func (a *Axes) Figure() *Figure {
	return a.fig
}

// Pos returns the row and column of a in its figure.
func (a *Axes) Pos() (row, col int) {
	return a.row, a.col
}

func (a *Axes) add(kind Kind, xs, ys []float64, st Style) {
	if len(xs) != len(ys) {
		panic(fmt.Sprintf("figure: x has %d values but y has %d", len(xs), len(ys)))
	}
	a.Series = append(a.Series, Series{
		Kind:  kind,
		X:     append([]float64{}, xs...),
		Y:     append([]float64{}, ys...),
		Style: st,
	})
}

// Scatter adds a point series to a. xs and ys must have the same
// length. The data is copied.
func (a *Axes) Scatter(xs, ys []float64, st Style) {
	a.add(Points, xs, ys, st)
}

// Plot adds a line series to a. xs and ys must have the same length.
// The data is copied.
func (a *Axes) Plot(xs, ys []float64, st Style) {
	a.add(Line, xs, ys, st)
}

// XLim returns the x limits of a: the bounds of the x data of every
// Axes that shares x limits with a. Only points whose x and y are both
// finite count, since no other point is drawn. If there are none, both
// limits are NaN.
func (a *Axes) XLim() (lo, hi float64) {
	var xs []float64
	for _, o := range a.fig.axes {
		if a.fig.shares(a.fig.sharex, a, o) {
			xs = appendFinite(xs, o.Series, false)
		}
	}
	return bounds(xs)
}

// YLim returns the y limits of a. See XLim.
func (a *Axes) YLim() (lo, hi float64) {
	var ys []float64
	for _, o := range a.fig.axes {
		if a.fig.shares(a.fig.sharey, a, o) {
			ys = appendFinite(ys, o.Series, true)
		}
	}
	return bounds(ys)
}

// appendFinite appends the x (or y, if y is set) coordinate of every
// finite point of series to dst.
func appendFinite(dst []float64, series []Series, y bool) []float64 {
	for _, s := range series {
		for i := range s.X {
			if !Finite(s.X[i], s.Y[i]) {
				continue
			}
			if y {
				dst = append(dst, s.Y[i])
			} else {
				dst = append(dst, s.X[i])
			}
		}
	}
	return dst
}

// Finite reports whether the point (x, y) is drawn: both coordinates
// must be finite.
func Finite(x, y float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && !math.IsNaN(y) && !math.IsInf(y, 0)
}

func bounds(xs []float64) (lo, hi float64) {
	if len(xs) == 0 {
		return math.NaN(), math.NaN()
	}
	return stats.Bounds(xs)
}

// Figure is a titled grid of Axes.
type Figure struct {
	Title string
	Size  Size

	// FontSize is the base font size in points.
	FontSize float64

	rows, cols     int
	sharex, sharey Share
	axes           []*Axes
}

func newFigure(rows, cols int, size Size, sharex, sharey Share) *Figure {
	if rows < 1 || cols < 1 {
		panic(fmt.Sprintf("figure: bad grid %dx%d", rows, cols))
	}
	if size == (Size{}) {
		size = DefaultSize
	}
	f := &Figure{Size: size, rows: rows, cols: cols, sharex: sharex, sharey: sharey}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			f.axes = append(f.axes, &Axes{
				fig:         f,
				row:         r,
				col:         c,
				XTickLabels: !(sharex == ShareCol || sharex == ShareAll) || r == rows-1,
				YTickLabels: !(sharey == ShareRow || sharey == ShareAll) || c == 0,
			})
		}
	}
	return f
}

// Shape returns the number of rows and columns in f's grid.
func (f *Figure) Shape() (rows, cols int) {
	return f.rows, f.cols
}

// Len returns the number of Axes in f.
func (f *Figure) Len() int {
	return len(f.axes)
}

// Sharing returns how f shares x and y limits.
func (f *Figure) Sharing() (x, y Share) {
	return f.sharex, f.sharey
}

// Axes returns the Axes at the given row and column.
func (f *Figure) Axes(row, col int) *Axes {
	if row < 0 || row >= f.rows || col < 0 || col >= f.cols {
		panic(fmt.Sprintf("figure: axes (%d, %d) outside %dx%d grid", row, col, f.rows, f.cols))
	}
	return f.axes[row*f.cols+col]
}

// Grid returns f's Axes indexed [row][col].
func (f *Figure) Grid() [][]*Axes {
	grid := make([][]*Axes, f.rows)
	for r := range grid {
		grid[r] = f.axes[r*f.cols : (r+1)*f.cols : (r+1)*f.cols]
	}
	return grid
}

func (f *Figure) shares(s Share, a, b *Axes) bool {
	switch s {
	case ShareAll:
		return true
	case ShareRow:
		return a.row == b.row
	case ShareCol:
		return a.col == b.col
	}
	return a == b
}
