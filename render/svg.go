// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"image/color"
	"io"

	"github.com/aclements/descstat/figure"
	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
)

// SVG encodes figures as SVG using go-gg.
//
// A grid figure becomes a faceted plot with one facet band per row
// and column. Facet bands are labeled with the axis labels of the
// grid's boundary Axes. Axes with no data are left out of the facet
// grid. Fonts are go-gg's and do not follow the figure's FontSize.
type SVG struct {
	// DPI is the number of pixels per inch of figure size. If 0,
	// it is 96.
	DPI float64
}

func (SVG) Ext() string {
	return "svg"
}

func (s SVG) Encode(w io.Writer, fig *figure.Figure) error {
	if err := checkData(fig); err != nil {
		return err
	}
	dpi := s.DPI
	if dpi == 0 {
		dpi = 96
	}

	data, kinds := longTable(fig)
	p := gg.NewPlot(data)
	rows, cols := fig.Shape()
	sharex, sharey := fig.Sharing()
	if cols > 1 {
		p.Add(gg.FacetX{
			Col:          "col",
			SplitXScales: sharex == figure.ShareCol || sharex == figure.ShareNone,
			SplitYScales: sharey == figure.ShareCol || sharey == figure.ShareNone,
			Labeler:      bandLabeler(fig, false),
		})
	}
	if rows > 1 {
		p.Add(gg.FacetY{
			Col:          "row",
			SplitXScales: sharex == figure.ShareRow || sharex == figure.ShareNone,
			SplitYScales: sharey == figure.ShareRow || sharey == figure.ShareNone,
			Labeler:      bandLabeler(fig, true),
		})
	}
	if rows == 1 && cols == 1 {
		ax := fig.Axes(0, 0)
		if ax.XLabel != "" {
			p.Add(gg.AxisLabel("x", ax.XLabel))
		}
		if ax.YLabel != "" {
			p.Add(gg.AxisLabel("y", ax.YLabel))
		}
	}
	if title := svgTitle(fig); title != "" {
		p.Add(gg.Title(title))
	}

	if kinds[figure.Points] {
		p.Save()
		p.SetData(table.FilterEq(p.Data(), "kind", figure.Points))
		p.Add(gg.LayerPoints{X: "x", Y: "y", Color: "color"})
		p.Restore()
	}
	if kinds[figure.Line] {
		// One path per series.
		p.Save()
		p.SetData(table.FilterEq(p.Data(), "kind", figure.Line))
		p.GroupBy("series")
		p.Add(gg.LayerLines{X: "x", Y: "y", Color: "color"})
		p.Restore()
	}

	width, height := pixels(fig, dpi)
	return p.WriteSVG(w, width, height)
}

// longTable flattens every series of fig into a single table with one
// row per finite point. It also returns the kinds of series present.
func longTable(fig *figure.Figure) (*table.Table, map[figure.Kind]bool) {
	var (
		rows, cols, series []int
		kinds              []figure.Kind
		xs, ys             []float64
		colors             []color.Color
	)
	present := make(map[figure.Kind]bool)
	n := 0
	for _, band := range fig.Grid() {
		for _, ax := range band {
			r, c := ax.Pos()
			for _, s := range ax.Series {
				rgba := s.Style.RGBA()
				for i := range s.X {
					if !figure.Finite(s.X[i], s.Y[i]) {
						continue
					}
					rows = append(rows, r)
					cols = append(cols, c)
					series = append(series, n)
					kinds = append(kinds, s.Kind)
					xs = append(xs, s.X[i])
					ys = append(ys, s.Y[i])
					colors = append(colors, rgba)
					present[s.Kind] = true
				}
				n++
			}
		}
	}
	return table.NewBuilder(nil).
		Add("row", rows).
		Add("col", cols).
		Add("series", series).
		Add("kind", kinds).
		Add("x", xs).
		Add("y", ys).
		Add("color", colors).
		Done(), present
}

// bandLabeler labels facet bands with the axis labels of the
// boundary Axes: the bottom row for columns and the first column for
// rows.
func bandLabeler(fig *figure.Figure, row bool) func(interface{}) string {
	rows, _ := fig.Shape()
	return func(v interface{}) string {
		i := v.(int)
		if row {
			if l := fig.Axes(i, 0).YLabel; l != "" {
				return l
			}
			return fmt.Sprint(i)
		}
		ax := fig.Axes(rows-1, i)
		if ax.XLabel != "" {
			return ax.XLabel
		}
		if ax.Title != "" {
			return ax.Title
		}
		return fmt.Sprint(i)
	}
}

func svgTitle(fig *figure.Figure) string {
	if fig.Title != "" {
		return fig.Title
	}
	if fig.Len() == 1 {
		return fig.Axes(0, 0).Title
	}
	return ""
}
