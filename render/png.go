// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/aclements/descstat/figure"
	xdraw "golang.org/x/image/draw"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// PNG encodes figures as PNG using gonum/plot.
//
// Each Axes becomes one gonum plot. Shared limits and hidden tick
// labels follow the figure. The figure title is drawn centered above
// the grid.
type PNG struct {
	// DPI is the output resolution. If 0, it is 96.
	DPI int

	// Supersample draws the figure at this many times the output
	// resolution and scales the result down, which smooths edges.
	// If 0, it is 1.
	Supersample int
}

func (PNG) Ext() string {
	return "png"
}

func (e PNG) Encode(w io.Writer, fig *figure.Figure) error {
	img, err := e.Image(fig)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// Image renders fig to an image.
func (e PNG) Image(fig *figure.Figure) (image.Image, error) {
	if err := checkData(fig); err != nil {
		return nil, err
	}
	dpi, ss := e.DPI, e.Supersample
	if dpi == 0 {
		dpi = 96
	}
	if ss <= 0 {
		ss = 1
	}

	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(fig.Size.W)*vg.Inch, vg.Length(fig.Size.H)*vg.Inch),
		vgimg.UseDPI(dpi*ss))
	dc := draw.New(c)

	// White background.
	dc.SetColor(color.White)
	dc.Fill(dc.Rectangle.Path())

	fontSize := fig.FontSize
	if fontSize == 0 {
		fontSize = figure.DefaultFontSize
	}
	if fig.Title != "" {
		font, err := vg.MakeFont("Helvetica", vg.Points(fontSize))
		if err != nil {
			return nil, err
		}
		sty := draw.TextStyle{
			Color:  color.Black,
			Font:   font,
			XAlign: draw.XCenter,
			YAlign: draw.YTop,
		}
		top := vg.Point{X: (dc.Min.X + dc.Max.X) / 2, Y: dc.Max.Y}
		dc.FillText(sty, top, fig.Title)
		dc = draw.Crop(dc, 0, 0, 0, -1.5*font.Size)
	}

	grid := fig.Grid()
	plots := make([][]*plot.Plot, len(grid))
	for r, band := range grid {
		plots[r] = make([]*plot.Plot, len(band))
		for col, ax := range band {
			p, err := axesPlot(ax, fontSize)
			if err != nil {
				return nil, err
			}
			plots[r][col] = p
		}
	}

	rows, cols := fig.Shape()
	pad := vg.Points(fontSize / 2)
	tiles := draw.Tiles{Rows: rows, Cols: cols, PadX: pad, PadY: pad}
	canvases := plot.Align(plots, tiles, dc)
	for r := range plots {
		for col, p := range plots[r] {
			p.Draw(canvases[r][col])
		}
	}

	img := c.Image()
	if ss == 1 {
		return img, nil
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()/ss, b.Dy()/ss))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst, nil
}

func axesPlot(ax *figure.Axes, fontSize float64) (*plot.Plot, error) {
	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	p.Title.Text = ax.Title
	p.Title.Font.Size = vg.Points(fontSize)
	p.X.Label.Text = ax.XLabel
	p.Y.Label.Text = ax.YLabel
	labelSize := ax.LabelSize
	if labelSize == 0 {
		labelSize = fontSize
	}
	p.X.Label.Font.Size = vg.Points(labelSize)
	p.Y.Label.Font.Size = vg.Points(labelSize)
	if !ax.XTickLabels {
		p.X.Tick.Marker = unlabeledTicks{plot.DefaultTicks{}}
	}
	if !ax.YTickLabels {
		p.Y.Tick.Marker = unlabeledTicks{plot.DefaultTicks{}}
	}

	for _, s := range ax.Series {
		if err := addSeries(p, s); err != nil {
			return nil, err
		}
	}

	// Apply shared limits after adding data, since Add widens
	// them.
	if lo, hi, ok := limits(ax.XLim); ok {
		p.X.Min, p.X.Max = lo, hi
	}
	if lo, hi, ok := limits(ax.YLim); ok {
		p.Y.Min, p.Y.Max = lo, hi
	}
	return p, nil
}

func addSeries(p *plot.Plot, s figure.Series) error {
	col := s.Style.RGBA()
	switch s.Kind {
	case figure.Points:
		var pts plotter.XYs
		for i := range s.X {
			if figure.Finite(s.X[i], s.Y[i]) {
				pts = append(pts, plotter.XY{X: s.X[i], Y: s.Y[i]})
			}
		}
		if len(pts) == 0 {
			return nil
		}
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		sc.GlyphStyle.Color = col
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		sc.GlyphStyle.Radius = vg.Points(3)
		if s.Style.Size > 0 {
			sc.GlyphStyle.Radius = vg.Points(s.Style.Size)
		}
		p.Add(sc)

	case figure.Line:
		// Non-finite points break the line.
		for _, seg := range segments(s.X, s.Y) {
			if len(seg) < 2 {
				continue
			}
			l, err := plotter.NewLine(seg)
			if err != nil {
				return err
			}
			l.LineStyle.Color = col
			if s.Style.Size > 0 {
				l.LineStyle.Width = vg.Points(s.Style.Size)
			}
			p.Add(l)
		}

	default:
		Warning.Printf("unknown series kind %d; skipping", s.Kind)
	}
	return nil
}

func segments(xs, ys []float64) []plotter.XYs {
	var segs []plotter.XYs
	var cur plotter.XYs
	for i := range xs {
		if !figure.Finite(xs[i], ys[i]) {
			if cur != nil {
				segs = append(segs, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, plotter.XY{X: xs[i], Y: ys[i]})
	}
	if cur != nil {
		segs = append(segs, cur)
	}
	return segs
}

// unlabeledTicks places ticks like Ticker but without labels.
type unlabeledTicks struct {
	plot.Ticker
}

func (t unlabeledTicks) Ticks(min, max float64) []plot.Tick {
	ticks := t.Ticker.Ticks(min, max)
	for i := range ticks {
		ticks[i].Label = ""
	}
	return ticks
}
