// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"bytes"
	"errors"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/aclements/descstat/analysis"
	"github.com/aclements/descstat/dataset"
	"github.com/aclements/descstat/figure"
)

func scatterFigure() *figure.Figure {
	ctx := figure.NewContext(nil)
	fig := ctx.NewFigure(figure.Size{W: 2, H: 2})
	fig.Title = "test"
	ax := ctx.Gca()
	ax.XLabel, ax.YLabel = "x", "y"
	ax.Scatter([]float64{1, 2, 3, math.NaN()}, []float64{4, 1, 2, 5}, figure.Style{Color: figure.RGB(1, 0, 0), Alpha: 0.5})
	ax.Plot([]float64{1, 3}, []float64{1, 4}, figure.Style{})
	return fig
}

func gridFigure() *figure.Figure {
	ctx := figure.NewContext(nil)
	fig, axes := ctx.Subplots(2, 2, figure.Size{W: 3, H: 3}, figure.ShareCol, figure.ShareRow)
	for j := range axes {
		for i, ax := range axes[j] {
			ax.Scatter([]float64{1, 2, float64(i + 3)}, []float64{0, float64(j), 1}, figure.Style{})
			if j == 1 {
				ax.XLabel = []string{"a", "b"}[i]
			}
			if i == 0 {
				ax.YLabel = []string{"a", "b"}[j]
			}
		}
	}
	return fig
}

func TestSVG(t *testing.T) {
	for _, fig := range []*figure.Figure{scatterFigure(), gridFigure()} {
		var buf bytes.Buffer
		if err := (SVG{}).Encode(&buf, fig); err != nil {
			t.Errorf("Encode: %v", err)
			continue
		}
		if !strings.Contains(buf.String(), "<svg") {
			t.Errorf("output is not SVG: %.100s", buf.String())
		}
	}
}

func TestPNGSize(t *testing.T) {
	for _, test := range []struct {
		enc  PNG
		want int
	}{
		{PNG{}, 192},
		{PNG{DPI: 50}, 100},
		{PNG{DPI: 96, Supersample: 2}, 192},
	} {
		for _, fig := range []*figure.Figure{scatterFigure(), gridFigure()} {
			var buf bytes.Buffer
			if err := test.enc.Encode(&buf, fig); err != nil {
				t.Errorf("%+v: %v", test.enc, err)
				continue
			}
			img, err := png.Decode(&buf)
			if err != nil {
				t.Errorf("%+v: decoding: %v", test.enc, err)
				continue
			}
			want := test.want
			if fig.Size.W == 3 {
				want = want * 3 / 2
			}
			if b := img.Bounds(); b.Dx() != want || b.Dy() != want {
				t.Errorf("%+v: want %dx%d; got %dx%d", test.enc, want, want, b.Dx(), b.Dy())
			}
		}
	}
}

func TestNoData(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)
	for _, test := range []struct {
		name   string
		xs, ys []float64
	}{
		{"missing x", []float64{nan}, []float64{1}},
		{"missing y", []float64{1, 2}, []float64{nan, nan}},
		{"missing mixed", []float64{1, nan, 3}, []float64{nan, 2, inf}},
		{"no points", nil, nil},
	} {
		ctx := figure.NewContext(nil)
		fig := ctx.NewFigure(figure.Size{W: 1, H: 1})
		ctx.Gca().Scatter(test.xs, test.ys, figure.Style{})
		ctx.Gca().Plot(test.xs, test.ys, figure.Style{})
		for _, enc := range []Encoder{SVG{}, PNG{}} {
			if err := enc.Encode(new(bytes.Buffer), fig); !errors.Is(err, ErrNoData) {
				t.Errorf("%s, %s: want ErrNoData; got %v", test.name, enc.Ext(), err)
			}
		}
	}
}

func TestMissingDependent(t *testing.T) {
	tab, err := dataset.NewBuilder().
		Numeric("x", []float64{1, 2}).
		Numeric("y", []float64{math.NaN(), math.NaN()}).
		Done()
	if err != nil {
		t.Fatal(err)
	}
	f := &Files{Dir: t.TempDir(), Encoder: SVG{}}
	a := analysis.New(tab, figure.NewContext(f))
	if _, _, err := a.Scatter("x", "y", ""); err != nil {
		t.Fatal(err)
	}
	if err := a.Show(); !errors.Is(err, ErrNoData) {
		t.Errorf("want ErrNoData; got %v", err)
	}
	if len(f.Written) != 0 {
		t.Errorf("wrote %v", f.Written)
	}
}

func TestSegments(t *testing.T) {
	nan := math.NaN()
	segs := segments([]float64{1, 2, nan, 4, 5, 6}, []float64{1, 2, 3, 4, nan, 6})
	var lens []int
	for _, s := range segs {
		lens = append(lens, len(s))
	}
	if want := []int{2, 1, 1}; !reflect.DeepEqual(want, lens) {
		t.Errorf("want segment lengths %v; got %v", want, lens)
	}
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	f := &Files{Dir: dir, Prefix: "plot", Encoder: SVG{}}
	ctx := figure.NewContext(f)

	for i := 0; i < 2; i++ {
		ctx.NewFigure(figure.Size{W: 1, H: 1})
		ctx.Gca().Scatter([]float64{1, 2}, []float64{3, float64(i)}, figure.Style{})
	}
	if err := ctx.Show(); err != nil {
		t.Fatal(err)
	}
	ctx.NewFigure(figure.Size{W: 1, H: 1})
	ctx.Gca().Plot([]float64{1, 2}, []float64{3, 4}, figure.Style{})
	if err := ctx.Show(); err != nil {
		t.Fatal(err)
	}

	var want []string
	for _, name := range []string{"plot-1.svg", "plot-2.svg", "plot-3.svg"} {
		want = append(want, filepath.Join(dir, name))
	}
	if !reflect.DeepEqual(want, f.Written) {
		t.Errorf("want files %v; got %v", want, f.Written)
	}
	for _, name := range want {
		data, err := os.ReadFile(name)
		if err != nil {
			t.Error(err)
		} else if !bytes.Contains(data, []byte("<svg")) {
			t.Errorf("%s is not SVG", name)
		}
	}
}

func TestFilesError(t *testing.T) {
	dir := t.TempDir()
	f := &Files{Dir: dir, Encoder: PNG{}}
	ctx := figure.NewContext(f)
	ctx.NewFigure(figure.Size{W: 1, H: 1})
	if err := ctx.Show(); !errors.Is(err, ErrNoData) {
		t.Errorf("want ErrNoData; got %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "figure-1.png")); !os.IsNotExist(err) {
		t.Errorf("partial file left behind: %v", err)
	}
}

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	ctx := figure.NewContext(Writer{&buf, PNG{DPI: 10}})
	ctx.NewFigure(figure.Size{W: 4, H: 3})
	ctx.Gca().Scatter([]float64{1, 2}, []float64{1, 2}, figure.Style{})
	if err := ctx.Show(); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 30 {
		t.Errorf("want 40x30; got %dx%d", b.Dx(), b.Dy())
	}
}
