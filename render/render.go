// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render turns figures into images.
//
// SVG renders through go-gg and PNG renders through gonum/plot. Both
// are Encoders. Files and Writer adapt an Encoder into a
// figure.Display.
package render

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/aclements/descstat/figure"
)

// Warning is a logger for reporting conditions that don't prevent an
// image from being produced, but may mean it is not what was asked
// for.
var Warning = log.New(os.Stderr, "[render] ", log.Lshortfile)

// ErrNoData is returned when asked to render a figure with no finite
// data in any of its Axes.
var ErrNoData = errors.New("figure has no data")

// An Encoder writes a single figure to w in some image format.
type Encoder interface {
	Encode(w io.Writer, fig *figure.Figure) error

	// Ext returns the file name extension for the format,
	// without a dot.
	Ext() string
}

// pixels returns the size of fig in pixels at dpi.
func pixels(fig *figure.Figure, dpi float64) (w, h int) {
	return int(math.Round(fig.Size.W * dpi)), int(math.Round(fig.Size.H * dpi))
}

func checkData(fig *figure.Figure) error {
	for _, ax := range fig.Grid() {
		for _, a := range ax {
			if lo, _ := a.XLim(); !math.IsNaN(lo) {
				return nil
			}
		}
	}
	if fig.Title != "" {
		return fmt.Errorf("%q: %w", fig.Title, ErrNoData)
	}
	return ErrNoData
}

// limits returns the limits from lim, widened if they are equal. It
// returns ok == false if there is no finite data.
func limits(lim func() (float64, float64)) (lo, hi float64, ok bool) {
	lo, hi = lim()
	if math.IsNaN(lo) {
		return 0, 0, false
	}
	if lo == hi {
		return lo - 0.5, hi + 0.5, true
	}
	return lo, hi, true
}
