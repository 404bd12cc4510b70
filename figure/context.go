// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

// A Display shows figures.
type Display interface {
	Display(figs []*Figure) error
}

// DisplayFunc adapts an ordinary function to a Display.
type DisplayFunc func(figs []*Figure) error

func (f DisplayFunc) Display(figs []*Figure) error {
	return f(figs)
}

// DefaultFontSize is the base font size of new figures.
const DefaultFontSize = 18

// Context tracks the current Axes and the figures that have been
// created but not yet shown.
//
// A Context is not safe for concurrent use. Code that draws into a
// Context owns it.
type Context struct {
	// FontSize is the base font size given to new figures.
	FontSize float64

	display Display
	pending []*Figure
	cur     *Axes
}

// NewContext returns a Context that shows figures on d. If d is nil,
// Show discards figures.
func NewContext(d Display) *Context {
	return &Context{FontSize: DefaultFontSize, display: d}
}

// Subplots creates a new figure with a rows by cols grid of Axes and
// makes its first Axes current. A zero size means DefaultSize.
func (c *Context) Subplots(rows, cols int, size Size, sharex, sharey Share) (*Figure, [][]*Axes) {
	f := newFigure(rows, cols, size, sharex, sharey)
	f.FontSize = c.FontSize
	c.pending = append(c.pending, f)
	c.cur = f.axes[0]
	return f, f.Grid()
}

// NewFigure creates a new figure with a single Axes and makes it
// current.
func (c *Context) NewFigure(size Size) *Figure {
	f, _ := c.Subplots(1, 1, size, ShareNone, ShareNone)
	return f
}

// Gca returns the current Axes, creating a new figure if there is
// none.
func (c *Context) Gca() *Axes {
	if c.cur == nil {
		c.NewFigure(Size{})
	}
	return c.cur
}

// SetCurrent makes a the current Axes. a's figure must belong to c
// and not have been shown yet. If a is nil, the next Gca starts a new
// figure.
func (c *Context) SetCurrent(a *Axes) {
	c.cur = a
}

// Pending returns the figures that have not been shown, in creation
// order.
func (c *Context) Pending() []*Figure {
	return append([]*Figure{}, c.pending...)
}

// Show passes every pending figure to the Display and clears the
// pending list and the current Axes, even if the Display fails.
func (c *Context) Show() error {
	figs := c.pending
	c.pending, c.cur = nil, nil
	if c.display == nil || len(figs) == 0 {
		return nil
	}
	return c.display.Display(figs)
}
