// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analysis

import (
	"errors"
	"math"
	"testing"

	"github.com/aclements/descstat/dataset"
)

func TestCatCount(t *testing.T) {
	lv := dataset.Levels{Codes: []int{0, 1, 2}, Labels: []string{"low", "mid", "high"}}
	tab := mustTable(t, dataset.NewBuilder().
		Coded("c", []int{0, 1, 2, 0, 0, 1, 0, 0}, lv))
	c := NewCategorical(tab, nil)

	counts, labels, err := c.CatCount("c")
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{5, 2, 1}; !de(want, counts) {
		t.Errorf("counts: want %v; got %v", want, counts)
	}
	if !de(lv.Labels, labels) {
		t.Errorf("labels: want %v; got %v", lv.Labels, labels)
	}

	// An unused level counts zero.
	lv = dataset.Levels{Codes: []int{7, 3}, Labels: []string{"seven", "three"}}
	c.SetData(mustTable(t, dataset.NewBuilder().Coded("c", []int{3, 3}, lv)))
	counts, _, err = c.CatCount("c")
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 2}; !de(want, counts) {
		t.Errorf("counts with unused level: want %v; got %v", want, counts)
	}
}

func TestCatCountSums(t *testing.T) {
	vals := []string{"x", "y", "x", "z", "z", "z", "x"}
	c := NewCategorical(mustTable(t, dataset.NewBuilder().Categorical("c", vals)), nil)
	counts, labels, err := c.CatCount("c")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"x", "y", "z"}; !de(want, labels) {
		t.Errorf("labels: want %v; got %v", want, labels)
	}
	sum := 0
	for _, n := range counts {
		sum += n
	}
	if sum != len(vals) {
		t.Errorf("counts %v sum to %d; want %d", counts, sum, len(vals))
	}
}

func TestCatCount2(t *testing.T) {
	tab := mustTable(t, dataset.NewBuilder().
		Categorical("c1", []string{"a", "a", "b", "b"}).
		Categorical("c2", []string{"y", "z", "y", "z"}).
		Categorical("c3", []string{"p", "p", "p", "q"}))
	c := NewCategorical(tab, nil)

	for _, test := range []struct {
		h1, h2 string
		counts [][]int
		l1, l2 []string
	}{
		{"c1", "c2", [][]int{{1, 1}, {1, 1}}, []string{"a", "b"}, []string{"y", "z"}},
		{"c1", "c3", [][]int{{2, 0}, {1, 1}}, []string{"a", "b"}, []string{"p", "q"}},
		{"c3", "c1", [][]int{{2, 1}, {0, 1}}, []string{"p", "q"}, []string{"a", "b"}},
	} {
		counts, l1, l2, err := c.CatCount2(test.h1, test.h2)
		if err != nil {
			t.Errorf("CatCount2(%s, %s): %v", test.h1, test.h2, err)
			continue
		}
		if !de(test.counts, counts) || !de(test.l1, l1) || !de(test.l2, l2) {
			t.Errorf("CatCount2(%s, %s): want %v %v %v; got %v %v %v", test.h1, test.h2, test.counts, test.l1, test.l2, counts, l1, l2)
		}

		// Margins match the single-column counts.
		c1, _, _ := c.CatCount(test.h1)
		for i, row := range counts {
			sum := 0
			for _, n := range row {
				sum += n
			}
			if sum != c1[i] {
				t.Errorf("CatCount2(%s, %s): row %d sums to %d; CatCount says %d", test.h1, test.h2, i, sum, c1[i])
			}
		}
	}
}

func TestCatMean(t *testing.T) {
	nan := math.NaN()
	lv := dataset.Levels{Codes: []int{0, 1, 2}, Labels: []string{"g0", "g1", "g2"}}
	for _, test := range []struct {
		xs   []float64
		cats []int
		want []float64
	}{
		{[]float64{4, 5, 6, 1, 2, 3}, []int{0, 0, 0, 1, 1, 1}, []float64{5, 2, nan}},
		{[]float64{4, nan, 6, 1, 2, 3}, []int{0, 0, 0, 1, 1, 1}, []float64{5, 2, nan}},
		{[]float64{1, 2, nan}, []int{2, 0, 1}, []float64{2, nan, 1}},
	} {
		tab := mustTable(t, dataset.NewBuilder().
			Numeric("x", test.xs).
			Coded("c", test.cats, lv))
		c := NewCategorical(tab, nil)
		got, labels, err := c.CatMean("x", "c")
		if err != nil {
			t.Errorf("CatMean(%v, %v): %v", test.xs, test.cats, err)
			continue
		}
		if !de(lv.Labels, labels) {
			t.Errorf("labels: want %v; got %v", lv.Labels, labels)
		}
		for i := range test.want {
			w, g := test.want[i], got[i]
			if math.IsNaN(w) != math.IsNaN(g) || !math.IsNaN(w) && w != g {
				t.Errorf("CatMean(%v, %v): want %v; got %v", test.xs, test.cats, test.want, got)
				break
			}
		}
	}
}

// badLevels reports a different number of codes than labels.
type badLevels struct {
	*dataset.Table
}

func (badLevels) LevelsInt(string) ([]int, error) {
	return []int{0, 1}, nil
}

func (badLevels) LevelsStr(string) ([]string, error) {
	return []string{"only"}, nil
}

func TestCategoricalErrors(t *testing.T) {
	tab := mustTable(t, dataset.NewBuilder().
		Numeric("x", []float64{1, 2}).
		Categorical("c", []string{"a", "b"}))
	c := NewCategorical(tab, nil)

	if _, _, err := c.CatCount("x"); !errors.Is(err, ErrLevelMismatch) {
		t.Errorf("CatCount of numeric column: want ErrLevelMismatch; got %v", err)
	}
	if _, _, err := c.CatCount("nope"); !errors.Is(err, ErrMissingColumn) {
		t.Errorf("CatCount of missing column: want ErrMissingColumn; got %v", err)
	}
	if _, _, err := c.CatMean("nope", "c"); !errors.Is(err, ErrMissingColumn) {
		t.Errorf("CatMean of missing column: want ErrMissingColumn; got %v", err)
	}
	if _, _, _, err := c.CatCount2("c", "x"); !errors.Is(err, ErrLevelMismatch) {
		t.Errorf("CatCount2 with numeric column: want ErrLevelMismatch; got %v", err)
	}

	c.SetData(badLevels{tab})
	if _, _, err := c.CatCount("c"); !errors.Is(err, ErrLevelMismatch) {
		t.Errorf("CatCount with inconsistent levels: want ErrLevelMismatch; got %v", err)
	}
	if _, _, _, err := c.CatCount2("c", "c"); !errors.Is(err, ErrLevelMismatch) {
		t.Errorf("CatCount2 with inconsistent levels: want ErrLevelMismatch; got %v", err)
	}
}

func TestCategoricalStats(t *testing.T) {
	// The descriptive statistics work on a Categorical too.
	tab := mustTable(t, dataset.NewBuilder().
		Numeric("x", []float64{2, 4, 9}).
		Categorical("c", []string{"a", "b", "a"}))
	c := NewCategorical(tab, nil)
	mean, err := c.Mean([]string{"x"}, dataset.All())
	if err != nil || mean[0] != 5 {
		t.Errorf("Mean: want [5]; got %v, %v", mean, err)
	}
}
