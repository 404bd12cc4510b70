// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/aclements/descstat/dataset"
)

type person struct {
	age            int
	origin         string
	weight, height float64
}

// people is a small survey of adults by country of origin. Weight is
// in kilograms and height in meters.
var people = []person{
	{20, "de", 80, 1.88},
	{22, "de", 85, 1.85},
	{20, "de", 90, 1.95},
	{25, "de", 90, 1.72},
	{20, "ch", 77, 1.78},
	{20, "ch", 82, 1.75},
	{28, "ch", 85, 1.80},
	{20, "ch", 84, 1.62},
	{31, "de", 85, 1.88},
	{30, "de", 90, 1.85},
	{30, "de", 99, 1.95},
	{42, "de", 95, 1.72},
	{30, "ch", 80, 1.78},
	{30, "ch", 85, 1.75},
	{37, "ch", 87, 1.80},
	{47, "ch", 90, 1.62},
	{42, "uk", 60, 1.68},
	{42, "uk", 65, 1.65},
	{44, "uk", 55, 1.52},
	{44, "uk", 70, 1.72},
}

// peopleTable returns people as a table with numeric columns "age",
// "weight", "height", and "bmi", and categorical columns "origin" and
// "decade".
func peopleTable() (*dataset.Table, error) {
	n := len(people)
	age := make([]float64, n)
	weight := make([]float64, n)
	height := make([]float64, n)
	bmi := make([]float64, n)
	origin := make([]string, n)
	decade := make([]int, n)
	for i, p := range people {
		age[i] = float64(p.age)
		weight[i] = p.weight
		height[i] = p.height
		bmi[i] = p.weight / (p.height * p.height)
		origin[i] = p.origin
		decade[i] = p.age / 10
	}

	// Decades are coded by their number so the levels sort by age.
	var lv dataset.Levels
	for d := 2; d <= 4; d++ {
		lv.Codes = append(lv.Codes, d)
		lv.Labels = append(lv.Labels, fmt.Sprintf("%d0s", d))
	}

	return dataset.NewBuilder().
		Numeric("age", age).
		Numeric("weight", weight).
		Numeric("height", height).
		Numeric("bmi", bmi).
		Categorical("origin", origin).
		Coded("decade", decade, lv).
		Done()
}

// fitTable returns the weight and height measurements used for the
// least-squares example.
func fitTable() (*dataset.Table, error) {
	return dataset.NewBuilder().
		Numeric("weight", []float64{4.5, 5.1, 6.3, 4.8}).
		Numeric("height", []float64{155, 232, 340, 185}).
		Done()
}
