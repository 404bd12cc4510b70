// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command statplot demonstrates descriptive statistics and scatter
// plots over a small built-in survey.
//
// statplot fits a line to a set of weight and height measurements by
// least squares and prints the fit. It then prints summary statistics
// and categorical tables for the survey, draws a scatter plot of
// height against weight with the fitted line, and draws a pair plot
// of the variables named by -vars.
//
// Figures are written to numbered files in the -o directory, or to
// stdout with -o -.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"
	"text/tabwriter"

	"github.com/aclements/descstat/analysis"
	"github.com/aclements/descstat/dataset"
	"github.com/aclements/descstat/figure"
	"github.com/aclements/descstat/render"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
	"github.com/kballard/go-shellquote"
	"golang.org/x/crypto/ssh/terminal"
)

func main() {
	log.SetPrefix("statplot: ")
	log.SetFlags(0)

	var (
		flagCPUProfile = flag.String("cpuprofile", "", "write CPU profile to `file`")
		flagMemProfile = flag.String("memprofile", "", "write heap profile to `file`")
		flagOut        = flag.String("o", ".", "write figures to `dir`, or to stdout if -")
		flagFormat     = flag.String("format", "svg", "figure `format`: svg or png")
		flagDPI        = flag.Int("dpi", 96, "figure resolution in pixels per inch")
		flagVars       = flag.String("vars", "age weight height bmi", "shell-quoted `list` of variables for the pair plot")
		flagTable      = flag.Bool("table", false, "print tables only; do not draw figures")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(2)
	}

	if *flagCPUProfile != "" {
		f, err := os.Create(*flagCPUProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if *flagMemProfile != "" {
		defer func() {
			runtime.GC()
			f, err := os.Create(*flagMemProfile)
			if err != nil {
				log.Fatal(err)
			}
			pprof.WriteHeapProfile(f)
			f.Close()
		}()
	}

	vars, err := shellquote.Split(*flagVars)
	if err != nil {
		log.Fatalf("bad -vars: %v", err)
	}

	// Pick the figure output.
	var enc render.Encoder
	switch *flagFormat {
	case "svg":
		enc = render.SVG{DPI: float64(*flagDPI)}
	case "png":
		enc = render.PNG{DPI: *flagDPI, Supersample: 2}
	default:
		log.Fatalf("unknown format %q", *flagFormat)
	}
	var display figure.Display
	var files *render.Files
	switch {
	case *flagTable:
		// Figures are discarded.
	case *flagOut == "-":
		if terminal.IsTerminal(int(os.Stdout.Fd())) {
			log.Fatalf("refusing to write %s to a terminal", enc.Ext())
		}
		display = render.Writer{W: os.Stdout, Encoder: enc}
	default:
		files = &render.Files{Dir: *flagOut, Prefix: "statplot", Encoder: enc}
		display = files
	}
	figs := figure.NewContext(display)

	// Text goes to stderr when figures go to stdout.
	var out io.Writer = os.Stdout
	if *flagOut == "-" && !*flagTable {
		out = os.Stderr
	}

	if err := run(out, figs, vars); err != nil {
		log.Fatal(err)
	}
	if files != nil {
		for _, name := range files.Written {
			fmt.Fprintln(out, "wrote", name)
		}
	}
}

func run(out io.Writer, figs *figure.Context, vars []string) error {
	// Least-squares fit of height on weight.
	ft, err := fitTable()
	if err != nil {
		return err
	}
	fa := analysis.New(ft, figs)
	line, err := fa.Fit("weight", "height", dataset.All())
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "y-intercept: %v\n", line.Intercept)
	fmt.Fprintf(out, "slope: %v\n", line.Slope)

	if _, _, err := fa.Scatter("weight", "height", "height vs. weight"); err != nil {
		return err
	}
	b, err := ft.Select([]string{"weight"}, dataset.All())
	if err != nil {
		return err
	}
	lo, hi := stats.Bounds(b.Col(0))
	xs := vec.Linspace(lo, hi, 50)
	figs.Gca().Plot(xs, vec.Map(line.At, xs), figure.Style{Color: figure.RGB(0.8, 0.1, 0.1), Size: 1.5})
	if err := fa.Show(); err != nil {
		return err
	}

	// Survey statistics.
	pt, err := peopleTable()
	if err != nil {
		return err
	}
	ca := analysis.NewCategorical(pt, figs)
	numeric := []string{"age", "weight", "height", "bmi"}

	fmt.Fprintln(out)
	summary, err := ca.Summarize(numeric, dataset.All())
	if err != nil {
		return err
	}
	table.Fprint(out, summary)

	fmt.Fprintln(out)
	counts, labels, err := ca.CatCount("origin")
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "origin\tcount")
	for i, l := range labels {
		fmt.Fprintf(tw, "%s\t%d\n", l, counts[i])
	}
	tw.Flush()

	fmt.Fprintln(out)
	means, labels, err := ca.CatMean("weight", "origin")
	if err != nil {
		return err
	}
	fmt.Fprintln(tw, "origin\tmean weight")
	for i, l := range labels {
		fmt.Fprintf(tw, "%s\t%.1f\n", l, means[i])
	}
	tw.Flush()

	fmt.Fprintln(out)
	grid, rowLabels, colLabels, err := ca.CatCount2("origin", "decade")
	if err != nil {
		return err
	}
	fmt.Fprintf(tw, "origin\t%s\n", strings.Join(colLabels, "\t"))
	for i, l := range rowLabels {
		fmt.Fprint(tw, l)
		for _, n := range grid[i] {
			fmt.Fprintf(tw, "\t%d", n)
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()

	// Pair plot.
	if len(vars) == 0 {
		return nil
	}
	if _, _, err := ca.PairPlot(vars, figure.Size{}, "survey"); err != nil {
		return err
	}
	return ca.Show()
}
