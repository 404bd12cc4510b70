// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aclements/descstat/figure"
)

// Files is a figure.Display that writes each figure to its own file
// named Dir/Prefix-N.ext, where N counts figures from 1 across calls
// to Display and ext comes from the Encoder.
type Files struct {
	Dir     string
	Prefix  string
	Encoder Encoder

	n int

	// Written lists the files written so far.
	Written []string
}

func (f *Files) Display(figs []*figure.Figure) error {
	prefix := f.Prefix
	if prefix == "" {
		prefix = "figure"
	}
	for _, fig := range figs {
		f.n++
		name := filepath.Join(f.Dir, fmt.Sprintf("%s-%d.%s", prefix, f.n, f.Encoder.Ext()))
		if err := writeFile(name, f.Encoder, fig); err != nil {
			return err
		}
		f.Written = append(f.Written, name)
	}
	return nil
}

func writeFile(name string, enc Encoder, fig *figure.Figure) error {
	file, err := os.Create(name)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(file)
	err = enc.Encode(w, fig)
	if err == nil {
		err = w.Flush()
	}
	if err1 := file.Close(); err == nil {
		err = err1
	}
	if err != nil {
		os.Remove(name)
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

// Writer is a figure.Display that encodes each figure to W in turn.
// It is meant for showing one figure at a time on a stream.
type Writer struct {
	W       io.Writer
	Encoder Encoder
}

func (w Writer) Display(figs []*figure.Figure) error {
	if len(figs) > 1 {
		Warning.Printf("writing %d figures to one stream", len(figs))
	}
	for _, fig := range figs {
		if err := w.Encoder.Encode(w.W, fig); err != nil {
			return err
		}
	}
	return nil
}
