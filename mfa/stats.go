// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mfa

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Stats holds summary statistics of a set of sequence lengths.
// All lengths are given in letters.
type Stats struct {
	Count int
	Size  int // Total length of all sequences.
	Min   int
	Max   int
	Mean  float64
	N50   int
}

// Summary is a LengthWriter that retains lengths for summary statistics.
// Sequence names are not kept.
type Summary struct {
	lengths []float64
}

// WriteLength implements LengthWriter.
func (s *Summary) WriteLength(_ string, length int) error {
	s.lengths = append(s.lengths, float64(length))
	return nil
}

// Stats returns the summary statistics of the lengths seen so far.
// An empty Summary returns the zero Stats.
func (s *Summary) Stats() Stats {
	if len(s.lengths) == 0 {
		return Stats{}
	}
	l := append([]float64(nil), s.lengths...)
	sort.Sort(sort.Reverse(sort.Float64Slice(l)))
	st := Stats{
		Count: len(l),
		Size:  int(floats.Sum(l)),
		Min:   int(floats.Min(l)),
		Max:   int(floats.Max(l)),
		Mean:  stat.Mean(l, nil),
	}

	// N50 is the length of the sequence at which the cumulative
	// length of the longest sequences reaches half the total.
	csum := floats.CumSum(make([]float64, len(l)), l)
	for i, v := range csum {
		if 2*v >= float64(st.Size) {
			st.N50 = int(l[i])
			break
		}
	}
	return st
}

// Histogram renders a histogram of the lengths seen so far, with the given
// number of bins, to the image file at path. The image format is chosen
// from the file extension.
func (s *Summary) Histogram(path string, bins int) error {
	if len(s.lengths) == 0 {
		return fmt.Errorf("mfa: no sequence lengths to plot")
	}
	if bins < 1 {
		return fmt.Errorf("mfa: invalid histogram bin count %d", bins)
	}
	h, err := plotter.NewHist(plotter.Values(s.lengths), bins)
	if err != nil {
		return fmt.Errorf("mfa: %w", err)
	}
	p := plot.New()
	p.Title.Text = "Sequence lengths"
	p.X.Label.Text = "length"
	p.Y.Label.Text = "count"
	p.Add(h)
	err = p.Save(6*vg.Inch, 4*vg.Inch, path)
	if err != nil {
		return fmt.Errorf("mfa: failed to save histogram: %w", err)
	}
	return nil
}
