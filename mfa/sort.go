// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mfa

import (
	"fmt"
	"sort"

	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/seq"
)

// Order is a sequence length sort order. The zero value is Descending.
type Order int

const (
	Descending Order = iota
	Ascending
)

// ParseOrder returns the Order named by s, either "ascending" or
// "descending".
func ParseOrder(s string) (Order, error) {
	switch s {
	case "descending":
		return Descending, nil
	case "ascending":
		return Ascending, nil
	}
	return 0, fmt.Errorf("mfa: invalid sort order %q: must be ascending or descending", s)
}

func (o Order) String() string {
	switch o {
	case Descending:
		return "descending"
	case Ascending:
		return "ascending"
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// Set implements flag.Value.
func (o *Order) Set(s string) error {
	v, err := ParseOrder(s)
	if err != nil {
		return err
	}
	*o = v
	return nil
}

type entry struct {
	seq.Sequence
	len int
}

// SortByLength reads every sequence from src and writes them to dst sorted
// by length in the order o. Sequences of equal length keep their input order
// in both directions. It returns the number of sequences written.
func SortByLength(dst seqio.Writer, src seqio.Reader, o Order) (int, error) {
	var entries []entry
	sc := seqio.NewScanner(src)
	for sc.Next() {
		s := sc.Seq()
		entries = append(entries, entry{Sequence: s, len: s.Len()})
	}
	if err := sc.Error(); err != nil {
		return 0, fmt.Errorf("mfa: failed during read: %w", err)
	}

	var less func(i, j int) bool
	switch o {
	case Ascending:
		less = func(i, j int) bool { return entries[i].len < entries[j].len }
	case Descending:
		less = func(i, j int) bool { return entries[i].len > entries[j].len }
	default:
		return 0, fmt.Errorf("mfa: invalid sort order %v", o)
	}
	sort.SliceStable(entries, less)

	for i, e := range entries {
		_, err := dst.Write(e.Sequence)
		if err != nil {
			return i, fmt.Errorf("mfa: failed to write sequence %q: %w", e.Name(), err)
		}
	}
	return len(entries), nil
}
