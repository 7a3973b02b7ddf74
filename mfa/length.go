// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mfa

import (
	"fmt"
	"io"
	"strconv"

	"github.com/biogo/biogo/io/seqio"
)

// LengthWriter is the interface that receives sequence lengths.
type LengthWriter interface {
	WriteLength(name string, length int) error
}

// LengthWriters is a LengthWriter that passes each length to all of its
// elements in order, stopping at the first error.
type LengthWriters []LengthWriter

// WriteLength implements LengthWriter.
func (lw LengthWriters) WriteLength(name string, length int) error {
	for _, w := range lw {
		err := w.WriteLength(name, length)
		if err != nil {
			return err
		}
	}
	return nil
}

// Table is a LengthWriter producing a tab separated table with one
// `"name"<TAB>length` line per sequence. Names are quoted verbatim,
// without escaping.
type Table struct {
	w   io.Writer
	buf []byte
}

// NewTable returns a new Table writing to w.
func NewTable(w io.Writer) *Table { return &Table{w: w} }

// WriteLength implements LengthWriter.
func (t *Table) WriteLength(name string, length int) error {
	b := append(t.buf[:0], '"')
	b = append(b, name...)
	b = append(b, '"', '\t')
	b = strconv.AppendInt(b, int64(length), 10)
	b = append(b, '\n')
	t.buf = b
	_, err := t.w.Write(b)
	return err
}

// Lengths writes the name and length of each sequence read from src to dst,
// in input order, and returns the number of sequences seen. Only one sequence
// is held at a time.
func Lengths(dst LengthWriter, src seqio.Reader) (int, error) {
	var n int
	sc := seqio.NewScanner(src)
	for sc.Next() {
		s := sc.Seq()
		err := dst.WriteLength(s.Name(), s.Len())
		if err != nil {
			return n, fmt.Errorf("mfa: failed to write length of %q: %w", s.Name(), err)
		}
		n++
	}
	if err := sc.Error(); err != nil {
		return n, fmt.Errorf("mfa: failed during read: %w", err)
	}
	return n, nil
}
