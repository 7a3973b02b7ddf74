// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fasta

import (
	"io"

	"github.com/biogo/biogo/seq"
	"github.com/biogo/biogo/seq/linear"
)

// Writer implements Multi-FASTA format writing. Every sequence is written
// as a header line followed by a single, unwrapped, body line.
type Writer struct {
	w   io.Writer
	buf []byte
}

// NewWriter returns a new Multi-FASTA format writer using w as output.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write writes a single sequence and returns the number of bytes written and
// any error. The sequence description, if any, follows the name after a
// single space.
func (w *Writer) Write(s seq.Sequence) (n int, err error) {
	b := append(w.buf[:0], IDPrefix)
	b = append(b, s.Name()...)
	if desc := s.Description(); desc != "" {
		b = append(b, ' ')
		b = append(b, desc...)
	}
	b = append(b, '\n')
	if ls, ok := s.(*linear.Seq); ok {
		for _, l := range ls.Seq {
			b = append(b, byte(l))
		}
	} else {
		for i := s.Start(); i < s.End(); i++ {
			b = append(b, byte(s.At(i).L))
		}
	}
	b = append(b, '\n')
	w.buf = b
	return w.w.Write(b)
}
