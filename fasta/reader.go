// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fasta provides a Multi-FASTA reader and writer that keep the
// header line verbatim.
//
// Unlike github.com/biogo/biogo/io/seqio/fasta, the text following '>' is
// never split into an ID and a description, and body lines are not trimmed,
// so identifiers containing spaces, tabs or pipes survive a read/write
// round trip byte for byte. Reader and Writer satisfy seqio.Reader and
// seqio.Writer.
package fasta

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/seq"
)

// IDPrefix marks a header line.
const IDPrefix = '>'

type state int

const (
	seekHeader state = iota // No record open; body lines are discarded.
	inRecord                // A header has been read and letters are accumulating.
	done                    // The source is exhausted or has failed.
)

func (s state) String() string {
	switch s {
	case seekHeader:
		return "seekHeader"
	case inRecord:
		return "inRecord"
	case done:
		return "done"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Reader implements Multi-FASTA format reading.
type Reader struct {
	r     *bufio.Reader
	t     seqio.SequenceAppender
	state state

	working seqio.SequenceAppender
	pending error // Read error deferred while returning a completed sequence.
	err     error
}

// NewReader returns a new Multi-FASTA format reader using r as input. Each
// returned sequence is a clone of the template t with its name set to the
// header text.
func NewReader(r io.Reader, t seqio.SequenceAppender) *Reader {
	return &Reader{
		r: bufio.NewReader(r),
		t: t,
	}
}

// Read returns the next sequence in the stream, or io.EOF once the stream is
// exhausted. A sequence is complete when the following header line is read
// or the stream ends, so the reader holds at most one sequence at a time.
// Any other error is returned by this and every subsequent call.
func (r *Reader) Read() (seq.Sequence, error) {
	if r.state == done {
		return nil, r.err
	}
	for {
		var (
			line []byte
			err  error
		)
		if r.pending != nil {
			err, r.pending = r.pending, nil
		} else {
			line, err = r.r.ReadBytes('\n')
		}
		if len(line) > 0 {
			line = trimTerminator(line)
			if len(line) > 0 && line[0] == IDPrefix {
				next, herr := r.header(line[1:])
				if herr != nil {
					return nil, r.fail(herr)
				}
				prev, open := r.working, r.state == inRecord
				r.working, r.state = next, inRecord
				if open {
					r.pending = err
					return prev, nil
				}
			} else if r.state == inRecord && len(line) > 0 {
				aerr := r.working.AppendLetters(alphabet.BytesToLetters(line)...)
				if aerr != nil {
					return nil, r.fail(aerr)
				}
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return nil, r.fail(err)
			}
			last, open := r.working, r.state == inRecord
			r.fail(io.EOF)
			if open {
				return last, nil
			}
			return nil, io.EOF
		}
	}
}

func (r *Reader) header(id []byte) (seqio.SequenceAppender, error) {
	s, ok := r.t.Clone().(seqio.SequenceAppender)
	if !ok {
		return nil, errors.New("fasta: template clone is not a seqio.SequenceAppender")
	}
	err := s.SetName(string(id))
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *Reader) fail(err error) error {
	r.state, r.err, r.working = done, err, nil
	return err
}

// trimTerminator removes a trailing "\n" or "\r\n" from line.
func trimTerminator(line []byte) []byte {
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}
	}
	return line
}
