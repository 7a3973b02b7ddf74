// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mfa provides the record-level operations behind the Multi-FASTA
// tools: extraction of named sequences, sequence length tables and sorting
// by sequence length. Operations read from any seqio.Reader and write to any
// seqio.Writer, and hold no state between calls.
package mfa

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// NameSet is a set of sequence identifiers. Membership is exact and case
// sensitive.
type NameSet map[string]struct{}

// NewNameSet returns a NameSet holding names.
func NewNameSet(names ...string) NameSet {
	s := make(NameSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Has returns whether name is in the set.
func (s NameSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Len returns the number of distinct names in the set.
func (s NameSet) Len() int { return len(s) }

// ReadNames reads one name per line from r. Only the line terminator is
// removed from each line and duplicate names collapse.
func ReadNames(r io.Reader) (NameSet, error) {
	s := make(NameSet)
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			s[trimTerminator(line)] = struct{}{}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return s, nil
			}
			return nil, fmt.Errorf("mfa: reading names: %w", err)
		}
	}
}

func trimTerminator(line string) string {
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}
	}
	return line
}
