// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mfa

import (
	"fmt"
	"sort"

	"github.com/biogo/biogo/io/seqio"
)

// Extraction reports the outcome of Extract.
type Extraction struct {
	Written int      // Number of records written, including duplicates.
	Found   int      // Number of distinct names matched.
	Missing []string // Requested names never matched, sorted.
}

// Extract writes to dst every sequence read from src whose name is in names.
// Matching is tested against the full name set for every record, so repeated
// identifiers in src are all written until every name has been found; from
// then on no more input is read. Names that were not found are returned in
// the Missing field; they are not an error.
func Extract(dst seqio.Writer, src seqio.Reader, names NameSet) (Extraction, error) {
	var res Extraction
	found := make(NameSet, len(names))
	if names.Len() != 0 {
		sc := seqio.NewScanner(src)
		for sc.Next() {
			s := sc.Seq()
			if !names.Has(s.Name()) {
				continue
			}
			_, err := dst.Write(s)
			if err != nil {
				return res, fmt.Errorf("mfa: failed to write sequence %q: %w", s.Name(), err)
			}
			res.Written++
			found[s.Name()] = struct{}{}
			if found.Len() == names.Len() {
				break
			}
		}
		if err := sc.Error(); err != nil {
			return res, fmt.Errorf("mfa: failed during read: %w", err)
		}
	}
	res.Found = found.Len()
	for n := range names {
		if !found.Has(n) {
			res.Missing = append(res.Missing, n)
		}
	}
	sort.Strings(res.Missing)
	return res, nil
}
