// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fasta

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/seq"
	"github.com/biogo/biogo/seq/linear"

	"gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

type record struct {
	name string
	seq  string
}

func template() *linear.Seq { return linear.NewSeq("", nil, alphabet.DNA) }

func readAll(c *check.C, r *Reader) []record {
	var got []record
	for {
		s, err := r.Read()
		if err == io.EOF {
			break
		}
		c.Assert(err, check.IsNil)
		got = append(got, record{name: s.Name(), seq: letters(s)})
	}
	return got
}

func letters(s seq.Sequence) string {
	b := make([]byte, 0, s.Len())
	for i := s.Start(); i < s.End(); i++ {
		b = append(b, byte(s.At(i).L))
	}
	return string(b)
}

func (s *S) TestRead(c *check.C) {
	for i, t := range []struct {
		in   string
		want []record
	}{
		{in: "", want: nil},
		{in: "\n\n", want: nil},
		{in: "ACGT\nTT\n", want: nil},
		{
			in:   ">a\nACGT\nAC\n>b\nG\n",
			want: []record{{"a", "ACGTAC"}, {"b", "G"}},
		},
		{
			in:   ">a\n>b\nG",
			want: []record{{"a", ""}, {"b", "G"}},
		},
		{
			in:   ">a\nAC\n>b",
			want: []record{{"a", "AC"}, {"b", ""}},
		},
		{
			in:   "\n\n>a\nAC\n\nGT\n\n",
			want: []record{{"a", "ACGT"}},
		},
		{
			in:   "leading\nlines\n>x y|z\tw\nAA\n",
			want: []record{{"x y|z\tw", "AA"}},
		},
		{
			in:   ">\nAC\n>\n",
			want: []record{{"", "AC"}, {"", ""}},
		},
		{
			in:   ">a\r\nAC\r\nGT\r\n",
			want: []record{{"a", "ACGT"}},
		},
		{
			in:   ">a \nac gt\n",
			want: []record{{"a ", "ac gt"}},
		},
		{
			in:   ">a\nAC\n>a\nGG\n",
			want: []record{{"a", "AC"}, {"a", "GG"}},
		},
	} {
		r := NewReader(strings.NewReader(t.in), template())
		c.Check(readAll(c, r), check.DeepEquals, t.want, check.Commentf("Test %d: %q", i, t.in))
		c.Check(r.state, check.Equals, done, check.Commentf("Test %d", i))

		_, err := r.Read()
		c.Check(err, check.Equals, io.EOF, check.Commentf("Test %d", i))
	}
}

func (s *S) TestReadState(c *check.C) {
	r := NewReader(strings.NewReader("AC\n>a\nGT\n>b\n"), template())
	c.Check(r.state, check.Equals, seekHeader)

	sq, err := r.Read()
	c.Assert(err, check.IsNil)
	c.Check(sq.Name(), check.Equals, "a")
	c.Check(r.state, check.Equals, inRecord)
	c.Check(r.working.Name(), check.Equals, "b")

	sq, err = r.Read()
	c.Assert(err, check.IsNil)
	c.Check(sq.Name(), check.Equals, "b")
	c.Check(sq.Len(), check.Equals, 0)
	c.Check(r.state, check.Equals, done)
	c.Check(r.working, check.IsNil)
}

// Records are returned as soon as the next header is seen, so the reader
// must not touch input beyond that point.
func (s *S) TestReadLazy(c *check.C) {
	errBroken := errors.New("broken")
	r := NewReader(io.MultiReader(
		strings.NewReader(">a\nAC\n>b\n"),
		failReader{errBroken},
	), template())

	sq, err := r.Read()
	c.Assert(err, check.IsNil)
	c.Check(sq.Name(), check.Equals, "a")
	c.Check(sq.Len(), check.Equals, 2)

	_, err = r.Read()
	c.Check(err, check.Equals, errBroken)
	_, err = r.Read()
	c.Check(err, check.Equals, errBroken)
	c.Check(r.state, check.Equals, done)
}

func (s *S) TestReadErrorAfterHeader(c *check.C) {
	errBroken := errors.New("broken")
	r := NewReader(io.MultiReader(
		strings.NewReader(">a\nAC\n>b"),
		failReader{errBroken},
	), template())

	sq, err := r.Read()
	c.Assert(err, check.IsNil)
	c.Check(sq.Name(), check.Equals, "a")

	_, err = r.Read()
	c.Check(err, check.Equals, errBroken)
	c.Check(r.working, check.IsNil)
}

type failReader struct{ err error }

func (r failReader) Read([]byte) (int, error) { return 0, r.err }

func (s *S) TestReadLongLine(c *check.C) {
	body := strings.Repeat("ACGT", 1<<16)
	r := NewReader(strings.NewReader(">long\n"+body+"\n"), template())
	c.Check(readAll(c, r), check.DeepEquals, []record{{"long", body}})
}

func (s *S) TestScanner(c *check.C) {
	sc := seqio.NewScanner(NewReader(strings.NewReader(">a\nACGT\nAC\n>b\nG\n"), template()))
	var names []string
	var lens []int
	for sc.Next() {
		names = append(names, sc.Seq().Name())
		lens = append(lens, sc.Seq().Len())
	}
	c.Check(sc.Error(), check.IsNil)
	c.Check(names, check.DeepEquals, []string{"a", "b"})
	c.Check(lens, check.DeepEquals, []int{6, 1})
}

func (s *S) TestWrite(c *check.C) {
	withDesc := linear.NewSeq("id", alphabet.BytesToLetters([]byte("ACGT")), alphabet.DNA)
	withDesc.Desc = "some description"

	for i, t := range []struct {
		seqs []seq.Sequence
		want string
	}{
		{seqs: nil, want: ""},
		{
			seqs: []seq.Sequence{
				linear.NewSeq("b", alphabet.BytesToLetters([]byte("G")), alphabet.DNA),
			},
			want: ">b\nG\n",
		},
		{
			seqs: []seq.Sequence{
				linear.NewSeq("empty", nil, alphabet.DNA),
				linear.NewSeq("", alphabet.BytesToLetters([]byte("AC")), alphabet.DNA),
			},
			want: ">empty\n\n>\nAC\n",
		},
		{
			seqs: []seq.Sequence{withDesc},
			want: ">id some description\nACGT\n",
		},
	} {
		var buf bytes.Buffer
		w := NewWriter(&buf)
		total := 0
		for _, sq := range t.seqs {
			n, err := w.Write(sq)
			c.Assert(err, check.IsNil)
			total += n
		}
		c.Check(buf.String(), check.Equals, t.want, check.Commentf("Test %d", i))
		c.Check(total, check.Equals, len(t.want), check.Commentf("Test %d", i))
	}
}

func (s *S) TestRoundTrip(c *check.C) {
	const (
		in = "ignored\n>seq1 first|x\nACGTACGTAC\nGTACG\n\n>seq2\tsecond\nTTTT\n>seq3\n"
		// Bodies are flattened to a single line.
		want = ">seq1 first|x\nACGTACGTACGTACG\n>seq2\tsecond\nTTTT\n>seq3\n\n"
	)
	var buf bytes.Buffer
	w := NewWriter(&buf)
	r := NewReader(strings.NewReader(in), template())
	for {
		sq, err := r.Read()
		if err == io.EOF {
			break
		}
		c.Assert(err, check.IsNil)
		_, err = w.Write(sq)
		c.Assert(err, check.IsNil)
	}
	c.Check(buf.String(), check.Equals, want)

	// Writing the output again is a fixed point.
	var again bytes.Buffer
	w = NewWriter(&again)
	sc := seqio.NewScanner(NewReader(strings.NewReader(buf.String()), template()))
	for sc.Next() {
		_, err := w.Write(sc.Seq())
		c.Assert(err, check.IsNil)
	}
	c.Check(sc.Error(), check.IsNil)
	c.Check(again.String(), check.Equals, want)
}
