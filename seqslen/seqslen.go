// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// seqslen computes the length of each sequence of a Multi-FASTA file.
// The output file contains line by line, tab separated pairs of values:
//  "<seq_name>"	<seq_length>
// Optionally it prints summary statistics of the lengths (number of
// sequences, total size, Min, Max, Avg and N50) and renders a length
// histogram.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/seq/linear"

	"github.com/biogo/mfatools/fasta"
	"github.com/biogo/mfatools/mfa"
)

var (
	inf   = flag.String("in", "", "Multi-FASTA file (required).")
	outf  = flag.String("out", "", "output table of sequence names and lengths (required).")
	stats = flag.Bool("stats", false, "print summary statistics of sequence lengths.")
	hist  = flag.String("hist", "", "write a histogram of sequence lengths to this image file.")
	bins  = flag.Int("bins", 50, "number of histogram bins.")
	help  = flag.Bool("help", false, "help prints this message.")
)

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	log.SetFlags(0)
	if *inf == "" || *outf == "" {
		fmt.Fprintln(os.Stderr, "missing required -in or -out flag")
		flag.Usage()
		os.Exit(1)
	}
	if err := isFile(*inf); err != nil {
		log.Fatalf("Error: %v.", err)
	}

	in, err := os.Open(*inf)
	if err != nil {
		log.Fatalf("failed to open %q: %v", *inf, err)
	}
	defer in.Close()
	out, err := os.Create(*outf)
	if err != nil {
		log.Fatalf("failed to create %q: %v", *outf, err)
	}
	buf := bufio.NewWriter(out)

	dst := mfa.LengthWriters{mfa.NewTable(buf)}
	var sum mfa.Summary
	if *stats || *hist != "" {
		dst = append(dst, &sum)
	}

	log.Println("Computing length of sequences...")
	start := time.Now()
	r := fasta.NewReader(in, linear.NewSeq("", nil, alphabet.DNA))
	_, err = mfa.Lengths(dst, r)
	if err != nil {
		log.Fatalf("failed to compute lengths: %v", err)
	}
	if err = buf.Flush(); err != nil {
		log.Fatalf("failed to write %q: %v", *outf, err)
	}
	if err = out.Close(); err != nil {
		log.Fatalf("failed to close %q: %v", *outf, err)
	}
	log.Printf("Done in %v", time.Since(start))

	if *stats {
		st := sum.Stats()
		fmt.Printf("%+v\n", st)
	}
	if *hist != "" {
		if err = sum.Histogram(*hist, *bins); err != nil {
			log.Fatalf("failed to render histogram: %v", err)
		}
	}
}

// isFile returns an error if path does not name an existing regular file.
func isFile(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s does not exist", path)
		}
		return err
	}
	if fi.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	return nil
}
