// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// sortseqs sorts the sequences of a Multi-FASTA file by their length.
// Sequences of equal length keep their input order. All sequences are
// held in memory while sorting.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/seq/linear"

	"github.com/biogo/mfatools/fasta"
	"github.com/biogo/mfatools/mfa"
)

var (
	inf   = flag.String("in", "", "Multi-FASTA file containing the sequences (required).")
	outf  = flag.String("out", "", "Multi-FASTA file with sequences sorted by their length (required).")
	order mfa.Order
	help  = flag.Bool("help", false, "help prints this message.")
)

func init() {
	flag.Var(&order, "order", "sort order: ascending or descending.")
}

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

	log.Printf("Sorting sequences in %v order...", order)
	r := fasta.NewReader(in, linear.NewSeq("", nil, alphabet.DNA))
	n, err := mfa.SortByLength(fasta.NewWriter(buf), r, order)
	if err != nil {
		log.Fatalf("failed to sort sequences: %v", err)
	}
	if err = buf.Flush(); err != nil {
		log.Fatalf("failed to write %q: %v", *outf, err)
	}
	if err = out.Close(); err != nil {
		log.Fatalf("failed to close %q: %v", *outf, err)
	}
	log.Printf("%d sequences written.", n)
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
