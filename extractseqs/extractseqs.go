// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// extractseqs extracts a set of sequences from a Multi-FASTA file.
// The names of the sequences to extract are listed one per line in
// a text file and must match the full header text following '>'.
// Matching sequences are written unwrapped to the output file, and
// each requested name that was not found is reported as a warning.
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
	namef = flag.String("names", "", "text file listing line by line the names of the sequences to extract (required).")
	outf  = flag.String("out", "", "Multi-FASTA file receiving the extracted sequences (required).")
	help  = flag.Bool("help", false, "help prints this message.")
)

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	log.SetFlags(0)
	for _, p := range []struct{ name, val string }{{"in", *inf}, {"names", *namef}, {"out", *outf}} {
		if p.val == "" {
			fmt.Fprintf(os.Stderr, "missing required -%s flag\n", p.name)
			flag.Usage()
			os.Exit(1)
		}
	}
	for _, p := range []string{*inf, *namef} {
		if err := isFile(p); err != nil {
			log.Fatalf("Error: %v.", err)
		}
	}

	log.Println("Indexing names of sequences to extract...")
	nf, err := os.Open(*namef)
	if err != nil {
		log.Fatalf("failed to open %q: %v", *namef, err)
	}
	names, err := mfa.ReadNames(nf)
	nf.Close()
	if err != nil {
		log.Fatalf("failed to read %q: %v", *namef, err)
	}
	log.Printf("%d sequences indexed.\n\n", names.Len())

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

	log.Println("Extracting sequences...")
	r := fasta.NewReader(in, linear.NewSeq("", nil, alphabet.DNA))
	res, err := mfa.Extract(fasta.NewWriter(buf), r, names)
	if err != nil {
		log.Fatalf("failed to extract sequences: %v", err)
	}
	if err = buf.Flush(); err != nil {
		log.Fatalf("failed to write %q: %v", *outf, err)
	}
	if err = out.Close(); err != nil {
		log.Fatalf("failed to close %q: %v", *outf, err)
	}
	log.Printf("%d sequences extracted.\n\n", res.Found)

	for _, n := range res.Missing {
		log.Printf("warning : sequence '%s' not found", n)
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
