// Command unrollgen writes the generated naturals of package unroll.
//
// Usage:
//
//	unrollgen [flags]
//
// Each natural N1..N<max> gets its full and block bodies written out as
// straight-line calls. It is normally run through go generate:
//
//	//go:generate go run ../cmd/unrollgen -max 16 -pkg unroll -o nat_gen.go
//
// Without -o the source is written to standard output.
package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	maxN := flag.Int("max", 16, "largest natural to generate")
	pkg := flag.String("pkg", "unroll", "package name of the generated file")
	out := flag.String("o", "", "output file (default stdout)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: unrollgen [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Generates unrolled natural types N0..N<max>.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(2)
	}

	src, err := generate(config{max: *maxN, pkg: *pkg})
	if err != nil {
		fmt.Fprintf(os.Stderr, "unrollgen: %v\n", err)
		os.Exit(2)
	}

	if *out == "" {
		if _, err := os.Stdout.Write(src); err != nil {
			fmt.Fprintf(os.Stderr, "unrollgen: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := os.WriteFile(*out, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "unrollgen: write %s: %v\n", *out, err)
		os.Exit(1)
	}
}
