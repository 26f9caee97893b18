package main

import (
	"errors"
	"fmt"
	"go/format"
	"strings"
)

// maxFactor bounds -max. Each natural adds about 2N lines of output.
const maxFactor = 256

var errMax = errors.New("max must be between 1 and 256")

type config struct {
	max int
	pkg string
}

// generate renders the source of the natural types N0..N<max>.
//
// The bodies are built by induction: the body of N is the body of N-1
// followed by the call for index N-1.
func generate(cfg config) ([]byte, error) {
	if cfg.max < 1 || cfg.max > maxFactor {
		return nil, fmt.Errorf("%w: got %d", errMax, cfg.max)
	}
	if cfg.pkg == "" {
		return nil, errors.New("package name is empty")
	}

	var b strings.Builder
	b.WriteString("// Code generated by unrollgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", cfg.pkg)
	b.WriteString("// N0 is the natural number 0.\n")
	b.WriteString("type N0 = Zero\n")

	var full, block []string
	for n := 1; n <= cfg.max; n++ {
		j := n - 1
		full = append(full, fmt.Sprintf("\tf(%d)\n", j))
		if j == 0 {
			block = append(block, "\tf(base, 0)\n")
		} else {
			block = append(block, fmt.Sprintf("\tf(base+%d, %d)\n", j, j))
		}
		writeNat(&b, n, full, block)
	}

	src, err := format.Source([]byte(b.String()))
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}

func writeNat(b *strings.Builder, n int, full, block []string) {
	name := fmt.Sprintf("N%d", n)

	fmt.Fprintf(b, "\n// %s is the natural number %d.\n", name, n)
	fmt.Fprintf(b, "type %s struct{}\n\n", name)
	fmt.Fprintf(b, "// Value returns %d.\n", n)
	fmt.Fprintf(b, "func (%s) Value() int { return %d }\n\n", name, n)
	fmt.Fprintf(b, "func (%s) value() int { return %d }\n\n", name, n)

	fmt.Fprintf(b, "func (%s) full(f func(int)) {\n", name)
	for _, line := range full {
		b.WriteString(line)
	}
	b.WriteString("}\n\n")

	fmt.Fprintf(b, "func (%s) block(base int, f func(int, int)) {\n", name)
	for _, line := range block {
		b.WriteString(line)
	}
	b.WriteString("}\n\n")

	fmt.Fprintf(b, "func (%s) positive() {}\n", name)
}
