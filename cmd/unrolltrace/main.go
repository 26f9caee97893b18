// Command unrolltrace prints the calls an unrolled loop makes.
//
// Usage:
//
//	unrolltrace [flags]
//
// For each call it shows the index, the unroll slot, the block it belongs
// to and whether it ran in an unrolled block or in the edge loop.
//
// Examples:
//
//	unrolltrace -factor 4 -count 13
//	unrolltrace -factor 8 -full
//	unrolltrace -list
//	unrolltrace -kernel
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-unroll/unroll"
	"github.com/cwbudde/algo-unroll/vec"
)

type factorEntry struct {
	name    string
	factor  int
	full    func(f func(i int))
	partial func(k int, f func(i, s int))
}

// Each factor is a distinct type, so the table lists every one the tool
// can trace.
var registry = []factorEntry{
	{"0", unroll.Factor[unroll.N0](), unroll.Full[unroll.N0], nil},
	{"1", unroll.Factor[unroll.N1](), unroll.Full[unroll.N1], unroll.Partial[unroll.N1]},
	{"2", unroll.Factor[unroll.N2](), unroll.Full[unroll.N2], unroll.Partial[unroll.N2]},
	{"3", unroll.Factor[unroll.N3](), unroll.Full[unroll.N3], unroll.Partial[unroll.N3]},
	{"4", unroll.Factor[unroll.N4](), unroll.Full[unroll.N4], unroll.Partial[unroll.N4]},
	{"5", unroll.Factor[unroll.N5](), unroll.Full[unroll.N5], unroll.Partial[unroll.N5]},
	{"6", unroll.Factor[unroll.N6](), unroll.Full[unroll.N6], unroll.Partial[unroll.N6]},
	{"8", unroll.Factor[unroll.N8](), unroll.Full[unroll.N8], unroll.Partial[unroll.N8]},
	{"12", unroll.Factor[unroll.N12](), unroll.Full[unroll.N12], unroll.Partial[unroll.N12]},
	{"16", unroll.Factor[unroll.N16](), unroll.Full[unroll.N16], unroll.Partial[unroll.N16]},
	{"17", unroll.Factor[unroll.Succ[unroll.N16]](), unroll.Full[unroll.Succ[unroll.N16]], unroll.Partial[unroll.Succ[unroll.N16]]},
}

var (
	errUnknownFactor = errors.New("unknown factor")
	errZeroFactor    = errors.New("factor 0 cannot unroll a runtime count")
	errNegativeCount = errors.New("count must not be negative")
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("unrolltrace", flag.ContinueOnError)
	fs.SetOutput(stderr)
	factor := fs.String("factor", "4", "unroll factor (see -list)")
	count := fs.Int("count", 13, "runtime trip count for the partial unroll")
	full := fs.Bool("full", false, "trace a full unroll of the factor instead")
	list := fs.Bool("list", false, "list available factors")
	kernel := fs.Bool("kernel", false, "print the vec kernel set chosen for this CPU")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: unrolltrace [flags]\n\n")
		fmt.Fprintf(stderr, "Prints the index and slot sequence of an unrolled loop.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	switch {
	case *list:
		printList(stdout)
		return 0
	case *kernel:
		info := vec.Implementation()
		fmt.Fprintf(stdout, "%s (factor %d, %s)\n", info.Name, info.Factor, info.SIMDLevel)
		return 0
	}

	entry, err := lookup(*factor)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v (use -list to see available)\n", err)
		return 2
	}

	var rows []traceRow
	if *full {
		rows = traceFull(entry)
	} else {
		rows, err = tracePartial(entry, *count)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 2
		}
	}

	if err := printTrace(stdout, rows); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func lookup(name string) (factorEntry, error) {
	for _, e := range registry {
		if e.name == name {
			return e, nil
		}
	}
	return factorEntry{}, fmt.Errorf("%w %q", errUnknownFactor, name)
}

func printList(w io.Writer) {
	for _, e := range registry {
		mode := "full, partial"
		if e.partial == nil {
			mode = "full"
		}
		fmt.Fprintf(w, "%s\t%s\n", e.name, mode)
	}
}

type traceRow struct {
	index int
	slot  int
	block int
	edge  bool
}

func traceFull(e factorEntry) []traceRow {
	rows := make([]traceRow, 0, e.factor)
	e.full(func(i int) {
		rows = append(rows, traceRow{index: i, slot: i})
	})
	return rows
}

func tracePartial(e factorEntry, k int) ([]traceRow, error) {
	if e.partial == nil {
		return nil, errZeroFactor
	}
	if k < 0 {
		return nil, fmt.Errorf("%w: %d", errNegativeCount, k)
	}

	edgeStart := k / e.factor * e.factor
	rows := make([]traceRow, 0, k)
	e.partial(k, func(i, s int) {
		rows = append(rows, traceRow{
			index: i,
			slot:  s,
			block: i / e.factor,
			edge:  i >= edgeStart,
		})
	})
	return rows, nil
}

func printTrace(w io.Writer, rows []traceRow) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Index\tSlot\tBlock\tPhase\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "-----\t----\t-----\t-----\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, r := range rows {
		phase := "block"
		if r.edge {
			phase = "edge"
		}
		if _, err := fmt.Fprintf(tw, "%d\t%d\t%d\t%s\n", r.index, r.slot, r.block, phase); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}
