package main

import (
	"fmt"
	"io"
	"iter"
	"log"
	"strconv"
	"strings"

	"github.com/cryptonstudio/crypton-avl/console"
	"github.com/cryptonstudio/crypton-avl/types/avl"
)

var _ console.Handler = &Printer{}

// Printer reports every tree change: the configured traversals, optionally
// the tree drawing and an invariant check.
type Printer struct {
	out    io.Writer
	logger *log.Logger
	orders []avl.Order
	print  bool
	check  bool
	err    error
}

// NewPrinter creates a printer writing reports to out and problems to logger.
func NewPrinter(out io.Writer, logger *log.Logger, orders []avl.Order, print, check bool) *Printer {
	return &Printer{
		out:    out,
		logger: logger,
		orders: orders,
		print:  print,
		check:  check,
	}
}

// OnInsert reports the inserted value and the tree after it.
func (p *Printer) OnInsert(root *avl.Node[int], value int) {
	fmt.Fprintf(p.out, "Inserted %d\n", value)
	p.report(root)
}

// OnDelete reports the deleted value and the tree after it.
func (p *Printer) OnDelete(root *avl.Node[int], value int) {
	fmt.Fprintf(p.out, "Deleted %d\n", value)
	p.report(root)
}

// OnExit does nothing, the console has already written its exit message.
func (p *Printer) OnExit(value int) {}

// OnEndOfInput notes that the input ran out before a non-positive value.
func (p *Printer) OnEndOfInput() {
	p.logger.Print("end of input")
}

// Err returns the first invariant violation found, if checks are enabled.
func (p *Printer) Err() error {
	return p.err
}

func (p *Printer) report(root *avl.Node[int]) {
	for _, order := range p.orders {
		fmt.Fprintf(p.out, "%s: %s\n", order, joinValues(avl.Traverse(root, order)))
	}
	if p.print {
		if err := avl.Print(p.out, root); err != nil {
			p.logger.Printf("print tree: %v", err)
		}
	}
	if p.check && p.err == nil {
		if err := avl.Check(root); err != nil {
			p.logger.Printf("tree check failed: %v", err)
			p.err = err
		}
	}
}

func joinValues(seq iter.Seq[int]) string {
	var sb strings.Builder
	for v := range seq {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	return sb.String()
}

// PrintStatistics writes the session summary.
func PrintStatistics(w io.Writer, stats *console.Stats, tree *avl.Tree[int]) {
	fmt.Fprintf(w, "AVL TREE SESSION:\n")
	fmt.Fprintf(w, "Inserts %14d\n", stats.Inserts)
	fmt.Fprintf(w, "Deletes %14d\n", stats.Deletes)
	fmt.Fprintf(w, "Distinct values %6d\n", stats.Values())
	fmt.Fprintf(w, "Tree size %12d\n", tree.Len())
	fmt.Fprintf(w, "Tree height %10d\n", tree.Height())
}
