package wrap

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Tracer prints an indented entry line before each call and an exit line
// with the result after, indentation growing with recursion depth through
// this tracer. Exit lines render the result as "== <result>" with a single
// space on each side of the ==; that rendition is canonical.
// Depth is a plain int – single-threaded, synchronous use only.
type Tracer[T any] struct {
	indent string
	out    io.Writer
	depth  int
}

func NewTracer[T any](indent string) *Tracer[T] { return NewTracerTo[T](indent, os.Stdout) }

func NewTracerTo[T any](indent string, out io.Writer) *Tracer[T] {
	return &Tracer[T]{indent: indent, out: out}
}

func (tr *Tracer[T]) Before(m Meta, args []T) {
	fmt.Fprintf(tr.out, "%s --> %s\n", strings.Repeat(tr.indent, tr.depth), callString(m, args))
	tr.depth++
}

func (tr *Tracer[T]) After(m Meta, args []T, result T, err error) {
	tr.depth--
	if err != nil {
		fmt.Fprintf(tr.out, "%s <-- %s !! %v\n", strings.Repeat(tr.indent, tr.depth), callString(m, args), err)
		return
	}
	fmt.Fprintf(tr.out, "%s <-- %s == %v\n", strings.Repeat(tr.indent, tr.depth), callString(m, args), result)
}
