package syntax

import (
	"fmt"
	"io"
	"strings"
)

// tracer writes the productions the parser enters and leaves, indented by
// nesting depth.
type tracer struct {
	w     io.Writer
	depth int
}

func (t *tracer) printf(format string, args ...interface{}) {
	fmt.Fprint(t.w, strings.Repeat("  ", t.depth))
	fmt.Fprintf(t.w, format, args...)
	fmt.Fprintln(t.w)
}

// enter traces entry into the production prod and returns the function that
// traces the exit from it.  It is meant to be deferred:
//
//	defer p.enter("statement")()
func (p *Parser) enter(prod string) func() {
	if p.trace == nil {
		return func() {}
	}

	p.trace.printf("<%s> at %s.", prod, p.tok.Pos)
	p.trace.depth++

	return func() {
		p.trace.depth--
		p.trace.printf("</%s> at %s.", prod, p.tok.Pos)
	}
}
