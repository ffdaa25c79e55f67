package report

import "fmt"

// SourcePos is the position of a single character in a source file.  Both the
// line and the column are one-indexed.
type SourcePos struct {
	Line, Col int
}

func (sp SourcePos) String() string {
	return fmt.Sprintf("%d:%d", sp.Line, sp.Col)
}
