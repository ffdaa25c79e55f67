package build

import (
	"fmt"
	"io"
	"os"

	"amplc/config"
	"amplc/sem"
	"amplc/syntax"
)

// Compiler is the data structure responsible for maintaining all high-level
// state of one compilation.
type Compiler struct {
	// srcPath is the path to the source file being compiled
	srcPath string

	// conf holds the settings of the compilation
	conf *config.Config

	// out receives the parse trace and the symbol table listing when they are
	// enabled
	out io.Writer
}

// NewCompiler creates a new compiler for the source file at srcPath.
func NewCompiler(srcPath string, conf *config.Config) *Compiler {
	return &Compiler{
		srcPath: srcPath,
		conf:    conf,
		out:     os.Stdout,
	}
}

// SetOutput sets the writer receiving the parse trace and the symbol table
// listing.  It is standard out by default.
func (c *Compiler) SetOutput(w io.Writer) {
	c.out = w
}

// Compile runs the full compilation algorithm on the source file.  It returns
// the first error encountered: a *report.CompileError for erroneous source
// text or a standard error if the file could not be read.
func (c *Compiler) Compile() error {
	f, err := os.Open(c.srcPath)
	if err != nil {
		return fmt.Errorf("file '%s' could not be opened: %w", c.srcPath, err)
	}
	defer f.Close()

	return c.Analyze(f)
}

// Analyze parses and checks the source text read from r.  Every scope is
// released before it returns, whether or not analysis succeeded.
func (c *Compiler) Analyze(r io.Reader) error {
	symbols, err := sem.NewSymbolTable(c.conf.LoadFactor)
	if err != nil {
		return err
	}
	defer symbols.Release()

	if c.conf.DumpSymbols {
		symbols.SetDump(c.out)
	}

	p := syntax.NewParser(syntax.NewLexer(r), symbols)
	if c.conf.Trace {
		p.EnableTrace(c.out)
	}

	return p.Parse()
}
