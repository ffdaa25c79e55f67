package build

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"amplc/config"
	"amplc/report"
)

func writeSource(t *testing.T, src string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "prog.ampl")
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestCompileSuccess(t *testing.T) {
	path := writeSource(t, `program p:
f(int x) -> int: return x; end
main: int y; let y = f(3); output(y) end
`)

	if err := NewCompiler(path, config.Default()).Compile(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCompileReportsFirstError(t *testing.T) {
	path := writeSource(t, "program p:\nmain: int array a;\noutput(a)\n")

	err := NewCompiler(path, config.Default()).Compile()

	var cerr *report.CompileError
	if !errors.As(err, &cerr) {
		t.Fatalf("error %v is not a compile error", err)
	}
	if cerr.Kind != report.ErrIllegalArrayOperation {
		t.Errorf("kind = %s, want %s", cerr.Kind, report.ErrIllegalArrayOperation)
	}
	if want := (report.SourcePos{Line: 3, Col: 8}); cerr.Pos != want {
		t.Errorf("position = %s, want %s", cerr.Pos, want)
	}
}

func TestCompileMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.ampl")

	err := NewCompiler(path, config.Default()).Compile()
	if err == nil {
		t.Fatal("compiling a missing file succeeded")
	}
	if _, ok := report.KindOf(err); ok {
		t.Errorf("missing file reported as a compile error: %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error %v does not wrap os.ErrNotExist", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q does not name the path", err)
	}
}

func TestAnalyzeWithListings(t *testing.T) {
	conf := config.Default()
	conf.Trace = true
	conf.DumpSymbols = true

	var out bytes.Buffer
	c := NewCompiler("prog.ampl", conf)
	c.SetOutput(&out)

	src := "program p: f(int x) -> int: return x end main: int y; let y = f(1)"
	if err := c.Analyze(strings.NewReader(src)); err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"<program> at 1:1.",
		"</subdef> at 1:42.",
		"scope f:",
		"x@1[integer]",
		"scope program:",
		"f@_[integer function]",
		"y@1[integer]",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestAnalyzeRejectsBadLoadFactor(t *testing.T) {
	conf := config.Default()
	conf.LoadFactor = 0

	if err := NewCompiler("prog.ampl", conf).Analyze(strings.NewReader("program p: main: chillax")); err == nil {
		t.Error("analysis with a zero load factor succeeded")
	}
}
