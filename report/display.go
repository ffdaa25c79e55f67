package report

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// progName is the name diagnostics without a source position are prefixed with.
var progName = filepath.Base(os.Args[0])

// displayFatal displays a fatal error message.
func displayFatal(message string) {
	fmt.Fprintln(os.Stderr, progName+": "+ErrorColorFG.Sprint("fatal error:")+" "+message)
}

// displayCompileMessage displays a compilation error as exactly one line on
// stderr: `<file>:<line>:<col>: <category> error: <message>`.
func displayCompileMessage(srcPath string, cerr *CompileError) {
	label := ErrorColorFG.Sprint(cerr.Kind.Category() + " error:")
	fmt.Fprintf(os.Stderr, "%s:%d:%d: %s %s\n", srcPath, cerr.Pos.Line, cerr.Pos.Col, label, cerr.Message)
}

// displayStdError displays a standard Go error.
func displayStdError(err error) {
	fmt.Fprintln(os.Stderr, progName+": "+ErrorColorFG.Sprint("error:")+" "+err.Error())
}

// displayWarning displays a tagged warning message.
func displayWarning(tag, message string) {
	WarnStyleBG.Print(tag)
	WarnColorFG.Println(" " + message)
}

// -----------------------------------------------------------------------------

// displaySourceText displays the source line holding pos with a carret under
// the offending column.  Failing to read the file is not worth another error:
// the diagnostic has already been printed.
func displaySourceText(srcPath string, pos SourcePos) {
	file, err := os.Open(srcPath)
	if err != nil {
		return
	}
	defer file.Close()

	var line string
	found := false
	sc := bufio.NewScanner(file)
	for ln := 1; sc.Scan(); ln++ {
		if ln == pos.Line {
			line = strings.ReplaceAll(sc.Text(), "\t", "    ")
			found = true
			break
		}
	}

	if !found {
		return
	}

	lineNumStr := strconv.Itoa(pos.Line)

	// Print the line number, the separator bar and the line itself.
	InfoColorFG.Print(lineNumStr)
	fmt.Println(" | " + line)

	// Print the bar used for the carret line followed by the carret.
	carretPrefixCount := pos.Col - 1
	if carretPrefixCount < 0 {
		carretPrefixCount = 0
	}

	fmt.Print(strings.Repeat(" ", len(lineNumStr)), " | ", strings.Repeat(" ", carretPrefixCount))
	ErrorColorFG.Println("^")
	fmt.Println()
}

// -----------------------------------------------------------------------------

// displayCompileHeader displays the compiler information before compilation.
func displayCompileHeader(version, srcPath string) {
	fmt.Print("amplc ")
	InfoColorFG.Print("v" + version)
	fmt.Print(" -- compiling ")
	InfoColorFG.Println(srcPath)
}

// displayCompilationFinished displays a compilation finished message.
func displayCompilationFinished(success bool, elapsed time.Duration) {
	if success {
		SuccessStyleBG.Print("Done")
		SuccessColorFG.Printf(" All done! (%.3fs)\n", elapsed.Seconds())
	} else {
		ErrorStyleBG.Print("Fail")
		ErrorColorFG.Printf(" Oh no! (%.3fs)\n", elapsed.Seconds())
	}
}
