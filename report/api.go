package report

import (
	"fmt"
	"os"
	"time"
)

// NOTE: All report functions will only display if the appropriate log level is
// set.  Most report functions will simply fail silently if below their
// appropriate log level.

// ReportCompileError reports a compilation error: ie. erroneous input code.
// The diagnostic itself is always a single line on stderr; at the verbose log
// level the offending source text is shown as well.
func ReportCompileError(srcPath string, cerr *CompileError) {
	r := reporter()
	r.m.Lock()
	defer r.m.Unlock()

	r.isErr = true

	if r.logLevel > LogLevelSilent {
		displayCompileMessage(srcPath, cerr)

		if r.logLevel == LogLevelVerbose {
			displaySourceText(srcPath, cerr.Pos)
		}
	}
}

// ReportStdError reports a standard Go error: environment failures such as an
// unreadable source file.
func ReportStdError(err error) {
	r := reporter()
	r.m.Lock()
	defer r.m.Unlock()

	r.isErr = true

	if r.logLevel > LogLevelSilent {
		displayStdError(err)
	}
}

// ReportFatal reports a fatal error and exits the program.  These are expected
// errors that result from invalid usage or configuration.
func ReportFatal(message string, args ...interface{}) {
	r := reporter()
	if r.logLevel > LogLevelSilent {
		r.m.Lock()
		displayFatal(fmt.Sprintf(message, args...))
		r.m.Unlock()
	}

	os.Exit(1)
}

// ReportWarning reports a non-fatal problem to the user.
func ReportWarning(tag, message string, args ...interface{}) {
	r := reporter()
	if r.logLevel >= LogLevelWarn {
		r.m.Lock()
		defer r.m.Unlock()

		displayWarning(tag, fmt.Sprintf(message, args...))
	}
}

// -----------------------------------------------------------------------------

// ReportCompileHeader reports the pre-compilation header: the compiler version
// and the file being compiled.
func ReportCompileHeader(version, srcPath string) {
	r := reporter()
	if r.logLevel == LogLevelVerbose {
		r.m.Lock()
		defer r.m.Unlock()

		displayCompileHeader(version, srcPath)
	}
}

// ReportCompilationFinished reports the concluding message for compilation.
func ReportCompilationFinished() {
	r := reporter()
	if r.logLevel == LogLevelVerbose {
		r.m.Lock()
		defer r.m.Unlock()

		displayCompilationFinished(!r.isErr, time.Since(r.startTime))
	}
}

// AnyErrors returns whether or not any errors were reported.
func AnyErrors() bool {
	return reporter().isErr
}
