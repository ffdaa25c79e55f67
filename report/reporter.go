package report

import (
	"fmt"
	"sync"
	"time"
)

// Reporter is responsible for reporting errors and other kinds of messages to
// the user during program execution.  The reporter respects the set log level
// and is synchronized: its methods can be safely called from multiple
// goroutines.
type Reporter struct {
	// The mutex used to synchonize different report calls.
	m *sync.Mutex

	// The selected log level of the reporter.  This must be one of the
	// enumerated log levels below.
	logLevel int

	// Indicates whether or not an error has been reported.
	isErr bool

	// The time at which the reporter was initialized.
	startTime time.Time
}

// Enumeration of the different possible log levels.
const (
	LogLevelSilent  = iota // Displays no output.
	LogLevelError          // Displays only errors to the user (default).
	LogLevelWarn           // Displays only warnings and errors to the user.
	LogLevelVerbose        // Displays all compilation messages to the user.
)

// LogLevelNames is the list of valid log level names ordered by level.
var LogLevelNames = []string{"silent", "error", "warn", "verbose"}

// ParseLogLevel converts a log level name into its log level.
func ParseLogLevel(name string) (int, error) {
	for i, levelName := range LogLevelNames {
		if levelName == name {
			return i, nil
		}
	}

	return 0, fmt.Errorf("invalid log level `%s`", name)
}

// rep is the global reporter instance.
var rep *Reporter

// InitReporter initializes the global reporter to the given log level. If the
// reporter has already been initialized, this function does nothing.
func InitReporter(logLevel int) {
	if rep == nil {
		rep = &Reporter{
			m:         &sync.Mutex{},
			logLevel:  logLevel,
			startTime: time.Now(),
		}
	}
}

// reporter returns the global reporter, initializing it to the default log
// level if no one has done so yet.
func reporter() *Reporter {
	InitReporter(LogLevelError)
	return rep
}
