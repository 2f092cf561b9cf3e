package system

import (
	"os"

	clog "github.com/charmbracelet/log"
)

// Logger is the shared diagnostic logger. It prints to stderr with
// timestamps enabled. The update core logs only at Debug, so a host tool
// stays silent unless verbosity is raised.
var Logger = clog.NewWithOptions(os.Stderr, clog.Options{
	ReportTimestamp: true,
})

// SetVerbose raises the log level to Debug.
func SetVerbose(v bool) {
	if v {
		Logger.SetLevel(clog.DebugLevel)
	}
}
