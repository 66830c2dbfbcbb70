//go:build !fsnoassert

package diag

import (
	"os"

	"github.com/charmbracelet/log"
)

// Enabled reports whether precondition checks are compiled in.
const Enabled = true

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix:       "fixed-string",
	ReportCaller: true,
})

// Assert terminates the process when cond is false. msg names the violated
// precondition; keyvals add context in the logger's key-value form
// ("index", i, ...). With ReportCaller on, the report carries the source
// file and line of the assertion site.
func Assert(cond bool, msg string, keyvals ...any) {
	if cond {
		return
	}
	logger.Helper()
	logger.Error("assertion failed: "+msg, keyvals...)
	exit(1)
}
