// Package diag is the diagnostic facility behind every precondition check in
// the fixed-string library. A failed check writes the violated condition and
// its source location to stderr and terminates the process: precondition
// violations are programming errors, not recoverable runtime conditions, so
// there is no error return and no panic to catch.
//
// Build with -tags fsnoassert to compile every check out.
package diag

import "os"

var exit = os.Exit

// SetExit swaps the process-termination hook and returns a restore func.
// Only tests should call this.
func SetExit(fn func(code int)) (restore func()) {
	prev := exit
	exit = fn
	return func() { exit = prev }
}
