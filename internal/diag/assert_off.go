//go:build fsnoassert

package diag

// Enabled reports whether precondition checks are compiled in.
const Enabled = false

// Assert is a no-op in this build mode; violated preconditions are undefined
// behavior, the documented performance trade-off.
func Assert(cond bool, msg string, keyvals ...any) {}
