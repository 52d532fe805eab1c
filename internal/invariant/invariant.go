// Package invariant checks render-time conditions that can only fail through
// a programming error. Built with the raydebug tag a failed check panics;
// otherwise it is a no-op and callers fall back to their degraded behavior.
package invariant

import "fmt"

// Check panics with the formatted message when cond is false and debug
// checks are enabled. It reports cond so callers can branch on it.
func Check(cond bool, format string, args ...any) bool {
	if !cond && Enabled {
		panic(fmt.Sprintf("invariant violated: "+format, args...))
	}
	return cond
}
