//go:build !raydebug

package invariant

// Enabled is true when built with the raydebug tag.
const Enabled = false
