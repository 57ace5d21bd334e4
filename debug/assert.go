//go:build debug

package debug

import "strconv"

// Enabled is true in builds using the debug tag. Put expensive checks behind
// `if debug.Enabled {...}` so release builds drop them entirely.
const Enabled = true

func Assert(b bool, message string) {
	if !b {
		panic(message)
	}
}

func AssertLess(a, b uint, message string) {
	if a >= b {
		panic(message + ": " + strconv.FormatUint(uint64(a), 10) +
			" >= " + strconv.FormatUint(uint64(b), 10))
	}
}
