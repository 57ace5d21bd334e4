//go:build !debug

// Package debug provides assertions that are compiled in with the debug
// build tag and reduce to no-ops otherwise.
//
// Numeric code in this module never reports errors at runtime. These
// assertions only catch type instantiations that can't work, such as a
// precision wider than its storage integer.
package debug

// Enabled is true in builds using the debug tag. Put expensive checks behind
// `if debug.Enabled {...}` so release builds drop them entirely.
const Enabled = false

// Assert panics with message if b is false.
func Assert(b bool, message string) {}

// AssertLess panics if a is not less than b. The message is prefixed to the
// offending values.
func AssertLess(a, b uint, message string) {}
