//go:build vtdebug

package vt100

import "fmt"

// debugAssert panics with a formatted message when cond is false. Compiled
// in only under the vtdebug build tag (-tags vtdebug); release builds treat
// these as programmer-error
// invariants and leave the behavior undefined rather than pay the check.
func debugAssert(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf("vt100: assertion failed: "+format, args...))
	}
}
