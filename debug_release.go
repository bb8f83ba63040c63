//go:build !vtdebug

package vt100

// debugAssert is a no-op outside debug builds; see debug.go.
func debugAssert(cond bool, format string, args ...interface{}) {}
