// Package leaktest holds goroutine leak assertions shared by tests that start servers and pools.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// settleTimeout bounds how long Check waits for goroutines to exit
const settleTimeout = 2 * time.Second

// GoroutineChecker compares the goroutine count against a baseline
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count as the baseline
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{before: runtime.NumGoroutine(), t: t}
}

// Check fails the test unless the goroutine count drops back to within tolerance of the
// baseline before the settle timeout
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()
	limit := g.before + tolerance
	deadline := time.Now().Add(settleTimeout)
	after := runtime.NumGoroutine()
	for after > limit && time.Now().Before(deadline) {
		runtime.GC()
		time.Sleep(10 * time.Millisecond)
		after = runtime.NumGoroutine()
	}
	if after > limit {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, tolerance=%d", g.before, after, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and requires every goroutine it started to have exited
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}
