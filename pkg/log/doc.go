// Package log is the diagnostic sink shared by the resunpack components.
//
// Components never reach for a global logger. They accept a [Logger] and
// report through it, so callers decide where notices end up:
//
//	sink := log.NewZerologAdapter()
//	pkg, err := arsc.SelectPrimary(table.Packages, sink)
//
// Tests usually pass a [Recorder] and assert on the captured entries, or a
// [NoopLogger] when output does not matter.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
package log
