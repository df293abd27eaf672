// Package core defines the shared types used across logfilter.
//
// It provides the Level type for severity gating and the Clock type
// used to stamp log lines. Levels are ordered by verbosity: a filter
// configured at a given threshold emits every level at or below it,
// so ErrorLevel passes any threshold except NoneLevel.
//
// The coarse clock caches time.Now() in a background goroutine for
// callers on a real-time path that cannot afford a clock read per
// line. It ticks every 500µs, so the millisecond column of a rendered
// timestamp may lag the wall clock by at most one step.
package core
