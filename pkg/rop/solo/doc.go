// Package solo contains synchronous bridges between Result[T, error] and the
// usual Go (value, error) pair.
//
// Highlights:
// - FromPair/ToPair: convert between (T, error) and Result[T, error]
// - Try: call a function (T, error) and capture its outcome
// - Finally: reduce any Outcome to a concrete value via value/error handlers
// - IsCanceled: detect results that failed on context cancellation
package solo
