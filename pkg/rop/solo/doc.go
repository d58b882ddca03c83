// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T]. These functions form the core building blocks for error-aware
// pipelines without channels.
//
// Every primitive is defined through Match, the elimination form of Result.
//
// Highlights:
// - Match/TryMatch: collapse a Result into a value
// - Map/Bind: transform or chain valid values, failures pass through
// - MapEnsure/Validate: turn a valid value into a failure when a guard fails
// - MapIf/BindIf: pick one of two continuations by predicate
// - TryRun/TryMap/TryBind: capture panics and callee errors as failures
// - BindIfFail...: recovery, optionally from the stashed value or exception
//
// Only the Try-prefixed functions recover panics. A panic anywhere else is a
// defect and propagates to the caller.
package solo
