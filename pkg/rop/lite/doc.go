// Package lite lifts the solo and mass combinators over futures.
//
// Every function awaits its input future and then applies the synchronous
// rule of the same name, so sync and async pipelines behave identically.
// When several continuations must run (BindMulti) they are awaited one after
// another, never concurrently, and failures are fused in that order.
//
// Common usage:
// - Lift: apply any synchronous rule after awaiting one future
// - Map/Bind/BindAsync/MapEnsure/MapIf/BindIf: transform the awaited value
// - TryMap/TryBind/TryBindE/TryBindAsync: capture faults of the continuation
// - BindIfFail...: recovery after awaiting
// - Match: collapse the awaited result into a value
// - Combine2..Combine8: await in order, stop at the first failure
//
// A future may be passed to several combinators; each of them awaits the
// same Result.
package lite
