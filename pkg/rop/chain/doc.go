// Package chain provides a fluent wrapper around Result[T]
// for building synchronous Railway-Oriented chains using solo primitives.
//
// It composes functions like Bind, Map, TryBindE, MapEnsure and Match behind
// a convenient Chain[T] type. This enables ergonomic pipelines without
// dealing directly with branching results at each step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or value
// - Then: switch to a new Result[U] via a function
// - ThenTry: call a function (U, error), errors and panics become failures
// - Map: transform the valid value (T -> U)
// - Ensure: guard the valid value with a predicate
// - Tee: run side effects on success without changing the result
// - OrElse/OnException/Recover: recovery branches
// - Finally: collapse the chain into a final value via handlers
package chain
