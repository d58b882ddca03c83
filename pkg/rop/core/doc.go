// Package core contains the future plumbing used by the asynchronous
// combinators: a Future is completed once with a single Result and can be
// awaited by any number of readers.
// It does not define business logic; packages like lite build on it.
package core
