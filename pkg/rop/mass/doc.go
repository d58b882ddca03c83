// Package mass combines several results into one.
//
// Two aggregation policies are offered:
// - Combine2..Combine8 and Sequence fail fast and report the first failure only
// - BindMulti, FusionFailErrors and FusionErrorsIfExists evaluate everything
//   and fuse every failure, preserving the order in which they occurred
package mass
