// Package omap provides an ordered map with a deterministic iteration
// contract.
//
// Keys and Entries visit every live entry exactly once in ascending key
// order, independent of insertion order, and do not allocate per visited
// entry. Mutating a map from inside one of its own visits panics with a
// concurrent_modification error instead of corrupting the traversal.
//
// Any number of goroutines may read or iterate a map at once. Writes need
// exclusive access.
package omap
