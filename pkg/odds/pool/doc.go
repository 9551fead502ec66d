// Package pool evaluates dice pools where the most extreme results are
// dropped before the rest is summed ("4d6 drop lowest").
//
// Drop folds the pool one die at a time and merges equivalent partial
// states as it goes, so memory grows with the number of distinct states
// instead of with the full cross product. DropContext runs the same fold in
// parallel parts, one per outcome of the first die, and stops when its
// context ends.
package pool
