// Package batch evaluates many dice expressions concurrently.
//
// Every expression travels through the pipeline as a Result carrying its
// own identity, so results can be put back in input order after the worker
// lines (see package core) have processed them in any order.
//
// Stages:
// - parse: notation.Parse, a syntax error fails the result
// - evaluate: the exact distribution and its statistics, as a Report
//
// A context that ends early turns every unfinished expression into a
// cancelled result.
package batch
