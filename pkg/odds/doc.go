// Package odds computes exact discrete probability distributions over
// combined random outcomes such as dice and dice pools.
//
// Nothing here samples. A Distribution[T] is the full value -> chance table,
// kept compressed (unique values, ascending) after every operation.
//
// Highlights:
// - FromProbabilities: canonical constructor; empty input gives the neutral distribution
// - Empty/FromValues/FromRange/New: derived constructors built on FromProbabilities
// - AddIndependent: convolution of two independent distributions
// - AddDependent: roll a follow-up whose shape depends on the first value and add it
// - ConditionalChain: marginalize over a follow-up living in its own value space
// - AddFlat: constant shift
// - Plus: one entry point for the three additive forms above
// - Min/Max/Mean/Variance/StandardDeviation: derived statistics
//
// Distributions are immutable values and may be read from many goroutines.
package odds
