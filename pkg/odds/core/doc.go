// Package core contains the concurrency plumbing shared by the parallel
// evaluators: worker configuration carried by context, channel helpers and
// the locomotive that drives one worker line. It holds no probability logic.
package core
