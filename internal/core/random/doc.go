// Package random provides the random source that drives simulations.
//
// Simulation code never reaches for a package-level generator. It receives a
// Source, which production code builds with New or NewSeeded and tests replace
// with a fixed sequence (see internal/testkit/randfake).
//
// # Draws
//
// Every Source operation consumes one underlying draw:
//
//   - Float64 returns a value in [0, 1).
//   - Uniform maps one draw onto [lo, hi).
//   - IntRange maps one draw onto the inclusive range [lo, hi].
//   - Intn maps one draw onto [0, n).
//   - Weighted maps one draw onto an index, proportionally to the weights.
//
// Choice and WeightedChoice are generic helpers built on Intn and Weighted.
package random
