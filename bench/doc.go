// Package bench measures and verifies QKP solvers over a suite.
//
// For every (case, algorithm) pair, Run calls the solver Config.Runs times
// and records the average wall time and the average heap bytes and objects
// allocated per call (runtime.MemStats deltas). It also compares the last
// Solution with the case's recorded answer. Render prints the per-case table
// and the per-algorithm aggregate that exposes the expected resource ordering
// compact ≤ classical ≤ interaction.
//
// Run is strictly sequential: concurrent solves would distort both
// measurements. Verify only checks answers, so it solves the pairs on a
// bounded worker pool and leaves the timing fields zero.
package bench
