// Package dispatch resolves a (year, day) request against the puzzle registry
// and runs the matching puzzle's two phases, timing each one.
//
// Puzzle failures are not caught or retried here. A failing phase stops the run
// and is handed back to the caller, which is expected to treat it as fatal.
package dispatch
