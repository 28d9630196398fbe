// Package puzzle defines the two-phase puzzle contract and the registry the
// CLI entrypoint dispatches through. Puzzle implementations live in their own
// year packages and are handed to Build as a static table of entries, so main
// never has to know which days exist.
package puzzle
