// meta/meta.go
package meta

// DEPTH defines the default expectimax search depth.
const DEPTH = 1

// GO_ROUTINES defines the number of goroutines ranking root placements.
const GO_ROUTINES = 8

// CACHE_ENTRIES defines the default size of the expectimax memo table.
const CACHE_ENTRIES = 1 << 20

// GAMES defines the number of games per agent in an experiment.
const GAMES = 30

// OUTPUT_DIR defines where experiment results are written.
const OUTPUT_DIR = "results"
