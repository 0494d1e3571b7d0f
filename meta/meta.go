// meta/meta.go
package meta

// GO_ROUTINES defines the number of goroutines evaluating minimax root moves.
const GO_ROUTINES = 4

// GAMES defines the number of games per matchup in an experiment.
const GAMES = 100

// DEPTH defines the search depth of the reference Flash agent.
const DEPTH = 2

// MAX_DEPTH defines the deepest Flash agent of the depth experiment.
const MAX_DEPTH = 4

// OUTPUT_DIR defines where experiment runs are written.
const OUTPUT_DIR = "results"

// EPISODES defines the number of simulations per MCTS move.
const EPISODES = 500
