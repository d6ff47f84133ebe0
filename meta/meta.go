// meta/meta.go
package meta

import "time"

// BoardLength defines the side length of the tournament board.
const BoardLength = 13

// NumGames defines the number of games per experiment matchup.
const NumGames = 10

// Parallel defines the number of games an experiment plays at once.
const Parallel = 8

// TimeBudget defines the search time per move for timed agents.
const TimeBudget = 500 * time.Millisecond

// OutputDir defines where experiment records are written.
const OutputDir = "experiments"
