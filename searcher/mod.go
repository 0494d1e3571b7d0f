package searcher

import (
	"reversi/experiments/metrics"
	"reversi/game"
	"time"

	"golang.org/x/exp/rand"
)

// Selector picks the move side should play on b. It returns game.ErrNoLegalMoves
// when side has to pass.
type Selector interface {
	Select(b *game.Board, side game.Side) (game.Coord, metrics.SearchMetric, error)
}

type Option func(o *options)

type options struct {
	rng         *rand.Rand
	depth       int
	goroutines  int
	adversarial bool
	episodes    int
	duration    time.Duration
	cutoff      int
	metrics     metrics.Collector
}

const DefaultDepth = 1

func newOptions(opts []Option) options {
	o := options{ // Default values
		depth:      DefaultDepth,
		goroutines: 1,
		cutoff:     MaxCutoff,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return o
}

// WithRand sets the source used to break ties between equally valued moves.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		if rng != nil {
			o.rng = rng
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

func WithDepth(depth int) Option {
	return func(o *options) {
		if depth > 0 {
			o.depth = depth
		}
	}
}

// WithGoroutines evaluates the root moves on n goroutines.
func WithGoroutines(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.goroutines = n
		}
	}
}

// WithAdversarialReplies makes the minimising level search the opponent's replies
// instead of the mover's own follow-ups.
func WithAdversarialReplies() Option {
	return func(o *options) {
		o.adversarial = true
	}
}

// WithEpisodes bounds an MCTS search by the number of simulations.
func WithEpisodes(episodes int) Option {
	return func(o *options) {
		if episodes > 0 {
			o.episodes = episodes
		}
	}
}

// WithDuration bounds an MCTS search by time. Episodes take precedence.
func WithDuration(duration time.Duration) Option {
	return func(o *options) {
		if duration > 0 {
			o.duration = duration
		}
	}
}

// WithCutoff stops MCTS rollouts after depth moves and scores the position
// statically instead of playing to the end.
func WithCutoff(depth int) Option {
	return func(o *options) {
		if depth > 0 {
			o.cutoff = depth
		}
	}
}

func WithMetrics() Option {
	return func(o *options) {
		o.metrics = metrics.NewCollector()
	}
}

func pickRandom(rng *rand.Rand, moves []game.Coord) game.Coord {
	if len(moves) == 1 {
		return moves[0]
	}
	return moves[rng.Intn(len(moves))]
}
