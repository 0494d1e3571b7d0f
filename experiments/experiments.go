package experiments

import (
	"fmt"
	"io"
	"reversi/engine"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/meta"
	"reversi/player"
	"reversi/searcher/agent"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const (
	FlashVsGreedy = "flash_vs_greedy"
	Depth         = "depth"
	MCTS          = "mcts"
)

// Names lists the experiments Run accepts.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type builder func(cfg meta.Config) ([]metrics.AgentConfig, [][2]metrics.AgentConfig)

var builders = map[string]builder{
	FlashVsGreedy: flashVsGreedyExperiment,
	Depth:         depthExperiment,
	MCTS:          mctsExperiment,
}

func flashConfig(id, depth int, cfg meta.Config) metrics.AgentConfig {
	return metrics.AgentConfig{
		ID:          id,
		Strategy:    metrics.StrategyFlash,
		Depth:       depth,
		Goroutines:  cfg.Minimax.Goroutines,
		Adversarial: cfg.Minimax.Adversarial,
	}
}

// flashVsGreedyExperiment pairs the reference Flash agent against Greedy.
func flashVsGreedyExperiment(cfg meta.Config) ([]metrics.AgentConfig, [][2]metrics.AgentConfig) {
	flash := flashConfig(1, cfg.Minimax.Depth, cfg)
	greedy := metrics.AgentConfig{ID: 2, Strategy: metrics.StrategyGreedy}
	return []metrics.AgentConfig{flash, greedy}, [][2]metrics.AgentConfig{{flash, greedy}}
}

// depthExperiment pairs Flash at every depth up to the configured maximum against Greedy.
func depthExperiment(cfg meta.Config) ([]metrics.AgentConfig, [][2]metrics.AgentConfig) {
	greedy := metrics.AgentConfig{ID: 0, Strategy: metrics.StrategyGreedy}
	configs := []metrics.AgentConfig{greedy}
	matchUps := [][2]metrics.AgentConfig{}
	for d := 1; d <= cfg.MaxDepth; d++ {
		flash := flashConfig(d, d, cfg)
		configs = append(configs, flash)
		matchUps = append(matchUps, [2]metrics.AgentConfig{flash, greedy})
	}
	return configs, matchUps
}

// mctsExperiment pairs MCTS against Greedy, and the reference Flash agent against
// MCTS.
func mctsExperiment(cfg meta.Config) ([]metrics.AgentConfig, [][2]metrics.AgentConfig) {
	flash := flashConfig(1, cfg.Minimax.Depth, cfg)
	greedy := metrics.AgentConfig{ID: 2, Strategy: metrics.StrategyGreedy}
	mcts := metrics.AgentConfig{
		ID:         3,
		Strategy:   metrics.StrategyMCTS,
		Goroutines: cfg.MCTS.Goroutines,
		Episodes:   cfg.MCTS.Episodes,
		Duration:   cfg.MCTS.Duration,
		Cutoff:     cfg.MCTS.Cutoff,
	}
	return []metrics.AgentConfig{flash, greedy, mcts}, [][2]metrics.AgentConfig{{mcts, greedy}, {flash, mcts}}
}

type Outcome struct {
	Dir       string // Run directory holding the records
	Summaries []metrics.Summary
}

type Runner struct {
	cfg meta.Config
	out io.Writer // Rendered games, if enabled
	rng *rand.Rand
}

func NewRunner(cfg meta.Config, out io.Writer) *Runner {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	cfg.Seed = seed
	return &Runner{
		cfg: cfg,
		out: out,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Run plays cfg.Games games for each matchup of the named experiment and stores
// the records under cfg.OutputDir.
func (r *Runner) Run(name string) (Outcome, error) {
	build, ok := builders[name]
	if !ok {
		return Outcome{}, fmt.Errorf("unknown experiment %q, expected one of %v", name, Names())
	}
	configs, matchUps := build(r.cfg)

	writer, err := metrics.NewWriter(r.cfg.OutputDir, name)
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return Outcome{}, fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msgf("stored agent configs in %s", writer.Dir())

	// Run a number of games for each matchup
	start := time.Now()
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	summaries := []metrics.Summary{}

	log.Info().Msgf("starting %s experiment (run %s, seed %d)...", name, writer.RunID(), r.cfg.Seed)

	for mi, matchUp := range matchUps {
		config1, config2 := matchUp[0], matchUp[1]
		summary := metrics.Summary{Agent1: config1.Name(), Agent2: config2.Name(), Depth: config1.Depth}

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < r.cfg.Games; i++ {
			result, gameMetric, moveMetrics, err := r.runGame(config1, config2)
			if err != nil {
				return Outcome{}, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			summary.Games++
			line := describe(count, result)
			switch result.Winner {
			case game.Dark:
				summary.Wins1++
			case game.Light:
				summary.Wins2++
			default:
				summary.Ties++
			}
			if err := writer.AppendResult(line); err != nil {
				return Outcome{}, err
			}
			log.Info().Msgf("completed matchup %d of %d game %d: %s", mi+1, len(matchUps), i+1, line)
		}

		if err := writer.AppendReport(summary); err != nil {
			return Outcome{}, err
		}
		summaries = append(summaries, summary)
		log.Info().Msgf("completed matchup %d of %d: %s won %.1f%% of %d games", mi+1, len(matchUps), summary.Agent1, summary.WinRate(), summary.Games)
	}

	log.Info().Msgf("completed %s experiment", name)

	// Store experiment results
	ids := make([][2]int, len(matchUps))
	for i, matchUp := range matchUps {
		ids[i] = [2]int{matchUp[0].ID, matchUp[1].ID}
	}
	err = writer.WriteSetup(metrics.Setup{
		Experiment: name,
		Agents:     configs,
		Matchups:   ids,
		NumGames:   r.cfg.Games,
		Seed:       r.cfg.Seed,
		StartTime:  start,
		EndTime:    time.Now(),
	})
	if err != nil {
		return Outcome{}, err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return Outcome{}, err
	}
	log.Info().Msg("stored game records")
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return Outcome{}, err
	}
	log.Info().Msg("stored move records")

	return Outcome{Dir: writer.Dir(), Summaries: summaries}, nil
}

// runGame plays agent1 as Dark against agent2 as Light.
func (r *Runner) runGame(config1, config2 metrics.AgentConfig) (engine.Result, metrics.GameMetric, []metrics.MoveMetric, error) {
	agent1, err := agent.FromConfig(config1, r.rng.Uint64())
	if err != nil {
		return engine.Result{}, metrics.GameMetric{}, nil, err
	}
	agent2, err := agent.FromConfig(config2, r.rng.Uint64())
	if err != nil {
		return engine.Result{}, metrics.GameMetric{}, nil, err
	}

	first := game.Dark
	if r.cfg.RandomFirstMover && r.rng.Intn(2) == 1 {
		first = game.Light
	}

	options := []engine.Option{}
	if r.cfg.Render && r.out != nil {
		options = append(options, engine.WithObserver(r.render))
	}

	e := engine.NewLocalEngine([2]agent.Agent{agent1, agent2}, first, options...)
	log.Debug().Msgf("%v starts the game", first)
	return e.Run()
}

func (r *Runner) render(u engine.Update) {
	fmt.Fprintf(r.out, "%v plays %v, flipping %d\n", u.Side, u.Move, len(u.Captures))
	player.DrawBoard(r.out, &u.State.Board, nil)
	player.ShowPoints(r.out, u.State.Score(), [2]string{game.Dark.String(), game.Light.String()})
	if r.cfg.Delay > 0 {
		time.Sleep(r.cfg.Delay)
	}
}

func describe(id int, result engine.Result) string {
	margin := result.Score.Dark - result.Score.Light
	switch result.Winner {
	case game.Dark:
		return fmt.Sprintf("game %d: %s beat %s by %d point(s)", id, result.Names[0], result.Names[1], margin)
	case game.Light:
		return fmt.Sprintf("game %d: %s beat %s by %d point(s)", id, result.Names[1], result.Names[0], -margin)
	default:
		return fmt.Sprintf("game %d: tie", id)
	}
}

// Run runs the named experiment, rendering games to out when cfg.Render is set.
func Run(name string, cfg meta.Config, out io.Writer) (Outcome, error) {
	return NewRunner(cfg, out).Run(name)
}
