package main

import (
	"flag"
	"fmt"
	"os"
	"reversi/experiments"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/gamemaster"
	"reversi/meta"
	"reversi/player"
	"reversi/searcher/agent"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	experiment := flag.String("experiment", experiments.FlashVsGreedy, fmt.Sprintf("Experiment to run, one of %v", experiments.Names()))
	play := flag.String("play", "", "Play against Flash at the console as dark or light")
	games := flag.Int("games", meta.GAMES, "Number of games per matchup")
	depth := flag.Int("depth", meta.DEPTH, "Search depth of Flash")
	maxDepth := flag.Int("max-depth", meta.MAX_DEPTH, "Deepest Flash of the depth experiment")
	goroutines := flag.Int("goroutines", meta.GO_ROUTINES, "Number of goroutines evaluating root moves")
	seed := flag.Uint64("seed", 0, "Seed for tie-breaks and first movers, 0 uses the clock")
	render := flag.Bool("render", false, "Draw the board after every move")
	logLevel := flag.String("log-level", zerolog.LevelInfoValue, "Log level")
	flag.Parse()

	cfg := meta.Default()
	if *configPath != "" {
		var err error
		cfg, err = meta.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}

	// Flags given explicitly override the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "games":
			cfg.Games = *games
		case "depth":
			cfg.Minimax.Depth = *depth
		case "max-depth":
			cfg.MaxDepth = *maxDepth
		case "goroutines":
			cfg.Minimax.Goroutines = *goroutines
		case "seed":
			cfg.Seed = *seed
		case "render":
			cfg.Render = *render
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	zerolog.SetGlobalLevel(cfg.Level())
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if *play != "" {
		if err := playConsole(*play, cfg); err != nil {
			log.Fatal().Err(err).Msg("game aborted")
		}
		return
	}

	outcome, err := experiments.Run(*experiment, cfg, os.Stdout)
	if err != nil {
		log.Fatal().Err(err).Msgf("%s experiment failed", *experiment)
	}
	for _, summary := range outcome.Summaries {
		log.Info().Msgf("%s vs %s: %d-%d with %d tie(s) over %d games", summary.Agent1, summary.Agent2, summary.Wins1, summary.Wins2, summary.Ties, summary.Games)
	}
	log.Info().Msgf("records stored in %s", outcome.Dir)
}

func playConsole(side string, cfg meta.Config) error {
	human := game.Empty
	switch strings.ToLower(side) {
	case "dark", "x":
		human = game.Dark
	case "light", "o":
		human = game.Light
	default:
		return fmt.Errorf("unknown side %q, expected dark or light", side)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	opponent, err := agent.FromConfig(metrics.AgentConfig{
		Strategy:    metrics.StrategyFlash,
		Depth:       cfg.Minimax.Depth,
		Goroutines:  cfg.Minimax.Goroutines,
		Adversarial: cfg.Minimax.Adversarial,
	}, seed)
	if err != nil {
		return err
	}

	engine := gamemaster.NewLocalEngine(game.Dark)
	controller := player.NewConsoleController(os.Stdin, os.Stdout, human, opponent, engine)
	return controller.Run()
}
