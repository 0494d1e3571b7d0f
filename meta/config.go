package meta

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

type MinimaxConfig struct {
	Depth       int  `yaml:"depth"`
	Goroutines  int  `yaml:"goroutines"`
	Adversarial bool `yaml:"adversarial"`
}

type MCTSConfig struct {
	Episodes   int           `yaml:"episodes"`
	Duration   time.Duration `yaml:"duration"` // used when episodes is 0
	Cutoff     int           `yaml:"cutoff"`   // 0 plays rollouts to the end
	Goroutines int           `yaml:"goroutines"`
}

type Config struct {
	Games            int           `yaml:"games"`
	Seed             uint64        `yaml:"seed"` // 0 seeds from the clock
	RandomFirstMover bool          `yaml:"random_first_mover"`
	MaxDepth         int           `yaml:"max_depth"`
	OutputDir        string        `yaml:"output_dir"`
	Render           bool          `yaml:"render"`
	Delay            time.Duration `yaml:"delay"` // between rendered moves
	LogLevel         string        `yaml:"log_level"`
	Minimax          MinimaxConfig `yaml:"minimax"`
	MCTS             MCTSConfig    `yaml:"mcts"`
}

func Default() Config {
	return Config{
		Games:            GAMES,
		RandomFirstMover: true,
		MaxDepth:         MAX_DEPTH,
		OutputDir:        OUTPUT_DIR,
		LogLevel:         zerolog.LevelInfoValue,
		Minimax: MinimaxConfig{
			Depth:      DEPTH,
			Goroutines: GO_ROUTINES,
		},
		MCTS: MCTSConfig{
			Episodes:   EPISODES,
			Goroutines: GO_ROUTINES,
		},
	}
}

// Load reads a YAML config file. Fields missing from the file keep their defaults.
func Load(path string) (Config, error) {
	config := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("config %s: %w", path, err)
	}
	return config, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Games < 1 {
		errs = append(errs, fmt.Errorf("games must be positive, got %d", c.Games))
	}
	if c.MaxDepth < 1 {
		errs = append(errs, fmt.Errorf("max_depth must be positive, got %d", c.MaxDepth))
	}
	if c.Minimax.Depth < 1 {
		errs = append(errs, fmt.Errorf("minimax.depth must be positive, got %d", c.Minimax.Depth))
	}
	if c.Minimax.Goroutines < 0 {
		errs = append(errs, fmt.Errorf("minimax.goroutines must not be negative, got %d", c.Minimax.Goroutines))
	}
	if c.MCTS.Episodes < 0 || c.MCTS.Duration < 0 || (c.MCTS.Episodes == 0 && c.MCTS.Duration == 0) {
		errs = append(errs, fmt.Errorf("mcts needs positive episodes or duration, got %d and %v", c.MCTS.Episodes, c.MCTS.Duration))
	}
	if c.MCTS.Cutoff < 0 || c.MCTS.Goroutines < 0 {
		errs = append(errs, errors.New("mcts cutoff and goroutines must not be negative"))
	}
	if c.Delay < 0 {
		errs = append(errs, fmt.Errorf("delay must not be negative, got %v", c.Delay))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level returns the configured log level, info if it cannot be parsed.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
