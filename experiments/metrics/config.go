package metrics

import (
	"fmt"
	"time"
)

const (
	StrategyFlash  = "flash"
	StrategyGreedy = "greedy"
	StrategyMCTS   = "mcts"
	StrategyRandom = "random"
)

// AgentConfig describes one contestant of an experiment.
type AgentConfig struct {
	ID          int           `yaml:"id" json:"id"`
	Strategy    string        `yaml:"strategy" json:"strategy"`
	Depth       int           `yaml:"depth,omitempty" json:"depth,omitempty"`           // Flash only
	Goroutines  int           `yaml:"goroutines,omitempty" json:"goroutines,omitempty"` // Flash and MCTS
	Adversarial bool          `yaml:"adversarial,omitempty" json:"adversarial,omitempty"`
	Episodes    int           `yaml:"episodes,omitempty" json:"episodes,omitempty"` // MCTS only
	Duration    time.Duration `yaml:"duration,omitempty" json:"duration,omitempty"` // MCTS only
	Cutoff      int           `yaml:"cutoff,omitempty" json:"cutoff,omitempty"`     // MCTS only
}

func (c AgentConfig) Name() string {
	switch c.Strategy {
	case StrategyFlash:
		if c.Adversarial {
			return fmt.Sprintf("Flash(depth=%d,adversarial)", c.Depth)
		}
		return fmt.Sprintf("Flash(depth=%d)", c.Depth)
	case StrategyGreedy:
		return "Greedy"
	case StrategyMCTS:
		if c.Episodes > 0 {
			return fmt.Sprintf("MCTS(episodes=%d)", c.Episodes)
		}
		return fmt.Sprintf("MCTS(duration=%v)", c.Duration)
	case StrategyRandom:
		return "Random"
	default:
		return c.Strategy
	}
}

func (c AgentConfig) Validate() error {
	switch c.Strategy {
	case StrategyFlash:
		if c.Depth < 1 {
			return fmt.Errorf("agent %d: flash depth must be at least 1, got %d", c.ID, c.Depth)
		}
	case StrategyMCTS:
		if c.Episodes <= 0 && c.Duration <= 0 {
			return fmt.Errorf("agent %d: mcts needs episodes or a duration", c.ID)
		}
	case StrategyGreedy, StrategyRandom:
	default:
		return fmt.Errorf("agent %d: unknown strategy %q", c.ID, c.Strategy)
	}
	return nil
}
