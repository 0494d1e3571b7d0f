package metrics

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID, plays Dark
	Agent2 int // AgentConfig.ID, plays Light
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Setup struct {
	RunID      uuid.UUID     `json:"runId"`
	Experiment string        `json:"experiment"`
	Agents     []AgentConfig `json:"agents"`
	Matchups   [][2]int      `json:"matchups"` // AgentConfig.IDs
	NumGames   int           `json:"numGames"` // per matchup
	Seed       uint64        `json:"seed"`
	StartTime  time.Time     `json:"startTime"`
	EndTime    time.Time     `json:"endTime"`
	Duration   time.Duration `json:"duration"`
}

// Summary tallies the games of one matchup.
type Summary struct {
	Agent1 string
	Agent2 string
	Depth  int // Search depth of agent1, 0 if it does not search
	Games  int
	Wins1  int
	Wins2  int
	Ties   int
}

// WinRate returns the percentage of games won by agent1.
func (s Summary) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins1) / float64(s.Games) * 100
}

type Writer struct {
	baseDir string
	runID   uuid.UUID
}

func NewWriter(root, experiment string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, experiment, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
		runID:   uuid.New(),
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) RunID() uuid.UUID {
	return w.runID
}

func (w *Writer) WriteSetup(setup Setup) error {
	setup.RunID = w.runID
	setup.Duration = setup.EndTime.Sub(setup.StartTime)

	f, err := os.Create(filepath.Join(w.baseDir, "setup.json"))
	if err != nil {
		return fmt.Errorf("failed to create setup file: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(setup); err != nil {
		return fmt.Errorf("failed to write setup: %w", err)
	}
	return nil
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Name(),
			config.Strategy,
			strconv.Itoa(config.Depth),
			strconv.Itoa(config.Goroutines),
			strconv.FormatBool(config.Adversarial),
			strconv.Itoa(config.Episodes),
			config.Duration.String(),
			strconv.Itoa(config.Cutoff),
		})
	}
	header := []string{"id", "name", "strategy", "depth", "goroutines", "adversarial", "episodes", "duration", "cutoff"}
	return w.writeCSV("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			record.StartingSide.String(),
			record.Winner.String(),
			strconv.Itoa(record.Score.Dark),
			strconv.Itoa(record.Score.Light),
			strconv.Itoa(record.TotalMoves),
			strconv.Itoa(record.Passes),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	header := []string{"id", "agent1", "agent2", "starting_side", "winner", "dark", "light", "total_moves", "passes", "start_time", "end_time", "duration"}
	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Side.String(),
			strconv.Itoa(record.Move.X),
			strconv.Itoa(record.Move.Y),
			strconv.Itoa(record.Captures),
			strconv.FormatUint(uint64(record.Hash), 16),
			record.Strategy,
			strconv.Itoa(record.Depth),
			strconv.Itoa(record.Candidates),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Leaves),
			strconv.Itoa(record.Value),
			record.Duration.String(),
		})
	}
	header := []string{"game", "step", "side", "x", "y", "captures", "hash", "strategy", "depth", "candidates", "nodes", "leaves", "value", "duration"}
	return w.writeCSV("move_records.csv", header, rows)
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	f, err := os.Create(filepath.Join(w.baseDir, name))
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}

// AppendResult adds one line per finished game to results.log.
func (w *Writer) AppendResult(line string) error {
	return w.appendTo("results.log", line+"\n")
}

// AppendReport adds the summary of a matchup to report.txt.
func (w *Writer) AppendReport(s Summary) error {
	report := fmt.Sprintf("\n%s vs %s, depth: %d\n", s.Agent1, s.Agent2, s.Depth) +
		"===================\n" +
		fmt.Sprintf("Games played: %d\n", s.Games) +
		"===================\n" +
		fmt.Sprintf("%s wins: %d, %s wins: %d, ties: %d.\n", s.Agent1, s.Wins1, s.Agent2, s.Wins2, s.Ties) +
		fmt.Sprintf("%s won %.1f%% of the games\n", s.Agent1, s.WinRate()) +
		"###########################\n"
	return w.appendTo("report.txt", report)
}

func (w *Writer) appendTo(name, text string) error {
	f, err := os.OpenFile(filepath.Join(w.baseDir, name), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer f.Close()

	if _, err := f.WriteString(text); err != nil {
		return fmt.Errorf("failed to append to %s: %w", name, err)
	}
	return nil
}
