package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type MatchRecord struct {
	ID    int
	Agent int // AgentConfig.ID
	MatchMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped directory for one experiment run under dir/name.
func NewWriter(dir, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405.000Z")
	baseDir := filepath.Join(dir, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "bot", "window", "rounds"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Bot,
			strconv.Itoa(config.Window),
			strconv.Itoa(config.Rounds),
		})
	}
	if err := w.write("agent_configs.csv", header, rows); err != nil {
		return fmt.Errorf("failed to write agent configs: %w", err)
	}
	return nil
}

func (w *Writer) WriteMatchRecords(records []MatchRecord) error {
	header := []string{"id", "agent", "rounds", "bot_wins", "predictor_wins", "ties", "win_rate", "start_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent),
			strconv.Itoa(record.Rounds),
			strconv.Itoa(record.BotWins),
			strconv.Itoa(record.PredictorWins),
			strconv.Itoa(record.Ties),
			strconv.FormatFloat(record.WinRate(), 'f', 4, 64),
			record.StartTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	if err := w.write("match_records.csv", header, rows); err != nil {
		return fmt.Errorf("failed to write match records: %w", err)
	}
	return nil
}

func (w *Writer) write(file string, header []string, rows [][]string) error {
	f, err := os.Create(filepath.Join(w.baseDir, file))
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}
	return nil
}
