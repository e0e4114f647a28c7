package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// MatchConfig identifies one side of a matchup.
type MatchConfig struct {
	ID         int
	Difficulty string
	Width      int
	Height     int
}

type MatchRecord struct {
	ID     int
	Config int // MatchConfig.ID
	MatchMetric
}

type TurnRecord struct {
	Match int // MatchRecord.ID
	TurnMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates root/name/<timestamp> for the CSV files.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
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

func (w *Writer) WriteMatchConfigs(configs []MatchConfig) error {
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Difficulty,
			strconv.Itoa(config.Width),
			strconv.Itoa(config.Height),
		})
	}
	return w.write("match_configs.csv", []string{"id", "difficulty", "width", "height"}, rows)
}

func (w *Writer) WriteMatchRecords(records []MatchRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Config),
			strconv.FormatInt(record.Seed, 10),
			record.Difficulty,
			strconv.Itoa(record.Winner),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalTurns),
		})
	}
	header := []string{"id", "config", "seed", "difficulty", "winner", "start_time", "end_time", "duration", "total_turns"}
	return w.write("match_records.csv", header, rows)
}

func (w *Writer) WriteTurnRecords(records []TurnRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Match),
			strconv.Itoa(record.Turn),
			strconv.Itoa(record.Player),
			record.Duration.String(),
			strconv.Itoa(record.Attacks),
			strconv.Itoa(record.Destroyed),
			strconv.Itoa(record.Balance),
			strconv.Itoa(record.Units),
			strconv.Itoa(record.Holdings),
		})
	}
	header := []string{"match", "turn", "player", "duration", "attacks", "destroyed", "balance", "units", "holdings"}
	return w.write("turn_records.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
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
