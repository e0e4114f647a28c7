package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "difficulty")
	require.NoError(t, err)

	require.NoError(t, w.WriteMatchConfigs([]MatchConfig{{ID: 1, Difficulty: "easy", Width: 24, Height: 16}}))
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, w.WriteMatchRecords([]MatchRecord{{
		ID:     1,
		Config: 1,
		MatchMetric: MatchMetric{
			Seed:       7,
			Difficulty: "easy",
			Winner:     -1,
			StartTime:  start,
			EndTime:    start.Add(2 * time.Second),
			Duration:   2 * time.Second,
			TotalTurns: 300,
		},
	}}))
	require.NoError(t, w.WriteTurnRecords([]TurnRecord{
		{Match: 1, TurnMetric: TurnMetric{Turn: 1, Player: 0, Attacks: 2, Destroyed: 1, Balance: 60, Units: 4, Holdings: 1}},
		{Match: 1, TurnMetric: TurnMetric{Turn: 2, Player: 1, Balance: 20, Units: 4}},
	}))

	configs := readCSV(t, filepath.Join(w.Dir(), "match_configs.csv"))
	require.Equal(t, [][]string{{"id", "difficulty", "width", "height"}, {"1", "easy", "24", "16"}}, configs)

	matches := readCSV(t, filepath.Join(w.Dir(), "match_records.csv"))
	require.Len(t, matches, 2)
	require.Equal(t, []string{"1", "1", "7", "easy", "-1", "2024-05-01T12:00:00Z", "2024-05-01T12:00:02Z", "2s", "300"}, matches[1])

	turns := readCSV(t, filepath.Join(w.Dir(), "turn_records.csv"))
	require.Len(t, turns, 3)
	require.Equal(t, []string{"1", "1", "0", "0s", "2", "1", "60", "4", "1"}, turns[1])
}

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start(5, 1)
	c.AddAttack(0)
	c.AddAttack(2)
	m := c.Complete(Snapshot{Balance: 80, Units: 3, Holdings: 2})
	require.Equal(t, 5, m.Turn)
	require.Equal(t, 1, m.Player)
	require.Equal(t, 2, m.Attacks)
	require.Equal(t, 2, m.Destroyed)
	require.Equal(t, 80, m.Balance)

	c.Start(6, 0)
	require.Zero(t, c.Complete(Snapshot{}).Attacks)

	require.Equal(t, TurnMetric{}, NewDummyCollector().Complete(Snapshot{Balance: 1}))
}
