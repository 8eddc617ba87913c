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
	ID       int
	PlayerID int // PlayerConfig.ID
	MatchMetric
}

type Writer struct {
	baseDir string
}

func NewWriter(root, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
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

func (w *Writer) WritePlayerConfigs(configs []PlayerConfig) error {
	rows := make([][]string, len(configs))
	for i, config := range configs {
		rows[i] = []string{strconv.Itoa(config.ID), config.Kind}
	}
	return w.write("player_configs.csv", []string{"id", "kind"}, rows)
}

func (w *Writer) WriteMatchRecords(records []MatchRecord) error {
	header := []string{"id", "player", "player_name", "difficulty", "winner", "score_a", "score_b",
		"forfeits", "bomb_round_a", "bomb_round_b", "start_time", "end_time", "duration"}
	rows := make([][]string, len(records))
	for i, record := range records {
		rows[i] = []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.PlayerID),
			record.Player,
			string(record.Difficulty),
			record.Winner.String(),
			strconv.Itoa(record.ScoreA),
			strconv.Itoa(record.ScoreB),
			strconv.Itoa(record.Forfeits),
			strconv.Itoa(record.BombRoundA),
			strconv.Itoa(record.BombRoundB),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		}
	}
	return w.write("match_records.csv", header, rows)
}

func (w *Writer) WriteMatchupStats(stats []MatchupStat) error {
	header := []string{"difficulty", "player", "matches", "wins_a", "wins_b", "draws", "forfeits", "win_rate_b"}
	rows := make([][]string, len(stats))
	for i, s := range stats {
		rows[i] = []string{
			string(s.Difficulty),
			s.Player,
			strconv.Itoa(s.Matches),
			strconv.Itoa(s.WinsA),
			strconv.Itoa(s.WinsB),
			strconv.Itoa(s.Draws),
			strconv.Itoa(s.Forfeits),
			strconv.FormatFloat(s.WinRateB(), 'f', 3, 64),
		}
	}
	return w.write("matchup_stats.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	for _, row := range rows {
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", name, err)
	}
	return nil
}
