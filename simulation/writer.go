package simulation

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer exports league results as CSV files under a timestamped
// subdirectory of a base output directory.
type Writer struct {
	baseDir string
}

func NewWriter(outDir string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(outDir, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

// Dir returns the directory the writer exports into.
func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteStandings(standings []Standing) error {
	path := filepath.Join(w.baseDir, "players.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create players file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"player", "true_skill", "mu", "sigma", "conservative"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write players header: %w", err)
	}

	for _, s := range standings {
		row := []string{
			s.Player,
			formatFloat(s.TrueSkill),
			formatFloat(s.Mu),
			formatFloat(s.Sigma),
			formatFloat(s.Conservative),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write players row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteMatchRecords(records []MatchRecord) error {
	path := filepath.Join(w.baseDir, "matches.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create matches file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"match", "home", "away", "outcome", "c", "t", "v", "w"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write matches header: %w", err)
	}

	for _, r := range records {
		row := []string{
			strconv.Itoa(r.Match),
			r.Home,
			r.Away,
			r.Outcome,
			formatFloat(r.C),
			formatFloat(r.T),
			formatFloat(r.V),
			formatFloat(r.W),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write matches row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteHistoryRecords(records []HistoryRecord) error {
	path := filepath.Join(w.baseDir, "history.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create history file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"match", "player", "mu", "sigma"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write history header: %w", err)
	}

	for _, r := range records {
		row := []string{
			strconv.Itoa(r.Match),
			r.Player,
			formatFloat(r.Mu),
			formatFloat(r.Sigma),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write history row: %w", err)
		}
	}

	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
