package bench

import (
	"encoding/csv"
	"errors"
	"io/fs"
	"os"
	"time"
)

var recordHeader = []string{
	"algo", "graph", "nodes", "edges", "colors", "runs", "solved", "timed_out",
	"time_best_ms", "time_mean_ms", "time_std_ms",
	"conflicts_best", "conflicts_mean", "conflicts_std",
}

// WriteCSV записывает сводку по сериям запусков, перезаписывая файл.
func WriteCSV(path string, records []Record) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(recordHeader); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			r.Algo,
			r.Graph,
			itoa(r.Nodes),
			itoa(r.Edges),
			itoa(r.Colors),
			itoa(r.Runs),
			itoa(r.Solved),
			itoa(r.TimedOut),

			ftoa(r.TimeBestMs),
			ftoa(r.TimeMeanMs),
			ftoa(r.TimeStdMs),

			itoa(r.ConflictsBest),
			ftoa(r.ConflictsMean),
			ftoa(r.ConflictsStd),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

var runHeader = []string{"algorithm", "graph", "time_s", "conflicts"}

// AppendRun дописывает результат одного запуска в журнал.
// Заголовок пишется только при создании файла.
func AppendRun(path, algo, graphName string, elapsed time.Duration, conflicts int) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	_, statErr := os.Stat(path)
	exists := statErr == nil
	if statErr != nil && !errors.Is(statErr, fs.ErrNotExist) {
		return statErr
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if !exists {
		if err := w.Write(runHeader); err != nil {
			return err
		}
	}
	if err := w.Write([]string{algo, graphName, ftoa(elapsed.Seconds()), itoa(conflicts)}); err != nil {
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}
