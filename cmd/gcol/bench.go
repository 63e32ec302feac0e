package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"graphColoring/internal/bench"
	"graphColoring/internal/driver"
)

type benchOptions struct {
	out        string
	graphs     string
	algos      string
	colors     int
	runs       int
	baseSeed   int64
	graphSeed  int64
	perRunTO   time.Duration
	workers    int
	paramsFile string
	metrics    string
	plot       string

	params driver.Params
}

func newBenchCmd() *cobra.Command {
	o := &benchOptions{params: driver.DefaultParams()}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Серия запусков алгоритмов на наборе графов с записью статистики в CSV",
		Example: `  gcol bench --graphs regions,random:50:0.1 --algos SA,TS --runs 10 --workers 4
  gcol bench --params params.yaml --metrics artifacts/gcol.prom --plot artifacts/convergence.html`,
		Args: cobra.NoArgs,
	}

	// CLI флаги для настройки параметров алгоритмов и политики запуска
	fs := cmd.Flags()
	fs.StringVar(&o.out, "out", "artifacts/results.csv", "путь к выходному CSV-файлу")
	fs.StringVar(&o.graphs, "graphs", "regions,complete:4,path:4,cycle:5", "графы через запятую: regions | complete:N | path:N | cycle:N | random:N:P | путь к файлу")
	fs.StringVar(&o.algos, "algos", "SA,GA,ACO,PSO,TS", "список алгоритмов: SA, GA, ACO, PSO, TS (через запятую)")
	fs.IntVar(&o.colors, "colors", 4, "количество цветов")
	fs.IntVar(&o.runs, "runs", 30, "количество запусков каждого алгоритма (с разными сидами)")
	fs.Int64Var(&o.baseSeed, "seed", 1000, "базовый сид для запусков алгоритмов")
	fs.Int64Var(&o.graphSeed, "graph_seed", 777, "базовый сид для генерации случайных графов")
	fs.DurationVar(&o.perRunTO, "per_run_timeout", 0, "таймаут одного запуска; 0 — без ограничения")
	fs.IntVar(&o.workers, "workers", 1, "количество параллельных запусков")
	fs.StringVar(&o.paramsFile, "params", "", "YAML-файл параметров алгоритмов (явные флаги имеют приоритет)")
	fs.StringVar(&o.metrics, "metrics", "", "путь к файлу метрик Prometheus (textfile)")
	fs.StringVar(&o.plot, "plot", "", "путь к HTML-графику сходимости лучших запусков")
	pfs := paramsFlagSet(&o.params)
	fs.AddFlagSet(pfs)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		if err := applyParamsFile(pfs, o.paramsFile, &o.params); err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return o.run(ctx, cmd.OutOrStdout())
	}
	return cmd
}

func (o *benchOptions) run(ctx context.Context, out io.Writer) error {
	cases, err := parseCases(o.graphs, o.colors, o.graphSeed)
	if err != nil {
		return err
	}

	var selected []bench.Algorithm
	for _, name := range splitCSV(o.algos) {
		algo, err := driver.ParseAlgorithm(name)
		if err != nil {
			return err
		}
		factory, err := driver.Factory(algo, o.params)
		if err != nil {
			return fmt.Errorf("конфликт в конфигурации %s: %w", algo, err)
		}
		selected = append(selected, bench.Algorithm{Name: string(algo), Factory: factory})
	}
	if len(selected) == 0 {
		return fmt.Errorf("не задано ни одного алгоритма")
	}

	var metrics *bench.Metrics
	if o.metrics != "" {
		metrics = bench.NewMetrics()
	}

	runner := bench.Runner{
		Runs:          o.runs,
		BaseSeed:      o.baseSeed,
		PerRunTimeout: o.perRunTO,
		Workers:       o.workers,
		Metrics:       metrics,
	}

	var records []bench.Record
	for _, c := range cases {
		for _, a := range selected {
			fmt.Fprintf(out, "Запущен алгоритм %s; граф %s: %d вершин, %d рёбер, %d цветов (общее кол-во запусков=%d)...\n",
				a.Name, c.Name, c.Graph.Nodes(), c.Graph.Edges(), c.Colors, runner.Runs)

			rec, err := runner.RunCase(ctx, c, a)
			if err != nil {
				return err
			}
			records = append(records, rec)

			fmt.Fprintf(out, "  Конфликты: лучшее=%d среднее=%.2f стандартное отклонение=%.2f | решено %d/%d | Время: среднее=%.2fms стандартное отклонение=%.2fms\n",
				rec.ConflictsBest, rec.ConflictsMean, rec.ConflictsStd,
				rec.Solved, rec.Runs,
				rec.TimeMeanMs, rec.TimeStdMs,
			)
		}
	}

	if err := bench.WriteCSV(o.out, records); err != nil {
		return fmt.Errorf("ошибка при записи в CSV: %w", err)
	}
	fmt.Fprintln(out, "Saved:", o.out)

	if metrics != nil {
		if err := metrics.WriteTextfile(o.metrics); err != nil {
			return fmt.Errorf("ошибка при записи метрик: %w", err)
		}
		fmt.Fprintln(out, "Saved:", o.metrics)
	}
	if o.plot != "" {
		title := fmt.Sprintf("Convergence of best runs (%d colors)", o.colors)
		if err := bench.PlotConvergence(o.plot, title, bench.SeriesFromRecords(records)); err != nil {
			return fmt.Errorf("ошибка построения графика: %w", err)
		}
		fmt.Fprintln(out, "Saved:", o.plot)
	}
	return nil
}
