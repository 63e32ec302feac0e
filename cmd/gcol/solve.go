package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"graphColoring/internal/bench"
	"graphColoring/internal/driver"
	"graphColoring/internal/graph"
	"graphColoring/internal/opt"
)

type solveOptions struct {
	algo       string
	graph      string
	graphSeed  int64
	colors     int
	seed       int64
	timeout    time.Duration
	paramsFile string
	plot       string
	results    string

	params driver.Params
}

func newSolveCmd() *cobra.Command {
	o := &solveOptions{params: driver.DefaultParams()}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Один запуск алгоритма на одном графе",
		Example: `  gcol solve --algo TS --graph regions --colors 4
  gcol solve --algo annealing --graph random:60:0.1 --colors 5 --sa_t0 500 --plot sa.html`,
		Args: cobra.NoArgs,
	}

	fs := cmd.Flags()
	fs.StringVar(&o.algo, "algo", string(driver.TS), "алгоритм: SA, GA, ACO, PSO, TS (или полное имя)")
	fs.StringVar(&o.graph, "graph", "regions", "граф: regions | complete:N | path:N | cycle:N | random:N:P | путь к файлу")
	fs.Int64Var(&o.graphSeed, "graph_seed", 777, "сид генерации случайного графа")
	fs.IntVar(&o.colors, "colors", 4, "количество цветов")
	fs.Int64Var(&o.seed, "seed", 1, "сид запуска алгоритма")
	fs.DurationVar(&o.timeout, "timeout", 0, "ограничение времени запуска; 0 — без ограничения")
	fs.StringVar(&o.paramsFile, "params", "", "YAML-файл параметров алгоритмов (явные флаги имеют приоритет)")
	fs.StringVar(&o.plot, "plot", "", "путь к HTML-графику сходимости")
	fs.StringVar(&o.results, "results", "", "CSV-журнал запусков (дописывается)")
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

func (o *solveOptions) run(ctx context.Context, out io.Writer) error {
	algo, err := driver.ParseAlgorithm(o.algo)
	if err != nil {
		return err
	}
	if err := o.params.ValidateFor(algo); err != nil {
		return err
	}
	name, g, err := parseGraph(o.graph, o.graphSeed)
	if err != nil {
		return err
	}

	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}
	ctx = klog.NewContext(ctx, klog.Background().WithValues("graph", name))

	res, err := driver.Run(ctx, algo, o.params, g, o.colors, o.seed)
	stopped := false
	if err != nil {
		// Прерванный запуск всё равно печатает лучшее найденное решение
		if res.Coloring == nil || ctx.Err() == nil {
			return err
		}
		stopped = true
	}

	printResult(out, algo, name, g, res, stopped)

	if o.results != "" {
		if err := bench.AppendRun(o.results, string(algo), name, res.Duration, res.Conflicts); err != nil {
			return fmt.Errorf("ошибка при записи в CSV: %w", err)
		}
	}
	if o.plot != "" {
		title := fmt.Sprintf("%s on %s (%d colors)", algo, name, o.colors)
		series := []bench.Series{{Name: string(algo), History: res.History}}
		if err := bench.PlotConvergence(o.plot, title, series); err != nil {
			return fmt.Errorf("ошибка построения графика: %w", err)
		}
		fmt.Fprintln(out, "Saved:", o.plot)
	}
	return nil
}

func printResult(out io.Writer, algo driver.Algorithm, name string, g *graph.Graph, res opt.Result, stopped bool) {
	fmt.Fprintf(out, "Алгоритм %s, граф %s: %d вершин, %d рёбер\n", algo, name, g.Nodes(), g.Edges())

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "вершина\tцвет")
	for v, c := range res.Coloring {
		label := g.Label(v)
		fmt.Fprintf(tw, "%s\t%d\n", label, c)
	}
	tw.Flush()

	status := "правильная раскраска"
	if !res.Solved() {
		status = "есть конфликты"
	}
	if stopped {
		status += ", поиск прерван"
	}
	fmt.Fprintf(out, "Конфликтов: %d (%s) | итераций: %d | вычислений: %d | время: %s\n",
		res.Conflicts, status, res.Iterations, res.Evaluations, res.Duration.Round(time.Microsecond))
}
