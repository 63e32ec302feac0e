package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"

	"graphColoring/internal/graph"
	"graphColoring/internal/opt"
)

type Algorithm struct {
	Name    string
	Factory func(seed int64) (opt.Optimizer, error)
}

type Case struct {
	Name   string
	Graph  *graph.Graph
	Colors int
}

type Record struct {
	Algo   string
	Graph  string
	Nodes  int
	Edges  int
	Colors int
	Runs   int

	// Solved — запуски, завершившиеся правильной раскраской
	Solved int
	// TimedOut — запуски, прерванные по PerRunTimeout
	TimedOut int

	TimeBestMs float64
	TimeMeanMs float64
	TimeStdMs  float64

	ConflictsBest int
	ConflictsMean float64
	ConflictsStd  float64

	// Лучший запуск серии
	BestSeed     int64
	BestColoring []int
	BestHistory  []int
}

type Runner struct {
	Runs          int
	BaseSeed      int64
	PerRunTimeout time.Duration // 0 = no timeout
	// Workers — число параллельных запусков; <= 1 означает последовательный прогон
	Workers int

	Metrics *Metrics
}

type runOutcome struct {
	seed     int64
	res      opt.Result
	timeMs   float64
	timedOut bool
}

func (r Runner) RunCase(ctx context.Context, c Case, algo Algorithm) (Record, error) {
	if r.Runs <= 0 {
		return Record{}, fmt.Errorf("runs must be > 0 (got %d)", r.Runs)
	}
	if err := c.Graph.Validate(); err != nil {
		return Record{}, fmt.Errorf("case %s: %w", c.Name, err)
	}
	logger := klog.FromContext(ctx)

	outcomes := make([]runOutcome, r.Runs)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(max(1, r.Workers))

	for i := 0; i < r.Runs; i++ {
		eg.Go(func() error {
			out, err := r.runOnce(egCtx, c, algo, r.BaseSeed+int64(i))
			if err != nil {
				return fmt.Errorf("%s on %s, run %d: %w", algo.Name, c.Name, i, err)
			}
			outcomes[i] = out
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Record{}, err
	}

	conflicts := make([]int, 0, r.Runs)
	timesMs := make([]float64, 0, r.Runs)
	rec := Record{
		Algo:   algo.Name,
		Graph:  c.Name,
		Nodes:  c.Graph.Nodes(),
		Edges:  c.Graph.Edges(),
		Colors: c.Colors,
		Runs:   r.Runs,
	}

	bestIdx := 0
	for i, o := range outcomes {
		conflicts = append(conflicts, o.res.Conflicts)
		timesMs = append(timesMs, o.timeMs)
		if o.res.Solved() {
			rec.Solved++
		}
		if o.timedOut {
			rec.TimedOut++
		}
		if o.res.Conflicts < outcomes[bestIdx].res.Conflicts {
			bestIdx = i
		}
	}

	cStats := CalcIntStats(conflicts)
	tStats := CalcFloatStats(timesMs)

	rec.TimeBestMs = tStats.Best
	rec.TimeMeanMs = tStats.Mean
	rec.TimeStdMs = tStats.Std

	rec.ConflictsBest = cStats.Best
	rec.ConflictsMean = cStats.Mean
	rec.ConflictsStd = cStats.Std

	best := outcomes[bestIdx]
	rec.BestSeed = best.seed
	rec.BestColoring = best.res.Coloring
	rec.BestHistory = best.res.History

	r.Metrics.SetBest(algo.Name, c.Name, rec.ConflictsBest)
	logger.V(1).Info("Case finished",
		"algorithm", algo.Name,
		"graph", c.Name,
		"runs", r.Runs,
		"solved", rec.Solved,
		"bestConflicts", rec.ConflictsBest,
		"meanConflicts", rec.ConflictsMean,
		"meanTimeMs", rec.TimeMeanMs,
	)
	return rec, nil
}

// runOnce выполняет один запуск. Истечение PerRunTimeout не считается ошибкой:
// в зачёт идёт лучшее решение, найденное до остановки.
func (r Runner) runOnce(ctx context.Context, c Case, algo Algorithm, seed int64) (runOutcome, error) {
	op, err := algo.Factory(seed)
	if err != nil {
		return runOutcome{}, err
	}

	runCtx := ctx
	cancel := func() {}
	if r.PerRunTimeout > 0 {
		runCtx, cancel = context.WithTimeout(ctx, r.PerRunTimeout)
	}
	defer cancel()

	start := time.Now()
	res, err := op.Solve(runCtx, c.Graph, c.Colors)
	dur := time.Since(start)

	timedOut := false
	if err != nil {
		// Внешняя отмена прерывает всю серию
		if ctx.Err() != nil || !errors.Is(err, context.DeadlineExceeded) {
			return runOutcome{}, err
		}
		timedOut = true
	}
	if len(res.Coloring) != c.Graph.Nodes() {
		return runOutcome{}, fmt.Errorf("invalid coloring length %d (want %d)", len(res.Coloring), c.Graph.Nodes())
	}

	r.Metrics.ObserveRun(algo.Name, c.Name, res, timedOut)
	return runOutcome{
		seed:     seed,
		res:      res,
		timeMs:   float64(dur.Microseconds()) / 1000.0,
		timedOut: timedOut,
	}, nil
}
