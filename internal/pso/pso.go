package pso

import (
	"context"
	"math"
	"math/rand"
	"time"

	"k8s.io/klog/v2"

	"graphColoring/internal/graph"
	"graphColoring/internal/opt"
)

// Solver - структура реализации алгоритма роя частиц
type Solver struct {
	Cfg Config
	Rng *rand.Rand
}

// New возвращает новый PSO-солвер с валидацией конфигурации, с использованием инициализированного генератора случайных чисел.
// Используется в фабриках.
func New(cfg Config, rng *rand.Rand) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, opt.ErrNilRand
	}
	return &Solver{Cfg: cfg, Rng: rng}, nil
}

// particle описывает одну частицу роя.
type particle struct {
	// pos — позиция частицы (раскраска)
	pos []int
	// vel — скорость частицы
	vel []float64

	// pBestPos — лучшая позиция частицы за всё время
	pBestPos []int
	// pBestCost — число конфликтов в pBestPos
	pBestCost int
}

// Solve — реализация эвристики.
func (s *Solver) Solve(ctx context.Context, g *graph.Graph, colors int) (opt.Result, error) {
	start := time.Now()

	// Валидация конфигурации
	eval, err := graph.NewEvaluator(g, colors)
	if err != nil {
		return opt.Result{}, err
	}
	if err := s.Cfg.Validate(); err != nil {
		return opt.Result{}, err
	}
	if s.Rng == nil {
		return opt.Result{}, opt.ErrNilRand
	}
	logger := klog.FromContext(ctx)

	n := g.Nodes()
	iters := opt.Budget(s.Cfg.Iterations, s.Cfg.IterationsPerNode, n)

	// Случайная инициализация позиций, скорости нулевые
	ps := make([]particle, s.Cfg.Particles)
	for i := range ps {
		ps[i] = particle{
			pos:      make([]int, n),
			vel:      make([]float64, n),
			pBestPos: make([]int, n),
		}
		graph.RandomColoring(ps[i].pos, colors, s.Rng)
		ps[i].pBestCost = eval.MustConflicts(ps[i].pos)
		copy(ps[i].pBestPos, ps[i].pos)
	}
	evals := s.Cfg.Particles

	// Вычисление глобально лучшего решения
	gBestPos := make([]int, n)
	gBestCost := math.MaxInt
	updateGlobalBest(ps, gBestPos, &gBestCost)

	w, c1, c2 := s.Cfg.W, s.Cfg.C1, s.Cfg.C2
	vMax := velocityLimit(s.Cfg.VMax, colors)
	history := make([]int, 0, iters)

	// Основной цикл
	iter := 0
	for ; iter < iters && gBestCost > 0; iter++ {
		// Для поддержки отмены через context
		if err := ctx.Err(); err != nil {
			return opt.Result{
				Coloring:    gBestPos,
				Conflicts:   gBestCost,
				History:     history,
				Evaluations: evals,
				Iterations:  iter,
				Duration:    time.Since(start),
				Meta: map[string]any{
					"stopped": "context",
				},
			}, err
		}

		for i := range ps {
			p := &ps[i]

			// Обновление скорости и позиции частицы
			for d := 0; d < n; d++ {
				r1 := s.Rng.Float64()
				r2 := s.Rng.Float64()

				v := w*p.vel[d] +
					c1*r1*float64(p.pBestPos[d]-p.pos[d]) +
					c2*r2*float64(gBestPos[d]-p.pos[d])

				// Ограничение скорости
				if v > vMax {
					v = vMax
				} else if v < -vMax {
					v = -vMax
				}
				p.vel[d] = v

				// Дробная часть скорости отбрасывается, позиция берётся по модулю числа цветов
				p.pos[d] = mod(p.pos[d]+int(v), colors)
			}

			// Оценка нового положения частицы
			cost := eval.MustConflicts(p.pos)
			evals++

			// Обновление личного лучшего решения
			if cost < p.pBestCost {
				p.pBestCost = cost
				copy(p.pBestPos, p.pos)
			}
		}

		// Глобально лучшее обновляется один раз за итерацию
		if updateGlobalBest(ps, gBestPos, &gBestCost) {
			logger.V(5).Info("New incumbent", "algorithm", "PSO", "iteration", iter, "conflicts", gBestCost)
		}

		history = append(history, gBestCost)
	}

	return opt.Result{
		Coloring:    gBestPos,
		Conflicts:   gBestCost,
		History:     history,
		Evaluations: evals,
		Iterations:  iter,
		Duration:    time.Since(start),
		Meta: map[string]any{
			"particles": s.Cfg.Particles,
			"w":         w,
			"c1":        c1,
			"c2":        c2,
			"vmax":      vMax,
		},
	}, nil
}

// updateGlobalBest копирует в pos лучшее личное решение роя, если оно строго лучше *cost.
func updateGlobalBest(ps []particle, pos []int, cost *int) bool {
	improved := false
	for i := range ps {
		if ps[i].pBestCost < *cost {
			*cost = ps[i].pBestCost
			copy(pos, ps[i].pBestPos)
			improved = true
		}
	}
	return improved
}

// mod — неотрицательный остаток от деления.
func mod(x, k int) int {
	return ((x % k) + k) % k
}

// velocityLimit ограничивает скорость числом цветов: int(v) для v вне диапазона int не определён.
func velocityLimit(vMax float64, colors int) float64 {
	return math.Min(vMax, float64(colors))
}
