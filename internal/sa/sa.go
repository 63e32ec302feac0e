package sa

import (
	"context"
	"math"
	"math/rand"
	"time"

	"k8s.io/klog/v2"

	"graphColoring/internal/graph"
	"graphColoring/internal/opt"
)

// minExponent — ниже этого показателя math.Exp возвращает денормализованные значения,
// вероятность принятия считается нулевой.
const minExponent = -700.0

// Solver - структура реализации алгоритма имитации отжига
type Solver struct {
	Cfg Config
	Rng *rand.Rand
}

// New возвращает новый SA-солвер с валидацией конфигурации, с использованием инициализированного генератора случайных чисел.
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

// Solve — реализация эвристики.
func (s *Solver) Solve(ctx context.Context, g *graph.Graph, colors int) (opt.Result, error) {
	start := time.Now()

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
	maxIter := opt.Budget(s.Cfg.Iterations, s.Cfg.IterationsPerNode, n)

	// Текущее решение изменяется на месте, лучшее хранится отдельно
	curr := make([]int, n)
	graph.RandomColoring(curr, colors, s.Rng)

	currCost := eval.MustConflicts(curr)
	bestCost := currCost
	best := graph.CloneColoring(curr)

	evals := 1
	T := s.Cfg.InitialTemp
	history := make([]int, 0, maxIter)

	// С одним цветом пространство решений состоит из одной точки
	if colors < 2 {
		maxIter = 0
	}

	iter := 0
	for ; iter < maxIter && bestCost > 0; iter++ {
		// Для поддержки отмены через context
		if err := ctx.Err(); err != nil {
			return opt.Result{
				Coloring:    best,
				Conflicts:   bestCost,
				History:     history,
				Evaluations: evals,
				Iterations:  iter,
				Duration:    time.Since(start),
				Meta: map[string]any{
					"stopped": "context",
					"T":       T,
				},
			}, err
		}

		// Охлаждение: один раз за внешнюю итерацию
		T *= s.Cfg.Factor

		for k := 0; k < s.Cfg.NeighborsPerIteration; k++ {
			// Соседнее решение: одна вершина получает другой цвет
			node := s.Rng.Intn(n)
			old := curr[node]
			color := s.Rng.Intn(colors - 1)
			if color >= old {
				color++
			}

			candCost := currCost + graph.MoveDelta(g, curr, node, color)
			evals++

			accept := false
			if candCost < currCost {
				accept = true
			} else {
				// Критерий Метрополиса:
				// допускает принятие ухудшающих решений
				if s.Rng.Float64() < acceptance(currCost-candCost, T) {
					accept = true
				}
			}
			if !accept {
				continue
			}

			curr[node] = color
			currCost = candCost

			// Обновление глобально лучшего решения
			if currCost < bestCost {
				bestCost = currCost
				copy(best, curr)
				logger.V(5).Info("New incumbent", "algorithm", "SA", "iteration", iter, "conflicts", bestCost, "temperature", T)
			}
		}

		history = append(history, bestCost)
	}

	return opt.Result{
		Coloring:    best,
		Conflicts:   bestCost,
		History:     history,
		Evaluations: evals,
		Iterations:  iter,
		Duration:    time.Since(start),
		Meta: map[string]any{
			"initial_temp": s.Cfg.InitialTemp,
			"final_temp":   T,
			"factor":       s.Cfg.Factor,
			"neighbors":    s.Cfg.NeighborsPerIteration,
		},
	}, nil
}

// acceptance возвращает вероятность принятия хода с приростом gain = current - candidate.
// Неотрицательный прирост принимается всегда. При вырожденной температуре
// или слишком малом показателе экспоненты вероятность насыщается до 0.
func acceptance(gain int, T float64) float64 {
	if gain >= 0 {
		return 1
	}
	if !(T > 0) {
		return 0
	}
	x := float64(gain) / T
	if math.IsNaN(x) || x < minExponent {
		return 0
	}
	return math.Exp(x)
}
