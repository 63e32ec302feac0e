package aco

import (
	"context"
	"math"
	"math/rand"
	"time"

	"k8s.io/klog/v2"

	"graphColoring/internal/graph"
	"graphColoring/internal/opt"
)

// Solver - структура реализации муравьиного алгоритма.
type Solver struct {
	Cfg Config
	Rng *rand.Rand
}

// New возвращает новый ACO-солвер с валидацией конфигурации, с использованием инициализированного генератора случайных чисел.
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
	startTime := time.Now()

	// Валидация входных данных
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
	ants := s.Cfg.Ants

	// Матрица феромонов n x colors
	tau := make([]float64, n*colors)
	for i := range tau {
		tau[i] = s.Cfg.Tau0
	}

	// Раскраски муравьёв текущей итерации и их стоимости
	solutions := make([][]int, ants)
	costs := make([]int, ants)
	for a := range solutions {
		solutions[a] = make([]int, n)
	}
	weights := make([]float64, colors) // веса вероятностного выбора
	used := make([]int, colors)        // число ранее окрашенных соседей каждого цвета

	// Начальное решение: один муравей по равномерному феромону tau0
	best := make([]int, n)
	constructColoring(g, colors, tau, s.Cfg.Alpha, s.Cfg.Beta, s.Rng, best, weights, used)
	bestCost := eval.MustConflicts(best)
	evals := 1
	history := make([]int, 0, maxIter)

	alpha := s.Cfg.Alpha
	beta := s.Cfg.Beta
	rho := s.Cfg.Rho
	Q := s.Cfg.Q

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
				Duration:    time.Since(startTime),
				Meta: map[string]any{
					"stopped": "context",
				},
			}, err
		}

		// Муравьи пошли
		for a := 0; a < ants; a++ {
			constructColoring(g, colors, tau, alpha, beta, s.Rng, solutions[a], weights, used)

			cost := eval.MustConflicts(solutions[a])
			costs[a] = cost
			evals++

			// Глобальное лучшее за всё время
			if cost < bestCost {
				bestCost = cost
				copy(best, solutions[a])
				logger.V(5).Info("New incumbent", "algorithm", "ACO", "iteration", iter, "conflicts", bestCost)
			}
		}

		// Испарение феромона
		ev := 1.0 - rho
		for i := range tau {
			tau[i] *= ev
		}

		// Каждый муравей откладывает феромон обратно пропорционально числу конфликтов
		for a := 0; a < ants; a++ {
			dep := Q / float64(1+costs[a])
			for node, c := range solutions[a] {
				tau[node*colors+c] += dep
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
		Duration:    time.Since(startTime),
		Meta: map[string]any{
			"ants":  ants,
			"alpha": alpha,
			"beta":  beta,
			"rho":   rho,
			"Q":     Q,
			"tau0":  s.Cfg.Tau0,
		},
	}, nil
}

// constructColoring строит одну раскраску, обходя вершины в порядке 0..n-1.
// Штраф за конфликт учитывает только уже окрашенных соседей (nb < node),
// поэтому ранние вершины оцениваются грубее поздних.
func constructColoring(
	g *graph.Graph,
	colors int,
	tau []float64,
	alpha float64,
	beta float64,
	rng *rand.Rand,
	out []int,
	weights []float64,
	used []int,
) {
	for node := range out {
		for c := range used {
			used[c] = 0
		}
		for _, nb := range g.Neighbors(node) {
			if nb < node {
				used[out[nb]]++
			}
		}

		// Подсчёт весов вероятностей выбора
		sumW := 0.0
		row := tau[node*colors : (node+1)*colors]
		for c := 0; c < colors; c++ {
			// Формула ACO
			w := fastPow(row[c], alpha) * fastPow(1.0/float64(1+used[c]), beta)
			weights[c] = w
			sumW += w
		}

		out[node] = rouletteSelect(weights, sumW, rng)
	}
}

// rouletteSelect выбирает индекс пропорционально весам.
// При вырожденной сумме весов выбор равновероятный.
func rouletteSelect(weights []float64, sumW float64, rng *rand.Rand) int {
	k := len(weights)
	if !(sumW > 0) || math.IsInf(sumW, 1) {
		return rng.Intn(k)
	}
	r := rng.Float64() * sumW
	acc := 0.0
	for i := 0; i < k; i++ {
		acc += weights[i]
		if r < acc {
			return i
		}
	}
	// Погрешность округления: последний цвет с ненулевым весом
	for i := k - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return i
		}
	}
	return k - 1
}

// fastPow — оптимизация для частых степеней.
// Таким образом избегаем вызова math.Pow в простых случаях.
func fastPow(x, p float64) float64 {
	if p == 0 {
		return 1.0
	}
	if p == 1 {
		return x
	}
	if p == 2 {
		return x * x
	}
	if p == 3 {
		return x * x * x
	}
	return math.Pow(x, p)
}
