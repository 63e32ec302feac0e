package ga

import (
	"context"
	"math/rand"
	"time"

	"k8s.io/klog/v2"

	"graphColoring/internal/graph"
	"graphColoring/internal/opt"
)

// Solver — реализация генетического алгоритма для задачи раскраски графа.
type Solver struct {
	Cfg Config
	Rng *rand.Rand
}

// New возвращает новый GA-солвер с валидацией конфигурации, с использованием инициализированного генератора случайных чисел.
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

	// Проверка корректности входных данных и конфигурации
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
	popSize := s.Cfg.Population
	nParents := popSize / 2

	// Вспомогательная анонимная функция для создания двумерного массива раскрасок
	makePop := func() [][]int {
		backing := make([]int, popSize*n)
		pop := make([][]int, popSize)
		for i := 0; i < popSize; i++ {
			pop[i] = backing[i*n : (i+1)*n]
		}
		return pop
	}

	// Две популяции: текущая (A) и следующая (B)
	popA := makePop()
	popB := makePop()
	scoresA := make([]int, popSize)
	scoresB := make([]int, popSize)

	// Инициализация начальной популяции
	for i := 0; i < popSize; i++ {
		graph.RandomColoring(popA[i], colors, s.Rng)
		scoresA[i] = eval.MustConflicts(popA[i])
	}
	evaluations := popSize

	// Поиск лучшего решения в начальной популяции
	best := make([]int, n)
	bestConflicts := scoresA[0]
	copy(best, popA[0])
	for i := 1; i < popSize; i++ {
		if scoresA[i] < bestConflicts {
			bestConflicts = scoresA[i]
			copy(best, popA[i])
		}
	}

	// Индексы для сортировки популяции по приспособленности
	idxs := make([]int, popSize)
	history := make([]int, 0, s.Cfg.Generations)

	gen := 0
	// Раскраска без конфликтов завершает поиск до построения следующего поколения
	for ; gen < s.Cfg.Generations && bestConflicts > 0; gen++ {
		// Для поддержки отмены через context
		if err := ctx.Err(); err != nil {
			res := toOptResult(
				best,
				bestConflicts,
				history,
				evaluations,
				gen,
				map[string]any{"stopped": "context"},
			)
			res.Duration = time.Since(start)
			return res, err
		}

		// Отбор усечением: лучшая половина переходит в новое поколение без изменений
		truncationSelect(idxs, scoresA)
		for p := 0; p < nParents; p++ {
			src := idxs[p]
			copy(popB[p], popA[src])
			scoresB[p] = scoresA[src]
		}
		parents := popB[:nParents]

		// Генерация потомков
		for i, write := 0, nParents; write < popSize; i, write = i+1, write+1 {
			child := popB[write]

			// Кроссовер соседних по рангу родителей
			p1 := parents[i%nParents]
			if s.Rng.Float64() < s.Cfg.CrossoverRate {
				p2 := parents[(i+1)%nParents]
				singlePointCrossover(p1, p2, child, s.Rng.Intn(n))
			} else {
				copy(child, p1)
			}

			// Мутация
			if s.Rng.Float64() < s.Cfg.MutationRate {
				mutateRecolor(child, colors, s.Rng)
			}

			// Оценка потомка
			c := eval.MustConflicts(child)
			scoresB[write] = c
			evaluations++
			if c < bestConflicts {
				bestConflicts = c
				copy(best, child)
				logger.V(5).Info("New incumbent", "algorithm", "GA", "generation", gen, "conflicts", bestConflicts)
			}
		}

		// Смена поколений
		popA, popB = popB, popA
		scoresA, scoresB = scoresB, scoresA

		history = append(history, bestConflicts)
	}

	res := toOptResult(
		best,
		bestConflicts,
		history,
		evaluations,
		gen,
		map[string]any{
			"population":  s.Cfg.Population,
			"generations": s.Cfg.Generations,
			"parents":     nParents,
		},
	)
	res.Duration = time.Since(start)
	return res, nil
}
