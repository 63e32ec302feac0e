package ts

import (
	"context"
	"math/rand"
	"time"

	"k8s.io/klog/v2"

	"graphColoring/internal/graph"
	"graphColoring/internal/opt"
)

// maxInt используется как бесконечность для оценок ходов.
const maxInt = int(^uint(0) >> 1)

// Solver - структура реализации поиска с запретами.
type Solver struct {
	Cfg Config
	Rng *rand.Rand
}

// New возвращает новый TS-солвер с валидацией конфигурации, с использованием инициализированного генератора случайных чисел.
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

// Solve — основной цикл алгоритма
func (s *Solver) Solve(ctx context.Context, g *graph.Graph, colors int) (opt.Result, error) {
	start := time.Now()

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

	// Текущее решение изменяется на месте
	curr := make([]int, n)
	if s.Cfg.Start == StartRandom {
		graph.RandomColoring(curr, colors, s.Rng)
	}

	currCost := eval.MustConflicts(curr)
	evals := 1

	// Глобально лучшее решение
	best := graph.CloneColoring(curr)
	bestCost := currCost

	st := newSearch(g, colors, curr, s.Cfg.Tenure, s.Rng)
	history := make([]int, 0, maxIter)
	skipped := 0

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
					"skipped": skipped,
				},
			}, err
		}

		if _, applied := st.step(); !applied {
			skipped++
			history = append(history, bestCost)
			continue
		}

		currCost = eval.MustConflicts(curr)
		evals++

		// Обновление глобально лучшего решения
		if currCost < bestCost {
			bestCost = currCost
			copy(best, curr)
			logger.V(5).Info("New incumbent", "algorithm", "TS", "iteration", iter, "conflicts", bestCost)
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
			"tenure":  s.Cfg.Tenure,
			"start":   string(s.Cfg.Start),
			"skipped": skipped,
		},
	}, nil
}

// search — состояние одной итерации поиска: текущая раскраска, табу-список
// и буферы, переиспользуемые между итерациями.
type search struct {
	g     *graph.Graph
	curr  []int
	tabu  *tabuList
	rng   *rand.Rand
	count []int
	ties  []move
}

func newSearch(g *graph.Graph, colors int, curr []int, tenure int, rng *rand.Rand) *search {
	return &search{
		g:     g,
		curr:  curr,
		tabu:  newTabuList(tenure),
		rng:   rng,
		count: make([]int, colors),
		ties:  make([]move, 0, g.Nodes()*colors),
	}
}

// step выбирает лучший ход и применяет его, если он не запрещён.
// Запрещённый ход пропускается без замены на следующий по качеству,
// раскраска при этом не меняется.
func (s *search) step() (move, bool) {
	m := s.bestMove()
	if s.tabu.Contains(m) {
		return m, false
	}
	s.curr[m.node] = m.color
	s.tabu.Push(m)
	return m, true
}

// bestMove возвращает ход с минимальной оценкой
// count[c] - count[curr[node]], где count — цвета соседей вершины.
// Матрица оценок не хранится целиком: собираются только ходы с минимальной оценкой,
// среди них выбор равновероятный.
func (s *search) bestMove() move {
	minScore := maxInt
	s.ties = s.ties[:0]
	for node := range s.curr {
		for c := range s.count {
			s.count[c] = 0
		}
		for _, nb := range s.g.Neighbors(node) {
			s.count[s.curr[nb]]++
		}
		own := s.count[s.curr[node]]
		for c, k := range s.count {
			score := k - own
			if score < minScore {
				minScore = score
				s.ties = s.ties[:0]
			}
			if score == minScore {
				s.ties = append(s.ties, move{node: node, color: c})
			}
		}
	}
	return s.ties[s.rng.Intn(len(s.ties))]
}

// move — перекраска вершины node в цвет color.
type move struct {
	node, color int
}

// key формирует уникальный ключ хода
func (m move) key() uint64 {
	return (uint64(uint32(m.node)) << 32) | uint64(uint32(m.color))
}

// tabuList — структура табу-списка.
// Реализована как кольцевой буфер фиксированного размера (FIFO)
// с map для быстрой проверки табуированности.
type tabuList struct {
	m    map[uint64]int // ключ → число вхождений в кольце
	key  []uint64       // кольцевой буфер ключей
	size int            // заполненность кольца
	i    int            // позиция самого старого элемента
}

// newTabuList создаёт табу-список заданной ёмкости.
func newTabuList(capacity int) *tabuList {
	return &tabuList{
		m:   make(map[uint64]int, capacity),
		key: make([]uint64, capacity),
	}
}

// Contains проверяет, является ли ход табуированным.
func (t *tabuList) Contains(m move) bool {
	return t.m[m.key()] > 0
}

// Len возвращает текущее число запретов.
func (t *tabuList) Len() int {
	return t.size
}

// Push добавляет ход; при переполнении вытесняется самый старый.
func (t *tabuList) Push(m move) {
	if len(t.key) == 0 {
		return
	}
	k := m.key()

	if t.size == len(t.key) {
		// Удаление старого элемента из кольцевого буфера
		old := t.key[t.i]
		if t.m[old] <= 1 {
			delete(t.m, old)
		} else {
			t.m[old]--
		}
		t.key[t.i] = k
		t.i = (t.i + 1) % len(t.key)
	} else {
		t.key[(t.i+t.size)%len(t.key)] = k
		t.size++
	}
	t.m[k]++
}
