package opt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"graphColoring/internal/graph"
)

var (
	// ErrInvalidConfig оборачивается всеми ошибками валидации конфигураций солверов.
	ErrInvalidConfig = errors.New("invalid solver config")
	// ErrNilRand — солверу не передан генератор случайных чисел.
	ErrNilRand = errors.New("генератор случайных чисел не инициализирован (nil)")
)

// Optimizer — общий интерфейс всех солверов раскраски.
type Optimizer interface {
	Solve(ctx context.Context, g *graph.Graph, colors int) (Result, error)
}

// Result — лучшая найденная раскраска и история поиска.
type Result struct {
	Coloring  []int
	Conflicts int
	// History — лучшее значение конфликтов после каждой внешней итерации.
	History     []int
	Evaluations int
	Iterations  int
	Duration    time.Duration
	Meta        map[string]any
}

// Solved сообщает, является ли раскраска правильной.
func (r Result) Solved() bool {
	return r.Coloring != nil && r.Conflicts == 0
}

// Invalidf формирует ошибку валидации конфигурации с именем параметра в тексте.
func Invalidf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidConfig)
}

// Budget возвращает число итераций: явное значение или perNode*n.
func Budget(iterations, perNode, n int) int {
	if iterations > 0 {
		return iterations
	}
	return perNode * n
}
