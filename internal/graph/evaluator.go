package graph

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidColors   = errors.New("invalid number of colors")
	ErrColoringLength  = errors.New("coloring length mismatch")
	ErrColorOutOfRange = errors.New("color out of range")
)

// Conflicts считает рёбра, концы которых окрашены одинаково.
// Каждое ребро учитывается ровно один раз (только пары u < v).
func Conflicts(g *Graph, c []int) int {
	conflicts := 0
	for u := 0; u < g.n; u++ {
		cu := c[u]
		for _, v := range g.nbr[u] {
			if v > u && c[v] == cu {
				conflicts++
			}
		}
	}
	return conflicts
}

// LocalConflicts считает конфликты, в которых участвует вершина v.
func LocalConflicts(g *Graph, c []int, v int) int {
	cv := c[v]
	n := 0
	for _, u := range g.nbr[v] {
		if c[u] == cv {
			n++
		}
	}
	return n
}

// MoveDelta возвращает изменение Conflicts при перекраске вершины v в color,
// не изменяя c.
func MoveDelta(g *Graph, c []int, v, color int) int {
	old := c[v]
	if old == color {
		return 0
	}
	delta := 0
	for _, u := range g.nbr[v] {
		switch c[u] {
		case color:
			delta++
		case old:
			delta--
		}
	}
	return delta
}

// ValidateColoring проверяет длину раскраски и диапазон цветов.
func ValidateColoring(c []int, n, colors int) error {
	if len(c) != n {
		return fmt.Errorf("coloring length must be %d (got %d): %w", n, len(c), ErrColoringLength)
	}
	for i, v := range c {
		if v < 0 || v >= colors {
			return fmt.Errorf("c[%d]=%d out of range [0,%d): %w", i, v, colors, ErrColorOutOfRange)
		}
	}
	return nil
}

// Evaluator связывает граф с размером палитры и проверяет раскраски перед подсчётом.
type Evaluator struct {
	g      *Graph
	colors int
}

func NewEvaluator(g *Graph, colors int) (*Evaluator, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if colors < 1 {
		return nil, fmt.Errorf("colors must be >= 1 (got %d): %w", colors, ErrInvalidColors)
	}
	return &Evaluator{g: g, colors: colors}, nil
}

func (e *Evaluator) Graph() *Graph { return e.g }

func (e *Evaluator) Colors() int { return e.colors }

func (e *Evaluator) Conflicts(c []int) (int, error) {
	if e == nil || e.g == nil {
		return 0, fmt.Errorf("nil evaluator")
	}
	if err := ValidateColoring(c, e.g.n, e.colors); err != nil {
		return 0, err
	}
	return Conflicts(e.g, c), nil
}

func (e *Evaluator) MustConflicts(c []int) int {
	n, err := e.Conflicts(c)
	if err != nil {
		panic(err)
	}
	return n
}
