package graph

import (
	"errors"
	"fmt"
)

var (
	ErrNilGraph         = errors.New("graph is nil")
	ErrInvalidNodeCount = errors.New("invalid node count")
	ErrAsymmetric       = errors.New("adjacency is not symmetric")
	ErrSelfLoop         = errors.New("self-loop is not allowed")
	ErrNodeOutOfRange   = errors.New("node out of range")
)

// Graph — неориентированный граф без петель.
// После создания только читается, поэтому один экземпляр можно
// одновременно отдавать нескольким солверам.
type Graph struct {
	n     int
	edges int

	// adj — плоская матрица смежности n*n
	adj []bool
	// nbr — списки соседей по возрастанию номеров
	nbr [][]int

	labels []string
}

// New строит граф по матрице смежности.
func New(n int, adjacency [][]bool) (*Graph, error) {
	if n <= 0 {
		return nil, fmt.Errorf("nodes must be > 0 (got %d): %w", n, ErrInvalidNodeCount)
	}
	if len(adjacency) != n {
		return nil, fmt.Errorf("adjacency must have %d rows (got %d): %w", n, len(adjacency), ErrInvalidNodeCount)
	}
	for i, row := range adjacency {
		if len(row) != n {
			return nil, fmt.Errorf("adjacency row %d must have %d entries (got %d): %w", i, n, len(row), ErrInvalidNodeCount)
		}
	}

	g := newEmpty(n)
	for i := 0; i < n; i++ {
		if adjacency[i][i] {
			return nil, fmt.Errorf("node %d: %w", i, ErrSelfLoop)
		}
		for j := i + 1; j < n; j++ {
			if adjacency[i][j] != adjacency[j][i] {
				return nil, fmt.Errorf("adjacency[%d][%d]=%t but adjacency[%d][%d]=%t: %w",
					i, j, adjacency[i][j], j, i, adjacency[j][i], ErrAsymmetric)
			}
			if adjacency[i][j] {
				g.link(i, j)
			}
		}
	}
	g.finish()
	return g, nil
}

// FromEdges строит граф по списку рёбер. Повторы рёбер игнорируются.
func FromEdges(n int, edges [][2]int) (*Graph, error) {
	if n <= 0 {
		return nil, fmt.Errorf("nodes must be > 0 (got %d): %w", n, ErrInvalidNodeCount)
	}
	g := newEmpty(n)
	for k, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("edge %d (%d,%d) outside [0,%d): %w", k, u, v, n, ErrNodeOutOfRange)
		}
		if u == v {
			return nil, fmt.Errorf("edge %d (%d,%d): %w", k, u, v, ErrSelfLoop)
		}
		if g.adj[u*n+v] {
			continue
		}
		g.link(u, v)
	}
	g.finish()
	return g, nil
}

func newEmpty(n int) *Graph {
	return &Graph{
		n:   n,
		adj: make([]bool, n*n),
		nbr: make([][]int, n),
	}
}

func (g *Graph) link(u, v int) {
	g.adj[u*g.n+v] = true
	g.adj[v*g.n+u] = true
	g.edges++
}

// finish собирает списки соседей из матрицы, чтобы порядок был детерминированным.
func (g *Graph) finish() {
	for i := 0; i < g.n; i++ {
		row := g.adj[i*g.n : (i+1)*g.n]
		list := make([]int, 0, 4)
		for j, ok := range row {
			if ok {
				list = append(list, j)
			}
		}
		g.nbr[i] = list
	}
}

func (g *Graph) Validate() error {
	if g == nil {
		return ErrNilGraph
	}
	if g.n <= 0 {
		return fmt.Errorf("nodes must be > 0 (got %d): %w", g.n, ErrInvalidNodeCount)
	}
	return nil
}

// Nodes возвращает число вершин.
func (g *Graph) Nodes() int { return g.n }

// Edges возвращает число неориентированных рёбер.
func (g *Graph) Edges() int { return g.edges }

func (g *Graph) Adjacent(u, v int) bool {
	return g.adj[u*g.n+v]
}

// Neighbors возвращает соседей вершины. Срез принадлежит графу и не должен изменяться.
func (g *Graph) Neighbors(v int) []int {
	return g.nbr[v]
}

func (g *Graph) Degree(v int) int {
	return len(g.nbr[v])
}

// EdgeList возвращает рёбра (u,v) с u < v в лексикографическом порядке.
func (g *Graph) EdgeList() [][2]int {
	out := make([][2]int, 0, g.edges)
	for u := 0; u < g.n; u++ {
		for _, v := range g.nbr[u] {
			if v > u {
				out = append(out, [2]int{u, v})
			}
		}
	}
	return out
}

// WithLabels возвращает копию графа с подписями вершин.
// Матрица и списки соседей разделяются, так как они неизменяемы.
func (g *Graph) WithLabels(labels []string) (*Graph, error) {
	if len(labels) != g.n {
		return nil, fmt.Errorf("labels length must be %d (got %d): %w", g.n, len(labels), ErrInvalidNodeCount)
	}
	cp := *g
	cp.labels = append([]string(nil), labels...)
	return &cp, nil
}

// Label возвращает подпись вершины или её номер, если подписей нет.
func (g *Graph) Label(v int) string {
	if g.labels == nil {
		return fmt.Sprint(v)
	}
	return g.labels[v]
}
