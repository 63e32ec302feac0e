package graph

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvlath/core"
)

// FromCore переводит граф lvlath в матрицу смежности и списки соседей.
// Вершины с идентификаторами "0".."n-1" сохраняют свои номера, иначе
// нумеруются в порядке сортировки идентификаторов и получают их как подписи.
// Направление и кратность рёбер отбрасываются, петли запрещены.
func FromCore(cg *core.Graph) (*Graph, error) {
	if cg == nil {
		return nil, ErrNilGraph
	}
	ids := cg.Vertices()
	n := len(ids)
	if n == 0 {
		return nil, fmt.Errorf("nodes must be > 0 (got 0): %w", ErrInvalidNodeCount)
	}

	index, numeric := vertexIndex(ids)
	all := cg.Edges()
	edges := make([][2]int, 0, len(all))
	for _, e := range all {
		edges = append(edges, [2]int{index[e.From], index[e.To]})
	}

	g, err := FromEdges(n, edges)
	if err != nil {
		return nil, err
	}
	if numeric {
		return g, nil
	}
	return g.WithLabels(ids)
}

// vertexIndex сопоставляет идентификаторам номера вершин.
// ids отсортированы, поэтому при нечисловых идентификаторах номер равен позиции.
func vertexIndex(ids []string) (map[string]int, bool) {
	index := make(map[string]int, len(ids))
	for _, id := range ids {
		v, err := strconv.Atoi(id)
		if err != nil || v < 0 || v >= len(ids) || strconv.Itoa(v) != id {
			clear(index)
			for i, id := range ids {
				index[id] = i
			}
			return index, false
		}
		index[id] = v
	}
	return index, true
}
