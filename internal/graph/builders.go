package graph

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvlath/builder"
	"github.com/katalvlaran/lvlath/core"
)

// Complete возвращает полный граф K_n.
func Complete(n int) (*Graph, error) {
	return build("complete", builder.Complete(n))
}

// Path возвращает путь 0-1-...-(n-1). Путь из одной вершины совпадает с K_1.
func Path(n int) (*Graph, error) {
	if n == 1 {
		return build("path", builder.Complete(1))
	}
	return build("path", builder.Path(n))
}

// Cycle возвращает цикл из n >= 3 вершин.
func Cycle(n int) (*Graph, error) {
	return build("cycle", builder.Cycle(n))
}

// RandomSparse — граф Эрдёша–Реньи: каждая пара i<j соединяется с вероятностью p.
// Порядок испытаний фиксирован, поэтому при одинаковом сиде граф одинаков.
func RandomSparse(n int, p float64, rng *rand.Rand) (*Graph, error) {
	if rng == nil {
		return nil, errors.New("random: rng is nil")
	}
	return build("random", builder.RandomSparse(n, p), builder.WithRand(rng))
}

// build собирает неориентированный невзвешенный граф lvlath и переводит его
// в плоское представление.
func build(name string, cons builder.Constructor, bopts ...builder.Option) (*Graph, error) {
	cg, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(false)}, bopts, cons)
	if err != nil {
		if errors.Is(err, builder.ErrTooFewVertices) {
			return nil, fmt.Errorf("%s: %w: %w", name, err, ErrInvalidNodeCount)
		}
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return FromCore(cg)
}

// Регионы метрополии Франции (без Корсики) в порядке исходного приложения.
var franceRegions = []string{
	"Auvergne-Rhône-Alpes",
	"Bourgogne-Franche-Comté",
	"Bretagne",
	"Centre-Val de Loire",
	"Grand Est",
	"Hauts-de-France",
	"Île-de-France",
	"Normandie",
	"Nouvelle-Aquitaine",
	"Occitanie",
	"Pays de la Loire",
	"Provence-Alpes-Côte d'Azur",
}

var franceRegionBorders = [][2]int{
	{0, 1}, {0, 3}, {0, 8}, {0, 9}, {0, 11},
	{1, 3}, {1, 4}, {1, 6},
	{2, 7}, {2, 10},
	{3, 6}, {3, 7}, {3, 8}, {3, 10},
	{4, 5}, {4, 6},
	{5, 6}, {5, 7},
	{6, 7},
	{7, 10},
	{8, 9}, {8, 10},
	{9, 11},
}

// FranceRegions возвращает граф соседства регионов метрополии Франции
// с подписями вершин.
func FranceRegions() *Graph {
	g, err := FromEdges(len(franceRegions), franceRegionBorders)
	if err != nil {
		panic(err)
	}
	g, err = g.WithLabels(franceRegions)
	if err != nil {
		panic(err)
	}
	return g
}
