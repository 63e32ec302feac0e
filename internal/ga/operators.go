package ga

import (
	"math/rand"
	"sort"
)

// truncationSelect упорядочивает индексы популяции по возрастанию числа конфликтов.
// Сортировка устойчивая: при равенстве раньше идёт особь с меньшим индексом.
// Родителями становятся первые nParents индексов.
func truncationSelect(idxs, scores []int) {
	for i := range idxs {
		idxs[i] = i
	}
	sort.SliceStable(idxs, func(i, j int) bool {
		return scores[idxs[i]] < scores[idxs[j]]
	})
}

// singlePointCrossover реализует одноточечный кроссовер:
// гены [0, point) берутся из p1, [point, n) из p2.
func singlePointCrossover(p1, p2, child []int, point int) {
	copy(child[:point], p1[:point])
	copy(child[point:], p2[point:])
}

// mutateRecolor перекрашивает случайную вершину в случайный цвет.
// Новый цвет может совпасть с прежним.
func mutateRecolor(child []int, colors int, rng *rand.Rand) {
	node := rng.Intn(len(child))
	child[node] = rng.Intn(colors)
}
