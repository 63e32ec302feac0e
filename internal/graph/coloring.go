package graph

import "math/rand"

// RandomColoring заполняет dst равномерно случайными цветами из [0, colors).
func RandomColoring(dst []int, colors int, rng *rand.Rand) {
	for i := range dst {
		dst[i] = rng.Intn(colors)
	}
}

// CloneColoring возвращает независимую копию раскраски.
func CloneColoring(c []int) []int {
	if c == nil {
		return nil
	}
	out := make([]int, len(c))
	copy(out, c)
	return out
}
