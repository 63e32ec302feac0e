package ts

import "graphColoring/internal/opt"

// Start определяет начальную раскраску.
type Start string

const (
	// StartZero — все вершины получают цвет 0
	StartZero   Start = "zero"
	StartRandom Start = "random"
)

type Config struct {
	Iterations        int `yaml:"iterations"`
	IterationsPerNode int `yaml:"iterations_per_node"`

	// Tenure — ёмкость табу-списка; 0 отключает запреты
	Tenure int `yaml:"tenure"`

	Start Start `yaml:"start"`
}

func DefaultConfig() Config {
	return Config{
		Iterations:        500,
		IterationsPerNode: 0,

		Tenure: 5,

		Start: StartZero,
	}
}

func (c Config) Validate() error {
	if c.Iterations <= 0 && c.IterationsPerNode <= 0 {
		return opt.Invalidf(
			"ts: должно быть задано Iterations > 0 или IterationsPerNode > 0",
		)
	}
	if c.Iterations < 0 || c.IterationsPerNode < 0 {
		return opt.Invalidf(
			"ts: Iterations и IterationsPerNode не могут быть отрицательными (получено %d, %d)",
			c.Iterations,
			c.IterationsPerNode,
		)
	}
	if c.Tenure < 0 {
		return opt.Invalidf(
			"ts: Tenure должно быть >= 0 (получено %d)",
			c.Tenure,
		)
	}
	switch c.Start {
	case StartZero, StartRandom:
		// ok
	default:
		return opt.Invalidf(
			"ts: неизвестный тип начального решения %q",
			c.Start,
		)
	}
	return nil
}
