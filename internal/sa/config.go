package sa

import (
	"math"

	"graphColoring/internal/opt"
)

type Config struct {
	Iterations        int `yaml:"iterations"`
	IterationsPerNode int `yaml:"iterations_per_node"`

	InitialTemp float64 `yaml:"initial_temp"`
	// Factor — множитель геометрического охлаждения, применяется раз за внешнюю итерацию
	Factor float64 `yaml:"factor"`

	// NeighborsPerIteration — число пробных ходов при одной температуре
	NeighborsPerIteration int `yaml:"neighbors_per_iteration"`
}

func DefaultConfig() Config {
	return Config{
		Iterations:        500,
		IterationsPerNode: 0,

		InitialTemp: 1000.0,
		Factor:      0.95,

		NeighborsPerIteration: 1,
	}
}

func (c Config) Validate() error {
	if c.Iterations <= 0 && c.IterationsPerNode <= 0 {
		return opt.Invalidf(
			"sa: должно быть задано Iterations > 0 или IterationsPerNode > 0",
		)
	}
	if c.Iterations < 0 || c.IterationsPerNode < 0 {
		return opt.Invalidf(
			"sa: Iterations и IterationsPerNode не могут быть отрицательными (получено %d, %d)",
			c.Iterations,
			c.IterationsPerNode,
		)
	}
	if !(c.InitialTemp > 0) || math.IsInf(c.InitialTemp, 1) {
		return opt.Invalidf(
			"sa: InitialTemp должно быть > 0 (получено %f)",
			c.InitialTemp,
		)
	}
	if !(c.Factor > 0 && c.Factor <= 1) {
		return opt.Invalidf(
			"sa: Factor должен лежать в интервале (0,1] (получено %f)",
			c.Factor,
		)
	}
	if c.NeighborsPerIteration <= 0 {
		return opt.Invalidf(
			"sa: NeighborsPerIteration должно быть > 0 (получено %d)",
			c.NeighborsPerIteration,
		)
	}
	return nil
}
