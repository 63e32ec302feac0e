package pso

import (
	"math"

	"graphColoring/internal/opt"
)

type Config struct {
	Iterations        int `yaml:"iterations"`
	IterationsPerNode int `yaml:"iterations_per_node"`

	Particles int `yaml:"particles"`

	W  float64 `yaml:"w"`
	C1 float64 `yaml:"c1"`
	C2 float64 `yaml:"c2"`

	// VMax — ограничение модуля скорости по каждой вершине
	VMax float64 `yaml:"vmax"`
}

func DefaultConfig() Config {
	return Config{
		Iterations:        100,
		IterationsPerNode: 0,

		Particles: 30,

		W:  0.7,
		C1: 1.5,
		C2: 1.5,

		VMax: 1.0,
	}
}

func (c Config) Validate() error {
	if c.Iterations <= 0 && c.IterationsPerNode <= 0 {
		return opt.Invalidf(
			"pso: должно быть задано Iterations > 0 или IterationsPerNode > 0",
		)
	}
	if c.Iterations < 0 || c.IterationsPerNode < 0 {
		return opt.Invalidf(
			"pso: Iterations и IterationsPerNode не могут быть отрицательными (получено %d, %d)",
			c.Iterations,
			c.IterationsPerNode,
		)
	}
	if c.Particles <= 0 {
		return opt.Invalidf(
			"pso: Particles должно быть > 0 (получено %d)",
			c.Particles,
		)
	}
	// Знак весов не ограничивается, отбрасываются только нечисловые значения
	if !finite(c.W) || !finite(c.C1) || !finite(c.C2) {
		return opt.Invalidf(
			"pso: W, C1 и C2 должны быть конечными числами (получено %f, %f, %f)",
			c.W,
			c.C1,
			c.C2,
		)
	}
	if !(c.VMax > 0) || math.IsInf(c.VMax, 1) {
		return opt.Invalidf(
			"pso: VMax должно быть > 0 (получено %f)",
			c.VMax,
		)
	}
	return nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
