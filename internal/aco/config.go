package aco

import (
	"math"

	"graphColoring/internal/opt"
)

type Config struct {
	Iterations        int `yaml:"iterations"`
	IterationsPerNode int `yaml:"iterations_per_node"`

	Ants int `yaml:"ants"`

	Alpha float64 `yaml:"alpha"`
	Beta  float64 `yaml:"beta"`

	// Rho — доля испаряющегося феромона за итерацию
	Rho float64 `yaml:"rho"`

	Q float64 `yaml:"q"`

	Tau0 float64 `yaml:"tau0"`
}

func DefaultConfig() Config {
	return Config{
		Iterations:        100,
		IterationsPerNode: 0,

		Ants: 5,

		Alpha: 1.0,
		Beta:  3.0,

		Rho: 0.5,
		Q:   10.0,

		Tau0: 1.0,
	}
}

func (c Config) Validate() error {
	if c.Iterations <= 0 && c.IterationsPerNode <= 0 {
		return opt.Invalidf(
			"aco: должно быть задано Iterations > 0 или IterationsPerNode > 0",
		)
	}
	if c.Iterations < 0 || c.IterationsPerNode < 0 {
		return opt.Invalidf(
			"aco: Iterations и IterationsPerNode не могут быть отрицательными (получено %d, %d)",
			c.Iterations,
			c.IterationsPerNode,
		)
	}
	if c.Ants <= 0 {
		return opt.Invalidf(
			"aco: ants должно быть > 0 (получено %d)",
			c.Ants,
		)
	}
	if !(c.Alpha >= 0) || math.IsInf(c.Alpha, 1) {
		return opt.Invalidf(
			"aco: alpha должно быть >= 0 (получено %f)",
			c.Alpha,
		)
	}
	if !(c.Beta >= 0) || math.IsInf(c.Beta, 1) {
		return opt.Invalidf(
			"aco: beta должно быть >= 0 (получено %f)",
			c.Beta,
		)
	}
	if !(c.Rho > 0 && c.Rho <= 1) {
		return opt.Invalidf(
			"aco: rho должно лежать в интервале (0,1] (получено %f)",
			c.Rho,
		)
	}
	if !(c.Q > 0) || math.IsInf(c.Q, 1) {
		return opt.Invalidf(
			"aco: Q должно быть > 0 (получено %f)",
			c.Q,
		)
	}
	if !(c.Tau0 > 0) || math.IsInf(c.Tau0, 1) {
		return opt.Invalidf(
			"aco: tau0 должно быть > 0 (получено %f)",
			c.Tau0,
		)
	}
	return nil
}
