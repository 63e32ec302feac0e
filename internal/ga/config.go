package ga

import "graphColoring/internal/opt"

type Config struct {
	Population    int     `yaml:"population"`
	Generations   int     `yaml:"generations"`
	CrossoverRate float64 `yaml:"crossover_rate"`
	MutationRate  float64 `yaml:"mutation_rate"`
}

func (c Config) Validate() error {
	if c.Population <= 1 {
		return opt.Invalidf(
			"ga: размер популяции должен быть > 1 (получено %d)",
			c.Population,
		)
	}
	if c.Generations <= 0 {
		return opt.Invalidf(
			"ga: количество поколений должно быть > 0 (получено %d)",
			c.Generations,
		)
	}
	if !(c.CrossoverRate >= 0 && c.CrossoverRate <= 1) {
		return opt.Invalidf(
			"ga: вероятность кроссовера должна быть в диапазоне [0,1] (получено %f)",
			c.CrossoverRate,
		)
	}
	if !(c.MutationRate >= 0 && c.MutationRate <= 1) {
		return opt.Invalidf(
			"ga: вероятность мутации должна быть в диапазоне [0,1] (получено %f)",
			c.MutationRate,
		)
	}
	return nil
}

func DefaultConfig() Config {
	return Config{
		Population:    50,
		Generations:   500,
		CrossoverRate: 0.80,
		MutationRate:  0.50,
	}
}
