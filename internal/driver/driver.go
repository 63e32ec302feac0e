// Package driver связывает алгоритмы раскраски с их параметрами:
// разбор имени алгоритма, сборка солвера с сидом и одиночный запуск.
package driver

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"k8s.io/klog/v2"

	"graphColoring/internal/aco"
	"graphColoring/internal/ga"
	"graphColoring/internal/graph"
	"graphColoring/internal/opt"
	"graphColoring/internal/pso"
	"graphColoring/internal/sa"
	"graphColoring/internal/ts"
)

// ErrUnknownAlgorithm возвращается для имени, не соответствующего ни одному алгоритму.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Algorithm — короткое имя метаэвристики.
type Algorithm string

const (
	SA  Algorithm = "SA"
	GA  Algorithm = "GA"
	ACO Algorithm = "ACO"
	PSO Algorithm = "PSO"
	TS  Algorithm = "TS"
)

// Algorithms возвращает все алгоритмы в порядке вывода отчётов.
func Algorithms() []Algorithm {
	return []Algorithm{SA, GA, ACO, PSO, TS}
}

var aliases = map[string]Algorithm{
	"sa":                  SA,
	"annealing":           SA,
	"simulated-annealing": SA,
	"ga":                  GA,
	"genetic":             GA,
	"aco":                 ACO,
	"ant-colony":          ACO,
	"pso":                 PSO,
	"particle-swarm":      PSO,
	"ts":                  TS,
	"tabu":                TS,
	"tabu-search":         TS,
}

// ParseAlgorithm принимает короткое или полное имя без учёта регистра.
func ParseAlgorithm(s string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.ReplaceAll(key, "_", "-")
	if a, ok := aliases[key]; ok {
		return a, nil
	}
	return "", fmt.Errorf("%q (expected one of %v): %w", s, Algorithms(), ErrUnknownAlgorithm)
}

// New собирает солвер выбранного алгоритма.
func New(algo Algorithm, p Params, rng *rand.Rand) (opt.Optimizer, error) {
	switch algo {
	case SA:
		return sa.New(p.SA, rng)
	case GA:
		return ga.New(p.GA, rng)
	case ACO:
		return aco.New(p.ACO, rng)
	case PSO:
		return pso.New(p.PSO, rng)
	case TS:
		return ts.New(p.TS, rng)
	default:
		return nil, fmt.Errorf("%q: %w", algo, ErrUnknownAlgorithm)
	}
}

// Factory создаёт солверы для серии запусков, каждый со своим генератором.
// Конфигурация проверяется один раз при создании фабрики.
func Factory(algo Algorithm, p Params) (func(seed int64) (opt.Optimizer, error), error) {
	if err := p.ValidateFor(algo); err != nil {
		return nil, err
	}
	return func(seed int64) (opt.Optimizer, error) {
		return New(algo, p, rand.New(rand.NewSource(seed)))
	}, nil
}

// Run выполняет один запуск алгоритма с заданным сидом.
func Run(ctx context.Context, algo Algorithm, p Params, g *graph.Graph, colors int, seed int64) (opt.Result, error) {
	o, err := New(algo, p, rand.New(rand.NewSource(seed)))
	if err != nil {
		return opt.Result{}, err
	}
	res, err := o.Solve(ctx, g, colors)
	if err != nil && res.Coloring == nil {
		return res, fmt.Errorf("%s: %w", algo, err)
	}

	klog.FromContext(ctx).V(2).Info("Run finished",
		"algorithm", algo,
		"nodes", g.Nodes(),
		"edges", g.Edges(),
		"colors", colors,
		"seed", seed,
		"conflicts", res.Conflicts,
		"iterations", res.Iterations,
		"evaluations", res.Evaluations,
		"duration", res.Duration,
	)
	if err != nil {
		return res, fmt.Errorf("%s: %w", algo, err)
	}
	return res, nil
}
