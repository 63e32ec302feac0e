package ga

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"graphColoring/internal/graph"
	"graphColoring/internal/opt"
)

func newSolver(t *testing.T, cfg Config, seed int64) *Solver {
	t.Helper()
	s, err := New(cfg, rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	return s
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "population 1", mutate: func(c *Config) { c.Population = 1 }},
		{name: "population 0", mutate: func(c *Config) { c.Population = 0 }},
		{name: "no generations", mutate: func(c *Config) { c.Generations = 0 }},
		{name: "negative crossover", mutate: func(c *Config) { c.CrossoverRate = -0.1 }},
		{name: "crossover above one", mutate: func(c *Config) { c.CrossoverRate = 1.1 }},
		{name: "NaN crossover", mutate: func(c *Config) { c.CrossoverRate = math.NaN() }},
		{name: "negative mutation", mutate: func(c *Config) { c.MutationRate = -1 }},
		{name: "mutation above one", mutate: func(c *Config) { c.MutationRate = 2 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), opt.ErrInvalidConfig)
		})
	}

	cfg := DefaultConfig()
	cfg.Population = 2
	cfg.CrossoverRate = 0
	cfg.MutationRate = 1
	require.NoError(t, cfg.Validate())

	_, err := New(DefaultConfig(), nil)
	require.ErrorIs(t, err, opt.ErrNilRand)
}

func TestScenarios(t *testing.T) {
	k3, _ := graph.Complete(3)
	k4, _ := graph.Complete(4)
	p4, _ := graph.Path(4)

	tests := []struct {
		name   string
		g      *graph.Graph
		colors int
		want   int
	}{
		{name: "triangle 2 colors", g: k3, colors: 2, want: 1},
		{name: "triangle 3 colors", g: k3, colors: 3, want: 0},
		{name: "path 2 colors", g: p4, colors: 2, want: 0},
		{name: "K4 3 colors", g: k4, colors: 3, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := int64(1); seed <= 5; seed++ {
				res, err := newSolver(t, DefaultConfig(), seed).Solve(context.Background(), tt.g, tt.colors)
				require.NoError(t, err)
				assert.Equal(t, tt.want, res.Conflicts, "seed %d", seed)
				assert.Equal(t, res.Conflicts, graph.Conflicts(tt.g, res.Coloring))
				require.NoError(t, graph.ValidateColoring(res.Coloring, tt.g.Nodes(), tt.colors))
			}
		})
	}
}

func TestEarlyExit(t *testing.T) {
	p4, err := graph.Path(4)
	require.NoError(t, err)

	res, err := newSolver(t, DefaultConfig(), 3).Solve(context.Background(), p4, 2)
	require.NoError(t, err)
	require.True(t, res.Solved())
	assert.Less(t, res.Iterations, DefaultConfig().Generations)
	assert.Len(t, res.History, res.Iterations)
}

func TestHistoryMonotonic(t *testing.T) {
	g, err := graph.RandomSparse(40, 0.3, rand.New(rand.NewSource(6)))
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.Generations = 100
	res, err := newSolver(t, cfg, 2).Solve(context.Background(), g, 3)
	require.NoError(t, err)

	require.NotEmpty(t, res.History)
	for i := 1; i < len(res.History); i++ {
		assert.LessOrEqual(t, res.History[i], res.History[i-1], "history must be non-increasing at %d", i)
	}
	assert.Equal(t, res.Conflicts, graph.Conflicts(g, res.Coloring))
	require.NoError(t, graph.ValidateColoring(res.Coloring, g.Nodes(), 3))
	assert.Equal(t, cfg.Population+res.Iterations*(cfg.Population-cfg.Population/2), res.Evaluations)
}

func TestDeterministic(t *testing.T) {
	g, err := graph.RandomSparse(30, 0.3, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.Generations = 60
	a, err := newSolver(t, cfg, 77).Solve(context.Background(), g, 3)
	require.NoError(t, err)
	b, err := newSolver(t, cfg, 77).Solve(context.Background(), g, 3)
	require.NoError(t, err)

	assert.Equal(t, a.Coloring, b.Coloring)
	assert.Equal(t, a.History, b.History)
}

func TestContextCancel(t *testing.T) {
	k4, err := graph.Complete(4)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := newSolver(t, DefaultConfig(), 1).Solve(ctx, k4, 3)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "context", res.Meta["stopped"])
	assert.Zero(t, res.Iterations)
	require.Len(t, res.Coloring, 4)
	assert.Equal(t, graph.Conflicts(k4, res.Coloring), res.Conflicts)
}

func TestSinglePointCrossover(t *testing.T) {
	p1 := []int{0, 0, 0, 0}
	p2 := []int{1, 1, 1, 1}
	child := make([]int, 4)

	singlePointCrossover(p1, p2, child, 0)
	assert.Equal(t, []int{1, 1, 1, 1}, child)

	singlePointCrossover(p1, p2, child, 3)
	assert.Equal(t, []int{0, 0, 0, 1}, child)
}

func TestTruncationSelectStable(t *testing.T) {
	idxs := make([]int, 5)
	truncationSelect(idxs, []int{3, 1, 2, 1, 0})
	assert.Equal(t, []int{4, 1, 3, 2, 0}, idxs)
}

func TestMutateRecolorInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	child := []int{0, 0, 0}
	for i := 0; i < 100; i++ {
		mutateRecolor(child, 3, rng)
		require.NoError(t, graph.ValidateColoring(child, 3, 3))
	}
}
