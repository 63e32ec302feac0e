package ts

import (
	"context"
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
		{name: "no budget", mutate: func(c *Config) { c.Iterations, c.IterationsPerNode = 0, 0 }},
		{name: "negative per node", mutate: func(c *Config) { c.IterationsPerNode = -3 }},
		{name: "negative tenure", mutate: func(c *Config) { c.Tenure = -1 }},
		{name: "unknown start", mutate: func(c *Config) { c.Start = "greedy" }},
		{name: "empty start", mutate: func(c *Config) { c.Start = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), opt.ErrInvalidConfig)
		})
	}

	cfg := DefaultConfig()
	cfg.Tenure = 0
	require.NoError(t, cfg.Validate(), "tenure 0 disables the tabu list")

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
		for _, start := range []Start{StartZero, StartRandom} {
			t.Run(tt.name+"/"+string(start), func(t *testing.T) {
				cfg := DefaultConfig()
				cfg.Start = start
				for seed := int64(1); seed <= 5; seed++ {
					res, err := newSolver(t, cfg, seed).Solve(context.Background(), tt.g, tt.colors)
					require.NoError(t, err)
					assert.Equal(t, tt.want, res.Conflicts, "seed %d", seed)
					assert.Equal(t, res.Conflicts, graph.Conflicts(tt.g, res.Coloring))
					require.NoError(t, graph.ValidateColoring(res.Coloring, tt.g.Nodes(), tt.colors))
				}
			})
		}
	}
}

func TestZeroStartFirstMove(t *testing.T) {
	// Из нулевой раскраски пути 0-1-2 лучший ход единственный: вершина 1 в цвет 1
	p3, err := graph.Path(3)
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.Iterations = 1
	res, err := newSolver(t, cfg, 1).Solve(context.Background(), p3, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 0}, res.Coloring)
	assert.Equal(t, 0, res.Conflicts)
	assert.Equal(t, []int{0}, res.History)
}

func TestStepSkipsTabuMove(t *testing.T) {
	p3, err := graph.Path(3)
	require.NoError(t, err)

	// Единственный лучший ход запрещён: итерация пропускается, раскраска не меняется
	curr := []int{0, 0, 0}
	st := newSearch(p3, 2, curr, 5, rand.New(rand.NewSource(1)))
	st.tabu.Push(move{node: 1, color: 1})

	m, applied := st.step()
	assert.False(t, applied)
	assert.Equal(t, move{node: 1, color: 1}, m)
	assert.Equal(t, []int{0, 0, 0}, curr)
	assert.Equal(t, 1, st.tabu.Len())

	// Без запретов тот же ход применяется
	curr = []int{0, 0, 0}
	st = newSearch(p3, 2, curr, 0, rand.New(rand.NewSource(1)))
	_, applied = st.step()
	assert.True(t, applied)
	assert.Equal(t, []int{0, 1, 0}, curr)
}

func TestSkippedIterations(t *testing.T) {
	// K3 в двух цветах не раскрашивается без конфликтов, поиск идёт весь бюджет
	k3, err := graph.Complete(3)
	require.NoError(t, err)

	tests := []struct {
		name      string
		tenure    int
		wantsSkip bool
	}{
		{name: "tenure 5", tenure: 5, wantsSkip: true},
		{name: "tenure 0", tenure: 0, wantsSkip: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Iterations = 50
			cfg.Tenure = tt.tenure
			res, err := newSolver(t, cfg, 1).Solve(context.Background(), k3, 2)
			require.NoError(t, err)

			skipped, ok := res.Meta["skipped"].(int)
			require.True(t, ok)
			if tt.wantsSkip {
				assert.Positive(t, skipped)
			} else {
				assert.Zero(t, skipped)
			}

			assert.Equal(t, 1, res.Conflicts)
			assert.Equal(t, 50, res.Iterations)
			assert.Len(t, res.History, 50)
			// Пропущенная итерация не оценивает раскраску
			assert.Equal(t, 1+res.Iterations-skipped, res.Evaluations)
		})
	}
}

func TestHistoryMonotonic(t *testing.T) {
	g, err := graph.RandomSparse(30, 0.35, rand.New(rand.NewSource(4)))
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.Iterations = 300
	res, err := newSolver(t, cfg, 2).Solve(context.Background(), g, 3)
	require.NoError(t, err)

	require.NotEmpty(t, res.History)
	assert.Len(t, res.History, res.Iterations)
	for i := 1; i < len(res.History); i++ {
		assert.LessOrEqual(t, res.History[i], res.History[i-1], "history must be non-increasing at %d", i)
	}
	assert.Equal(t, res.Conflicts, graph.Conflicts(g, res.Coloring))
	require.NoError(t, graph.ValidateColoring(res.Coloring, g.Nodes(), 3))
}

func TestDeterministic(t *testing.T) {
	g, err := graph.RandomSparse(25, 0.3, rand.New(rand.NewSource(8)))
	require.NoError(t, err)

	a, err := newSolver(t, DefaultConfig(), 5).Solve(context.Background(), g, 3)
	require.NoError(t, err)
	b, err := newSolver(t, DefaultConfig(), 5).Solve(context.Background(), g, 3)
	require.NoError(t, err)

	assert.Equal(t, a.Coloring, b.Coloring)
	assert.Equal(t, a.History, b.History)
	assert.Equal(t, a.Meta["skipped"], b.Meta["skipped"])
}

func TestContextCancel(t *testing.T) {
	k4, err := graph.Complete(4)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := newSolver(t, DefaultConfig(), 1).Solve(ctx, k4, 3)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "context", res.Meta["stopped"])
	assert.Equal(t, []int{0, 0, 0, 0}, res.Coloring)
	assert.Equal(t, 6, res.Conflicts)
}

func TestTabuListFIFO(t *testing.T) {
	tl := newTabuList(2)
	a, b, c := move{0, 1}, move{1, 2}, move{2, 0}

	tl.Push(a)
	tl.Push(b)
	assert.True(t, tl.Contains(a))
	assert.True(t, tl.Contains(b))
	assert.Equal(t, 2, tl.Len())

	// Третий ход вытесняет самый старый
	tl.Push(c)
	assert.False(t, tl.Contains(a))
	assert.True(t, tl.Contains(b))
	assert.True(t, tl.Contains(c))
	assert.Equal(t, 2, tl.Len())

	// Повторное добавление учитывается по числу вхождений
	tl.Push(c)
	assert.False(t, tl.Contains(b))
	assert.True(t, tl.Contains(c))
	tl.Push(a)
	assert.True(t, tl.Contains(c), "one copy of c is still in the ring")
	tl.Push(b)
	assert.False(t, tl.Contains(c))
}

func TestTabuListZeroTenure(t *testing.T) {
	tl := newTabuList(0)
	tl.Push(move{1, 1})
	assert.False(t, tl.Contains(move{1, 1}))
	assert.Zero(t, tl.Len())
}
