package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"graphColoring/internal/driver"
	"graphColoring/internal/ts"
)

func TestParseGraph(t *testing.T) {
	tests := []struct {
		spec     string
		name     string
		nodes    int
		edges    int
		wantsErr bool
	}{
		{spec: "regions", name: "regions", nodes: 12, edges: 23},
		{spec: "complete:4", name: "complete:4", nodes: 4, edges: 6},
		{spec: " path:5 ", name: "path:5", nodes: 5, edges: 4},
		{spec: "cycle:5", name: "cycle:5", nodes: 5, edges: 5},
		{spec: "random:10:1", name: "random:10:1", nodes: 10, edges: 45},
		{spec: "regions:1", wantsErr: true},
		{spec: "complete", wantsErr: true},
		{spec: "complete:x", wantsErr: true},
		{spec: "cycle:2", wantsErr: true},
		{spec: "random:10", wantsErr: true},
		{spec: "random:10:2", wantsErr: true},
		{spec: "no-such-file.yaml", wantsErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			name, g, err := parseGraph(tt.spec, 1)
			if tt.wantsErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.nodes, g.Nodes())
			assert.Equal(t, tt.edges, g.Edges())
		})
	}
}

func TestParseGraphFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "square.yaml")
	require.NoError(t, os.WriteFile(path, []byte("nodes: 4\nedges: [[0,1],[1,2],[2,3],[3,0]]\n"), 0o644))

	name, g, err := parseGraph(path, 1)
	require.NoError(t, err)
	assert.Equal(t, "square", name)
	assert.Equal(t, 4, g.Edges())
}

func TestParseCases(t *testing.T) {
	cases, err := parseCases("regions, path:4,,random:20:0.2", 3, 5)
	require.NoError(t, err)
	require.Len(t, cases, 3)
	assert.Equal(t, "path:4", cases[1].Name)
	for _, c := range cases {
		assert.Equal(t, 3, c.Colors)
	}

	// Сид случайного графа зависит от позиции, а не от соседей
	again, err := parseCases("random:20:0.2", 3, 5+2*10_000)
	require.NoError(t, err)
	assert.Equal(t, cases[2].Graph.EdgeList(), again[0].Graph.EdgeList())

	_, err = parseCases(" , ", 3, 1)
	require.Error(t, err)
}

func TestApplyParamsFilePrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
sa:
  initial_temp: 999
  factor: 0.8
ts:
  start: random
`), 0o644))

	p := driver.DefaultParams()
	fs := paramsFlagSet(&p)
	require.NoError(t, fs.Parse([]string{"--sa_t0=50", "--ts_tenure=9"}))

	require.NoError(t, applyParamsFile(fs, path, &p))
	assert.Equal(t, 50.0, p.SA.InitialTemp, "explicit flag wins over file")
	assert.Equal(t, 0.8, p.SA.Factor, "file wins over default")
	assert.Equal(t, 9, p.TS.Tenure)
	assert.Equal(t, ts.StartRandom, p.TS.Start)
	assert.Equal(t, driver.DefaultParams().GA, p.GA)

	require.NoError(t, applyParamsFile(fs, "", &p))
	require.Error(t, applyParamsFile(fs, filepath.Join(t.TempDir(), "missing.yaml"), &p))
}

func TestStartFlag(t *testing.T) {
	p := driver.DefaultParams()
	fs := paramsFlagSet(&p)

	require.NoError(t, fs.Parse([]string{"--ts_start=random"}))
	assert.Equal(t, ts.StartRandom, p.TS.Start)

	require.Error(t, fs.Set("ts_start", "greedy"))
	assert.Equal(t, ts.StartRandom, p.TS.Start)
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return out.String()
}

func TestSolveCommand(t *testing.T) {
	dir := t.TempDir()
	results := filepath.Join(dir, "runs.csv")
	plot := filepath.Join(dir, "conv.html")

	out := execute(t, "solve", "--algo", "tabu", "--graph", "complete:3", "--colors", "3",
		"--results", results, "--plot", plot)
	assert.Contains(t, out, "Конфликтов: 0 (правильная раскраска)")
	assert.FileExists(t, results)
	assert.FileExists(t, plot)

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"solve", "--algo", "hill-climbing"})
	require.ErrorIs(t, root.Execute(), driver.ErrUnknownAlgorithm)
}

func TestBenchCommand(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "results.csv")
	promPath := filepath.Join(dir, "gcol.prom")

	out := execute(t, "bench", "--graphs", "path:4,complete:3", "--algos", "TS,SA", "--colors", "3",
		"--runs", "2", "--workers", "2", "--out", csvPath, "--metrics", promPath)
	assert.Contains(t, out, "Saved: "+csvPath)

	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Equal(t, 5, strings.Count(string(data), "\n"), "header plus one row per graph and algorithm")
	assert.FileExists(t, promPath)
}
