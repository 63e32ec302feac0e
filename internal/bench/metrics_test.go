package bench

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"graphColoring/internal/opt"
)

func TestMetrics(t *testing.T) {
	m := NewMetrics()
	solved := opt.Result{Coloring: []int{0, 1}, Conflicts: 0, Evaluations: 10, Duration: time.Millisecond}
	unsolved := opt.Result{Coloring: []int{0, 0}, Conflicts: 1, Evaluations: 5, Duration: time.Millisecond}

	m.ObserveRun("TS", "path-2", solved, false)
	m.ObserveRun("TS", "path-2", unsolved, false)
	m.ObserveRun("TS", "path-2", unsolved, true)
	m.SetBest("TS", "path-2", 0)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.runs.WithLabelValues("TS", "path-2", "solved")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.runs.WithLabelValues("TS", "path-2", "unsolved")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.runs.WithLabelValues("TS", "path-2", "timeout")))
	assert.Equal(t, 20.0, testutil.ToFloat64(m.evaluations.WithLabelValues("TS")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.bestConflicts.WithLabelValues("TS", "path-2")))

	path := filepath.Join(t.TempDir(), "metrics", "gcol.prom")
	require.NoError(t, m.WriteTextfile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "gcol_solver_runs_total")
	assert.Contains(t, string(data), "gcol_solver_run_duration_seconds")
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveRun("SA", "g", opt.Result{}, false)
		m.SetBest("SA", "g", 3)
	})
}
