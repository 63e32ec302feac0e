package bench

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"graphColoring/internal/opt"
)

// Metrics — счётчики запусков солверов в собственном реестре,
// чтобы серии разных прогонов не смешивались.
type Metrics struct {
	reg *prometheus.Registry

	// runs считает завершённые запуски.
	// Labels: algorithm, graph, status (solved, unsolved, timeout)
	runs *prometheus.CounterVec

	// duration — время одного запуска.
	// Labels: algorithm, graph
	duration *prometheus.HistogramVec

	// bestConflicts — лучшее число конфликтов по всем запускам.
	// Labels: algorithm, graph
	bestConflicts *prometheus.GaugeVec

	// evaluations — число вычислений целевой функции.
	// Labels: algorithm
	evaluations *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		reg: reg,
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gcol",
			Subsystem: "solver",
			Name:      "runs_total",
			Help:      "Total solver runs by outcome",
		}, []string{"algorithm", "graph", "status"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gcol",
			Subsystem: "solver",
			Name:      "run_duration_seconds",
			Help:      "Wall time of a single solver run",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"algorithm", "graph"}),
		bestConflicts: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "gcol",
			Subsystem: "solver",
			Name:      "best_conflicts",
			Help:      "Lowest conflict count observed across runs",
		}, []string{"algorithm", "graph"}),
		evaluations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gcol",
			Subsystem: "solver",
			Name:      "evaluations_total",
			Help:      "Total objective evaluations",
		}, []string{"algorithm"}),
	}
}

// Registry возвращает реестр для экспорта.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.reg
}

// ObserveRun учитывает один запуск. Безопасен для конкурентного вызова.
func (m *Metrics) ObserveRun(algo, graphName string, res opt.Result, timedOut bool) {
	if m == nil {
		return
	}
	status := "unsolved"
	switch {
	case timedOut:
		status = "timeout"
	case res.Solved():
		status = "solved"
	}
	m.runs.WithLabelValues(algo, graphName, status).Inc()
	m.duration.WithLabelValues(algo, graphName).Observe(res.Duration.Seconds())
	m.evaluations.WithLabelValues(algo).Add(float64(res.Evaluations))
}

// SetBest фиксирует итог серии.
func (m *Metrics) SetBest(algo, graphName string, conflicts int) {
	if m == nil {
		return
	}
	m.bestConflicts.WithLabelValues(algo, graphName).Set(float64(conflicts))
}

// WriteTextfile сохраняет метрики в формате textfile-коллектора node_exporter.
func (m *Metrics) WriteTextfile(path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	return prometheus.WriteToTextfile(path, m.reg)
}
