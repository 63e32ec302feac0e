package ga

import (
	"graphColoring/internal/graph"
	"graphColoring/internal/opt"
)

func toOptResult(best []int, bestConflicts int, history []int, evals, gens int, meta map[string]any) opt.Result {
	return opt.Result{
		Coloring:    graph.CloneColoring(best),
		Conflicts:   bestConflicts,
		History:     history,
		Evaluations: evals,
		Iterations:  gens,
		Meta:        meta,
	}
}
