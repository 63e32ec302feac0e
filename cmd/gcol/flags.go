package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"graphColoring/internal/driver"
	"graphColoring/internal/ts"
)

// paramsFlagSet регистрирует флаги параметров всех алгоритмов поверх значений p.
func paramsFlagSet(p *driver.Params) *pflag.FlagSet {
	fs := pflag.NewFlagSet("params", pflag.ContinueOnError)

	// --- Алгоритм имитации отжига ---
	fs.IntVar(&p.SA.Iterations, "sa_iter", p.SA.Iterations, "общее количество итераций (0 => sa_iter_per_node × n)")
	fs.IntVar(&p.SA.IterationsPerNode, "sa_iter_per_node", p.SA.IterationsPerNode, "количество итераций на одну вершину (используется, если sa_iter == 0)")
	fs.Float64Var(&p.SA.InitialTemp, "sa_t0", p.SA.InitialTemp, "начальная температура")
	fs.Float64Var(&p.SA.Factor, "sa_factor", p.SA.Factor, "коэффициент охлаждения (0,1]")
	fs.IntVar(&p.SA.NeighborsPerIteration, "sa_neighbors", p.SA.NeighborsPerIteration, "количество пробных ходов при одной температуре")

	// --- Генетический алгоритм ---
	fs.IntVar(&p.GA.Population, "ga_pop", p.GA.Population, "размер популяции")
	fs.IntVar(&p.GA.Generations, "ga_gen", p.GA.Generations, "количество поколений")
	fs.Float64Var(&p.GA.CrossoverRate, "ga_cx", p.GA.CrossoverRate, "вероятность применения кроссовера")
	fs.Float64Var(&p.GA.MutationRate, "ga_mut", p.GA.MutationRate, "вероятность мутации")

	// --- Муравьиный алгоритм ---
	fs.IntVar(&p.ACO.Iterations, "aco_iter", p.ACO.Iterations, "общее количество итераций (0 => aco_iter_per_node × n)")
	fs.IntVar(&p.ACO.IterationsPerNode, "aco_iter_per_node", p.ACO.IterationsPerNode, "количество итераций на одну вершину (используется, если aco_iter == 0)")
	fs.IntVar(&p.ACO.Ants, "aco_ants", p.ACO.Ants, "количество муравьёв")
	fs.Float64Var(&p.ACO.Alpha, "aco_alpha", p.ACO.Alpha, "коэффициент alpha (влияние феромонов)")
	fs.Float64Var(&p.ACO.Beta, "aco_beta", p.ACO.Beta, "коэффициент beta (влияние штрафа за конфликты)")
	fs.Float64Var(&p.ACO.Rho, "aco_rho", p.ACO.Rho, "коэффициент rho (испарения феромонов)")
	fs.Float64Var(&p.ACO.Q, "aco_q", p.ACO.Q, "константа отложения феромонов")
	fs.Float64Var(&p.ACO.Tau0, "aco_tau0", p.ACO.Tau0, "начальный уровень феромонов")

	// --- Рой частиц ---
	fs.IntVar(&p.PSO.Iterations, "pso_iter", p.PSO.Iterations, "общее количество итераций (0 => pso_iter_per_node × n)")
	fs.IntVar(&p.PSO.IterationsPerNode, "pso_iter_per_node", p.PSO.IterationsPerNode, "количество итераций на одну вершину (используется, если pso_iter == 0)")
	fs.IntVar(&p.PSO.Particles, "pso_particles", p.PSO.Particles, "количество частиц")
	fs.Float64Var(&p.PSO.W, "pso_w", p.PSO.W, "коэффициент W (инерция)")
	fs.Float64Var(&p.PSO.C1, "pso_c1", p.PSO.C1, "коэффициент C1 (когнитивный)")
	fs.Float64Var(&p.PSO.C2, "pso_c2", p.PSO.C2, "коэффициент C2 (социальный)")
	fs.Float64Var(&p.PSO.VMax, "pso_vmax", p.PSO.VMax, "ограничение скорости частицы")

	// --- Табу-поиск ---
	fs.IntVar(&p.TS.Iterations, "ts_iter", p.TS.Iterations, "общее количество итераций (0 => ts_iter_per_node × n)")
	fs.IntVar(&p.TS.IterationsPerNode, "ts_iter_per_node", p.TS.IterationsPerNode, "количество итераций на одну вершину (используется, если ts_iter == 0)")
	fs.IntVar(&p.TS.Tenure, "ts_tenure", p.TS.Tenure, "длина табу-списка (0 — без запретов)")
	fs.Var((*startValue)(&p.TS.Start), "ts_start", "начальная раскраска: zero | random")

	return fs
}

// applyParamsFile накладывает файл параметров на p так, что явно заданные флаги
// сохраняют приоритет: значения по умолчанию < файл < флаги.
func applyParamsFile(fs *pflag.FlagSet, path string, p *driver.Params) error {
	if path == "" {
		return nil
	}
	// Флаги разделяются с FlagSet команды, поэтому признак Changed общий
	changed := map[*pflag.Flag]string{}
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			changed[f] = f.Value.String()
		}
	})

	loaded, err := driver.LoadParams(path, *p)
	if err != nil {
		return err
	}
	*p = loaded

	for f, value := range changed {
		if err := f.Value.Set(value); err != nil {
			return fmt.Errorf("--%s: %w", f.Name, err)
		}
	}
	return nil
}

// startValue — pflag.Value для ts.Start с проверкой допустимых значений.
type startValue ts.Start

func (v *startValue) String() string { return string(*v) }

func (v *startValue) Set(s string) error {
	switch ts.Start(s) {
	case ts.StartZero, ts.StartRandom:
		*v = startValue(s)
		return nil
	default:
		return fmt.Errorf("unknown start %q (expected %q or %q)", s, ts.StartZero, ts.StartRandom)
	}
}

func (v *startValue) Type() string { return "string" }
