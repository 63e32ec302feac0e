package bench

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// Series — история лучшего числа конфликтов одного запуска.
type Series struct {
	Name    string
	History []int
}

// RenderConvergence строит линейный график сходимости в HTML.
func RenderConvergence(w io.Writer, title string, series []Series) error {
	if len(series) == 0 {
		return fmt.Errorf("plot %q: no series", title)
	}

	longest := 0
	for _, s := range series {
		if len(s.History) > longest {
			longest = len(s.History)
		}
	}
	if longest == 0 {
		return fmt.Errorf("plot %q: all series are empty", title)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "iteration",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "conflicts",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}))

	xs := make([]int, longest)
	for i := range xs {
		xs[i] = i + 1
	}
	line.SetXAxis(xs)

	for _, s := range series {
		data := make([]opts.LineData, len(s.History))
		for i, v := range s.History {
			data[i] = opts.LineData{Value: v}
		}
		line.AddSeries(s.Name, data)
	}
	line.SetSeriesOptions(
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}),
	)

	return line.Render(w)
}

// PlotConvergence сохраняет график в файл.
func PlotConvergence(path, title string, series []Series) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := RenderConvergence(f, title, series); err != nil {
		return err
	}
	return f.Close()
}

// SeriesFromRecords собирает истории лучших запусков серии.
func SeriesFromRecords(records []Record) []Series {
	out := make([]Series, 0, len(records))
	for _, r := range records {
		if len(r.BestHistory) == 0 {
			continue
		}
		out = append(out, Series{
			Name:    fmt.Sprintf("%s/%s", r.Algo, r.Graph),
			History: r.BestHistory,
		})
	}
	return out
}
