package main

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"strconv"
	"strings"

	"graphColoring/internal/bench"
	"graphColoring/internal/graph"
)

// parseGraph разбирает описание графа:
//
//	regions       регионы Франции
//	complete:N    полный граф
//	path:N        путь
//	cycle:N       цикл
//	random:N:P    случайный граф с вероятностью ребра P
//	<файл>        YAML/JSON со списком рёбер
func parseGraph(spec string, seed int64) (string, *graph.Graph, error) {
	spec = strings.TrimSpace(spec)
	parts := strings.Split(spec, ":")

	switch strings.ToLower(parts[0]) {
	case "regions":
		if len(parts) != 1 {
			return "", nil, fmt.Errorf("граф %q: лишние аргументы", spec)
		}
		return "regions", graph.FranceRegions(), nil

	case "complete", "path", "cycle":
		if len(parts) != 2 {
			return "", nil, fmt.Errorf("граф %q невалидной схемы, пример: %s:10", spec, parts[0])
		}
		n, err := atoiStrict(parts[1])
		if err != nil {
			return "", nil, fmt.Errorf("граф %q: ошибка парсинга числа вершин: %w", spec, err)
		}
		var g *graph.Graph
		switch strings.ToLower(parts[0]) {
		case "complete":
			g, err = graph.Complete(n)
		case "path":
			g, err = graph.Path(n)
		default:
			g, err = graph.Cycle(n)
		}
		if err != nil {
			return "", nil, fmt.Errorf("граф %q: %w", spec, err)
		}
		return spec, g, nil

	case "random":
		if len(parts) != 3 {
			return "", nil, fmt.Errorf("граф %q невалидной схемы, пример: random:50:0.1", spec)
		}
		n, err := atoiStrict(parts[1])
		if err != nil {
			return "", nil, fmt.Errorf("граф %q: ошибка парсинга числа вершин: %w", spec, err)
		}
		p, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if err != nil {
			return "", nil, fmt.Errorf("граф %q: ошибка парсинга вероятности ребра: %w", spec, err)
		}
		g, err := graph.RandomSparse(n, p, rand.New(rand.NewSource(seed)))
		if err != nil {
			return "", nil, fmt.Errorf("граф %q: %w", spec, err)
		}
		return spec, g, nil
	}

	g, err := graph.LoadFile(spec)
	if err != nil {
		return "", nil, err
	}
	return strings.TrimSuffix(filepath.Base(spec), filepath.Ext(spec)), g, nil
}

// parseCases строит набор графов; сид случайных графов зависит от позиции в списке.
func parseCases(specs string, colors int, baseSeed int64) ([]bench.Case, error) {
	parts := splitCSV(specs)
	if len(parts) == 0 {
		return nil, fmt.Errorf("не задано ни одного графа")
	}
	cases := make([]bench.Case, 0, len(parts))
	for i, p := range parts {
		name, g, err := parseGraph(p, baseSeed+int64(i)*10_000)
		if err != nil {
			return nil, err
		}
		cases = append(cases, bench.Case{Name: name, Graph: g, Colors: colors})
	}
	return cases, nil
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func atoiStrict(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}
