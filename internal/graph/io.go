package graph

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File — формат файла графа. JSON является подмножеством YAML,
// поэтому оба формата читаются одним декодером.
//
//	nodes: 4
//	labels: [a, b, c, d]
//	edges: [[0, 1], [1, 2], [2, 3]]
type File struct {
	Nodes  int      `yaml:"nodes" json:"nodes"`
	Labels []string `yaml:"labels,omitempty" json:"labels,omitempty"`
	Edges  [][2]int `yaml:"edges" json:"edges"`
}

// Decode разбирает описание графа из YAML или JSON.
func Decode(data []byte) (*Graph, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode graph: %w", err)
	}
	g, err := FromEdges(f.Nodes, f.Edges)
	if err != nil {
		return nil, err
	}
	if len(f.Labels) > 0 {
		return g.WithLabels(f.Labels)
	}
	return g, nil
}

// LoadFile читает граф из файла.
func LoadFile(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	g, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Encode сериализует граф в YAML.
func Encode(g *Graph) ([]byte, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	f := File{Nodes: g.n, Labels: g.labels, Edges: g.EdgeList()}
	return yaml.Marshal(f)
}
