package driver

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"graphColoring/internal/aco"
	"graphColoring/internal/ga"
	"graphColoring/internal/pso"
	"graphColoring/internal/sa"
	"graphColoring/internal/ts"
)

// Params объединяет конфигурации всех алгоритмов.
//
//	sa:
//	  initial_temp: 500
//	  factor: 0.9
//	ts:
//	  tenure: 7
type Params struct {
	SA  sa.Config  `yaml:"sa"`
	GA  ga.Config  `yaml:"ga"`
	ACO aco.Config `yaml:"aco"`
	PSO pso.Config `yaml:"pso"`
	TS  ts.Config  `yaml:"ts"`
}

// DefaultParams возвращает значения по умолчанию каждого алгоритма.
func DefaultParams() Params {
	return Params{
		SA:  sa.DefaultConfig(),
		GA:  ga.DefaultConfig(),
		ACO: aco.DefaultConfig(),
		PSO: pso.DefaultConfig(),
		TS:  ts.DefaultConfig(),
	}
}

// ValidateFor проверяет конфигурацию одного алгоритма.
func (p Params) ValidateFor(algo Algorithm) error {
	switch algo {
	case SA:
		return p.SA.Validate()
	case GA:
		return p.GA.Validate()
	case ACO:
		return p.ACO.Validate()
	case PSO:
		return p.PSO.Validate()
	case TS:
		return p.TS.Validate()
	default:
		return fmt.Errorf("%q: %w", algo, ErrUnknownAlgorithm)
	}
}

// Validate проверяет конфигурации всех алгоритмов.
func (p Params) Validate() error {
	var errs []error
	for _, a := range Algorithms() {
		if err := p.ValidateFor(a); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// DecodeParams накладывает YAML-документ на base.
// Незаданные в документе поля сохраняют значения base, неизвестные ключи — ошибка.
func DecodeParams(data []byte, base Params) (Params, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	p := base
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return base, fmt.Errorf("decode params: %w", err)
	}
	return p, nil
}

// LoadParams читает параметры из файла поверх base.
func LoadParams(path string, base Params) (Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, err
	}
	p, err := DecodeParams(data, base)
	if err != nil {
		return base, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}
