// Package demo runs named sorting scenarios through the sorter package,
// prints their results, and verifies them. It backs the amp-sort command.
package demo

import (
	"fmt"
	"os"

	"github.com/amp-labs/amp-sort/errors"
	"github.com/amp-labs/amp-sort/sorter"
	"gopkg.in/yaml.v3"
)

// Scenario is a single demonstration: one algorithm applied to one input.
// Exactly one of Ints or Strings must be set; lsd_radix requires Strings.
type Scenario struct {
	Name      string   `yaml:"name"`
	Algorithm string   `yaml:"algorithm"`
	Ints      []int    `yaml:"ints,omitempty"`
	Strings   []string `yaml:"strings,omitempty"`
	Width     int      `yaml:"width,omitempty"`
	K         int      `yaml:"k,omitempty"`
}

var knownAlgorithms = map[string]bool{ //nolint:gochecknoglobals
	sorter.AlgorithmInsertion:    true,
	sorter.AlgorithmLSDRadix:     true,
	sorter.AlgorithmMerge:        true,
	sorter.AlgorithmMergeInPlace: true,
	sorter.AlgorithmHeap:         true,
	sorter.AlgorithmTopK:         true,
}

// Validate checks that the scenario names a known algorithm and carries a
// usable input for it.
func (s Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: scenario without a name", errors.ErrInvalidInput)
	}

	if !knownAlgorithms[s.Algorithm] {
		return fmt.Errorf("%w: scenario %q: unknown algorithm %q", errors.ErrInvalidInput, s.Name, s.Algorithm)
	}

	if s.Ints != nil && s.Strings != nil {
		return fmt.Errorf("%w: scenario %q: set either ints or strings, not both", errors.ErrInvalidInput, s.Name)
	}

	if s.Algorithm == sorter.AlgorithmLSDRadix && s.Ints != nil {
		return fmt.Errorf("%w: scenario %q: %s sorts strings only", errors.ErrInvalidInput, s.Name, s.Algorithm)
	}

	return nil
}

// Defaults returns the built-in scenarios.
func Defaults() []Scenario {
	return []Scenario{
		{Name: "insertion", Algorithm: sorter.AlgorithmInsertion, Ints: []int{3, 5, 1, 4, 2}},
		{
			Name:      "lsd-radix",
			Algorithm: sorter.AlgorithmLSDRadix,
			Strings:   []string{"aab", "aaa", "lop", "bbf", "bbd", "abc"},
			Width:     3,
		},
		{Name: "merge-singleton", Algorithm: sorter.AlgorithmMerge, Ints: []int{6}},
		{Name: "merge-in-place", Algorithm: sorter.AlgorithmMergeInPlace, Ints: []int{3, 5, 1, 4, 2}},
		{Name: "heap", Algorithm: sorter.AlgorithmHeap, Ints: []int{3, 5, 1, 4, 2}},
		{Name: "top-k", Algorithm: sorter.AlgorithmTopK, Ints: []int{6, 3, 5, 8, 1, 4, 2, 7}, K: 4},
	}
}

// LoadScenarios reads a YAML list of scenarios from path and validates each one.
func LoadScenarios(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenarios []Scenario

	if err := yaml.Unmarshal(data, &scenarios); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	var errs errors.Collection

	for _, s := range scenarios {
		errs.Add(s.Validate())
	}

	if err := errs.GetError(); err != nil {
		return nil, err
	}

	return scenarios, nil
}
