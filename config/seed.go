package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Seed describes a graph to preload into a session.
//
//	vertices: [1, 2, 3, 4]
//	edges:
//	  - {src: 1, dest: 2, weight: 3}
//	  - {src: 2, dest: 3, weight: 4}
//
// Keys and weights use the menu's types (int keys, int64 weights).
type Seed struct {
	Vertices []int      `yaml:"vertices" validate:"unique"`
	Edges    []SeedEdge `yaml:"edges" validate:"dive"`
}

// SeedEdge is one directed edge of a Seed. Endpoints are pointers so that
// key 0 is distinguishable from a missing key.
type SeedEdge struct {
	Src    *int  `yaml:"src" validate:"required"`
	Dest   *int  `yaml:"dest" validate:"required"`
	Weight int64 `yaml:"weight"`
}

// LoadSeed reads and validates a seed file.
func LoadSeed(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSeed, err)
	}

	return ParseSeed(data)
}

// ParseSeed decodes and validates seed YAML.
func ParseSeed(data []byte) (*Seed, error) {
	var s Seed
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSeed, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Validate checks the struct tag constraints of a seed built in code.
// A nil seed is invalid.
func (s *Seed) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: nil seed", ErrInvalidSeed)
	}
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSeed, err)
	}

	return nil
}
