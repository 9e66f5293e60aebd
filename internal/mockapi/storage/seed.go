package storage

import (
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// Seed is the initial content of a registry.
type Seed struct {
	Locations  []string `yaml:"locations"`
	TakenNames []string `yaml:"taken_names"`
}

// DefaultSeed is used when no seed file is configured.
func DefaultSeed() Seed {
	return Seed{
		Locations:  []string{"Canada", "China", "USA", "Brazil"},
		TakenNames: []string{"invalid name"},
	}
}

// LoadSeed reads a YAML seed file. An empty path yields DefaultSeed.
func LoadSeed(path string) (Seed, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultSeed(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeed(data)
}

// ParseSeed decodes YAML seed data. Blank entries are dropped and duplicate
// locations are collapsed, keeping the first occurrence's position.
func ParseSeed(data []byte) (Seed, error) {
	var s Seed
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Seed{}, fmt.Errorf("parse seed file: %w", err)
	}

	s.Locations = lo.Uniq(lo.Compact(lo.Map(s.Locations, func(l string, _ int) string {
		return strings.TrimSpace(l)
	})))
	s.TakenNames = lo.Compact(s.TakenNames)
	return s, nil
}
