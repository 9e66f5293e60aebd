package storage

import (
	"context"
	"slices"

	"github.com/samber/lo"
)

// Memory is an in-process Registry. It is read-only after NewMemory.
type Memory struct {
	locations []string
	taken     map[string]struct{}
}

// NewMemory returns a Memory registry holding the seed's data.
func NewMemory(seed Seed) *Memory {
	return &Memory{
		locations: slices.Clone(seed.Locations),
		taken: lo.SliceToMap(seed.TakenNames, func(n string) (string, struct{}) {
			return NormalizeName(n), struct{}{}
		}),
	}
}

// Locations returns a copy of the location list.
func (m *Memory) Locations(_ context.Context) ([]string, error) {
	return slices.Clone(m.locations), nil
}

// IsNameTaken reports whether the normalized name is in the taken set.
func (m *Memory) IsNameTaken(_ context.Context, name string) (bool, error) {
	_, ok := m.taken[NormalizeName(name)]
	return ok, nil
}
