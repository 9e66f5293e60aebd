package form

import "context"

// LocationSource provides the selectable locations.
type LocationSource interface {
	GetLocations(ctx context.Context) ([]string, error)
}

// NameChecker reports whether a name is still available.
type NameChecker interface {
	IsNameValid(ctx context.Context, name string) (bool, error)
}

// LocationSourceFunc adapts a function to LocationSource.
type LocationSourceFunc func(ctx context.Context) ([]string, error)

// GetLocations calls f.
func (f LocationSourceFunc) GetLocations(ctx context.Context) ([]string, error) {
	return f(ctx)
}

// NameCheckerFunc adapts a function to NameChecker.
type NameCheckerFunc func(ctx context.Context, name string) (bool, error)

// IsNameValid calls f.
func (f NameCheckerFunc) IsNameValid(ctx context.Context, name string) (bool, error) {
	return f(ctx, name)
}
