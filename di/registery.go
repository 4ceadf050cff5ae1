package di

import (
	"errors"
	"fmt"
)

// Registry supplies optional dependencies to a composition root.
//
// Resolve reports ok=false when nothing is registered for key; callers then
// fall back to their own default. cfg is passed through for registries that
// pick implementations based on configuration.
type Registry interface {
	Resolve(cfg any, key string) (val any, ok bool, err error)
}

// ErrRegistryPanic is returned if a registry implementation panics internally.
var ErrRegistryPanic = errors.New("registry: panic during Resolve")

// MapRegistry is an in-memory Registry. It ignores cfg.
type MapRegistry struct {
	items map[string]any
}

func NewMapRegistry() *MapRegistry {
	return &MapRegistry{items: map[string]any{}}
}

// Provide stores a value under a key and returns the registry for chaining.
func (r *MapRegistry) Provide(key string, val any) *MapRegistry {
	r.items[key] = val
	return r
}

// Resolve implements Registry and converts panics into errors.
func (r *MapRegistry) Resolve(_ any, key string) (val any, ok bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			val = nil
			ok = false
			err = fmt.Errorf("%w: %v", ErrRegistryPanic, rec)
		}
	}()

	v, ok := r.items[key]
	return v, ok, nil
}

// ResolveAs resolves key from reg and asserts the value to D.
//
// A nil registry or a missing key yields ok=false with no error; a value of
// the wrong type yields WrongTypeDependencyError.
func ResolveAs[D any](reg Registry, cfg any, key string) (D, bool, error) {
	var zero D
	if reg == nil {
		return zero, false, nil
	}
	raw, ok, err := reg.Resolve(cfg, key)
	if err != nil || !ok || raw == nil {
		return zero, false, err
	}
	d, ok := raw.(D)
	if !ok {
		return zero, false, WrongTypeDependencyError{Key: Key(key), GotType: fmt.Sprintf("%T", raw)}
	}
	return d, true, nil
}
