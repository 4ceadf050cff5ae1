// Package di provides a small, generic wiring helper for composition roots.
//
// It models a constructed value (Val) plus a bag of recorded dependencies (Deps).
// Wiring is done via Injector functions that mutate a Service in place and return
// typed errors on invalid wiring (duplicate keys, nil dependencies, nil binds).
//
// Dependencies are passed by value, so interfaces work as well as pointers:
//
//	svc := di.Init(func() *app { return &app{} })
//	_, err := svc.With(di.Providing(KeySource, src, func(a *app, s population.Source) {
//		a.source = s
//	}))
//
// There is no container graph and no reflection-based injection; reflection is
// only used to reject typed nil dependencies.
package di

import (
	"errors"
	"reflect"
	"strconv"
)

var (
	// ErrNilTarget is returned when an injector is applied to a nil service
	// or a service with a nil Val.
	ErrNilTarget = errors.New("di: nil target service")
)

// DependencyKey identifies a dependency stored in a Service's Deps bag.
type DependencyKey string

// Key converts a string into a DependencyKey.
func Key(name string) DependencyKey { return DependencyKey(name) }

// DuplicateKeyError is returned when an injector attempts to register a dependency
// under a key that already exists in the target Service.
type DuplicateKeyError struct{ Key DependencyKey }

// Error implements the error interface.
func (e DuplicateKeyError) Error() string {
	// Example: di: duplicate dependency key "source"
	return "di: duplicate dependency key " + strconv.Quote(string(e.Key))
}

// MissingDependencyError is returned by Lookup when a key is not present.
type MissingDependencyError struct{ Key DependencyKey }

// Error implements the error interface.
func (e MissingDependencyError) Error() string {
	return "di: dependency " + strconv.Quote(string(e.Key)) + " missing"
}

// WrongTypeDependencyError is returned by Lookup when the stored value does not
// have the requested type.
type WrongTypeDependencyError struct {
	Key DependencyKey

	// GotType is reflect.TypeOf(raw).String() for the stored value.
	GotType string
}

// Error implements the error interface.
func (e WrongTypeDependencyError) Error() string {
	// Example: di: dependency "source" has wrong type (*logger.Logger)
	return "di: dependency " + strconv.Quote(string(e.Key)) + " has wrong type (" + e.GotType + ")"
}

// NilDependencyError indicates a nil dependency (untyped or typed nil) for a key.
type NilDependencyError struct{ Key DependencyKey }

// Error implements the error interface.
func (e NilDependencyError) Error() string {
	return "di: nil dependency for key " + strconv.Quote(string(e.Key))
}

// NilBindError indicates a nil bind function for a key.
type NilBindError struct{ Key DependencyKey }

// Error implements the error interface.
func (e NilBindError) Error() string {
	return "di: nil bind function for key " + strconv.Quote(string(e.Key))
}

// Service wraps a constructed value and the dependencies wired into it.
type Service[T any] struct {
	Val  *T
	Deps map[DependencyKey]any
}

// Init constructs a Service by calling ctor and initializing the dependency bag.
func Init[T any](ctor func() *T) *Service[T] {
	return &Service[T]{Val: ctor(), Deps: make(map[DependencyKey]any)}
}

// Value returns the constructed value pointer.
func (s *Service[T]) Value() *T { return s.Val }

// Injector mutates a Service in place and returns an error if wiring fails.
type Injector[T any] func(*Service[T]) error

// With applies a single injector. A nil injector is a no-op.
func (s *Service[T]) With(inj Injector[T]) (*Service[T], error) {
	if inj == nil {
		return s, nil
	}
	if err := inj(s); err != nil {
		return s, err
	}
	return s, nil
}

// WithAll applies injectors in order and stops at the first error.
func (s *Service[T]) WithAll(injs ...Injector[T]) (*Service[T], error) {
	for _, inj := range injs {
		if _, err := s.With(inj); err != nil {
			return s, err
		}
	}
	return s, nil
}

// Providing builds an Injector that records dep under key and hands it to bind.
//
// The returned injector fails if:
//   - the target service (or its Val) is nil (ErrNilTarget)
//   - dep is nil, including a typed nil pointer in an interface (NilDependencyError)
//   - bind is nil (NilBindError)
//   - key already exists in the target's Deps (DuplicateKeyError)
func Providing[T any, D any](key DependencyKey, dep D, bind func(target *T, dependency D)) Injector[T] {
	return func(s *Service[T]) error {
		if s == nil || s.Val == nil {
			return ErrNilTarget
		}
		if isNil(dep) {
			return NilDependencyError{Key: key}
		}
		if bind == nil {
			return NilBindError{Key: key}
		}
		if s.Deps == nil {
			s.Deps = make(map[DependencyKey]any)
		}
		if _, exists := s.Deps[key]; exists {
			return DuplicateKeyError{Key: key}
		}

		s.Deps[key] = dep
		bind(s.Val, dep)
		return nil
	}
}

// Has reports whether a dependency exists for the key (regardless of type).
func (s *Service[T]) Has(key DependencyKey) bool {
	if s == nil || s.Deps == nil {
		return false
	}
	_, ok := s.Deps[key]
	return ok
}

// Lookup returns the dependency recorded under key as D.
//
// It returns MissingDependencyError if the key is absent and
// WrongTypeDependencyError if the stored value is not a D.
func Lookup[D any, T any](s *Service[T], key DependencyKey) (D, error) {
	var zero D
	if s == nil || s.Deps == nil {
		return zero, MissingDependencyError{Key: key}
	}
	raw, ok := s.Deps[key]
	if !ok || raw == nil {
		return zero, MissingDependencyError{Key: key}
	}
	d, ok := raw.(D)
	if !ok {
		return zero, WrongTypeDependencyError{Key: key, GotType: reflect.TypeOf(raw).String()}
	}
	return d, nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Interface, reflect.Slice, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
