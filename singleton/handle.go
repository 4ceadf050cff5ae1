// Package singleton provides an explicit, injectable lazy singleton.
//
// A Handle owns at most one value of T. The constructor runs on the first call
// to Instance and never again; every later call returns the same value (or the
// same construction error). The handle also counts how many times the constructor
// actually ran, which makes the "constructed once" property observable in tests.
//
// Instead of a package-level global, callers hold a *Handle (or depend on the
// Provider interface) and pass it around like any other dependency:
//
//	h := singleton.New(func() (*DB, error) { return openDB() })
//	db, err := h.Instance()
//	_ = h.ConstructionCount() // 1
//
// Handle is safe for concurrent use. Concurrent first calls block until the
// single construction finishes.
package singleton

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

var (
	// ErrNilConstructor is returned by Instance when the handle was created
	// without a constructor.
	ErrNilConstructor = errors.New("singleton: nil constructor")

	// ErrConstructorPanic wraps a panic raised by the constructor.
	ErrConstructorPanic = errors.New("singleton: panic during construction")
)

// Provider is the read side of a Handle.
//
// Depend on Provider rather than *Handle when a component only needs the value.
type Provider[T any] interface {
	Instance() (T, error)
	ConstructionCount() int64
}

// Handle lazily constructs and holds a single T.
type Handle[T any] struct {
	ctor func() (T, error)

	once  sync.Once
	val   T
	err   error
	count atomic.Int64
	ready atomic.Bool
}

// New returns an uninitialized Handle that will build its value with ctor.
func New[T any](ctor func() (T, error)) *Handle[T] {
	return &Handle[T]{ctor: ctor}
}

// Instance returns the held value, constructing it on the first call.
//
// The outcome of the first call is terminal: if construction failed, every
// later call returns the same error without retrying.
func (h *Handle[T]) Instance() (T, error) {
	h.once.Do(h.construct)
	return h.val, h.err
}

// ConstructionCount reports how many times the constructor ran (0 or 1).
func (h *Handle[T]) ConstructionCount() int64 { return h.count.Load() }

// Initialized reports whether the first Instance call has completed.
func (h *Handle[T]) Initialized() bool { return h.ready.Load() }

func (h *Handle[T]) construct() {
	defer h.ready.Store(true)

	if h.ctor == nil {
		h.err = ErrNilConstructor
		return
	}

	defer func() {
		if rec := recover(); rec != nil {
			var zero T
			h.val = zero
			h.err = fmt.Errorf("%w: %v", ErrConstructorPanic, rec)
		}
	}()

	h.count.Add(1)
	h.val, h.err = h.ctor()
}
