package singleton_test

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/sghaida/citypop/singleton"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

type db struct{ name string }

//
// -----------------------------------------------------------------------------
// Lifecycle
// -----------------------------------------------------------------------------

func TestHandle_StartsUninitialized(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	h := singleton.New(func() (*db, error) {
		calls.Add(1)
		return &db{name: "cities"}, nil
	})

	assert.False(t, h.Initialized())
	assert.Zero(t, h.ConstructionCount())
	assert.Zero(t, calls.Load(), "constructor must not run before first access")
}

func TestHandle_TwoAccessesSameInstance(t *testing.T) {
	t.Parallel()

	h := singleton.New(func() (*db, error) { return &db{name: "cities"}, nil })

	first, err := h.Instance()
	require.NoError(t, err)
	second, err := h.Instance()
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, int64(1), h.ConstructionCount())
	assert.True(t, h.Initialized())
}

func TestHandle_ConcurrentFirstAccess(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	h := singleton.New(func() (*db, error) {
		calls.Add(1)
		return &db{name: "cities"}, nil
	})

	const workers = 64
	got := make([]*db, workers)

	var g errgroup.Group
	for i := 0; i < workers; i++ {
		i := i
		g.Go(func() error {
			v, err := h.Instance()
			got[i] = v
			return err
		})
	}
	require.NoError(t, g.Wait())

	for i := 1; i < workers; i++ {
		assert.Same(t, got[0], got[i])
	}
	assert.Equal(t, int64(1), calls.Load())
	assert.Equal(t, int64(1), h.ConstructionCount())
}

func TestHandle_HandlesAreIndependent(t *testing.T) {
	t.Parallel()

	ctor := func() (*db, error) { return &db{}, nil }
	a := singleton.New(ctor)
	b := singleton.New(ctor)

	va, err := a.Instance()
	require.NoError(t, err)
	vb, err := b.Instance()
	require.NoError(t, err)

	assert.NotSame(t, va, vb)
	assert.Equal(t, int64(1), a.ConstructionCount())
	assert.Equal(t, int64(1), b.ConstructionCount())
}

//
// -----------------------------------------------------------------------------
// Failure modes
// -----------------------------------------------------------------------------

func TestHandle_ErrorIsTerminal(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	var calls atomic.Int64
	h := singleton.New(func() (*db, error) {
		calls.Add(1)
		return nil, boom
	})

	for i := 0; i < 3; i++ {
		v, err := h.Instance()
		assert.Nil(t, v)
		assert.ErrorIs(t, err, boom)
	}
	assert.Equal(t, int64(1), calls.Load())
	assert.Equal(t, int64(1), h.ConstructionCount())
}

func TestHandle_NilConstructor(t *testing.T) {
	t.Parallel()

	h := singleton.New[*db](nil)

	v, err := h.Instance()
	assert.Nil(t, v)
	assert.ErrorIs(t, err, singleton.ErrNilConstructor)
	assert.Zero(t, h.ConstructionCount())
	assert.True(t, h.Initialized())
}

func TestHandle_PanicBecomesError(t *testing.T) {
	t.Parallel()

	h := singleton.New(func() (*db, error) { panic("kaboom") })

	v, err := h.Instance()
	assert.Nil(t, v)
	require.Error(t, err)
	assert.ErrorIs(t, err, singleton.ErrConstructorPanic)
	assert.Contains(t, err.Error(), "kaboom")

	_, err = h.Instance()
	assert.ErrorIs(t, err, singleton.ErrConstructorPanic)
	assert.Equal(t, int64(1), h.ConstructionCount())
}

func TestHandle_SatisfiesProvider(t *testing.T) {
	t.Parallel()

	var p singleton.Provider[*db] = singleton.New(func() (*db, error) { return &db{name: "x"}, nil })

	v, err := p.Instance()
	require.NoError(t, err)
	assert.Equal(t, "x", v.name)
	assert.Equal(t, int64(1), p.ConstructionCount())
}

func BenchmarkHandle_Instance(b *testing.B) {
	h := singleton.New(func() (*db, error) { return &db{}, nil })
	_, _ = h.Instance()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = h.Instance()
	}
}
