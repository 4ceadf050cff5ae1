// Package populationtest provides population.Source doubles for tests.
package populationtest

import (
	"sync"

	"github.com/sghaida/citypop/population"
)

// FixtureEntries is the small, well-known dataset used across tests.
var FixtureEntries = []string{
	"Buenos Aires", "1",
	"Montevideo", "2",
	"Lima", "3",
}

// Fixture returns a fresh MapSource over FixtureEntries.
func Fixture() *population.MapSource {
	src, err := population.New(FixtureEntries)
	if err != nil {
		panic(err)
	}
	return src
}

// Static returns a Source answering from a copy of cities.
func Static(cities map[string]int) population.Source {
	cp := make(map[string]int, len(cities))
	for k, v := range cities {
		cp[k] = v
	}
	return population.SourceFunc(func(name string) (int, error) {
		n, ok := cp[name]
		if !ok {
			return 0, population.NotFoundError{Name: name}
		}
		return n, nil
	})
}

// Recorder wraps a Source and records every name it was asked for.
// It is safe for concurrent use.
type Recorder struct {
	Source population.Source

	mu    sync.Mutex
	calls []string
}

// Population implements population.Source.
func (r *Recorder) Population(name string) (int, error) {
	r.mu.Lock()
	r.calls = append(r.calls, name)
	r.mu.Unlock()

	return r.Source.Population(name)
}

// Calls returns a copy of the recorded lookups in call order.
func (r *Recorder) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, len(r.calls))
	copy(out, r.calls)
	return out
}
