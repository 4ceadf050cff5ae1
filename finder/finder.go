// Package finder sums city populations over a list of names.
//
// Two strategies implement Finder:
//
//   - Configurable is given its population.Source at construction time. Tests can
//     hand it any double (populationtest.Fixture, a SourceFunc, ...).
//   - Singleton always resolves through the process-wide citydb instance. It works
//     with zero setup but cannot be pointed at another source without changing
//     global state.
//
// Both fail fast: the first unknown name aborts the sum and its error is returned
// unchanged. An empty list sums to zero.
package finder

import (
	"errors"
	"reflect"
	"strconv"

	"github.com/sghaida/citypop/citydb"
	"github.com/sghaida/citypop/internal/logger"
	"github.com/sghaida/citypop/population"
)

// ErrInvalidArgument matches every InvalidArgumentError via errors.Is.
var ErrInvalidArgument = errors.New("finder: invalid argument")

// InvalidArgumentError is returned when a required collaborator is missing.
type InvalidArgumentError struct{ Arg string }

// Error implements the error interface.
func (e InvalidArgumentError) Error() string {
	// Example: finder: invalid argument "source": must not be nil
	return "finder: invalid argument " + strconv.Quote(e.Arg) + ": must not be nil"
}

// Is reports whether target is ErrInvalidArgument.
func (e InvalidArgumentError) Is(target error) bool { return target == ErrInvalidArgument }

// Finder totals population across names.
type Finder interface {
	TotalPopulation(names []string) (int, error)
}

// Option configures optional dependencies of a finder.
type Option func(*options)

type options struct {
	log *logger.Logger
}

// WithLogger sets the logger used for debug output. A nil logger is ignored.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{log: logger.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// Configurable totals population using an injected source.
type Configurable struct {
	source population.Source
	log    *logger.Logger
}

// NewConfigurable returns a Configurable bound to src.
//
// It fails with InvalidArgumentError if src is nil, including a typed nil
// pointer stored in the interface.
func NewConfigurable(src population.Source, opts ...Option) (*Configurable, error) {
	if isNil(src) {
		return nil, InvalidArgumentError{Arg: "source"}
	}
	o := buildOptions(opts)
	return &Configurable{source: src, log: o.log.Named("finder.configurable")}, nil
}

// TotalPopulation implements Finder.
func (c *Configurable) TotalPopulation(names []string) (int, error) {
	return sum(c.source, names, c.log)
}

// Singleton totals population using the process-wide citydb instance.
// The zero value is ready to use.
type Singleton struct {
	log *logger.Logger
}

// NewSingleton returns a Singleton with optional dependencies applied.
func NewSingleton(opts ...Option) *Singleton {
	o := buildOptions(opts)
	return &Singleton{log: o.log.Named("finder.singleton")}
}

// TotalPopulation implements Finder.
func (s Singleton) TotalPopulation(names []string) (int, error) {
	src, err := citydb.Instance()
	if err != nil {
		return 0, err
	}

	log := s.log
	if log == nil {
		log = logger.Nop()
	}
	return sum(src, names, log)
}

func sum(src population.Source, names []string, log *logger.Logger) (int, error) {
	total := 0
	for _, name := range names {
		n, err := src.Population(name)
		if err != nil {
			return 0, err
		}
		total += n
	}

	log.Debug("total population computed", "cities", len(names), "total", total)
	return total, nil
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
