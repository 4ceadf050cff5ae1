// Package population models a read-only lookup from city name to population.
//
// Source is the capability consumers depend on. MapSource is the in-memory
// implementation, built once from alternating name/count entries:
//
//	Buenos Aires
//	4000000
//	Lima
//	3000000
//
// A MapSource never changes after construction, so it is safe for concurrent reads.
//
// Duplicate city names are rejected with a LoadError rather than silently
// overwriting the earlier entry.
package population

import (
	"bufio"
	"io"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"
)

// Source answers single-city population lookups.
//
// Implementations return a NotFoundError when name is unknown.
type Source interface {
	Population(name string) (int, error)
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func(name string) (int, error)

// Population implements Source.
func (f SourceFunc) Population(name string) (int, error) { return f(name) }

// MapSource is a Source backed by an immutable map.
type MapSource struct {
	cities map[string]int
}

// New builds a MapSource from entries where even indexes hold city names and
// the following odd index holds the decimal, non-negative population.
//
// It fails with LoadError if entries has odd length, a name is blank, a count does
// not parse as a non-negative integer, or a name appears twice.
func New(entries []string) (*MapSource, error) {
	if len(entries)%2 != 0 {
		last := entries[len(entries)-1]
		return nil, LoadError{
			Line:   len(entries),
			Reason: "missing population for " + strconv.Quote(last),
		}
	}

	cities := make(map[string]int, len(entries)/2)
	for i := 0; i < len(entries); i += 2 {
		name := entries[i]
		if strings.TrimSpace(name) == "" {
			return nil, LoadError{Line: i + 1, Reason: "empty city name"}
		}

		n, err := strconv.Atoi(strings.TrimSpace(entries[i+1]))
		if err != nil {
			return nil, LoadError{
				Line:   i + 2,
				Reason: "invalid population for " + strconv.Quote(name),
				Err:    err,
			}
		}
		if n < 0 {
			return nil, LoadError{
				Line:   i + 2,
				Reason: "negative population for " + strconv.Quote(name),
			}
		}

		if _, dup := cities[name]; dup {
			return nil, LoadError{Line: i + 1, Reason: "duplicate city " + strconv.Quote(name)}
		}
		cities[name] = n
	}

	return &MapSource{cities: cities}, nil
}

// Parse reads newline-separated entries from r and builds a MapSource.
//
// Windows line endings are accepted and trailing blank lines are ignored.
// Blank lines elsewhere are reported by New.
func Parse(r io.Reader) (*MapSource, error) {
	var lines []string

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, LoadError{Line: len(lines) + 1, Reason: "read", Err: err}
	}

	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	return New(lines)
}

// LoadFile opens path and parses it with Parse.
func LoadFile(path string) (*MapSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, LoadError{Reason: "open " + strconv.Quote(path), Err: err}
	}
	defer func() { _ = f.Close() }()

	return Parse(f)
}

// Population implements Source.
func (s *MapSource) Population(name string) (int, error) {
	if s != nil {
		if n, ok := s.cities[name]; ok {
			return n, nil
		}
	}
	return 0, NotFoundError{Name: name}
}

// Len returns the number of cities.
func (s *MapSource) Len() int {
	if s == nil {
		return 0
	}
	return len(s.cities)
}

// Names returns the city names in sorted order.
func (s *MapSource) Names() []string {
	if s == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(s.cities))
}
