// Package citydb exposes the process-wide city population database.
//
// The database is loaded from an embedded dataset the first time Instance is
// called and held by a singleton.Handle for the rest of the process lifetime.
// ConstructionCount reports how many times that load actually ran.
//
// Code that needs to be testable should take a population.Source (or the
// handle returned by Default) as a constructor argument instead of calling
// Instance directly.
package citydb

import (
	"bytes"
	_ "embed"

	"go.uber.org/zap"

	"github.com/sghaida/citypop/population"
	"github.com/sghaida/citypop/singleton"
)

//go:embed cities.txt
var citiesData []byte

var defaultHandle = NewHandle()

// NewHandle returns a fresh, uninitialized handle over the embedded dataset.
// Most callers want Default.
func NewHandle() *singleton.Handle[population.Source] {
	return singleton.New(load)
}

// Default returns the process-wide handle.
func Default() *singleton.Handle[population.Source] { return defaultHandle }

// Instance returns the process-wide database, loading it on first use.
func Instance() (population.Source, error) { return defaultHandle.Instance() }

// ConstructionCount reports how many times the process-wide database was built.
func ConstructionCount() int64 { return defaultHandle.ConstructionCount() }

func load() (population.Source, error) {
	log := zap.L().Named("citydb")
	log.Info("initializing city database")

	src, err := population.Parse(bytes.NewReader(citiesData))
	if err != nil {
		return nil, err
	}

	log.Debug("city database ready", zap.Int("cities", src.Len()))
	return src, nil
}
