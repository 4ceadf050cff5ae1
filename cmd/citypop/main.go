// cmd/citypop/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/sghaida/citypop/citydb"
	"github.com/sghaida/citypop/di"
	"github.com/sghaida/citypop/finder"
	"github.com/sghaida/citypop/internal/config"
	"github.com/sghaida/citypop/internal/logger"
	"github.com/sghaida/citypop/population"
)

const (
	keySource di.DependencyKey = "source"
	keyLogger di.DependencyKey = "logger"

	// registry key for the optional finder logger
	regLogger = "citypop.logger"
)

// wiring is the composition root's view of a configurable finder's dependencies.
type wiring struct {
	source population.Source
	log    *logger.Logger
}

// run executes the command and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("citypop", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		_, _ = fmt.Fprintln(stderr, "usage: citypop [-config file.yaml] [-finder singleton|configurable] [-data cities.txt] [-log-mode dev|prod] CITY...")
		flags.PrintDefaults()
	}

	configPath := flags.String("config", "", "optional YAML config file")
	finderName := flags.String("finder", "", "finder strategy: singleton or configurable")
	dataFile := flags.String("data", "", "city data file for the configurable finder (default: embedded dataset)")
	logMode := flags.String("log-mode", "", "log output: dev or prod")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	cfg, err := loadConfig(*configPath, *finderName, *dataFile, *logMode)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "citypop:", err)
		return 2
	}

	names := flags.Args()
	if len(names) == 0 {
		flags.Usage()
		return 2
	}

	log, err := logger.NewTo(cfg.LogMode, stderr)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "citypop:", err)
		return 2
	}
	defer log.Sync()
	restore := zap.ReplaceGlobals(log.Zap())
	defer restore()

	reg := di.NewMapRegistry().Provide(regLogger, log)

	f, err := buildFinder(cfg, reg)
	if err != nil {
		log.Error("wiring failed", "finder", cfg.Finder, "error", err)
		_, _ = fmt.Fprintln(stderr, "citypop:", err)
		return 1
	}

	total, err := f.TotalPopulation(names)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "citypop:", err)
		return 1
	}

	log.Debug("done",
		"finder", cfg.Finder,
		"cities", len(names),
		"singleton_constructions", citydb.ConstructionCount(),
	)
	_, _ = fmt.Fprintf(stdout, "total=%d\n", total)
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// loadConfig applies env, then the optional YAML file, then non-empty flags.
func loadConfig(path, finderName, dataFile, logMode string) (config.Config, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return config.Config{}, err
	}
	if strings.TrimSpace(path) != "" {
		if cfg, err = config.LoadFile(path, cfg); err != nil {
			return config.Config{}, err
		}
	}

	if finderName != "" {
		cfg.Finder = finderName
	}
	if dataFile != "" {
		cfg.DataFile = dataFile
	}
	if logMode != "" {
		cfg.LogMode = logMode
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	if cfg.Finder == config.FinderSingleton && cfg.DataFile != "" {
		return config.Config{}, errors.New("data file is only used by the configurable finder")
	}
	return cfg, nil
}

// buildFinder wires the finder selected by cfg. The optional logger comes from reg.
func buildFinder(cfg config.Config, reg di.Registry) (finder.Finder, error) {
	log, _, err := di.ResolveAs[*logger.Logger](reg, cfg, regLogger)
	if err != nil {
		return nil, err
	}

	if cfg.Finder == config.FinderSingleton {
		return finder.NewSingleton(finder.WithLogger(log)), nil
	}

	src, err := openSource(cfg)
	if err != nil {
		return nil, err
	}

	injs := []di.Injector[wiring]{
		di.Providing(keySource, src, func(w *wiring, s population.Source) { w.source = s }),
	}
	if log != nil {
		injs = append(injs, di.Providing(keyLogger, log, func(w *wiring, l *logger.Logger) { w.log = l }))
	}

	svc, err := di.Init(func() *wiring { return &wiring{} }).WithAll(injs...)
	if err != nil {
		return nil, err
	}
	return finder.NewConfigurable(svc.Val.source, finder.WithLogger(svc.Val.log))
}

// openSource loads cfg.DataFile, or falls back to the process-wide database.
func openSource(cfg config.Config) (population.Source, error) {
	if cfg.DataFile == "" {
		return citydb.Instance()
	}
	src, err := population.LoadFile(cfg.DataFile)
	if err != nil {
		return nil, err
	}
	return src, nil
}
