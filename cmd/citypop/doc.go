// Command citypop totals city populations using either finder strategy.
//
// It is the composition root for the citypop packages: it loads settings,
// builds the logger, wires a finder and prints the total.
//
// Usage
//
//	citypop [-config file.yaml] [-finder singleton|configurable] [-data cities.txt] [-log-mode dev|prod] CITY...
//
// Settings are applied in order: built-in defaults, CITYPOP_* environment
// variables, the optional YAML file, then flags.
//
//	CITYPOP_LOG_MODE   dev (default) or prod
//	CITYPOP_FINDER     singleton (default) or configurable
//	CITYPOP_DATA_FILE  data file for the configurable finder
//
// YAML keys mirror the variables:
//
//	finder: configurable
//	data_file: ./cities.txt
//	log_mode: prod
//
// Finders
//
//   - singleton: reads the process-wide embedded database (citydb). -data is rejected.
//   - configurable: receives its source through explicit wiring. With -data the
//     file is loaded; without it the process-wide database is injected instead.
//
// The data file holds alternating lines: a city name, then its population.
//
//	Buenos Aires
//	4000000
//	Lima
//	3000000
//
// Output
//
// On success the total is printed to stdout as "total=<n>". Logs go to stderr.
//
// Exit codes
//
//	0  success
//	1  lookup or load failure (unknown city, unreadable or malformed data)
//	2  usage or configuration error
package main
