// Package citypop contrasts a lazily-constructed, process-wide singleton with
// constructor-injected alternatives, using a small city population database.
//
// The pieces, leaf to root:
//
//   - population: the Source capability (population by city name) and its
//     in-memory MapSource, loaded once from alternating name/count lines.
//   - singleton: an explicit Handle that constructs its value at most once and
//     counts the constructions.
//   - citydb: the process-wide database, an embedded dataset behind a Handle.
//   - finder: Configurable (injected Source) and Singleton (always citydb)
//     strategies that total population over a list of names.
//   - di: small wiring helpers for composition roots.
//   - cmd/citypop: the composition root.
//
// The two finders compute the same thing. Only Configurable can be pointed at
// a test double without touching global state.
package citypop
