// Package pokedex implements the game-content catalog feature.
//
// It ingests three heterogeneous upstream dumps — the protocol description
// text (enum definitions), the flat game-master settings dump, and a locale
// string table — and materializes a cross-referenced, queryable in-memory
// catalog of game entities: Pokemon, types, moves, items and grunts.
//
// # Catalog Assembly
//
// The self-contained lists (types, items, moves, grunts) are built directly
// from enum and record data. The Pokemon list is the hard part: a four-pass
// builder resolves typing, move references, temporary-evolution variants,
// alternate forms and evolution links over an order-independent record dump.
// Forward references are handled by deferring evolution linking to the final
// pass, after the full list exists.
//
// # Lifecycle
//
// Service.Reload fetches the sources, builds a fresh Catalog and publishes it
// as a unit under a RWMutex. Published catalogs are immutable; the only
// copy path is the costume query, which clones the matched entity.
//
// # Components
//
//   - protos:     enum block parsing with a per-build cache
//   - locale:     key/value translation table
//   - gamemaster: record filtering by template-identifier pattern
//   - models:     entities and the attribute-equality query matcher
//   - Service:    reload orchestration and finders
//   - Handler:    HTTP endpoints (see RegisterRoutes)
//   - Feature:    registration with the application loader
//
// # HTTP Endpoints
//
//   - GET  /pokedex/pokemon|types|moves|items|grunts : attribute queries (?all=true for lists)
//   - GET  /pokedex/enums/:name : resolve an enum (?inverted=true)
//   - GET  /pokedex/locale/:key : translate a locale key
//   - GET  /pokedex/summary : entity counts of the live catalog
//   - POST /pokedex/reload : full rebuild (?language=)
package pokedex
