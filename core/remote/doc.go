// Package remote fetches the three upstream dumps the catalog is built from:
// the protocol description text, the game-master settings dump, and the
// per-language locale string table.
//
// # Mirror Fallback
//
// When object storage is enabled, every successful fetch is written to the
// storage mirror (core/storage). If a later fetch fails, the last mirrored
// copy is returned instead, so a reload only fails hard when upstream and
// mirror are both unavailable.
//
// Timeouts are owned here; callers pass a context for cancellation.
package remote
