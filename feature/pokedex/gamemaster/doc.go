// Package gamemaster decodes the flat game-master settings dump and offers
// pattern-based selection over its records.
//
// The dump is an ordered list of records, each carrying a templateId string
// and a family-specific payload (pokemonSettings, formSettings,
// temporaryEvolutionSettings, ...). Payloads stay untyped (map[string]any)
// because their shape varies per record family; the conversion helpers in
// core/utils do the field access.
package gamemaster
