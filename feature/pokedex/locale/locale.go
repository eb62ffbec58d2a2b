package locale

import (
	"errors"
	"fmt"
	"strings"
)

// Missing is returned by Get for keys without a translation. Locale absence
// must never abort catalog construction.
const Missing = "?"

// ErrOddPairs is returned when the source array cannot be paired up.
var ErrOddPairs = errors.New("locale array has odd length")

// Table is a flat key-to-string translation table. Keys are matched
// case-insensitively.
type Table struct {
	entries map[string]string
}

// NewTable builds a Table from a flat alternating sequence
// [k0, v0, k1, v1, ...]. An odd-length input would silently misalign every
// following pair, so it fails instead.
func NewTable(pairs []string) (*Table, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("%w: %d elements", ErrOddPairs, len(pairs))
	}

	entries := make(map[string]string, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		entries[strings.ToLower(pairs[i])] = pairs[i+1]
	}

	return &Table{entries: entries}, nil
}

// Get returns the translation for key, or "?" when none exists.
func (t *Table) Get(key string) string {
	if value, ok := t.entries[strings.ToLower(key)]; ok {
		return value
	}
	return Missing
}

// Len returns the number of translations in the table.
func (t *Table) Len() int {
	return len(t.entries)
}
