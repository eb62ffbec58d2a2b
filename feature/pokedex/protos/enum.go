package protos

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrEnumNotFound is returned when the proto text contains no block for the
// requested enum name.
var ErrEnumNotFound = errors.New("enum not found in proto text")

// Index parses named enum blocks out of the protocol description text on
// demand and caches the results. The cache lives exactly as long as the Index,
// which is created per catalog build.
type Index struct {
	raw   string
	cache map[string]map[string]int
}

// NewIndex creates an Index over the given proto text.
func NewIndex(raw string) *Index {
	return &Index{
		raw:   raw,
		cache: make(map[string]map[string]int),
	}
}

// Resolve returns the symbol-to-value mapping of the named enum. The name is
// matched case-insensitively; keys keep their original case. Misses are never
// cached, so a second call for an unknown name fails the same way.
func (i *Index) Resolve(name string) (map[string]int, error) {
	if cached, ok := i.cache[strings.ToLower(name)]; ok {
		return cached, nil
	}

	re, err := regexp.Compile(`(?i)enum ` + regexp.QuoteMeta(name) + ` \{[^}]*\}`)
	if err != nil {
		return nil, fmt.Errorf("failed to compile enum pattern for %q: %w", name, err)
	}

	block := re.FindString(i.raw)
	if block == "" {
		return nil, fmt.Errorf("%w: %s", ErrEnumNotFound, name)
	}

	entries, err := parseBlock(block, name)
	if err != nil {
		return nil, err
	}

	i.cache[strings.ToLower(name)] = entries
	return entries, nil
}

// ResolveInverted returns the value-to-symbol mapping of the named enum.
// The inversion is computed per call and not cached separately.
func (i *Index) ResolveInverted(name string) (map[int]string, error) {
	entries, err := i.Resolve(name)
	if err != nil {
		return nil, err
	}

	inverted := make(map[int]string, len(entries))
	for key, value := range entries {
		inverted[value] = key
	}
	return inverted, nil
}

// parseBlock extracts KEY = value; pairs from an "enum Name { ... }" block.
func parseBlock(block, name string) (map[string]int, error) {
	start := strings.Index(block, "{")
	end := strings.LastIndex(block, "}")
	body := block[start+1 : end]

	entries := make(map[string]int)
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		eq := strings.Index(line, " =")
		semi := strings.Index(line, ";")
		if eq < 0 || semi < 0 || semi < eq {
			return nil, fmt.Errorf("malformed entry %q in enum %s", line, name)
		}

		key := line[:eq]
		value, err := strconv.Atoi(strings.TrimSpace(line[eq+2 : semi]))
		if err != nil {
			return nil, fmt.Errorf("malformed value in entry %q of enum %s: %w", line, name, err)
		}

		entries[key] = value
	}

	return entries, nil
}
