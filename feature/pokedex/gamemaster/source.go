package gamemaster

import (
	"encoding/json"
	"fmt"
	"regexp"

	"pogodata/core/utils"
)

// Record is one raw settings record from the game-master dump.
type Record struct {
	TemplateID string         `json:"templateId"`
	Data       map[string]any `json:"data"`
}

// Entry is a selected (template identifier, payload) pair.
type Entry struct {
	TemplateID string
	Data       map[string]any
}

// Source filters the flat game-master record list by template identifier.
type Source struct {
	records []Record
}

// Decode parses the raw game-master dump.
func Decode(raw []byte) (*Source, error) {
	var records []Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("failed to decode game-master dump: %w", err)
	}
	return &Source{records: records}, nil
}

// NewSource wraps an already decoded record list.
func NewSource(records []Record) *Source {
	return &Source{records: records}
}

// Len returns the number of records in the dump.
func (s *Source) Len() int {
	return len(s.records)
}

// Select yields every record whose templateId partially matches pattern, in
// input order. When subkey is non-empty the yielded payload is the value at
// that subkey (an empty map if absent) instead of the whole payload.
func (s *Source) Select(pattern, subkey string) ([]Entry, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to compile template pattern %q: %w", pattern, err)
	}

	var result []Entry
	for _, record := range s.records {
		if !re.MatchString(record.TemplateID) {
			continue
		}

		data := record.Data
		if subkey != "" {
			data = utils.ToMap(data[subkey])
		}
		if data == nil {
			data = map[string]any{}
		}

		result = append(result, Entry{TemplateID: record.TemplateID, Data: data})
	}

	return result, nil
}
