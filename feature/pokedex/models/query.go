package models

import "errors"

// ErrNotFound is returned by Find when no entity matches the criteria.
var ErrNotFound = errors.New("no entity matched the criteria")

// Criteria maps attribute names to expected values. An entity matches iff
// every criterion's attribute equals the expected value exactly.
type Criteria map[string]any

// Entity is implemented by every catalog entity kind. Attr returns the value
// of a queryable attribute; the second return reports whether the attribute
// is part of the entity's allow-list.
type Entity interface {
	Attr(name string) (any, bool)
}

// Matches reports whether the entity satisfies every criterion. Criteria
// naming attributes outside the entity's allow-list never match.
func Matches(e Entity, criteria Criteria) bool {
	for name, want := range criteria {
		got, ok := e.Attr(name)
		if !ok || got != want {
			return false
		}
	}
	return true
}

// Find returns the first entity in list matching the criteria, in insertion
// order.
func Find[E Entity](list []E, criteria Criteria) (E, error) {
	for _, e := range list {
		if Matches(e, criteria) {
			return e, nil
		}
	}
	var zero E
	return zero, ErrNotFound
}

// FindAll returns every entity in list matching the criteria, possibly none.
func FindAll[E Entity](list []E, criteria Criteria) []E {
	result := []E{}
	for _, e := range list {
		if Matches(e, criteria) {
			result = append(result, e)
		}
	}
	return result
}
