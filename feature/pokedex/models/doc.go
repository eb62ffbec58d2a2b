// Package models defines the catalog entities (Pokemon, Type, Move, Item,
// Grunt) and the attribute-equality query matcher used for all lookups.
//
// Every entity exposes an explicit allow-list of queryable attributes through
// its Attr method; Find and FindAll match against that list with exact
// equality, first match in insertion order. There is no partial or fuzzy
// matching.
//
// Pokemon is the only entity with internal structure: it references Types and
// Moves, owns its temporary-evolution variants, and links to evolution
// targets that live elsewhere in the same catalog.
package models
