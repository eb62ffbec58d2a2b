package models

// Type is one of the game's damage types.
type Type struct {
	Template string `json:"template"`
	ID       int    `json:"id"`
	Name     string `json:"name"`
}

// Attr exposes the queryable attributes of a Type.
func (t *Type) Attr(name string) (any, bool) {
	switch name {
	case "template":
		return t.Template, true
	case "id":
		return t.ID, true
	case "name":
		return t.Name, true
	default:
		return nil, false
	}
}

// Move is a combat move.
type Move struct {
	Template string         `json:"template"`
	ID       int            `json:"id"`
	Name     string         `json:"name"`
	Type     *Type          `json:"type,omitempty"`
	Power    int            `json:"power"`
	Energy   int            `json:"energy"`
	Raw      map[string]any `json:"-"`
}

// Attr exposes the queryable attributes of a Move.
func (m *Move) Attr(name string) (any, bool) {
	switch name {
	case "template":
		return m.Template, true
	case "id":
		return m.ID, true
	case "name":
		return m.Name, true
	case "power":
		return m.Power, true
	case "energy":
		return m.Energy, true
	default:
		return nil, false
	}
}

// Item is an inventory item.
type Item struct {
	Template string         `json:"template"`
	ID       int            `json:"id"`
	Name     string         `json:"name"`
	Category string         `json:"category,omitempty"`
	Raw      map[string]any `json:"-"`
}

// Attr exposes the queryable attributes of an Item.
func (i *Item) Attr(name string) (any, bool) {
	switch name {
	case "template":
		return i.Template, true
	case "id":
		return i.ID, true
	case "name":
		return i.Name, true
	case "category":
		return i.Category, true
	default:
		return nil, false
	}
}

// Grunt is an adversary archetype.
type Grunt struct {
	Template string         `json:"template"`
	ID       int            `json:"id"`
	Name     string         `json:"name"`
	Active   bool           `json:"active"`
	Raw      map[string]any `json:"-"`
}

// Attr exposes the queryable attributes of a Grunt.
func (g *Grunt) Attr(name string) (any, bool) {
	switch name {
	case "template":
		return g.Template, true
	case "id":
		return g.ID, true
	case "name":
		return g.Name, true
	case "active":
		return g.Active, true
	default:
		return nil, false
	}
}
