package models

import (
	"fmt"
	"strings"

	"pogodata/core/utils"
)

// Kind is the category of a Pokemon catalog entry.
type Kind string

const (
	KindBase          Kind = "BASE"
	KindForm          Kind = "FORM"
	KindTempEvolution Kind = "TEMP_EVOLUTION"
)

// Stats are the base combat stats extracted from a settings payload.
type Stats struct {
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
	Stamina int `json:"stamina"`
}

// Pokemon is the central catalog record. Base entries, alternate forms and
// temporary-evolution variants are all independent Pokemon values linked by
// template back-references, never shared mutable state.
type Pokemon struct {
	Template string `json:"template"`
	ID       int    `json:"id"`
	Form     int    `json:"form"`
	Costume  int    `json:"costume"`
	Name     string `json:"name"`
	Kind     Kind   `json:"kind"`
	Stats    Stats  `json:"stats"`

	Types       []*Type `json:"types"`
	QuickMoves  []*Move `json:"quick_moves"`
	ChargeMoves []*Move `json:"charge_moves"`

	Evolutions     []*Pokemon `json:"evolutions,omitempty"`
	TempEvolutions []*Pokemon `json:"temp_evolutions,omitempty"`

	// BaseTemplate names the family's base record. On temporary-evolution
	// variants it links back to the originating entry.
	BaseTemplate          string `json:"base_template,omitempty"`
	TempEvolutionTemplate string `json:"temp_evolution_template,omitempty"`
	TempEvolutionID       int    `json:"temp_evolution_id,omitempty"`

	AssetValue  string `json:"asset_value,omitempty"`
	AssetSuffix string `json:"asset_suffix,omitempty"`
	// Asset is the generated display-asset identifier. Its composition is an
	// external naming convention; treat it as opaque.
	Asset string `json:"asset,omitempty"`

	// Raw retains the originating settings payload for downstream field
	// access not otherwise modeled.
	Raw map[string]any `json:"-"`
}

// NewPokemon creates a base Pokemon from its settings payload and resolved
// enum values.
func NewPokemon(raw map[string]any, template string, formID, monID int) *Pokemon {
	p := &Pokemon{
		Template:     template,
		BaseTemplate: template,
		ID:           monID,
		Form:         formID,
		Name:         "?",
		Kind:         KindBase,
		Raw:          raw,
	}
	p.ExtractStats()
	return p
}

// ExtractStats recomputes the base stats from the current raw payload.
// Temp-evolution variants call this again after swapping in their override
// payload.
func (p *Pokemon) ExtractStats() {
	stats := utils.ToMap(p.Raw["stats"])
	p.Stats = Stats{
		Attack:  utils.ToInt(stats["baseAttack"]),
		Defense: utils.ToInt(stats["baseDefense"]),
		Stamina: utils.ToInt(stats["baseStamina"]),
	}
}

// Copy returns an independent duplicate. Slices get fresh backing arrays so
// the copy can diverge; the referenced Type/Move/Pokemon entities stay shared
// because catalog entities are immutable once published.
func (p *Pokemon) Copy() *Pokemon {
	dup := *p
	dup.Types = append([]*Type(nil), p.Types...)
	dup.QuickMoves = append([]*Move(nil), p.QuickMoves...)
	dup.ChargeMoves = append([]*Move(nil), p.ChargeMoves...)
	dup.Evolutions = append([]*Pokemon(nil), p.Evolutions...)
	dup.TempEvolutions = append([]*Pokemon(nil), p.TempEvolutions...)
	return &dup
}

// GenAsset recomputes the display-asset identifier. It must be called
// whenever the asset fields, costume or temp-evolution identity change.
func (p *Pokemon) GenAsset() {
	var b strings.Builder
	fmt.Fprintf(&b, "pokemon_icon_%04d", p.ID)

	if p.TempEvolutionID > 0 {
		fmt.Fprintf(&b, "_e%d", p.TempEvolutionID)
	} else if p.Form > 0 {
		fmt.Fprintf(&b, "_f%d", p.Form)
	}

	if p.AssetValue != "" {
		b.WriteString("_" + p.AssetValue)
	}
	if p.AssetSuffix != "" {
		b.WriteString("_" + p.AssetSuffix)
	}
	if p.Costume > 0 {
		fmt.Fprintf(&b, "_c%d", p.Costume)
	}

	p.Asset = b.String()
}

// Attr exposes the queryable attributes of a Pokemon.
func (p *Pokemon) Attr(name string) (any, bool) {
	switch name {
	case "template":
		return p.Template, true
	case "id":
		return p.ID, true
	case "form":
		return p.Form, true
	case "costume":
		return p.Costume, true
	case "name":
		return p.Name, true
	case "kind":
		return string(p.Kind), true
	case "base_template":
		return p.BaseTemplate, true
	case "temp_evolution_template":
		return p.TempEvolutionTemplate, true
	case "temp_evolution_id":
		return p.TempEvolutionID, true
	case "asset":
		return p.Asset, true
	default:
		return nil, false
	}
}
