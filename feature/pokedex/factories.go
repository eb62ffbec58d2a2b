package pokedex

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"pogodata/core/utils"
	"pogodata/feature/pokedex/models"
)

var movePrefix = regexp.MustCompile(`^COMBAT_V\d{4}_MOVE_`)

// buildTypes creates the damage-type list from the HoloPokemonType enum,
// ordered by enum value so catalog order is deterministic.
func (c *Catalog) buildTypes() error {
	entries, err := c.enums.Resolve("HoloPokemonType")
	if err != nil {
		return err
	}

	templates := make([]string, 0, len(entries))
	for template := range entries {
		templates = append(templates, template)
	}
	sort.Slice(templates, func(i, j int) bool {
		return entries[templates[i]] < entries[templates[j]]
	})

	for _, template := range templates {
		suffix := strings.ToLower(strings.TrimPrefix(template, "POKEMON_TYPE_"))
		c.Types = append(c.Types, &models.Type{
			Template: template,
			ID:       entries[template],
			Name:     c.locale.Get("pokemon_type_" + suffix),
		})
	}
	return nil
}

// buildMoves creates the move list from the combat-move record family.
func (c *Catalog) buildMoves() error {
	ids, err := c.enums.Resolve("HoloPokemonMove")
	if err != nil {
		return err
	}

	entries, err := c.records.Select(`^COMBAT_V\d{4}_MOVE_`, "combatMove")
	if err != nil {
		return err
	}

	for _, e := range entries {
		template := movePrefix.ReplaceAllString(e.TemplateID, "")
		move := &models.Move{
			Template: template,
			ID:       ids[template],
			Power:    utils.ToInt(e.Data["power"]),
			Energy:   utils.ToInt(e.Data["energyDelta"]),
			Raw:      e.Data,
		}
		move.Name = c.locale.Get(fmt.Sprintf("move_name_%04d", move.ID))
		if t, err := c.TypeRef(utils.ToString(e.Data["type"])); err == nil {
			move.Type = t
		}
		c.Moves = append(c.Moves, move)
	}
	return nil
}

// buildItems creates the item list from the item record family.
func (c *Catalog) buildItems() error {
	ids, err := c.enums.Resolve("Item")
	if err != nil {
		return err
	}

	entries, err := c.records.Select(`^ITEM_`, "itemSettings")
	if err != nil {
		return err
	}

	for _, e := range entries {
		c.Items = append(c.Items, &models.Item{
			Template: e.TemplateID,
			ID:       ids[e.TemplateID],
			Name:     c.locale.Get(strings.ToLower(e.TemplateID) + "_name"),
			Category: utils.ToString(e.Data["category"]),
			Raw:      e.Data,
		})
	}
	return nil
}

// buildGrunts creates the adversary-archetype list from the character
// display records.
func (c *Catalog) buildGrunts() error {
	ids, err := c.enums.Resolve("InvasionCharacter")
	if err != nil {
		return err
	}

	entries, err := c.records.Select(`^CHARACTER_`, "invasionNpcDisplaySettings")
	if err != nil {
		return err
	}

	for _, e := range entries {
		trainerName := utils.ToString(e.Data["trainerName"])
		grunt := &models.Grunt{
			Template: e.TemplateID,
			ID:       ids[e.TemplateID],
			Active:   trainerName != "",
			Raw:      e.Data,
		}
		if trainerName != "" {
			grunt.Name = c.locale.Get(trainerName)
		} else {
			grunt.Name = c.locale.Get(strings.ToLower(e.TemplateID))
		}
		c.Grunts = append(c.Grunts, grunt)
	}
	return nil
}
