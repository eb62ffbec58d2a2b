package pokedex

import (
	"fmt"
	"regexp"

	"pogodata/core/utils"
	"pogodata/feature/pokedex/models"
)

var basePrefix = regexp.MustCompile(`^V\d{4}_POKEMON_`)

// buildPokemon materializes the full Pokemon list in four ordered passes:
// base records (with temp-evolution variants), form augmentation,
// temp-evolution assets, and evolution linking. Forward references between
// creatures are only resolved in the final pass, once the whole list exists.
func (c *Catalog) buildPokemon() error {
	// These three enum definitions are load-bearing; their absence fails the
	// whole build. Individual template misses below default to 0 instead.
	forms, err := c.enums.Resolve("Form")
	if err != nil {
		return err
	}
	tempEvoIDs, err := c.enums.Resolve("HoloTemporaryEvolutionId")
	if err != nil {
		return err
	}
	monIDs, err := c.enums.Resolve("HoloPokemonId")
	if err != nil {
		return err
	}

	// Pass 1: base creatures and their temp-evolution variants.
	entries, err := c.records.Select(`^V\d{4}_POKEMON_.*`, "pokemonSettings")
	if err != nil {
		return err
	}
	for _, e := range entries {
		template := basePrefix.ReplaceAllString(e.TemplateID, "")
		mon := models.NewPokemon(e.Data, template, forms[template], monIDs[template])

		localeKey := fmt.Sprintf("pokemon_name_%04d", mon.ID)
		mon.Name = c.locale.Get(localeKey)

		mon.QuickMoves = c.moveRefs(e.Data["quickMoves"])
		mon.ChargeMoves = c.moveRefs(e.Data["cinematicMoves"])
		c.applyTyping(mon, "type", "type2")

		c.Pokemon = append(c.Pokemon, mon)

		for _, override := range utils.ToMapSlice(e.Data["tempEvoOverrides"]) {
			evo := mon.Copy()
			evo.Kind = models.KindTempEvolution

			evo.TempEvolutionTemplate = utils.ToString(override["tempEvoId"])
			evo.TempEvolutionID = tempEvoIDs[evo.TempEvolutionTemplate]

			evo.Raw = override
			evo.Name = c.locale.Get(fmt.Sprintf("%s_%04d", localeKey, evo.TempEvolutionID))
			evo.ExtractStats()

			// Override typing is named independently from the base pair.
			evo.Types = nil
			c.applyTyping(evo, "typeOverride1", "typeOverride2")

			c.Pokemon = append(c.Pokemon, evo)
			mon.TempEvolutions = append(mon.TempEvolutions, evo)
		}
	}

	// Pass 2: form augmentation. Missing forms (Unown, Spinda, regionals that
	// have no own settings record) are created as copies of the family base;
	// known forms only get their asset fields updated.
	formEntries, err := c.records.Select(`^FORMS_V\d{4}_POKEMON_.*`, "formSettings")
	if err != nil {
		return err
	}
	for _, e := range formEntries {
		for _, form := range utils.ToMapSlice(e.Data["forms"]) {
			formTemplate := utils.ToString(form["form"])
			if formTemplate == "" {
				continue
			}

			mon, err := models.Find(c.Pokemon, models.Criteria{"template": formTemplate})
			if err != nil {
				base, baseErr := models.Find(c.Pokemon, models.Criteria{
					"template": utils.ToString(e.Data["pokemon"]),
				})
				if baseErr != nil {
					continue
				}
				mon = base.Copy()
				mon.Kind = models.KindForm
				mon.Template = formTemplate
				mon.Form = forms[formTemplate]
				c.Pokemon = append(c.Pokemon, mon)
			}

			assetValue := utils.ToString(form["assetBundleValue"])
			assetSuffix := utils.ToString(form["assetBundleSuffix"])
			if assetValue != "" || assetSuffix != "" {
				mon.AssetValue = assetValue
				mon.AssetSuffix = assetSuffix
				mon.GenAsset()
			}
		}
	}

	// Pass 3: temp-evolution assets. The true base template sits in the
	// payload, not in the outer record key.
	tempEntries, err := c.records.Select(`^TEMPORARY_EVOLUTION_V\d{4}_POKEMON_.*`, "temporaryEvolutionSettings")
	if err != nil {
		return err
	}
	for _, e := range tempEntries {
		baseTemplate := utils.ToString(e.Data["pokemonId"])
		for _, raw := range utils.ToMapSlice(e.Data["temporaryEvolutions"]) {
			mon, err := models.Find(c.Pokemon, models.Criteria{
				"base_template":           baseTemplate,
				"temp_evolution_template": utils.ToString(raw["temporaryEvolutionId"]),
			})
			if err != nil {
				continue
			}
			mon.AssetValue = utils.ToString(raw["assetBundleValue"])
			mon.GenAsset()
		}
	}

	// Pass 4: evolution linking over the finished list. Temp-evolution
	// branches were already handled in pass 1.
	for _, mon := range c.Pokemon {
		for _, branch := range utils.ToMapSlice(mon.Raw["evolutionBranch"]) {
			if _, ok := branch["temporaryEvolution"]; ok {
				continue
			}

			target := utils.ToString(branch["form"])
			if target == "" {
				target = utils.ToString(branch["evolution"])
			}

			evo, err := models.Find(c.Pokemon, models.Criteria{"template": target})
			if err != nil {
				continue
			}
			mon.Evolutions = append(mon.Evolutions, evo)
		}
	}

	return nil
}

// moveRefs resolves a raw move-identifier list against the move list.
// Unknown identifiers are dropped.
func (c *Catalog) moveRefs(raw any) []*models.Move {
	var moves []*models.Move
	for _, template := range utils.ToStringSlice(raw) {
		if move, err := models.Find(c.Moves, models.Criteria{"template": template}); err == nil {
			moves = append(moves, move)
		}
	}
	return moves
}

// applyTyping appends the type references named by two raw payload fields.
// The secondary field is regularly absent; unresolvable types are dropped.
func (c *Catalog) applyTyping(mon *models.Pokemon, primaryField, secondaryField string) {
	for _, field := range []string{primaryField, secondaryField} {
		template := utils.ToString(mon.Raw[field])
		if template == "" {
			continue
		}
		if t, err := c.TypeRef(template); err == nil {
			mon.Types = append(mon.Types, t)
		}
	}
}
