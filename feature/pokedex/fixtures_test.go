package pokedex_test

import (
	"context"
	"encoding/json"
)

// protoFixture carries every enum definition the build depends on.
const protoFixture = `syntax = "proto3";

enum Form {
	FORM_UNSET = 0;
	PIKACHU_COSPLAY = 1;
}

enum HoloTemporaryEvolutionId {
	TEMP_EVOLUTION_UNSET = 0;
	TEMP_EVOLUTION_MEGA = 1;
}

enum HoloPokemonId {
	MISSINGNO = 0;
	BULBASAUR = 1;
	IVYSAUR = 2;
	VENUSAUR = 3;
	PIKACHU = 25;
}

enum HoloPokemonType {
	POKEMON_TYPE_NONE = 0;
	POKEMON_TYPE_POISON = 4;
	POKEMON_TYPE_GRASS = 12;
	POKEMON_TYPE_ELECTRIC = 13;
}

enum HoloPokemonMove {
	MOVE_UNSET = 0;
	THUNDERBOLT = 18;
	SOLAR_BEAM = 116;
	THUNDER_SHOCK = 205;
	VINE_WHIP = 214;
}

enum Item {
	ITEM_UNKNOWN = 0;
	ITEM_POTION = 101;
}

enum InvasionCharacter {
	CHARACTER_UNSET = 0;
	CHARACTER_GRUNT_MALE = 4;
}
`

const gameMasterFixture = `[
  {"templateId": "COMBAT_V0214_MOVE_VINE_WHIP", "data": {"combatMove": {"uniqueId": "VINE_WHIP", "type": "POKEMON_TYPE_GRASS", "power": 5, "energyDelta": 8}}},
  {"templateId": "COMBAT_V0116_MOVE_SOLAR_BEAM", "data": {"combatMove": {"uniqueId": "SOLAR_BEAM", "type": "POKEMON_TYPE_GRASS", "power": 150, "energyDelta": -80}}},
  {"templateId": "COMBAT_V0205_MOVE_THUNDER_SHOCK", "data": {"combatMove": {"uniqueId": "THUNDER_SHOCK", "type": "POKEMON_TYPE_ELECTRIC", "power": 3, "energyDelta": 9}}},
  {"templateId": "COMBAT_V0018_MOVE_THUNDERBOLT", "data": {"combatMove": {"uniqueId": "THUNDERBOLT", "type": "POKEMON_TYPE_ELECTRIC", "power": 90, "energyDelta": -50}}},
  {"templateId": "V0001_POKEMON_BULBASAUR", "data": {"pokemonSettings": {
    "pokemonId": "BULBASAUR",
    "type": "POKEMON_TYPE_GRASS",
    "type2": "POKEMON_TYPE_POISON",
    "quickMoves": ["VINE_WHIP"],
    "cinematicMoves": ["SOLAR_BEAM"],
    "stats": {"baseStamina": 128, "baseAttack": 118, "baseDefense": 111},
    "evolutionBranch": [{"evolution": "IVYSAUR", "candyCost": 25}]
  }}},
  {"templateId": "V0002_POKEMON_IVYSAUR", "data": {"pokemonSettings": {
    "pokemonId": "IVYSAUR",
    "type": "POKEMON_TYPE_GRASS",
    "type2": "POKEMON_TYPE_POISON",
    "quickMoves": ["VINE_WHIP"],
    "cinematicMoves": ["SOLAR_BEAM"],
    "stats": {"baseStamina": 155, "baseAttack": 151, "baseDefense": 143},
    "evolutionBranch": [{"evolution": "VENUSAUR", "candyCost": 100}]
  }}},
  {"templateId": "V0003_POKEMON_VENUSAUR", "data": {"pokemonSettings": {
    "pokemonId": "VENUSAUR",
    "type": "POKEMON_TYPE_GRASS",
    "type2": "POKEMON_TYPE_POISON",
    "quickMoves": ["VINE_WHIP"],
    "cinematicMoves": ["SOLAR_BEAM"],
    "stats": {"baseStamina": 190, "baseAttack": 198, "baseDefense": 189},
    "evolutionBranch": [{"temporaryEvolution": "TEMP_EVOLUTION_MEGA", "temporaryEvolutionEnergyCost": 200}],
    "tempEvoOverrides": [{
      "tempEvoId": "TEMP_EVOLUTION_MEGA",
      "typeOverride1": "POKEMON_TYPE_GRASS",
      "typeOverride2": "POKEMON_TYPE_POISON",
      "stats": {"baseStamina": 190, "baseAttack": 241, "baseDefense": 246}
    }]
  }}},
  {"templateId": "V0025_POKEMON_PIKACHU", "data": {"pokemonSettings": {
    "pokemonId": "PIKACHU",
    "type": "POKEMON_TYPE_ELECTRIC",
    "quickMoves": ["THUNDER_SHOCK"],
    "cinematicMoves": ["THUNDERBOLT"],
    "stats": {"baseStamina": 111, "baseAttack": 112, "baseDefense": 96},
    "evolutionBranch": [{"evolution": "RAICHU", "candyCost": 50}]
  }}},
  {"templateId": "FORMS_V0025_POKEMON_PIKACHU", "data": {"formSettings": {
    "pokemon": "PIKACHU",
    "forms": [
      {"form": "PIKACHU_COSPLAY", "assetBundleValue": 1},
      {"form": "PIKACHU"}
    ]
  }}},
  {"templateId": "TEMPORARY_EVOLUTION_V0003_POKEMON_VENUSAUR", "data": {"temporaryEvolutionSettings": {
    "pokemonId": "VENUSAUR",
    "temporaryEvolutions": [{"temporaryEvolutionId": "TEMP_EVOLUTION_MEGA", "assetBundleValue": 2}]
  }}},
  {"templateId": "ITEM_POTION", "data": {"itemSettings": {"itemId": "ITEM_POTION", "category": "ITEM_CATEGORY_HEALING"}}},
  {"templateId": "CHARACTER_GRUNT_MALE", "data": {"invasionNpcDisplaySettings": {"trainerName": "combat_grunt_name_male"}}}
]`

var localeFixture = mustLocaleJSON([]string{
	"pokemon_name_0001", "Bulbasaur",
	"pokemon_name_0002", "Ivysaur",
	"pokemon_name_0003", "Venusaur",
	"pokemon_name_0003_0001", "Mega Venusaur",
	"pokemon_name_0025", "Pikachu",
	"pokemon_type_none", "None",
	"pokemon_type_poison", "Poison",
	"pokemon_type_grass", "Grass",
	"pokemon_type_electric", "Electric",
	"move_name_0018", "Thunderbolt",
	"move_name_0116", "Solar Beam",
	"move_name_0205", "Thunder Shock",
	"move_name_0214", "Vine Whip",
	"item_potion_name", "Potion",
	"combat_grunt_name_male", "Grunt",
})

func mustLocaleJSON(pairs []string) []byte {
	raw, err := json.Marshal(map[string]any{"data": pairs})
	if err != nil {
		panic(err)
	}
	return raw
}

// stubFetcher serves the fixtures without any network.
type stubFetcher struct {
	proto      []byte
	gameMaster []byte
	locale     []byte
	err        error
}

func newStubFetcher() *stubFetcher {
	return &stubFetcher{
		proto:      []byte(protoFixture),
		gameMaster: []byte(gameMasterFixture),
		locale:     localeFixture,
	}
}

func (s *stubFetcher) Proto(ctx context.Context) ([]byte, error) {
	return s.proto, s.err
}

func (s *stubFetcher) GameMaster(ctx context.Context) ([]byte, error) {
	return s.gameMaster, s.err
}

func (s *stubFetcher) Locale(ctx context.Context, language string) ([]byte, error) {
	return s.locale, s.err
}
