package gamemaster_test

import (
	"testing"

	"pogodata/feature/pokedex/gamemaster"

	"github.com/stretchr/testify/assert"
)

const dump = `[
  {"templateId": "V0001_POKEMON_BULBASAUR", "data": {"pokemonSettings": {"pokemonId": "BULBASAUR"}}},
  {"templateId": "ITEM_POTION", "data": {"itemSettings": {"itemId": "ITEM_POTION"}}},
  {"templateId": "V0025_POKEMON_PIKACHU", "data": {"pokemonSettings": {"pokemonId": "PIKACHU"}}},
  {"templateId": "V0026_POKEMON_RAICHU", "data": {}}
]`

func TestSelect(t *testing.T) {
	source, err := gamemaster.Decode([]byte(dump))
	assert.NoError(t, err)
	assert.Equal(t, 4, source.Len())

	entries, err := source.Select(`^V\d{4}_POKEMON_`, "")
	assert.NoError(t, err)
	assert.Len(t, entries, 3)

	// Input order is preserved.
	assert.Equal(t, "V0001_POKEMON_BULBASAUR", entries[0].TemplateID)
	assert.Equal(t, "V0025_POKEMON_PIKACHU", entries[1].TemplateID)
	assert.Equal(t, "V0026_POKEMON_RAICHU", entries[2].TemplateID)
}

func TestSelectSubkey(t *testing.T) {
	source, err := gamemaster.Decode([]byte(dump))
	assert.NoError(t, err)

	entries, err := source.Select(`^V\d{4}_POKEMON_`, "pokemonSettings")
	assert.NoError(t, err)
	assert.Len(t, entries, 3)

	assert.Equal(t, "PIKACHU", entries[1].Data["pokemonId"])

	// Missing subkey yields an empty payload, not nil and not the outer map.
	assert.NotNil(t, entries[2].Data)
	assert.Empty(t, entries[2].Data)
}

func TestSelectPartialMatch(t *testing.T) {
	source, err := gamemaster.Decode([]byte(dump))
	assert.NoError(t, err)

	entries, err := source.Select(`POKEMON`, "")
	assert.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestSelectBadPattern(t *testing.T) {
	source := gamemaster.NewSource(nil)

	_, err := source.Select(`(`, "")
	assert.Error(t, err)
}

func TestDecodeMalformed(t *testing.T) {
	_, err := gamemaster.Decode([]byte(`{"not": "a list"}`))
	assert.Error(t, err)
}
