package locale_test

import (
	"testing"

	"pogodata/feature/pokedex/locale"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	table, err := locale.NewTable([]string{
		"pokemon_name_0025", "Pikachu",
		"pokemon_name_0001", "Bulbasaur",
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, table.Len())

	assert.Equal(t, "Pikachu", table.Get("pokemon_name_0025"))
	assert.Equal(t, "Bulbasaur", table.Get("pokemon_name_0001"))
}

func TestGetCaseInsensitive(t *testing.T) {
	table, err := locale.NewTable([]string{"pokemon_name_0025", "Pikachu"})
	assert.NoError(t, err)

	assert.Equal(t, "Pikachu", table.Get("POKEMON_NAME_0025"))
}

func TestGetMissingKey(t *testing.T) {
	table, err := locale.NewTable([]string{"pokemon_name_0025", "Pikachu"})
	assert.NoError(t, err)

	assert.Equal(t, "?", table.Get("missing_key"))
}

func TestNewTableOddLength(t *testing.T) {
	_, err := locale.NewTable([]string{"k0", "v0", "dangling"})
	assert.ErrorIs(t, err, locale.ErrOddPairs)
}

func TestNewTableEmpty(t *testing.T) {
	table, err := locale.NewTable(nil)
	assert.NoError(t, err)
	assert.Equal(t, "?", table.Get("anything"))
}
