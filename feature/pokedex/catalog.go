package pokedex

import (
	"encoding/json"
	"fmt"
	"strings"

	"pogodata/feature/pokedex/gamemaster"
	"pogodata/feature/pokedex/locale"
	"pogodata/feature/pokedex/models"
	"pogodata/feature/pokedex/protos"

	"go.uber.org/zap"
)

// Catalog is one fully built generation of game entities. A reload builds a
// fresh Catalog from scratch and publishes it as a unit; published catalogs
// are never mutated.
type Catalog struct {
	Language string

	Pokemon []*models.Pokemon
	Types   []*models.Type
	Moves   []*models.Move
	Items   []*models.Item
	Grunts  []*models.Grunt

	locale  *locale.Table
	enums   *protos.Index
	records *gamemaster.Source
}

// localeDump is the wire shape of the locale source: a flat array of
// alternating keys and values under "data".
type localeDump struct {
	Data []string `json:"data"`
}

// BuildCatalog assembles a Catalog from the raw bytes of the three upstream
// dumps. The self-contained lists (types, items, moves, grunts) are built
// first; the Pokemon graph runs last because it references types, moves and
// enum data.
func BuildCatalog(protoRaw, gmRaw, localeRaw []byte, language string, logger *zap.Logger) (*Catalog, error) {
	var dump localeDump
	if err := json.Unmarshal(localeRaw, &dump); err != nil {
		return nil, fmt.Errorf("failed to decode locale dump: %w", err)
	}
	table, err := locale.NewTable(dump.Data)
	if err != nil {
		return nil, err
	}

	records, err := gamemaster.Decode(gmRaw)
	if err != nil {
		return nil, err
	}

	c := &Catalog{
		Language: language,
		locale:   table,
		enums:    protos.NewIndex(string(protoRaw)),
		records:  records,
	}

	if err := c.buildTypes(); err != nil {
		return nil, fmt.Errorf("failed to build type list: %w", err)
	}
	if err := c.buildItems(); err != nil {
		return nil, fmt.Errorf("failed to build item list: %w", err)
	}
	if err := c.buildMoves(); err != nil {
		return nil, fmt.Errorf("failed to build move list: %w", err)
	}
	if err := c.buildGrunts(); err != nil {
		return nil, fmt.Errorf("failed to build grunt list: %w", err)
	}
	if err := c.buildPokemon(); err != nil {
		return nil, fmt.Errorf("failed to build pokemon list: %w", err)
	}

	logger.Info("Catalog built",
		zap.String("language", language),
		zap.Int("pokemon", len(c.Pokemon)),
		zap.Int("types", len(c.Types)),
		zap.Int("moves", len(c.Moves)),
		zap.Int("items", len(c.Items)),
		zap.Int("grunts", len(c.Grunts)),
	)
	return c, nil
}

// Enum resolves a named enum from the catalog's proto text.
func (c *Catalog) Enum(name string) (map[string]int, error) {
	return c.enums.Resolve(name)
}

// EnumInverted resolves a named enum with values and symbols swapped.
func (c *Catalog) EnumInverted(name string) (map[int]string, error) {
	return c.enums.ResolveInverted(name)
}

// Locale translates a key, returning "?" for unknown keys.
func (c *Catalog) Locale(key string) string {
	return c.locale.Get(key)
}

// TypeRef resolves a type reference by template, accepting bare names
// without the POKEMON_TYPE_ prefix.
func (c *Catalog) TypeRef(template string) (*models.Type, error) {
	if !strings.HasPrefix(template, "POKEMON_TYPE_") {
		template = "POKEMON_TYPE_" + template
	}
	return models.Find(c.Types, models.Criteria{"template": template})
}
