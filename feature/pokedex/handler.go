package pokedex

import (
	"errors"

	"pogodata/core/logger"
	"pogodata/core/utils"
	"pogodata/feature/pokedex/models"
	"pogodata/feature/pokedex/protos"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the pokedex catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the pokedex routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/pokedex")
	group.Get("/pokemon", h.HandleGetPokemon)
	group.Get("/types", h.HandleGetTypes)
	group.Get("/moves", h.HandleGetMoves)
	group.Get("/items", h.HandleGetItems)
	group.Get("/grunts", h.HandleGetGrunts)
	group.Get("/enums/:name", h.HandleGetEnum)
	group.Get("/locale/:key", h.HandleGetLocale)
	group.Get("/summary", h.HandleGetSummary)
	group.Post("/reload", h.HandleReload)
}

// Criteria keys accepted per entity kind; everything else in the query string
// (e.g. "all") is ignored.
var (
	pokemonKeys = []string{"template", "id", "form", "name", "costume", "kind",
		"base_template", "temp_evolution_template", "temp_evolution_id", "asset"}
	typeKeys  = []string{"template", "id", "name"}
	moveKeys  = []string{"template", "id", "name", "power", "energy"}
	itemKeys  = []string{"template", "id", "name", "category"}
	gruntKeys = []string{"template", "id", "name"}
)

var intKeys = map[string]bool{
	"id":                true,
	"form":              true,
	"costume":           true,
	"temp_evolution_id": true,
	"power":             true,
	"energy":            true,
}

// criteriaFromQuery turns the allow-listed query parameters into equality
// criteria, converting the numeric ones.
func criteriaFromQuery(c *fiber.Ctx, keys []string) models.Criteria {
	criteria := models.Criteria{}
	for _, key := range keys {
		value := c.Query(key)
		if value == "" {
			continue
		}
		if intKeys[key] {
			criteria[key] = utils.ToInt(value)
		} else {
			criteria[key] = value
		}
	}
	return criteria
}

// statusFromErr maps service errors onto HTTP status codes.
func statusFromErr(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound), errors.Is(err, protos.ErrEnumNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrNotLoaded):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

func errorJSON(c *fiber.Ctx, err error) error {
	return c.Status(statusFromErr(err)).JSON(fiber.Map{"error": err.Error()})
}

// HandleGetPokemon returns creatures matching the query criteria.
// @Summary Query Pokemon
// @Description Find Pokemon by attribute equality. A positive costume value is applied to a copy of the match instead of filtering.
// @Tags pokedex
// @Produce json
// @Param template query string false "Template identifier (e.g. 'PIKACHU')"
// @Param id query int false "Pokedex id"
// @Param form query int false "Form enum value"
// @Param costume query int false "Costume enum value applied to the returned copy"
// @Param all query bool false "Return every match instead of the first"
// @Success 200 {object} models.Pokemon "Matching Pokemon"
// @Failure 404 {object} map[string]string "No match"
// @Failure 503 {object} map[string]string "Catalog not loaded"
// @Router /pokedex/pokemon [get]
func (h *Handler) HandleGetPokemon(c *fiber.Ctx) error {
	criteria := criteriaFromQuery(c, pokemonKeys)

	if c.QueryBool("all") {
		list, err := h.service.AllPokemon(criteria)
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(list)
	}

	mon, err := h.service.Pokemon(criteria)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(mon)
}

// HandleGetTypes returns damage types matching the query criteria.
// @Summary Query Types
// @Tags pokedex
// @Produce json
// @Param template query string false "Type template, POKEMON_TYPE_ prefix optional"
// @Param all query bool false "Return every match instead of the first"
// @Success 200 {object} models.Type "Matching type"
// @Router /pokedex/types [get]
func (h *Handler) HandleGetTypes(c *fiber.Ctx) error {
	criteria := criteriaFromQuery(c, typeKeys)

	if c.QueryBool("all") {
		list, err := h.service.AllTypes(criteria)
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(list)
	}

	t, err := h.service.Type(criteria)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(t)
}

// HandleGetMoves returns moves matching the query criteria.
// @Summary Query Moves
// @Tags pokedex
// @Produce json
// @Param template query string false "Move template (e.g. 'THUNDER_SHOCK')"
// @Param all query bool false "Return every match instead of the first"
// @Success 200 {object} models.Move "Matching move"
// @Router /pokedex/moves [get]
func (h *Handler) HandleGetMoves(c *fiber.Ctx) error {
	criteria := criteriaFromQuery(c, moveKeys)

	if c.QueryBool("all") {
		list, err := h.service.AllMoves(criteria)
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(list)
	}

	move, err := h.service.Move(criteria)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(move)
}

// HandleGetItems returns items matching the query criteria.
// @Summary Query Items
// @Tags pokedex
// @Produce json
// @Param template query string false "Item template (e.g. 'ITEM_POTION')"
// @Param all query bool false "Return every match instead of the first"
// @Success 200 {object} models.Item "Matching item"
// @Router /pokedex/items [get]
func (h *Handler) HandleGetItems(c *fiber.Ctx) error {
	criteria := criteriaFromQuery(c, itemKeys)

	if c.QueryBool("all") {
		list, err := h.service.AllItems(criteria)
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(list)
	}

	item, err := h.service.Item(criteria)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(item)
}

// HandleGetGrunts returns adversary archetypes matching the query criteria.
// @Summary Query Grunts
// @Tags pokedex
// @Produce json
// @Param template query string false "Grunt template"
// @Param all query bool false "Return every match instead of the first"
// @Success 200 {object} models.Grunt "Matching grunt"
// @Router /pokedex/grunts [get]
func (h *Handler) HandleGetGrunts(c *fiber.Ctx) error {
	criteria := criteriaFromQuery(c, gruntKeys)

	if c.QueryBool("all") {
		list, err := h.service.AllGrunts(criteria)
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(list)
	}

	grunt, err := h.service.Grunt(criteria)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(grunt)
}

// HandleGetEnum returns a named enum mapping from the proto text.
// @Summary Resolve Enum
// @Tags pokedex
// @Produce json
// @Param name path string true "Enum name (case-insensitive, e.g. 'Form')"
// @Param inverted query bool false "Return value-to-symbol mapping"
// @Success 200 {object} map[string]int "Enum mapping"
// @Failure 404 {object} map[string]string "Unknown enum"
// @Router /pokedex/enums/{name} [get]
func (h *Handler) HandleGetEnum(c *fiber.Ctx) error {
	mapping, err := h.service.Enum(c.Params("name"), c.QueryBool("inverted"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(mapping)
}

// HandleGetLocale translates a locale key.
// @Summary Translate Locale Key
// @Tags pokedex
// @Produce json
// @Param key path string true "Locale key (e.g. 'pokemon_name_0025')"
// @Success 200 {object} map[string]string "Translation, '?' when unknown"
// @Router /pokedex/locale/{key} [get]
func (h *Handler) HandleGetLocale(c *fiber.Ctx) error {
	value, err := h.service.Locale(c.Params("key"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"key": c.Params("key"), "value": value})
}

// HandleGetSummary returns entity counts for the live catalog.
// @Summary Catalog Summary
// @Tags pokedex
// @Produce json
// @Success 200 {object} Summary "Catalog summary"
// @Router /pokedex/summary [get]
func (h *Handler) HandleGetSummary(c *fiber.Ctx) error {
	summary, err := h.service.Summary()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(summary)
}

// HandleReload rebuilds the whole catalog from the upstream sources.
// @Summary Reload Catalog
// @Description Re-fetches all three sources and rebuilds the catalog from scratch. The previous catalog stays live until the new one is complete.
// @Tags pokedex
// @Produce json
// @Param language query string false "Translation language (default from config)"
// @Success 200 {object} Summary "Summary of the new catalog"
// @Failure 502 {object} map[string]string "Reload failed"
// @Router /pokedex/reload [post]
func (h *Handler) HandleReload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if err := h.service.Reload(c.Context(), c.Query("language")); err != nil {
		l.Error("Catalog reload failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}

	summary, err := h.service.Summary()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(summary)
}
