package pokedex

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"pogodata/core/utils"
	"pogodata/feature/pokedex/models"

	"go.uber.org/zap"
)

// ErrNotLoaded is returned by every query until the first successful reload.
var ErrNotLoaded = errors.New("catalog not loaded yet")

// SourceFetcher retrieves the raw bytes of the three upstream dumps.
// core/remote provides the production implementation.
type SourceFetcher interface {
	Proto(ctx context.Context) ([]byte, error)
	GameMaster(ctx context.Context) ([]byte, error)
	Locale(ctx context.Context, language string) ([]byte, error)
}

// Service owns the live catalog. Reload builds a fresh catalog and swaps it
// in as a unit; queries only ever see a fully built generation.
type Service struct {
	fetcher         SourceFetcher
	logger          *zap.Logger
	defaultLanguage string

	mu      sync.RWMutex
	catalog *Catalog
}

// NewService creates a pokedex service. No catalog exists until Reload runs.
func NewService(fetcher SourceFetcher, logger *zap.Logger, defaultLanguage string) *Service {
	return &Service{
		fetcher:         fetcher,
		logger:          logger,
		defaultLanguage: defaultLanguage,
	}
}

// Reload fetches the three sources and rebuilds the whole catalog from
// scratch. An empty language selects the configured default. On failure the
// previous catalog stays live.
func (s *Service) Reload(ctx context.Context, language string) error {
	if language == "" {
		language = s.defaultLanguage
	}
	start := time.Now()

	protoRaw, err := s.fetcher.Proto(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch proto text: %w", err)
	}
	gmRaw, err := s.fetcher.GameMaster(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch game-master dump: %w", err)
	}
	localeRaw, err := s.fetcher.Locale(ctx, language)
	if err != nil {
		return fmt.Errorf("failed to fetch locale table: %w", err)
	}

	catalog, err := BuildCatalog(protoRaw, gmRaw, localeRaw, language, s.logger)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.catalog = catalog
	s.mu.Unlock()

	s.logger.Info("Catalog reloaded",
		zap.String("language", language),
		zap.Duration("took", time.Since(start)),
	)
	return nil
}

// Catalog returns the live catalog generation.
func (s *Service) Catalog() (*Catalog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.catalog == nil {
		return nil, ErrNotLoaded
	}
	return s.catalog, nil
}

// Pokemon returns the first creature matching the criteria. A positive
// costume criterion does not filter: the match is deep-copied, the copy's
// costume set and its asset identifier regenerated, leaving the catalog
// entity untouched.
func (s *Service) Pokemon(criteria models.Criteria) (*models.Pokemon, error) {
	c, err := s.Catalog()
	if err != nil {
		return nil, err
	}

	criteria, costume := splitCostume(criteria)
	mon, err := models.Find(c.Pokemon, criteria)
	if err != nil {
		return nil, err
	}

	if costume > 0 {
		mon = mon.Copy()
		mon.Costume = costume
		mon.GenAsset()
	}
	return mon, nil
}

// AllPokemon returns every creature matching the criteria.
func (s *Service) AllPokemon(criteria models.Criteria) ([]*models.Pokemon, error) {
	c, err := s.Catalog()
	if err != nil {
		return nil, err
	}
	criteria, _ = splitCostume(criteria)
	return models.FindAll(c.Pokemon, criteria), nil
}

// Type returns the first type matching the criteria. A bare template
// criterion is normalized with the POKEMON_TYPE_ prefix.
func (s *Service) Type(criteria models.Criteria) (*models.Type, error) {
	c, err := s.Catalog()
	if err != nil {
		return nil, err
	}
	return models.Find(c.Types, normalizeTypeCriteria(criteria))
}

// AllTypes returns every type matching the criteria.
func (s *Service) AllTypes(criteria models.Criteria) ([]*models.Type, error) {
	c, err := s.Catalog()
	if err != nil {
		return nil, err
	}
	return models.FindAll(c.Types, normalizeTypeCriteria(criteria)), nil
}

// Move returns the first move matching the criteria.
func (s *Service) Move(criteria models.Criteria) (*models.Move, error) {
	c, err := s.Catalog()
	if err != nil {
		return nil, err
	}
	return models.Find(c.Moves, criteria)
}

// AllMoves returns every move matching the criteria.
func (s *Service) AllMoves(criteria models.Criteria) ([]*models.Move, error) {
	c, err := s.Catalog()
	if err != nil {
		return nil, err
	}
	return models.FindAll(c.Moves, criteria), nil
}

// Item returns the first item matching the criteria.
func (s *Service) Item(criteria models.Criteria) (*models.Item, error) {
	c, err := s.Catalog()
	if err != nil {
		return nil, err
	}
	return models.Find(c.Items, criteria)
}

// AllItems returns every item matching the criteria.
func (s *Service) AllItems(criteria models.Criteria) ([]*models.Item, error) {
	c, err := s.Catalog()
	if err != nil {
		return nil, err
	}
	return models.FindAll(c.Items, criteria), nil
}

// Grunt returns the first grunt matching the criteria.
func (s *Service) Grunt(criteria models.Criteria) (*models.Grunt, error) {
	c, err := s.Catalog()
	if err != nil {
		return nil, err
	}
	return models.Find(c.Grunts, criteria)
}

// AllGrunts returns every grunt matching the criteria.
func (s *Service) AllGrunts(criteria models.Criteria) ([]*models.Grunt, error) {
	c, err := s.Catalog()
	if err != nil {
		return nil, err
	}
	return models.FindAll(c.Grunts, criteria), nil
}

// Enum resolves a named enum from the live catalog's proto text.
func (s *Service) Enum(name string, inverted bool) (any, error) {
	c, err := s.Catalog()
	if err != nil {
		return nil, err
	}
	if inverted {
		return c.EnumInverted(name)
	}
	return c.Enum(name)
}

// Locale translates a key against the live catalog's string table.
func (s *Service) Locale(key string) (string, error) {
	c, err := s.Catalog()
	if err != nil {
		return "", err
	}
	return c.Locale(key), nil
}

// Summary describes the live catalog generation.
type Summary struct {
	Language string `json:"language"`
	Pokemon  int    `json:"pokemon"`
	Types    int    `json:"types"`
	Moves    int    `json:"moves"`
	Items    int    `json:"items"`
	Grunts   int    `json:"grunts"`
}

// Summary returns entity counts for the live catalog.
func (s *Service) Summary() (*Summary, error) {
	c, err := s.Catalog()
	if err != nil {
		return nil, err
	}
	return &Summary{
		Language: c.Language,
		Pokemon:  len(c.Pokemon),
		Types:    len(c.Types),
		Moves:    len(c.Moves),
		Items:    len(c.Items),
		Grunts:   len(c.Grunts),
	}, nil
}

// splitCostume removes a positive costume criterion, returning it separately.
// Costume is not a stored attribute of catalog entities, so it must never
// participate in matching.
func splitCostume(criteria models.Criteria) (models.Criteria, int) {
	v, ok := criteria["costume"]
	if !ok {
		return criteria, 0
	}
	costume := utils.ToInt(v)
	if costume <= 0 {
		return criteria, 0
	}

	rest := make(models.Criteria, len(criteria))
	for k, val := range criteria {
		if k != "costume" {
			rest[k] = val
		}
	}
	return rest, costume
}

// normalizeTypeCriteria prefixes a bare type template with POKEMON_TYPE_
// without mutating the caller's map.
func normalizeTypeCriteria(criteria models.Criteria) models.Criteria {
	tpl, ok := criteria["template"].(string)
	if !ok || tpl == "" || strings.HasPrefix(tpl, "POKEMON_TYPE_") {
		return criteria
	}

	normalized := make(models.Criteria, len(criteria))
	for k, v := range criteria {
		normalized[k] = v
	}
	normalized["template"] = "POKEMON_TYPE_" + tpl
	return normalized
}
