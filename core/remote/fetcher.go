package remote

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"pogodata/core/storage"

	"go.uber.org/zap"
)

// Dump names used for mirror object keys.
const (
	DumpProto      = "base.proto"
	DumpGameMaster = "gamemaster.json"
)

// Fetcher retrieves the three upstream dumps over HTTP. When a Mirror is
// attached, every successful fetch is mirrored and a failed fetch falls back
// to the last mirrored copy.
type Fetcher struct {
	cfg    Config
	client *http.Client
	mirror *storage.Mirror
	logger *zap.Logger
}

// NewFetcher creates a Fetcher. mirror may be nil to disable mirroring.
func NewFetcher(cfg Config, mirror *storage.Mirror, logger *zap.Logger) *Fetcher {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	return &Fetcher{
		cfg:    cfg,
		client: &http.Client{Timeout: time.Duration(timeout) * time.Second},
		mirror: mirror,
		logger: logger,
	}
}

// LocaleDumpName returns the mirror object name for a language's locale table.
func LocaleDumpName(language string) string {
	return "locale_" + strings.ToLower(language) + ".json"
}

// Proto fetches the protocol description text.
func (f *Fetcher) Proto(ctx context.Context) ([]byte, error) {
	return f.fetch(ctx, DumpProto, f.cfg.ProtoURL)
}

// GameMaster fetches the game-master settings dump.
func (f *Fetcher) GameMaster(ctx context.Context) ([]byte, error) {
	return f.fetch(ctx, DumpGameMaster, f.cfg.GameMasterURL)
}

// Locale fetches the locale string table for the given language.
func (f *Fetcher) Locale(ctx context.Context, language string) ([]byte, error) {
	url := strings.ReplaceAll(f.cfg.LocaleURL, "{lang}", strings.ToLower(language))
	return f.fetch(ctx, LocaleDumpName(language), url)
}

func (f *Fetcher) fetch(ctx context.Context, name, url string) ([]byte, error) {
	data, err := f.get(ctx, url)
	if err != nil {
		if f.mirror == nil {
			return nil, err
		}
		// Upstream is down; serve the last mirrored copy if we have one.
		f.logger.Warn("Upstream fetch failed, trying mirror",
			zap.String("dump", name), zap.Error(err))
		mirrored, mErr := f.mirror.Get(ctx, name)
		if mErr != nil {
			return nil, fmt.Errorf("fetch %s failed (%w) and mirror unavailable: %v", name, err, mErr)
		}
		return mirrored, nil
	}

	if f.mirror != nil {
		if err := f.mirror.Put(ctx, name, data); err != nil {
			// Mirroring is best-effort; the fresh copy is what matters.
			f.logger.Warn("Failed to mirror dump", zap.String("dump", name), zap.Error(err))
		}
	}
	return data, nil
}

func (f *Fetcher) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d fetching %s", resp.StatusCode, url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body of %s: %w", url, err)
	}
	return data, nil
}
