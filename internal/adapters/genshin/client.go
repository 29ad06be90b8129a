package genshin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/teyvatdex/catalog/internal/domain/entities"
	"github.com/teyvatdex/catalog/internal/infrastructure/config"
	"github.com/teyvatdex/catalog/internal/infrastructure/logger"
	"github.com/teyvatdex/catalog/internal/ports"
	"golang.org/x/time/rate"
)

// Stat bases per rarity star. The upstream API exposes no combat stats, so
// imported characters get deterministic values derived from rarity.
const (
	healthPerStar = 200
	attackPerStar = 20
)

// Client talks to the public Genshin character API. Requests are throttled
// with a token-bucket limiter so bulk imports stay polite.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	log     *logger.Logger
}

// NewClient creates a character API client
func NewClient(cfg config.APIConfig, log *logger.Logger) ports.CharacterAPI {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		log:     log.WithComponent("genshin"),
	}
}

// ListCharacterNames returns every character slug the API knows about.
func (c *Client) ListCharacterNames(ctx context.Context) ([]string, error) {
	var names []string
	if err := c.getJSON(ctx, c.baseURL+"/characters", &names); err != nil {
		return nil, fmt.Errorf("list characters: %w", err)
	}
	c.log.Debugw("character list fetched", "count", len(names))
	return names, nil
}

// FetchCharacter returns the detail record for one character slug. A 404 from
// the API surfaces as entities.ErrDetailUnavailable.
func (c *Client) FetchCharacter(ctx context.Context, name string) (*ports.CharacterDetail, error) {
	var detail ports.CharacterDetail
	endpoint := c.baseURL + "/characters/" + url.PathEscape(name)
	if err := c.getJSON(ctx, endpoint, &detail); err != nil {
		return nil, fmt.Errorf("fetch character %q: %w", name, err)
	}
	detail.Slug = name
	return &detail, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	c.log.Debugw("api request", "url", endpoint, "status", resp.StatusCode, "duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode == http.StatusNotFound {
		return entities.ErrDetailUnavailable
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// ToCharacter converts an API detail record into a catalog entry with the
// caller-assigned id.
func (c *Client) ToCharacter(detail *ports.CharacterDetail, id int) entities.Character {
	name := detail.Name
	if name == "" {
		name = detail.Slug
	}

	charType := detail.Vision
	if charType == "" {
		charType = "Unknown"
	}

	rarity := detail.Rarity
	if rarity <= 0 {
		rarity = 4
	}

	return entities.Character{
		ID:       id,
		Name:     name,
		Type:     charType,
		Health:   rarity * healthPerStar,
		Attack:   rarity * attackPerStar,
		ImageURL: c.baseURL + "/characters/" + url.PathEscape(detail.Slug) + "/icon-big",
	}
}
