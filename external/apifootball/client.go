package apifootball

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/rmarques/futstats/internal/domain/event"
	"github.com/rmarques/futstats/internal/domain/fixture"
	"github.com/rmarques/futstats/internal/domain/league"
	"github.com/rmarques/futstats/internal/domain/player"
	"github.com/rmarques/futstats/internal/domain/scorer"
	"github.com/rmarques/futstats/internal/domain/standing"
	"github.com/rmarques/futstats/internal/domain/team"
	"github.com/rmarques/futstats/internal/platform/logging"
	"github.com/rmarques/futstats/internal/platform/resilience"
	"github.com/rmarques/futstats/internal/usecase"
)

const (
	defaultBaseURL  = "https://v3.football.api-sports.io"
	apiKeyHeader    = "x-api-key"
	maxResponseSize = 6 << 20
)

var errAPIFootballTransient = crerr.New("api-football transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 15 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		apiKey:         strings.TrimSpace(cfg.APIKey),
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// LiveFixtures returns every match currently in play across all leagues.
func (c *Client) LiveFixtures(ctx context.Context) ([]fixture.Fixture, error) {
	items, err := fetch[fixtureItem](ctx, c, "/fixtures", map[string]string{"live": "all"})
	if err != nil {
		return nil, fmt.Errorf("fetch live fixtures: %w", err)
	}
	return mapFixtures(items), nil
}

// FixturesByDate returns all fixtures scheduled for a calendar day.
// The date must be in YYYY-MM-DD form.
func (c *Client) FixturesByDate(ctx context.Context, date string) ([]fixture.Fixture, error) {
	date = strings.TrimSpace(date)
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", usecase.ErrInvalidInput)
	}

	items, err := fetch[fixtureItem](ctx, c, "/fixtures", map[string]string{"date": date})
	if err != nil {
		return nil, fmt.Errorf("fetch fixtures date=%s: %w", date, err)
	}
	return mapFixtures(items), nil
}

// FixtureEvents returns the timeline of goals, cards, substitutions and
// VAR decisions for a single fixture, in provider order.
func (c *Client) FixtureEvents(ctx context.Context, fixtureID int64) ([]event.Event, error) {
	if fixtureID <= 0 {
		return nil, fmt.Errorf("%w: fixture id must be greater than zero", usecase.ErrInvalidInput)
	}

	items, err := fetch[eventItem](ctx, c, "/fixtures/events", map[string]string{
		"fixture": strconv.FormatInt(fixtureID, 10),
	})
	if err != nil {
		return nil, fmt.Errorf("fetch events fixture_id=%d: %w", fixtureID, err)
	}
	return mapEvents(fixtureID, items), nil
}

// SearchTeams queries the provider team index by name fragment.
func (c *Client) SearchTeams(ctx context.Context, query string) ([]team.Team, error) {
	query = strings.TrimSpace(query)
	if len(query) < 3 {
		return nil, fmt.Errorf("%w: search term must be at least 3 characters", usecase.ErrInvalidInput)
	}

	items, err := fetch[teamItem](ctx, c, "/teams", map[string]string{"search": query})
	if err != nil {
		return nil, fmt.Errorf("search teams query=%q: %w", query, err)
	}
	return mapTeams(items), nil
}

// TeamSquad returns the current roster of a team.
func (c *Client) TeamSquad(ctx context.Context, teamID int64) ([]player.Player, error) {
	if teamID <= 0 {
		return nil, fmt.Errorf("%w: team id must be greater than zero", usecase.ErrInvalidInput)
	}

	items, err := fetch[squadItem](ctx, c, "/players/squads", map[string]string{
		"team": strconv.FormatInt(teamID, 10),
	})
	if err != nil {
		return nil, fmt.Errorf("fetch squad team_id=%d: %w", teamID, err)
	}
	return mapSquads(items), nil
}

// LeaguesByCountry lists competitions hosted in a country. An empty
// country returns the provider's full league index.
func (c *Client) LeaguesByCountry(ctx context.Context, country string) ([]league.League, error) {
	query := map[string]string{}
	if country = strings.TrimSpace(country); country != "" {
		query["country"] = country
	}

	items, err := fetch[leagueItem](ctx, c, "/leagues", query)
	if err != nil {
		return nil, fmt.Errorf("fetch leagues country=%q: %w", country, err)
	}
	return mapLeagues(items), nil
}

// Standings returns the league table for a season. Cup competitions may
// return several groups; rows keep their group label.
func (c *Client) Standings(ctx context.Context, leagueID int64, season int) ([]standing.Row, error) {
	if leagueID <= 0 {
		return nil, fmt.Errorf("%w: league id must be greater than zero", usecase.ErrInvalidInput)
	}
	if season <= 0 {
		return nil, fmt.Errorf("%w: season must be greater than zero", usecase.ErrInvalidInput)
	}

	items, err := fetch[standingsItem](ctx, c, "/standings", map[string]string{
		"league": strconv.FormatInt(leagueID, 10),
		"season": strconv.Itoa(season),
	})
	if err != nil {
		return nil, fmt.Errorf("fetch standings league_id=%d season=%d: %w", leagueID, season, err)
	}
	return mapStandings(items), nil
}

// TopScorers returns the season scoring chart for a league.
func (c *Client) TopScorers(ctx context.Context, leagueID int64, season int) ([]scorer.Scorer, error) {
	if leagueID <= 0 {
		return nil, fmt.Errorf("%w: league id must be greater than zero", usecase.ErrInvalidInput)
	}
	if season <= 0 {
		return nil, fmt.Errorf("%w: season must be greater than zero", usecase.ErrInvalidInput)
	}

	items, err := fetch[scorerItem](ctx, c, "/players/topscorers", map[string]string{
		"league": strconv.FormatInt(leagueID, 10),
		"season": strconv.Itoa(season),
	})
	if err != nil {
		return nil, fmt.Errorf("fetch top scorers league_id=%d season=%d: %w", leagueID, season, err)
	}
	return mapScorers(items), nil
}

// fetch runs one provider query and unwraps the response envelope. A
// populated errors object in an otherwise successful payload is a hard
// failure, never an empty result.
func fetch[T any](ctx context.Context, c *Client, path string, query map[string]string) ([]T, error) {
	raw, err := c.doRaw(ctx, path, query)
	if err != nil {
		return nil, err
	}

	var env envelope[T]
	if err := sonic.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode provider payload: %w", err)
	}
	if messages := env.errorMessages(); len(messages) > 0 {
		return nil, fmt.Errorf("provider rejected request: %s", strings.Join(messages, "; "))
	}

	return env.Response, nil
}

func (c *Client) doRaw(ctx context.Context, path string, query map[string]string) ([]byte, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "api-football circuit breaker rejected request", "state", c.breaker.State())
			return nil, fmt.Errorf("%w: football data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}

	fullURL := c.baseURL + path
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && crerr.Is(reqErr, errAPIFootballTransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return nil, err
	}

	raw, ok := out.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected response payload type %T", out)
	}
	return raw, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")
		req.Header.Set(apiKeyHeader, c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %s", errAPIFootballTransient, sanitizeSensitiveText(err.Error(), c.apiKey))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = fmt.Errorf("%w: read response body: %v", errAPIFootballTransient, readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case isRetryableStatus(resp.StatusCode):
				lastErr = fmt.Errorf("%w: provider status=%d body=%s", errAPIFootballTransient, resp.StatusCode, abbreviateBody(raw))
			default:
				return nil, fmt.Errorf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("provider request failed")
	}
	c.logger.WarnContext(ctx, "api-football request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func isRetryableStatus(status int) bool {
	switch status {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

func sanitizeSensitiveText(value, key string) string {
	value = strings.TrimSpace(value)
	if value == "" || key == "" {
		return value
	}
	return strings.ReplaceAll(value, key, "REDACTED")
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	body := strings.TrimSpace(string(raw))
	if len(body) > limit {
		return body[:limit] + "..."
	}
	return body
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
