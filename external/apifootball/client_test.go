package apifootball

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rmarques/futstats/internal/domain/fixture"
	"github.com/rmarques/futstats/internal/platform/logging"
	"github.com/rmarques/futstats/internal/platform/resilience"
	"github.com/rmarques/futstats/internal/usecase"
)

const liveFixturesPayload = `{
	"get": "fixtures",
	"parameters": {"live": "all"},
	"errors": [],
	"results": 1,
	"paging": {"current": 1, "total": 1},
	"response": [
		{
			"fixture": {
				"id": 871456,
				"referee": "Anderson Daronco",
				"timezone": "UTC",
				"date": "2026-08-29T19:00:00+00:00",
				"timestamp": 1788030000,
				"venue": {"id": 204, "name": "Maracanã", "city": "Rio de Janeiro"},
				"status": {"long": "Second Half", "short": "2H", "elapsed": 67}
			},
			"league": {"id": 71, "name": "Serie A", "country": "Brazil", "logo": "", "flag": "", "season": 2026, "round": "Regular Season - 21"},
			"teams": {
				"home": {"id": 127, "name": "Flamengo", "logo": "", "winner": true},
				"away": {"id": 118, "name": "Bahia", "logo": "", "winner": false}
			},
			"goals": {"home": 2, "away": 1}
		}
	]
}`

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{
		HTTPClient: server.Client(),
		BaseURL:    server.URL,
		APIKey:     "test-key",
		Logger:     logging.NewNop(),
	})
	return client, server
}

func TestLiveFixtures_MapsEnvelopeResponse(t *testing.T) {
	t.Parallel()

	var gotKey atomic.Value
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey.Store(r.Header.Get("x-api-key"))
		if r.URL.Path != "/fixtures" || r.URL.Query().Get("live") != "all" {
			t.Errorf("unexpected request %s?%s", r.URL.Path, r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(liveFixturesPayload))
	}))

	fixtures, err := client.LiveFixtures(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key, _ := gotKey.Load().(string); key != "test-key" {
		t.Fatalf("expected api key header, got=%q", key)
	}
	if len(fixtures) != 1 {
		t.Fatalf("expected one fixture, got=%d", len(fixtures))
	}

	got := fixtures[0]
	if got.ID != 871456 {
		t.Fatalf("expected fixture id 871456, got=%d", got.ID)
	}
	if got.Status != fixture.StatusSecondHalf {
		t.Fatalf("expected status 2H, got=%q", got.Status)
	}
	if got.Elapsed == nil || *got.Elapsed != 67 {
		t.Fatalf("expected elapsed=67, got=%v", got.Elapsed)
	}
	if got.Home.Name != "Flamengo" || got.Away.Name != "Bahia" {
		t.Fatalf("unexpected teams home=%q away=%q", got.Home.Name, got.Away.Name)
	}
	if got.HomeGoals == nil || *got.HomeGoals != 2 || got.AwayGoals == nil || *got.AwayGoals != 1 {
		t.Fatalf("unexpected score home=%v away=%v", got.HomeGoals, got.AwayGoals)
	}
	if got.League.ID != 71 || got.League.Season != 2026 {
		t.Fatalf("unexpected league ref %+v", got.League)
	}
	if got.KickoffAt.IsZero() {
		t.Fatal("expected kickoff time to be parsed")
	}
}

func TestLiveFixtures_EnvelopeErrorsFailTheCall(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"get":"fixtures","errors":{"token":"Error/Missing application key."},"results":0,"response":[]}`))
	}))

	_, err := client.LiveFixtures(context.Background())
	if err == nil {
		t.Fatal("expected error for populated envelope errors")
	}
}

func TestLiveFixtures_EmptyResponseIsNotAnError(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"get":"fixtures","errors":[],"results":0,"paging":{"current":1,"total":1},"response":[]}`))
	}))

	fixtures, err := client.LiveFixtures(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fixtures) != 0 {
		t.Fatalf("expected empty result, got=%d", len(fixtures))
	}
}

func TestExecuteRequest_RetriesTransientStatus(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"get":"fixtures","errors":[],"results":0,"response":[]}`))
	}))
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{
		HTTPClient: server.Client(),
		BaseURL:    server.URL,
		APIKey:     "test-key",
		MaxRetries: 2,
		Logger:     logging.NewNop(),
	})

	if _, err := client.LiveFixtures(context.Background()); err != nil {
		t.Fatalf("unexpected error after retry: %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("expected 2 attempts, got=%d", got)
	}
}

func TestExecuteRequest_DoesNotRetryClientError(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))

	if _, err := client.LiveFixtures(context.Background()); err == nil {
		t.Fatal("expected error for 404 response")
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("expected single attempt for non-retryable status, got=%d", got)
	}
}

func TestDoRaw_CircuitOpenReportsDependencyUnavailable(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{
		HTTPClient: server.Client(),
		BaseURL:    server.URL,
		APIKey:     "test-key",
		Logger:     logging.NewNop(),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 1,
			OpenTimeout:      time.Minute,
		},
	})

	ctx := context.Background()
	if _, err := client.LiveFixtures(ctx); err == nil {
		t.Fatal("expected upstream failure")
	}

	_, err := client.LiveFixtures(ctx)
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable once circuit opened, got=%v", err)
	}
}

func TestSearchTeams_RejectsShortQuery(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("provider must not be called for inputs that fail validation")
	}))

	_, err := client.SearchTeams(context.Background(), "fl")
	if !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got=%v", err)
	}
}

func TestFixturesByDate_RejectsMalformedDate(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("provider must not be called for inputs that fail validation")
	}))

	_, err := client.FixturesByDate(context.Background(), "29-08-2026")
	if !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got=%v", err)
	}
}
