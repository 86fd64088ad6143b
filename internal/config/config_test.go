package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ServiceName != "futstats-api" {
		t.Fatalf("unexpected ServiceName: %q", cfg.ServiceName)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected HTTPAddr: %q", cfg.HTTPAddr)
	}
	if cfg.CacheTTL != time.Minute {
		t.Fatalf("unexpected CacheTTL: %s", cfg.CacheTTL)
	}
	if cfg.SessionTTL != 720*time.Hour {
		t.Fatalf("unexpected SessionTTL: %s", cfg.SessionTTL)
	}
	if cfg.SearchSupplementThreshold != 5 {
		t.Fatalf("unexpected SearchSupplementThreshold: %d", cfg.SearchSupplementThreshold)
	}
	if cfg.APIFootballEnabled {
		t.Fatalf("expected provider disabled by default")
	}
	if cfg.AccountDBPath != "" {
		t.Fatalf("expected empty AccountDBPath by default, got %q", cfg.AccountDBPath)
	}
}

func TestLoad_ProviderRequiresKeyWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APIFOOTBALL_ENABLED", "true")
	t.Setenv("APIFOOTBALL_API_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when APIFOOTBALL_ENABLED=true without APIFOOTBALL_API_KEY")
	}
}

func TestLoad_ProviderConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APIFOOTBALL_ENABLED", "true")
	t.Setenv("APIFOOTBALL_API_KEY", "key-123")
	t.Setenv("APIFOOTBALL_TIMEOUT", "8s")
	t.Setenv("APIFOOTBALL_MAX_RETRIES", "3")
	t.Setenv("APIFOOTBALL_CIRCUIT_FAILURE_COUNT", "7")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.APIFootballEnabled {
		t.Fatalf("expected APIFootballEnabled=true")
	}
	if cfg.APIFootballAPIKey != "key-123" {
		t.Fatalf("unexpected APIFootballAPIKey")
	}
	if cfg.APIFootballTimeout != 8*time.Second {
		t.Fatalf("unexpected APIFootballTimeout: %s", cfg.APIFootballTimeout)
	}
	if cfg.APIFootballMaxRetries != 3 {
		t.Fatalf("unexpected APIFootballMaxRetries: %d", cfg.APIFootballMaxRetries)
	}
	if cfg.APIFootballCircuitFailureCount != 7 {
		t.Fatalf("unexpected APIFootballCircuitFailureCount: %d", cfg.APIFootballCircuitFailureCount)
	}
}

func TestLoad_WarmLeagueIDs(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("WARM_LEAGUE_IDS", "71, 39,140")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	want := []int64{71, 39, 140}
	if len(cfg.WarmLeagueIDs) != len(want) {
		t.Fatalf("expected %d league ids, got %d", len(want), len(cfg.WarmLeagueIDs))
	}
	for i, id := range want {
		if cfg.WarmLeagueIDs[i] != id {
			t.Fatalf("expected league id %d at index %d, got %d", id, i, cfg.WarmLeagueIDs[i])
		}
	}
}

func TestLoad_WarmLeagueIDsRejectsGarbage(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("WARM_LEAGUE_IDS", "71,abc")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for non-numeric WARM_LEAGUE_IDS")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `uptrace-dsn="https://token@api.uptrace.dev/123"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev/123" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_BetterStackRequiresEndpointWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("BETTERSTACK_ENABLED", "true")
	t.Setenv("BETTERSTACK_ENDPOINT", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when BETTERSTACK_ENABLED=true without BETTERSTACK_ENDPOINT")
	}
}

func TestLoad_CORSOrigins(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com , https://b.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Fatalf("expected 2 origins, got %v", cfg.CORSAllowedOrigins)
	}
	if cfg.CORSAllowedOrigins[0] != "https://a.example.com" {
		t.Fatalf("unexpected first origin: %q", cfg.CORSAllowedOrigins[0])
	}
}
