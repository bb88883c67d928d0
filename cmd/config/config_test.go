package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("PORT", "")
	t.Setenv("ACCESS_TOKEN_EXP", "")
	t.Setenv("TRUST_PROXY", "")

	cfg := Load()
	if cfg.Environment != "development" {
		t.Fatalf("Environment = %s, want development", cfg.Environment)
	}
	if cfg.Server.Port != "8000" {
		t.Fatalf("Port = %s, want 8000", cfg.Server.Port)
	}
	if cfg.Auth.AccessTokenExp != 15*time.Minute {
		t.Fatalf("AccessTokenExp = %v, want 15m", cfg.Auth.AccessTokenExp)
	}
	if cfg.Auth.RefreshTokenExp != 7*24*time.Hour {
		t.Fatalf("RefreshTokenExp = %v, want 168h", cfg.Auth.RefreshTokenExp)
	}
	if cfg.Auth.SecureCookies {
		t.Fatalf("SecureCookies should be off outside production")
	}
	if cfg.RateLimit.TrustProxy {
		t.Fatalf("TrustProxy should be off unless configured")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("RATE_LIMIT_AUTH_MAX", "not-a-number")
	t.Setenv("RATE_LIMIT_RATING_WINDOW", "30m")
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("TRUST_PROXY", "true")

	cfg := Load()
	if !cfg.Auth.SecureCookies {
		t.Fatalf("SecureCookies should be on in production")
	}
	if cfg.Database.Port != 5432 {
		t.Fatalf("DB port = %d, want 5432", cfg.Database.Port)
	}
	if cfg.RateLimit.Auth.Max != 5 {
		t.Fatalf("invalid int should fall back to default, got %d", cfg.RateLimit.Auth.Max)
	}
	if cfg.RateLimit.Rating.Window != 30*time.Minute {
		t.Fatalf("Rating window = %v, want 30m", cfg.RateLimit.Rating.Window)
	}
	if cfg.RateLimit.Enabled {
		t.Fatalf("rate limit should be disabled")
	}
	if !cfg.RateLimit.TrustProxy {
		t.Fatalf("TrustProxy should be on")
	}
	want := "host=localhost port=5432 user=myuser password=mypassword dbname=tamirse_db sslmode=disable"
	if cfg.GetDSN() != want {
		t.Fatalf("GetDSN() = %s, want %s", cfg.GetDSN(), want)
	}
}
