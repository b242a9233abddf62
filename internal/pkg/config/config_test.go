package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET": "s3cret",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8080" || !cfg.IsDevelopment() {
		t.Errorf("unexpected server defaults: %+v", cfg)
	}
	if cfg.Auth.SessionTTL != 30*24*time.Hour {
		t.Errorf("expected 30 day session, got %v", cfg.Auth.SessionTTL)
	}
	if cfg.Auth.SessionUpdateAge != 24*time.Hour {
		t.Errorf("expected 24h update age, got %v", cfg.Auth.SessionUpdateAge)
	}
	if cfg.Auth.BcryptCost != 10 || cfg.Auth.LoginMaxAttempts != 10 || cfg.Auth.LoginWindow != 15*time.Minute {
		t.Errorf("unexpected auth defaults: %+v", cfg.Auth)
	}
	if cfg.Upload.Dir != "./public/uploads" || cfg.Upload.MaxBytes != 5<<20 {
		t.Errorf("unexpected upload defaults: %+v", cfg.Upload)
	}
	if cfg.Mongo.Database != "shop" {
		t.Errorf("unexpected mongo db %q", cfg.Mongo.Database)
	}
}

func TestLoadFrom_RequiresSecret(t *testing.T) {
	if _, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{})); err == nil {
		t.Fatal("expected error without JWT_SECRET")
	}
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":   "s",
		"ENV":          "production",
		"SESSION_TTL":  "1h",
		"BCRYPT_COST":  "12",
		"MONGO_URI":    "mongodb://db:27017",
		"REDIS_DB":     "2",
		"LOGIN_WINDOW": "30s",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.IsDevelopment() || cfg.Auth.SessionTTL != time.Hour || cfg.Auth.BcryptCost != 12 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Mongo.URI != "mongodb://db:27017" || cfg.Redis.DB != 2 || cfg.Auth.LoginWindow != 30*time.Second {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}

func TestLoadFrom_RejectsBadCost(t *testing.T) {
	_, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":  "s",
		"BCRYPT_COST": "2",
	}))
	if err == nil {
		t.Fatal("expected error for out-of-range bcrypt cost")
	}
}
