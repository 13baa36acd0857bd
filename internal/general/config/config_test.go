package config

import (
	"testing"
	"time"

	"ride-management/internal/domain/geo"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	t.Setenv("POSTGRES_PASSWORD", "postgres")
}

func TestLoad_Defaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Database.Host != "localhost" || cfg.Database.Port != 5432 {
		t.Errorf("database defaults = %s:%d", cfg.Database.Host, cfg.Database.Port)
	}
	if cfg.Services.APIPort != 3000 || cfg.Services.WebPort != 3001 {
		t.Errorf("service ports = %d/%d", cfg.Services.APIPort, cfg.Services.WebPort)
	}
	if cfg.JWT.AccessTTL != 2*time.Hour {
		t.Errorf("AccessTTL = %v", cfg.JWT.AccessTTL)
	}
	if cfg.Geo.Strategy != geo.StrategyHaversine {
		t.Errorf("Strategy = %v, want haversine default", cfg.Geo.Strategy)
	}
}

func TestLoad_Overrides(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("GEO_STRATEGY", "postgis")
	t.Setenv("API_SERVICE_PORT", "8080")
	t.Setenv("JWT_ACCESS_TTL", "30m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Geo.Strategy != geo.StrategyPostGIS {
		t.Errorf("Strategy = %v", cfg.Geo.Strategy)
	}
	if cfg.Services.APIPort != 8080 {
		t.Errorf("APIPort = %d", cfg.Services.APIPort)
	}
	if cfg.JWT.AccessTTL != 30*time.Minute {
		t.Errorf("AccessTTL = %v", cfg.JWT.AccessTTL)
	}
}

func TestLoad_RejectsBadValues(t *testing.T) {
	t.Run("missing jwt secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET_KEY", "")
		if _, err := Load(); err == nil {
			t.Fatal("expected error without JWT_SECRET_KEY")
		}
	})

	t.Run("bad strategy", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("GEO_STRATEGY", "euclidean")
		if _, err := Load(); err == nil {
			t.Fatal("expected error for unknown GEO_STRATEGY")
		}
	})
}
