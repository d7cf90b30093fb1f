package config

import (
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"MOODPET_ADDR", "MOODPET_DB_DSN", "MOODPET_SQLITE_PATH", "CORS_ORIGINS"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("addr = %q, want :8080", cfg.Addr)
	}
	if cfg.SQLitePath != "moodpet.db" {
		t.Fatalf("sqlite path = %q, want moodpet.db", cfg.SQLitePath)
	}
}

func TestLoad_SplitsCORSOrigins(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[0] != "https://a.example" || cfg.CORSOrigins[1] != "https://b.example" {
		t.Fatalf("cors origins = %v", cfg.CORSOrigins)
	}
}

func TestLoad_ReadsAddrAndDSN(t *testing.T) {
	t.Setenv("MOODPET_ADDR", ":9090")
	t.Setenv("MOODPET_DB_DSN", "postgres://localhost/moodpet")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":9090" {
		t.Fatalf("addr = %q, want :9090", cfg.Addr)
	}
	if cfg.DatabaseDSN != "postgres://localhost/moodpet" {
		t.Fatalf("dsn = %q", cfg.DatabaseDSN)
	}
}
