package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is parsed from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
type Config struct {
	Addr        string   `env:"MOODPET_ADDR" envDefault:":8080"`
	DatabaseDSN string   `env:"MOODPET_DB_DSN"`
	SQLitePath  string   `env:"MOODPET_SQLITE_PATH" envDefault:"moodpet.db"`
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env config: %w", err)
	}
	return cfg, nil
}
