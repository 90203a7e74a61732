package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDSN string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBDSN: os.Getenv("DB_DSN"),
	}

	if cfg.DBDSN == "" {
		log.Fatal("DB_DSN is not set")
	}

	return cfg
}
