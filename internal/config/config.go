package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"taskman_user"`
	DBPassword string `envconfig:"DB_PASSWORD" default:"taskman_pass"`
	DBName     string `envconfig:"DB_NAME" default:"taskman_db"`

	ServerPort string `envconfig:"SERVER_PORT" default:"4003"`
	Env        string `envconfig:"APP_ENV" default:"development"`

	AccessSecret   string `envconfig:"JWT_SECRET" default:"supersecretkey"`
	RefreshSecret  string `envconfig:"REFRESH_JWT_SECRET" default:"superrefreshkey"`
	AccessTTLSecs  int    `envconfig:"JWT_ACCESS_TOKEN_TTL" default:"900"`
	RefreshTTLSecs int    `envconfig:"JWT_REFRESH_TOKEN_TTL" default:"604800"`
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("❌ Failed to process configuration: %v", err)
	}
	return &cfg
}

// Development reports whether error details should be exposed in responses.
func (c *Config) Development() bool {
	return c.Env != "production"
}
