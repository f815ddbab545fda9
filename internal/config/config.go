package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type key string

const (
	KeyLogger = key("logger")
	KeyUUID   = key("uuid")
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	Service    Service
	Platform   Platform
	Logger     Logger
	Metrics    Metrics
	Storage    Storage
	Postgres   Postgres
	Centrifuge Centrifuge
	Directory  Directory
	RateLimit  RateLimit
}

type Service struct {
	Name string `env:"SERVICE_NAME" env-default:"messaging-service"`
	Port string `env:"SERVICE_PORT" env-default:"8080"`
}

type Platform struct {
	Env string `env:"ENV" env-default:"local"`
}

type Logger struct {
	Host string `env:"LOGGER_HOST" env-default:"localhost"`
	Port string `env:"LOGGER_PORT" env-default:"12201"`
}

type Metrics struct {
	Host string `env:"METRICS_HOST" env-default:"localhost"`
	Port int    `env:"METRICS_PORT" env-default:"8125"`
}

type Storage struct {
	Driver string `env:"STORAGE_DRIVER" env-default:"memory"`
}

type Postgres struct {
	User     string `env:"POSTGRES_USER"`
	Password string `env:"POSTGRES_PASSWORD"`
	Database string `env:"POSTGRES_DB"`
	Host     string `env:"POSTGRES_HOST" env-default:"localhost"`
	Port     string `env:"POSTGRES_PORT" env-default:"5432"`
}

type Centrifuge struct {
	BaseURL   string        `env:"CENTRIFUGO_URL"`
	APIKey    string        `env:"CENTRIFUGO_API_KEY"`
	JWTSecret string        `env:"CENTRIFUGO_JWT_SECRET" env-default:"local-secret"`
	Timeout   time.Duration `env:"CENTRIFUGO_TIMEOUT" env-default:"5s"`
}

type Directory struct {
	File string `env:"DIRECTORY_FILE"`
}

type RateLimit struct {
	RPS   float64 `env:"RATE_LIMIT_RPS" env-default:"5"`
	Burst int     `env:"RATE_LIMIT_BURST" env-default:"10"`
}

func MustLoad() *Config {
	// .env is optional, real environment wins
	_ = godotenv.Load()

	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read env variables: %v", err)
	}

	switch cfg.Storage.Driver {
	case StorageMemory, StoragePostgres:
	default:
		log.Fatalf("unknown storage driver %q", cfg.Storage.Driver)
	}

	return cfg
}
