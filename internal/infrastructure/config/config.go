package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Identity and session backends.
const (
	IdentityStoreStatic = "static"
	IdentityStoreMongo  = "mongo"

	SessionStoreRedis  = "redis"
	SessionStoreMemory = "memory"
)

type Config struct {
	Port      string `env:"PORT,       default=8080"`
	Env       string `env:"ENV,        default=development"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`

	// OriginSecret signs the origin cookie that groups a browser's tabs.
	OriginSecret string        `env:"ORIGIN_SECRET, required"`
	OriginTTL    time.Duration `env:"ORIGIN_TTL,    default=720h"`
	LoginDelay   time.Duration `env:"LOGIN_DELAY,   default=0s"`

	IdentityStore     string `env:"IDENTITY_STORE,      default=static"`
	IdentityCacheSize int    `env:"IDENTITY_CACHE_SIZE, default=128"`
	SessionStore      string `env:"SESSION_STORE,       default=redis"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=datalab"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadWith(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadWith reads configuration from the given lookuper and validates the
// backend selectors.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, err
	}

	switch cfg.IdentityStore {
	case IdentityStoreStatic, IdentityStoreMongo:
	default:
		return nil, fmt.Errorf("IDENTITY_STORE: unsupported value %q", cfg.IdentityStore)
	}
	switch cfg.SessionStore {
	case SessionStoreRedis, SessionStoreMemory:
	default:
		return nil, fmt.Errorf("SESSION_STORE: unsupported value %q", cfg.SessionStore)
	}
	return &cfg, nil
}
