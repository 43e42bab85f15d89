package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// UpstreamBaseURL is the inventory API root, e.g. http://127.0.0.1:8000/api
	UpstreamBaseURL string `env:"UPSTREAM_BASE_URL, default=http://127.0.0.1:8000/api"`

	Session SessionConfig
	Mongo   MongoConfig
	Redis   RedisConfig
}

type SessionConfig struct {
	// CookieName carries the console session ID in the browser.
	CookieName string `env:"SESSION_COOKIE, default=petstyle_session"`
	// TTL bounds how long the credential slots live without a new login.
	TTL time.Duration `env:"SESSION_TTL, default=12h"`
	// CookieSecure marks the session cookie Secure; disable for local HTTP.
	CookieSecure bool `env:"SESSION_COOKIE_SECURE, default=false"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=petstyle_console"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
