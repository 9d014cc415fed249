package config

import (
	"flag"
	"regexp"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Допустимые бэкенды локального состояния клиента.
const (
	StateFS     = "fs"
	StateSQLite = "sqlite"
	StateMemory = "memory"
)

const (
	defaultListenAddr = "localhost:8081"
	defaultAuthSecret = "dev-secret-key"
	defaultDSN        = "lumme.db"
	defaultTokenTTL   = 30 * 24 * time.Hour
)

type Config struct {
	// Server-side settings
	DatabaseDSN string        `env:"DATABASE_URI"`
	AuthSecret  string        `env:"AUTH_SECRET"`
	BaseURL     string        `env:"BASE_URL"` // адрес прослушивания dev-сервера, host:port
	TokenTTL    time.Duration `env:"TOKEN_TTL"`

	// Client-side settings
	APIURL       string `env:"API_URL"` // пусто — клиент берёт адрес по умолчанию
	StateBackend string `env:"LUMME_STATE"`
	StateDir     string `env:"LUMME_STATE_DIR"`
	Debug        bool   `env:"LUMME_DEBUG"`
	Version      bool   `env:"-"` // show client version and exit (flag only)
}

var hostPortRe = regexp.MustCompile(`^[A-Za-z0-9\.\-]*:\d{1,5}$`)

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags по умолчанию берут значения из env
	// Server flags
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (postgres DSN или путь к SQLite)")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи JWT")
	flag.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "адрес dev-сервера host:port")
	flag.DurationVar(&cfg.TokenTTL, "token-ttl", cfg.TokenTTL, "время жизни JWT")
	// Client flags
	flag.StringVar(&cfg.APIURL, "api-url", cfg.APIURL, "base URL of the marketplace API, including /api")
	flag.StringVar(&cfg.StateBackend, "state", cfg.StateBackend, "local state backend: fs, sqlite or memory")
	flag.StringVar(&cfg.StateDir, "state-dir", cfg.StateDir, "directory for local state (default: user config dir)")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "verbose logging")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	cfg.applyDefaults()
	return cfg
}

func (cfg *Config) applyDefaults() {
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = defaultAuthSecret
	}
	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = defaultDSN
	}
	// BaseURL must be "address:port" (no scheme, no path). Otherwise use default.
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = defaultListenAddr
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}
	switch cfg.StateBackend {
	case StateFS, StateSQLite, StateMemory:
	default:
		cfg.StateBackend = StateFS
	}
}
