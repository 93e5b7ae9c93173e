package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Config agrupa toda la configuración del proceso. Se lee de env con prefijo PEOPLE_.
type Config struct {
	HTTP       HTTP       `envPrefix:"HTTP_"`
	Logger     Logger     `envPrefix:"LOGGER_"`
	Storage    Storage    `envPrefix:"STORAGE_"`
	Moderation Moderation `envPrefix:"MODERATION_"`
	Auth       Auth       `envPrefix:"AUTH_"`
	Password   Password   `envPrefix:"PASSWORD_"`
}

type HTTP struct {
	Address            string        `env:"ADDRESS" envDefault:":8080"`
	ReadTimeout        time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout       time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

type Logger struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"text"`
	App    string `env:"APP" envDefault:"people-api"`
}

type Storage struct {
	// memory | postgres | sqlite | redis
	Driver       string `env:"DRIVER" envDefault:"memory"`
	DSN          string `env:"DSN,expand"`
	SeedFile     string `env:"SEED_FILE"`
	MaxOpenConns int    `env:"MAX_OPEN_CONNS" envDefault:"10"`

	// el DDL es idempotente (IF NOT EXISTS)
	ApplySchema bool `env:"APPLY_SCHEMA" envDefault:"true"`

	RedisURL    string `env:"REDIS_URL,expand" envDefault:"redis://localhost:6379/0"`
	RedisPrefix string `env:"REDIS_PREFIX" envDefault:"people:"`
}

type Moderation struct {
	URL          string        `env:"URL" envDefault:"https://api.apilayer.com/bad_words?censor_character=*"`
	APIKey       string        `env:"API_KEY"`
	APIKeyHeader string        `env:"API_KEY_HEADER" envDefault:"apikey"`
	Timeout      time.Duration `env:"TIMEOUT" envDefault:"5s"`
	MaxAttempts  int           `env:"MAX_ATTEMPTS" envDefault:"3"`
	BackoffMin   time.Duration `env:"BACKOFF_MIN" envDefault:"200ms"`
	BackoffMax   time.Duration `env:"BACKOFF_MAX" envDefault:"3s"`
	UseBackoff   bool          `env:"USE_BACKOFF" envDefault:"true"`

	// 0 = sin límite
	RatePerSecond float64 `env:"RATE_PER_SECOND" envDefault:"0"`
	Burst         int     `env:"BURST" envDefault:"1"`

	// 0 = cache deshabilitado
	CacheSize int           `env:"CACHE_SIZE" envDefault:"0"`
	CacheTTL  time.Duration `env:"CACHE_TTL" envDefault:"10m"`
}

// HS256 pide una clave de al menos 256 bits.
const minSigningKeyLen = 32

type Auth struct {
	SigningKey string        `env:"SIGNING_KEY"`
	Issuer     string        `env:"ISSUER" envDefault:"people-api"`
	Audience   string        `env:"AUDIENCE" envDefault:"people-api-clients"`
	TokenTTL   time.Duration `env:"TOKEN_TTL" envDefault:"2h"`

	// IdP externo opcional; sus tokens se aceptan después de los propios.
	IntrospectionURL          string        `env:"INTROSPECTION_URL"`
	IntrospectionAPIKey       string        `env:"INTROSPECTION_API_KEY"`
	IntrospectionAPIKeyHeader string        `env:"INTROSPECTION_API_KEY_HEADER" envDefault:"X-Api-Key"`
	IntrospectionTimeout      time.Duration `env:"INTROSPECTION_TIMEOUT" envDefault:"5s"`
}

type Password struct {
	Time      uint32 `env:"TIME" envDefault:"3"`
	MemoryKiB uint32 `env:"MEMORY_KIB" envDefault:"65536"`
	Threads   uint8  `env:"THREADS" envDefault:"2"`
}

func Parse() (*Config, error) {
	conf, err := env.ParseAsWithOptions[Config](env.Options{
		Prefix: "PEOPLE_",
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &conf, nil
}

// Validate revisa lo que el server necesita para arrancar.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case "memory", "postgres", "sqlite", "redis":
	default:
		return errors.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if (c.Storage.Driver == "postgres" || c.Storage.Driver == "sqlite") && c.Storage.DSN == "" {
		return errors.Errorf("storage driver %q requires PEOPLE_STORAGE_DSN", c.Storage.Driver)
	}
	if c.Moderation.APIKey == "" {
		return errors.New("PEOPLE_MODERATION_API_KEY is not set")
	}
	if c.Moderation.MaxAttempts < 1 {
		return errors.New("PEOPLE_MODERATION_MAX_ATTEMPTS must be >= 1")
	}
	if c.Auth.IntrospectionURL != "" && c.Auth.IntrospectionAPIKey == "" {
		return errors.New("PEOPLE_AUTH_INTROSPECTION_API_KEY is required with PEOPLE_AUTH_INTROSPECTION_URL")
	}
	if c.Auth.SigningKey == "" {
		return errors.New("PEOPLE_AUTH_SIGNING_KEY is not set")
	}
	if len(c.Auth.SigningKey) < minSigningKeyLen {
		return errors.Errorf("PEOPLE_AUTH_SIGNING_KEY must be at least %d bytes", minSigningKeyLen)
	}
	return nil
}
