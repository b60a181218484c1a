// Package config provides configuration management for the invoice service.
//
// Values come from, in increasing priority: built-in defaults, an optional
// config file (yaml, toml or json) and environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/guttosm/invoice-service/internal/cache"
	"github.com/guttosm/invoice-service/internal/repository"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Store backends accepted in STORE_BACKEND.
const (
	StoreMongo    = repository.BackendMongo
	StorePostgres = repository.BackendPostgres
	StoreSQLite   = repository.BackendSQLite
)

// Cache backends and codecs accepted in CACHE_BACKEND and CACHE_CODEC.
const (
	CacheMemory  = cache.BackendMemory
	CacheRedis   = cache.BackendRedis
	CodecJSON    = cache.CodecJSON
	CodecMsgpack = cache.CodecMsgpack
)

// Config holds the complete application configuration.
type Config struct {
	Server         ServerConfig
	Log            LogConfig
	Store          StoreConfig
	Cache          CacheConfig
	CircuitBreaker CircuitBreakerConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port              string
	RateLimit         int
	RateWindow        time.Duration
	RequestTimeout    time.Duration
	ShutdownTimeout   time.Duration
	EnableIdempotency bool
	IdempotencyTTL    time.Duration
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level  string
	Pretty bool
}

// StoreConfig selects and locates the durable invoice store.
type StoreConfig struct {
	Backend       string
	MongoURI      string
	MongoDatabase string
	PostgresDSN   string
	SQLitePath    string
}

// CacheConfig holds the invoice cache region configuration.
type CacheConfig struct {
	Backend            string
	Region             string
	TTL                time.Duration
	Codec              string
	Size               int
	Shards             int
	EvictionPercentage int
	RedisAddr          string
	RedisPassword      string
	RedisDB            int
	RedisKeyPrefix     bool
}

// CircuitBreakerConfig holds the store circuit breaker settings.
type CircuitBreakerConfig struct {
	FailureThreshold int
	SuccessThreshold int
	Timeout          time.Duration
}

// setting binds a config file key to its environment variable and default.
type setting struct {
	key      string
	env      string
	fallback any
}

var settings = []setting{
	{"server.port", "PORT", "8080"},
	{"server.rate_limit", "RATE_LIMIT", 100},
	{"server.rate_window", "RATE_WINDOW", time.Minute},
	{"server.request_timeout", "REQUEST_TIMEOUT", 30 * time.Second},
	{"server.shutdown_timeout", "SHUTDOWN_TIMEOUT", 10 * time.Second},
	{"server.idempotency", "IDEMPOTENCY_ENABLED", true},
	{"server.idempotency_ttl", "IDEMPOTENCY_TTL", 5 * time.Minute},
	{"server.cors_origins", "CORS_ORIGINS", ""},
	{"server.swagger_user", "SWAGGER_USER", ""},
	{"server.swagger_pass", "SWAGGER_PASS", ""},

	{"log.level", "LOG_LEVEL", "info"},
	{"log.pretty", "LOG_PRETTY", false},

	{"store.backend", "STORE_BACKEND", StoreSQLite},
	{"store.mongo_uri", "MONGODB_URI", "mongodb://localhost:27017"},
	{"store.mongo_database", "MONGODB_DATABASE", "invoice_service"},
	{"store.postgres_dsn", "POSTGRES_DSN", ""},
	{"store.sqlite_path", "SQLITE_PATH", "data/invoices.db"},

	{"cache.backend", "CACHE_BACKEND", CacheMemory},
	{"cache.region", "CACHE_REGION", "Invoice"},
	{"cache.ttl", "CACHE_TTL", 10 * time.Minute},
	{"cache.codec", "CACHE_CODEC", CodecJSON},
	{"cache.size", "CACHE_SIZE", 10000},
	{"cache.shards", "CACHE_SHARDS", 64},
	{"cache.eviction_percentage", "CACHE_EVICTION_PERCENTAGE", 10},
	{"cache.redis_addr", "REDIS_ADDR", "localhost:6379"},
	{"cache.redis_password", "REDIS_PASSWORD", ""},
	{"cache.redis_db", "REDIS_DB", 0},
	{"cache.redis_key_prefix", "REDIS_KEY_PREFIX", false},

	{"circuit_breaker.failure_threshold", "CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5},
	{"circuit_breaker.success_threshold", "CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2},
	{"circuit_breaker.timeout", "CIRCUIT_BREAKER_TIMEOUT", 30 * time.Second},
}

// Load builds a Config from defaults, the optional file at path and the
// environment. A value that cannot be parsed falls back to its default.
func Load(path string) (Config, error) {
	v := viper.New()

	for _, s := range settings {
		v.SetDefault(s.key, s.fallback)
		if err := v.BindEnv(s.key, s.env); err != nil {
			return Config{}, fmt.Errorf("bind %s: %w", s.env, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	r := reader{v: v}
	return Config{
		Server: ServerConfig{
			Port:              r.string("server.port"),
			RateLimit:         r.int("server.rate_limit"),
			RateWindow:        r.duration("server.rate_window"),
			RequestTimeout:    r.duration("server.request_timeout"),
			ShutdownTimeout:   r.duration("server.shutdown_timeout"),
			EnableIdempotency: r.bool("server.idempotency"),
			IdempotencyTTL:    r.duration("server.idempotency_ttl"),
			CORSOrigins:       r.list("server.cors_origins"),
			SwaggerUser:       r.string("server.swagger_user"),
			SwaggerPass:       r.string("server.swagger_pass"),
		},
		Log: LogConfig{
			Level:  r.string("log.level"),
			Pretty: r.bool("log.pretty"),
		},
		Store: StoreConfig{
			Backend:       strings.ToLower(r.string("store.backend")),
			MongoURI:      r.string("store.mongo_uri"),
			MongoDatabase: r.string("store.mongo_database"),
			PostgresDSN:   r.string("store.postgres_dsn"),
			SQLitePath:    r.string("store.sqlite_path"),
		},
		Cache: CacheConfig{
			Backend:            strings.ToLower(r.string("cache.backend")),
			Region:             r.string("cache.region"),
			TTL:                r.duration("cache.ttl"),
			Codec:              strings.ToLower(r.string("cache.codec")),
			Size:               r.int("cache.size"),
			Shards:             r.int("cache.shards"),
			EvictionPercentage: r.int("cache.eviction_percentage"),
			RedisAddr:          r.string("cache.redis_addr"),
			RedisPassword:      r.string("cache.redis_password"),
			RedisDB:            r.int("cache.redis_db"),
			RedisKeyPrefix:     r.bool("cache.redis_key_prefix"),
		},
		CircuitBreaker: CircuitBreakerConfig{
			FailureThreshold: r.int("circuit_breaker.failure_threshold"),
			SuccessThreshold: r.int("circuit_breaker.success_threshold"),
			Timeout:          r.duration("circuit_breaker.timeout"),
		},
	}, nil
}

// Validate rejects configurations the service cannot start with.
func (c Config) Validate() error {
	var errs []error

	if c.Server.Port == "" {
		errs = append(errs, errors.New("server port must not be empty"))
	}

	switch c.Store.Backend {
	case StoreMongo:
		if c.Store.MongoURI == "" || c.Store.MongoDatabase == "" {
			errs = append(errs, errors.New("mongo store needs MONGODB_URI and MONGODB_DATABASE"))
		}
	case StorePostgres:
		if c.Store.PostgresDSN == "" {
			errs = append(errs, errors.New("postgres store needs POSTGRES_DSN"))
		}
	case StoreSQLite:
		if c.Store.SQLitePath == "" {
			errs = append(errs, errors.New("sqlite store needs SQLITE_PATH"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown store backend %q", c.Store.Backend))
	}

	switch c.Cache.Backend {
	case CacheMemory:
		if c.Cache.Size < c.Cache.Shards {
			errs = append(errs, fmt.Errorf("memory cache needs CACHE_SIZE (%d) of at least CACHE_SHARDS (%d)", c.Cache.Size, c.Cache.Shards))
		}
	case CacheRedis:
		if c.Cache.RedisAddr == "" {
			errs = append(errs, errors.New("redis cache needs REDIS_ADDR"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown cache backend %q", c.Cache.Backend))
	}

	switch c.Cache.Codec {
	case CodecJSON, CodecMsgpack:
	default:
		errs = append(errs, fmt.Errorf("unknown cache codec %q", c.Cache.Codec))
	}

	if c.Cache.Region == "" {
		errs = append(errs, errors.New("cache region must not be empty"))
	}

	return errors.Join(errs...)
}

// reader reads typed values, falling back to the registered default when
// the configured value does not parse.
type reader struct {
	v *viper.Viper
}

func (r reader) fallback(key string) any {
	for _, s := range settings {
		if s.key == key {
			return s.fallback
		}
	}
	return nil
}

func (r reader) string(key string) string {
	return strings.TrimSpace(cast.ToString(r.v.Get(key)))
}

func (r reader) int(key string) int {
	if i, err := cast.ToIntE(r.v.Get(key)); err == nil {
		return i
	}
	return cast.ToInt(r.fallback(key))
}

func (r reader) bool(key string) bool {
	if b, err := cast.ToBoolE(r.v.Get(key)); err == nil {
		return b
	}
	return cast.ToBool(r.fallback(key))
}

func (r reader) duration(key string) time.Duration {
	if d, err := cast.ToDurationE(r.v.Get(key)); err == nil && d > 0 {
		return d
	}
	return cast.ToDuration(r.fallback(key))
}

// list accepts a comma separated string from the environment or a list
// from a config file.
func (r reader) list(key string) []string {
	var parts []string
	switch raw := r.v.Get(key).(type) {
	case string:
		parts = strings.Split(raw, ",")
	default:
		parts = cast.ToStringSlice(raw)
	}

	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}
