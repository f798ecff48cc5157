// Package config loads the HTTP service configuration.
//
// Values are resolved in three layers, lowest priority first: built-in
// defaults, an optional TOML file, and FAMILYTREE_* environment variables.
// The merged result is validated before it is returned.
//
//	addr = ":3000"
//	metrics_addr = ":9090"
//
//	[cache]
//	backend = "redis"
//	redis_addr = "localhost:6379"
//
//	[store]
//	backend = "mongo"
//	mongo_uri = "mongodb://localhost:27017"
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"

	"github.com/matzehuels/familytree/pkg/errors"
	"github.com/matzehuels/familytree/pkg/layout"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "FAMILYTREE_"

// Cache backends.
const (
	CacheNone  = "none"
	CacheFile  = "file"
	CacheRedis = "redis"
)

// Store backends.
const (
	StoreMemory = "memory"
	StoreMongo  = "mongo"
)

// Config is the complete service configuration.
type Config struct {
	Addr string `toml:"addr" validate:"required,hostname_port"`
	// MetricsAddr serves /metrics on a separate listener. Empty mounts it on
	// the API router instead.
	MetricsAddr     string        `toml:"metrics_addr" validate:"omitempty,hostname_port"`
	Metrics         bool          `toml:"metrics"`
	LogLevel        string        `toml:"log_level" validate:"oneof=debug info warn error"`
	CORSOrigins     []string      `toml:"cors_origins"`
	MaxBodyBytes    int64         `toml:"max_body_bytes" validate:"gt=0"`
	RequestTimeout  time.Duration `toml:"request_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `toml:"shutdown_timeout" validate:"gt=0"`

	Cache  Cache  `toml:"cache"`
	Store  Store  `toml:"store"`
	Render Render `toml:"render"`
}

// Cache selects where rendered artifacts are cached.
type Cache struct {
	Backend       string        `toml:"backend" validate:"oneof=none file redis"`
	Dir           string        `toml:"dir"`
	RedisAddr     string        `toml:"redis_addr" validate:"required_if=Backend redis"`
	RedisPassword string        `toml:"redis_password"`
	RedisDB       int           `toml:"redis_db" validate:"gte=0"`
	Prefix        string        `toml:"prefix"`
	TTL           time.Duration `toml:"ttl" validate:"gte=0"`
}

// Store selects where diagrams are kept for retrieval by id.
type Store struct {
	Backend    string        `toml:"backend" validate:"oneof=memory mongo"`
	MaxEntries int           `toml:"max_entries" validate:"gte=0"`
	MongoURI   string        `toml:"mongo_uri" validate:"required_if=Backend mongo"`
	Database   string        `toml:"database" validate:"required_if=Backend mongo"`
	Collection string        `toml:"collection" validate:"required_if=Backend mongo"`
	TTL        time.Duration `toml:"ttl" validate:"gte=0"`
}

// Render holds the defaults applied to every request.
type Render struct {
	Style  string        `toml:"style" validate:"oneof=classic print"`
	Layout layout.Config `toml:"layout"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Addr:            ":3000",
		Metrics:         true,
		LogLevel:        "info",
		CORSOrigins:     []string{"*"},
		MaxBodyBytes:    1 << 20,
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		Cache: Cache{
			Backend: CacheNone,
			Prefix:  "familytree:",
			TTL:     7 * 24 * time.Hour,
		},
		Store: Store{
			Backend:    StoreMemory,
			MaxEntries: 1000,
			Database:   "familytree",
			Collection: "diagrams",
			TTL:        30 * 24 * time.Hour,
		},
		Render: Render{
			Style:  "classic",
			Layout: layout.DefaultConfig(),
		},
	}
}

// Load reads path (if non-empty) over the defaults, applies environment
// overrides and validates the result. Unknown keys in the file are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %v", undecoded)
		}
	}

	if err := applyEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks struct constraints and the layout geometry.
func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid config")
	}
	return c.Render.Layout.Validate()
}

// Level returns the parsed log level.
func (c *Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

type lookupFunc func(string) (string, bool)

func applyEnv(c *Config, lookup lookupFunc) error {
	strs := map[string]*string{
		"ADDR":           &c.Addr,
		"METRICS_ADDR":   &c.MetricsAddr,
		"LOG_LEVEL":      &c.LogLevel,
		"CACHE_BACKEND":  &c.Cache.Backend,
		"CACHE_DIR":      &c.Cache.Dir,
		"REDIS_ADDR":     &c.Cache.RedisAddr,
		"REDIS_PASSWORD": &c.Cache.RedisPassword,
		"STORE_BACKEND":  &c.Store.Backend,
		"MONGO_URI":      &c.Store.MongoURI,
		"MONGO_DATABASE": &c.Store.Database,
		"RENDER_STYLE":   &c.Render.Style,
	}
	for key, dst := range strs {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = v
		}
	}

	if v, ok := lookup(EnvPrefix + "CORS_ORIGINS"); ok {
		c.CORSOrigins = splitList(v)
	}
	if v, ok := lookup(EnvPrefix + "METRICS"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%sMETRICS", EnvPrefix)
		}
		c.Metrics = b
	}
	if v, ok := lookup(EnvPrefix + "REDIS_DB"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%sREDIS_DB", EnvPrefix)
		}
		c.Cache.RedisDB = n
	}
	if v, ok := lookup(EnvPrefix + "CACHE_TTL"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%sCACHE_TTL", EnvPrefix)
		}
		c.Cache.TTL = d
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
