package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	StorePostgres   = "postgres"
	StoreClickHouse = "clickhouse"
)

var (
	ErrMissingDSN        = errors.New("POSTGRES_DSN is not set")
	ErrInvalidStore      = errors.New("reports.store must be postgres or clickhouse")
	ErrMissingClickHouse = errors.New("CLICKHOUSE_ADDR is required when reports.store is clickhouse")
	ErrInvalidReports    = errors.New("invalid reports settings")
)

const (
	DefaultMaxBuckets       = 1000
	DefaultMirrorInterval   = 5 * time.Minute
	DefaultMirrorWindowDays = 31
)

type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`

	Postgres struct {
		DSN string `yaml:"dsn"`
	} `yaml:"postgres"`

	Reports struct {
		Store      string `yaml:"store"`
		MaxBuckets int    `yaml:"max_buckets"`

		// ClickHouse only: how often and how far back return lines are
		// copied from Postgres.
		MirrorInterval   time.Duration `yaml:"mirror_interval"`
		MirrorWindowDays int           `yaml:"mirror_window_days"`
	} `yaml:"reports"`

	ClickHouse struct {
		Addr     string `yaml:"addr"`
		Database string `yaml:"database"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
	} `yaml:"clickhouse"`

	Auth struct {
		JWTSecret string `yaml:"jwt_secret"`
	} `yaml:"auth"`
}

// Load reads the YAML file at path, then lets environment variables override
// it. A missing file leaves the defaults in place.
func Load(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	override(&c.Server.Addr, "HTTP_ADDR")
	override(&c.Postgres.DSN, "POSTGRES_DSN")
	override(&c.Reports.Store, "REPORTS_STORE")
	override(&c.ClickHouse.Addr, "CLICKHOUSE_ADDR")
	override(&c.ClickHouse.Database, "CLICKHOUSE_DB")
	override(&c.ClickHouse.Username, "CLICKHOUSE_USER")
	override(&c.ClickHouse.Password, "CLICKHOUSE_PASSWORD")
	override(&c.Auth.JWTSecret, "JWT_SECRET")

	if err := overrideInt(&c.Reports.MaxBuckets, "REPORTS_MAX_BUCKETS"); err != nil {
		return err
	}
	if err := overrideInt(&c.Reports.MirrorWindowDays, "REPORTS_MIRROR_WINDOW_DAYS"); err != nil {
		return err
	}
	if v, ok := os.LookupEnv("REPORTS_MIRROR_INTERVAL"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("REPORTS_MIRROR_INTERVAL: %w", err)
		}
		c.Reports.MirrorInterval = d
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Reports.Store == "" {
		c.Reports.Store = StorePostgres
	}
	if c.Reports.MaxBuckets == 0 {
		c.Reports.MaxBuckets = DefaultMaxBuckets
	}
	if c.Reports.MirrorInterval == 0 {
		c.Reports.MirrorInterval = DefaultMirrorInterval
	}
	if c.Reports.MirrorWindowDays == 0 {
		c.Reports.MirrorWindowDays = DefaultMirrorWindowDays
	}
	if c.ClickHouse.Database == "" {
		c.ClickHouse.Database = "default"
	}
}

func (c Config) Validate() error {
	// returns are always written to Postgres, whatever the report store
	if c.Postgres.DSN == "" {
		return ErrMissingDSN
	}

	switch c.Reports.Store {
	case StorePostgres:
	case StoreClickHouse:
		if c.ClickHouse.Addr == "" {
			return ErrMissingClickHouse
		}
	default:
		return ErrInvalidStore
	}

	switch {
	case c.Reports.MaxBuckets < 0:
		return fmt.Errorf("%w: max_buckets cannot be negative", ErrInvalidReports)
	case c.Reports.MirrorInterval < 0:
		return fmt.Errorf("%w: mirror_interval cannot be negative", ErrInvalidReports)
	case c.Reports.MirrorWindowDays < 0:
		return fmt.Errorf("%w: mirror_window_days cannot be negative", ErrInvalidReports)
	}

	return nil
}

func override(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func overrideInt(dst *int, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}
