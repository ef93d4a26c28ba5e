// Package config reads process configuration from the environment once at startup.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DriverDynamoDB = "dynamodb"
	DriverMemory   = "memory"
)

type Config struct {
	Port        int
	APIBasePath string
	StoreDriver string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string
	DynamoDBAutoCreate bool
	Tables             Tables

	StoreTimeout time.Duration

	JWTSecret    string
	AuthDisabled bool

	ReportLocation *time.Location
	ReportCron     string
	Currency       string

	LogLevel  string
	LogFormat string
}

type Tables struct {
	Cars           string
	Services       string
	ServiceRecords string
	Payments       string
	Sequences      string
}

// Load builds a Config from the environment. Invalid values are reported together.
func Load() (*Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (*Config, error) {
	r := reader{getenv: getenv}

	cfg := &Config{
		Port:        r.int("PORT", 8080),
		APIBasePath: "/" + strings.Trim(r.string("API_BASE_PATH", "/api"), "/"),
		StoreDriver: strings.ToLower(r.string("STORE_DRIVER", DriverDynamoDB)),

		AWSRegion:          r.string("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     r.string("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey: r.string("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:   r.string("DYNAMODB_ENDPOINT", ""),
		DynamoDBAutoCreate: r.bool("DYNAMODB_AUTO_CREATE", false),
		Tables: Tables{
			Cars:           r.string("CARS_TABLE", "cars"),
			Services:       r.string("SERVICES_TABLE", "services"),
			ServiceRecords: r.string("SERVICE_RECORDS_TABLE", "service_records"),
			Payments:       r.string("PAYMENTS_TABLE", "payments"),
			Sequences:      r.string("SEQUENCES_TABLE", "sequences"),
		},

		StoreTimeout: r.duration("STORE_TIMEOUT", 5*time.Second),

		JWTSecret:    r.string("JWT_SECRET", ""),
		AuthDisabled: r.bool("AUTH_DISABLED", false),

		ReportLocation: r.location("REPORT_TIMEZONE", time.Local),
		ReportCron:     r.string("REPORT_CRON", ""),
		Currency:       r.string("CURRENCY", "RWF"),

		LogLevel:  strings.ToLower(r.string("LOG_LEVEL", "info")),
		LogFormat: strings.ToLower(r.string("LOG_FORMAT", "text")),
	}

	if cfg.StoreDriver != DriverDynamoDB && cfg.StoreDriver != DriverMemory {
		r.fail("STORE_DRIVER", fmt.Errorf("unknown driver %q", cfg.StoreDriver))
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		r.fail("PORT", fmt.Errorf("out of range: %d", cfg.Port))
	}
	if cfg.StoreTimeout <= 0 {
		r.fail("STORE_TIMEOUT", errors.New("must be positive"))
	}
	if cfg.JWTSecret == "" && !cfg.AuthDisabled {
		r.fail("JWT_SECRET", errors.New("required unless AUTH_DISABLED is set"))
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		r.fail("LOG_FORMAT", fmt.Errorf("unknown format %q", cfg.LogFormat))
	}

	if err := errors.Join(r.errs...); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

type reader struct {
	getenv func(string) string
	errs   []error
}

func (r *reader) fail(key string, err error) {
	r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
}

func (r *reader) string(key, def string) string {
	if v := strings.TrimSpace(r.getenv(key)); v != "" {
		return v
	}
	return def
}

func (r *reader) int(key string, def int) int {
	v := r.string(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.fail(key, err)
		return def
	}
	return n
}

func (r *reader) bool(key string, def bool) bool {
	v := r.string(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		r.fail(key, err)
		return def
	}
	return b
}

func (r *reader) duration(key string, def time.Duration) time.Duration {
	v := r.string(key, "")
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		r.fail(key, err)
		return def
	}
	return d
}

func (r *reader) location(key string, def *time.Location) *time.Location {
	v := r.string(key, "")
	if v == "" || strings.EqualFold(v, "local") {
		return def
	}
	loc, err := time.LoadLocation(v)
	if err != nil {
		r.fail(key, err)
		return def
	}
	return loc
}
