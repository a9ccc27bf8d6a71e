package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically. It normalizes Provider and Driver to lower case.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port))
	}

	if err := c.Generator.validate(); err != nil {
		errs = append(errs, fmt.Errorf("generator: %w", err))
	}

	if err := c.validateStore(); err != nil {
		errs = append(errs, fmt.Errorf("store: %w", err))
	}

	return errors.Join(errs...)
}

func (g *GeneratorConfig) validate() error {
	g.Provider = strings.ToLower(strings.TrimSpace(g.Provider))

	switch g.Provider {
	case ProviderGemini, ProviderAnthropic:
	default:
		return fmt.Errorf("provider must be %q or %q (got %q)", ProviderGemini, ProviderAnthropic, g.Provider)
	}

	if strings.TrimSpace(g.APIKey) == "" {
		return fmt.Errorf("api_key is required")
	}
	if g.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", g.MaxTokens)
	}
	return nil
}

func (c *Config) validateStore() error {
	c.Store.Driver = strings.ToLower(strings.TrimSpace(c.Store.Driver))

	if c.Store.WriteTimeout <= 0 {
		return fmt.Errorf("write_timeout must be > 0 (got %v)", c.Store.WriteTimeout)
	}

	switch c.Store.Driver {
	case DriverPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for the postgres driver")
		}
		if c.Database.MinConns > c.Database.MaxConns {
			return fmt.Errorf("database.min_conns (%d) exceeds max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
		}
	case DriverSQLite:
		if c.SQLite.Path == "" {
			return fmt.Errorf("sqlite.path is required for the sqlite driver")
		}
	case DriverRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("redis.addr is required for the redis driver")
		}
	default:
		return fmt.Errorf("driver must be one of postgres, sqlite, redis (got %q)", c.Store.Driver)
	}
	return nil
}
