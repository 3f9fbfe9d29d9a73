package core

import (
	"fmt"
	"strings"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

type DatabaseConfig struct {
	Driver string `koanf:"driver" mapstructure:"driver"`
	DSN    string `koanf:"dsn" mapstructure:"dsn"`
	Debug  bool   `koanf:"debug" mapstructure:"debug"`
}

type Config struct {
	ServiceName string `koanf:"service_name" mapstructure:"service_name"`
	Environment string `koanf:"environment" mapstructure:"environment"`
	// StrictEnvironment rejects environment names outside the datacenter catalog.
	StrictEnvironment bool `koanf:"strict_environment" mapstructure:"strict_environment"`
	// NonTransactionalSave runs the delete and insert of a save as two
	// independent statements.
	NonTransactionalSave bool           `koanf:"non_transactional_save" mapstructure:"non_transactional_save"`
	Database             DatabaseConfig `koanf:"database" mapstructure:"database"`
}

func DefaultConfig() Config {
	return Config{
		ServiceName: "tokenstore",
		Environment: DefaultEnvironment,
		Database: DatabaseConfig{
			Driver: DriverSQLite,
		},
	}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.ServiceName) == "" {
		return fmt.Errorf("core: service_name is required")
	}
	if strings.TrimSpace(c.Environment) == "" {
		return fmt.Errorf("core: environment is required")
	}
	if c.StrictEnvironment {
		if _, err := ParseEnvironment(c.Environment); err != nil {
			return err
		}
	}
	switch strings.TrimSpace(strings.ToLower(c.Database.Driver)) {
	case "", DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("core: unsupported database driver %q", c.Database.Driver)
	}
	return nil
}
