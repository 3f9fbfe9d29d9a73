package core

import (
	"context"
	"testing"
)

type fixedConfigProvider struct {
	cfg Config
}

func (p *fixedConfigProvider) Load(context.Context, Config) (Config, error) {
	return p.cfg, nil
}

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config: %v", err)
	}
	if cfg.Environment != DefaultEnvironment || cfg.Database.Driver != DriverSQLite {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Environment = "eu_dev"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected non strict config to accept any environment: %v", err)
	}
	cfg.StrictEnvironment = true
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected strict config to reject eu_dev")
	}

	cfg = DefaultConfig()
	cfg.Database.Driver = "mysql"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected unsupported driver to be rejected")
	}

	cfg = DefaultConfig()
	cfg.ServiceName = ""
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected missing service name to be rejected")
	}
}

func TestLoadConfig_LayersRawConfigAndRuntime(t *testing.T) {
	loader := StaticConfigLoader(map[string]any{
		"environment": "jp_sdb",
		"database": map[string]any{
			"driver": "postgres",
			"dsn":    "postgres://localhost/tokens",
		},
	})

	cfg, err := LoadConfig(context.Background(),
		Config{ServiceName: "billing-sync", NonTransactionalSave: true},
		WithConfigProvider(NewCfgxConfigProvider(loader)),
	)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ServiceName != "billing-sync" {
		t.Fatalf("expected runtime service name, got %q", cfg.ServiceName)
	}
	if cfg.Environment != "jp_sdb" {
		t.Fatalf("expected loaded environment, got %q", cfg.Environment)
	}
	if cfg.Database.Driver != DriverPostgres || cfg.Database.DSN != "postgres://localhost/tokens" {
		t.Fatalf("expected loaded database config, got %+v", cfg.Database)
	}
	if !cfg.NonTransactionalSave {
		t.Fatalf("expected runtime non transactional flag")
	}
}

func TestLoadConfig_RuntimeOverridesProvider(t *testing.T) {
	provider := &fixedConfigProvider{cfg: Config{ServiceName: "from-provider", Environment: "au_prd"}}
	cfg, err := LoadConfig(context.Background(),
		Config{Environment: "au_dev"},
		WithConfigProvider(provider),
	)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ServiceName != "from-provider" || cfg.Environment != "au_dev" {
		t.Fatalf("unexpected precedence result: %+v", cfg)
	}
	if cfg.Database.Driver != DriverSQLite {
		t.Fatalf("expected default driver to survive, got %q", cfg.Database.Driver)
	}
}

func TestLoadConfig_RejectsInvalidRawConfig(t *testing.T) {
	_, err := LoadConfig(context.Background(), Config{},
		WithConfigProvider(NewCfgxConfigProvider(StaticConfigLoader(map[string]any{
			"database": map[string]any{"driver": "oracle"},
		}))),
	)
	if err == nil {
		t.Fatalf("expected invalid driver to fail")
	}
}
