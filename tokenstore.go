package tokenstore

import (
	"context"

	"github.com/goliatone/go-tokenstore/core"
)

type Token = core.Token

type TokenStore = core.TokenStore

type MatchKey = core.MatchKey

type MatchKind = core.MatchKind

type Environment = core.Environment

type EnvironmentResolver = core.EnvironmentResolver

type Config = core.Config

type DatabaseConfig = core.DatabaseConfig

type StoreOperationError = core.StoreOperationError

const (
	MatchByGrant       = core.MatchByGrant
	MatchByRefresh     = core.MatchByRefresh
	DefaultEnvironment = core.DefaultEnvironment
)

var (
	ErrMissingIdentity = core.ErrMissingIdentity
	ErrTokenNotFound   = core.ErrTokenNotFound

	MatchKeyFor           = core.MatchKeyFor
	ParseEnvironment      = core.ParseEnvironment
	IsMissingIdentity     = core.IsMissingIdentity
	IsTokenNotFound       = core.IsTokenNotFound
	OperationOf           = core.OperationOf
	WithConfigProvider    = core.WithConfigProvider
	WithOptionsResolver   = core.WithOptionsResolver
	StaticConfigLoader    = core.StaticConfigLoader
	NewCfgxConfigProvider = core.NewCfgxConfigProvider
)

func DefaultConfig() Config {
	return core.DefaultConfig()
}

// LoadConfig resolves defaults, provider config and runtime overrides.
func LoadConfig(ctx context.Context, runtime Config, opts ...core.ConfigOption) (Config, error) {
	return core.LoadConfig(ctx, runtime, opts...)
}
