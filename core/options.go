package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-config/cfgx"
	glog "github.com/goliatone/go-logger/glog"
	opts "github.com/goliatone/go-options"
)

const LoggerName = "tokenstore"

type ConfigOption func(*configBuilder)

type configBuilder struct {
	configProvider  ConfigProvider
	optionsResolver OptionsResolver
}

func WithConfigProvider(provider ConfigProvider) ConfigOption {
	return func(b *configBuilder) {
		b.configProvider = provider
	}
}

func WithOptionsResolver(resolver OptionsResolver) ConfigOption {
	return func(b *configBuilder) {
		b.optionsResolver = resolver
	}
}

// LoadConfig layers defaults, the provider's loaded config and the runtime
// overrides, in that order of precedence.
func LoadConfig(ctx context.Context, runtime Config, options ...ConfigOption) (Config, error) {
	builder := configBuilder{
		configProvider:  NewCfgxConfigProvider(nil),
		optionsResolver: GoOptionsResolver{},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&builder)
	}
	if builder.configProvider == nil {
		builder.configProvider = NewCfgxConfigProvider(nil)
	}
	if builder.optionsResolver == nil {
		builder.optionsResolver = GoOptionsResolver{}
	}

	defaults := DefaultConfig()
	loaded, err := builder.configProvider.Load(ctx, defaults)
	if err != nil {
		return Config{}, err
	}
	return builder.optionsResolver.Resolve(defaults, loaded, runtime)
}

// ResolveLogger uses precedence provider > logger > nop and prefers the
// provider's named token store logger.
func ResolveLogger(provider LoggerProvider, logger Logger) (LoggerProvider, Logger) {
	resolvedProvider, resolvedLogger := glog.Resolve(LoggerName, provider, logger)
	resolvedLogger = glog.Ensure(resolvedLogger)
	if resolvedProvider != nil {
		if named := resolvedProvider.GetLogger(LoggerName); named != nil {
			resolvedLogger = glog.Ensure(named)
		}
	}
	return resolvedProvider, resolvedLogger
}

type staticRawConfigLoader struct {
	Values map[string]any
}

func (l staticRawConfigLoader) LoadRaw(context.Context) (map[string]any, error) {
	if len(l.Values) == 0 {
		return map[string]any{}, nil
	}
	out := make(map[string]any, len(l.Values))
	for key, value := range l.Values {
		out[key] = value
	}
	return out, nil
}

// StaticConfigLoader serves a fixed raw config map.
func StaticConfigLoader(values map[string]any) RawConfigLoader {
	return staticRawConfigLoader{Values: values}
}

type CfgxConfigProvider struct {
	Loader RawConfigLoader
}

func NewCfgxConfigProvider(loader RawConfigLoader) *CfgxConfigProvider {
	return &CfgxConfigProvider{Loader: loader}
}

func (p *CfgxConfigProvider) Load(ctx context.Context, defaults Config) (Config, error) {
	if p == nil {
		return defaults, nil
	}
	loader := p.Loader
	if loader == nil {
		loader = staticRawConfigLoader{}
	}
	raw, err := loader.LoadRaw(ctx)
	if err != nil {
		return Config{}, err
	}
	cfg, err := cfgx.Build[Config](raw,
		cfgx.WithDefaults(defaults),
		cfgx.WithValidator[Config]((*Config).Validate),
	)
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

type GoOptionsResolver struct{}

func (GoOptionsResolver) Resolve(defaults Config, loaded Config, runtime Config) (Config, error) {
	defaultLayer := configToLayerMap(defaults, true)
	loadedLayer := configToLayerMap(loaded, false)
	runtimeLayer := configToLayerMap(runtime, false)

	stack, err := opts.NewStack(
		opts.NewLayer(
			opts.NewScope("defaults", 0),
			defaultLayer,
			opts.WithSnapshotID[map[string]any]("defaults"),
		),
		opts.NewLayer(
			opts.NewScope("config", 10),
			loadedLayer,
			opts.WithSnapshotID[map[string]any]("config"),
		),
		opts.NewLayer(
			opts.NewScope("runtime", 20),
			runtimeLayer,
			opts.WithSnapshotID[map[string]any]("runtime"),
		),
	)
	if err != nil {
		return Config{}, fmt.Errorf("core: options stack build failed: %w", err)
	}
	merged, err := stack.Merge()
	if err != nil {
		return Config{}, fmt.Errorf("core: options merge failed: %w", err)
	}
	resolved, err := cfgx.Build[Config](merged.Value,
		cfgx.WithDefaults(defaults),
		cfgx.WithValidator[Config]((*Config).Validate),
	)
	if err != nil {
		return Config{}, err
	}
	if err := resolved.Validate(); err != nil {
		return Config{}, err
	}
	return resolved, nil
}

// configToLayerMap only emits set values for non-default layers so a zero
// field never masks a lower layer. Booleans are one-way switches for the
// same reason.
func configToLayerMap(cfg Config, includeZero bool) map[string]any {
	layer := map[string]any{}
	if includeZero || strings.TrimSpace(cfg.ServiceName) != "" {
		layer["service_name"] = cfg.ServiceName
	}
	if includeZero || strings.TrimSpace(cfg.Environment) != "" {
		layer["environment"] = cfg.Environment
	}
	if includeZero || cfg.StrictEnvironment {
		layer["strict_environment"] = cfg.StrictEnvironment
	}
	if includeZero || cfg.NonTransactionalSave {
		layer["non_transactional_save"] = cfg.NonTransactionalSave
	}

	database := map[string]any{}
	if includeZero || strings.TrimSpace(cfg.Database.Driver) != "" {
		database["driver"] = cfg.Database.Driver
	}
	if includeZero || strings.TrimSpace(cfg.Database.DSN) != "" {
		database["dsn"] = cfg.Database.DSN
	}
	if includeZero || cfg.Database.Debug {
		database["debug"] = cfg.Database.Debug
	}
	if len(database) > 0 {
		layer["database"] = database
	}
	return layer
}
