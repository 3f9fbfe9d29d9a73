package core

import (
	"context"

	glog "github.com/goliatone/go-logger/glog"
)

// TokenStore persists OAuth tokens keyed by their logical identity.
type TokenStore interface {
	LookupByEnvironmentUserClient(
		ctx context.Context,
		environment string,
		userMail string,
		clientID string,
	) (*Token, bool, error)
	LookupMatching(ctx context.Context, userMail string, candidate *Token) (*Token, bool, error)
	LookupByID(ctx context.Context, id string, into *Token) (*Token, error)
	Save(ctx context.Context, userMail string, token *Token) error
	Delete(ctx context.Context, token *Token) error
	ListAll(ctx context.Context) ([]*Token, error)
	DeleteAll(ctx context.Context) error
}

// TokenSaver is the write side used by refresh flows.
type TokenSaver interface {
	Save(ctx context.Context, userMail string, token *Token) error
}

// TokenReplacer saves token and removes the record matching previous as one
// unit. A refresh that rotates the refresh token changes the identity of a
// record without a grant token.
type TokenReplacer interface {
	Replace(ctx context.Context, userMail string, previous *Token, token *Token) error
}

// EnvironmentResolver supplies the environment new records are saved under.
type EnvironmentResolver interface {
	ActiveEnvironment(ctx context.Context) (string, error)
}

type EnvironmentResolverFunc func(ctx context.Context) (string, error)

func (f EnvironmentResolverFunc) ActiveEnvironment(ctx context.Context) (string, error) {
	return f(ctx)
}

type RawConfigLoader interface {
	LoadRaw(ctx context.Context) (map[string]any, error)
}

type ConfigProvider interface {
	Load(ctx context.Context, defaults Config) (Config, error)
}

type OptionsResolver interface {
	Resolve(defaults Config, loaded Config, runtime Config) (Config, error)
}

type Logger = glog.Logger

type LoggerProvider = glog.LoggerProvider

type FieldsLogger = glog.FieldsLogger
