// Package oauth2adapter bridges stored tokens and golang.org/x/oauth2 so a
// refreshed access token is written back to the token store.
package oauth2adapter

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/goliatone/go-tokenstore/core"
	"golang.org/x/oauth2"
)

const tokenTypeBearer = "Bearer"

// TokenWriter is the part of a token store the bridge persists through.
type TokenWriter interface {
	Save(ctx context.Context, userMail string, token *core.Token) error
	Delete(ctx context.Context, token *core.Token) error
}

// ToOAuth2 converts a stored token.
func ToOAuth2(token *core.Token) *oauth2.Token {
	if token == nil {
		return nil
	}
	return &oauth2.Token{
		AccessToken:  token.AccessToken,
		TokenType:    tokenTypeBearer,
		RefreshToken: token.RefreshToken,
		Expiry:       token.ExpiryTime,
	}
}

// FromOAuth2 applies src onto a copy of base. The refresh token of base is
// kept when the provider does not rotate it.
func FromOAuth2(src *oauth2.Token, base *core.Token) *core.Token {
	out := base.Clone()
	if out == nil {
		out = &core.Token{}
	}
	if src == nil {
		return out
	}
	out.AccessToken = src.AccessToken
	if src.RefreshToken != "" {
		out.RefreshToken = src.RefreshToken
	}
	out.ExpiryTime = src.Expiry.UTC()
	if src.Expiry.IsZero() {
		out.ExpiryTime = src.Expiry
	}
	return out
}

// Config builds the client configuration carried by a stored token.
func Config(token *core.Token, endpoint oauth2.Endpoint, scopes ...string) *oauth2.Config {
	cfg := &oauth2.Config{
		Endpoint: endpoint,
		Scopes:   append([]string(nil), scopes...),
	}
	if token != nil {
		cfg.ClientID = token.ClientID
		cfg.ClientSecret = token.ClientSecret
		cfg.RedirectURL = token.RedirectURL
	}
	return cfg
}

// PersistingTokenSource hands out access tokens from an oauth2 source and
// saves every token it has not seen before.
type PersistingTokenSource struct {
	ctx      context.Context
	base     oauth2.TokenSource
	store    TokenWriter
	userMail string

	mu      sync.Mutex
	current *core.Token
}

// NewTokenSource returns a source that refreshes through cfg and persists
// the refreshed token for userMail.
func NewTokenSource(
	ctx context.Context,
	store TokenWriter,
	cfg *oauth2.Config,
	userMail string,
	token *core.Token,
) (*PersistingTokenSource, error) {
	if cfg == nil {
		return nil, fmt.Errorf("oauth2adapter: oauth2 config is required")
	}
	if store == nil {
		return nil, fmt.Errorf("oauth2adapter: token store is required")
	}
	if token == nil {
		return nil, core.InvalidTokenError("token is required")
	}
	if strings.TrimSpace(userMail) == "" {
		return nil, core.MissingIdentityError()
	}
	if ctx == nil {
		ctx = context.Background()
	}
	seed := ToOAuth2(token)
	if token.ExpiryTime.IsZero() {
		// oauth2 reads a zero expiry as never expiring; stored tokens read it
		// as unknown, so force a refresh on first use.
		seed.AccessToken = ""
	}
	return &PersistingTokenSource{
		ctx:      ctx,
		base:     cfg.TokenSource(ctx, seed),
		store:    store,
		userMail: userMail,
		current:  token.Clone(),
	}, nil
}

func (s *PersistingTokenSource) Token() (*oauth2.Token, error) {
	if s == nil || s.base == nil {
		return nil, fmt.Errorf("oauth2adapter: token source is not configured")
	}
	fresh, err := s.base.Token()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if fresh.AccessToken == s.current.AccessToken && fresh.Expiry.Equal(s.current.ExpiryTime) {
		return fresh, nil
	}

	previous := s.current
	updated := FromOAuth2(fresh, previous)
	if err := s.persist(previous, updated); err != nil {
		return nil, err
	}
	s.current = updated
	return fresh, nil
}

// persist saves updated. A rotated refresh token changes the identity of a
// record without a grant token, so the old row is removed with it; stores
// without core.TokenReplacer get a delete followed by a save.
func (s *PersistingTokenSource) persist(previous *core.Token, updated *core.Token) error {
	if previous.HasGrantToken() || previous.RefreshToken == updated.RefreshToken {
		return s.store.Save(s.ctx, s.userMail, updated)
	}
	stale := previous.Clone()
	stale.UserMail = s.userMail
	if replacer, ok := s.store.(core.TokenReplacer); ok {
		return replacer.Replace(s.ctx, s.userMail, stale, updated)
	}
	if err := s.store.Delete(s.ctx, stale); err != nil {
		return err
	}
	return s.store.Save(s.ctx, s.userMail, updated)
}

// Current returns a copy of the last token handed out or loaded.
func (s *PersistingTokenSource) Current() *core.Token {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

var _ oauth2.TokenSource = (*PersistingTokenSource)(nil)
