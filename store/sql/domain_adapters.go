package sqlstore

import (
	"time"

	"github.com/goliatone/go-tokenstore/core"
)

func newCredentialRecord(environment string, token *core.Token, now time.Time) *credentialRecord {
	record := &credentialRecord{
		ID:           token.ID,
		Environment:  environment,
		UserMail:     token.UserMail,
		ClientID:     token.ClientID,
		ClientSecret: token.ClientSecret,
		RefreshToken: token.RefreshToken,
		AccessToken:  token.AccessToken,
		GrantToken:   token.GrantToken,
		RedirectURL:  token.RedirectURL,
		CreatedAt:    now,
	}
	if !token.ExpiryTime.IsZero() {
		expiry := token.ExpiryTime.UTC()
		record.ExpiryTime = &expiry
	}
	return record
}

// fillToken copies the fields every lookup restores from a row.
func (r *credentialRecord) fillToken(token *core.Token) *core.Token {
	token.ID = r.ID
	token.AccessToken = r.AccessToken
	token.ExpiryTime = time.Time{}
	if r.ExpiryTime != nil {
		token.ExpiryTime = r.ExpiryTime.UTC()
	}
	token.RefreshToken = r.RefreshToken
	token.UserMail = r.UserMail
	return token
}

// fillGrant never replaces a grant token with an empty one.
func (r *credentialRecord) fillGrant(token *core.Token) *core.Token {
	if r.GrantToken != "" {
		token.GrantToken = r.GrantToken
	}
	return token
}

// toToken rebuilds a standalone token from the row.
func (r *credentialRecord) toToken() *core.Token {
	token := &core.Token{
		ClientID:     r.ClientID,
		ClientSecret: r.ClientSecret,
		RefreshToken: r.RefreshToken,
		RedirectURL:  r.RedirectURL,
	}
	r.fillToken(token)
	return r.fillGrant(token)
}
