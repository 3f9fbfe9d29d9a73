package core

import "time"

// Token is the in-memory OAuth credential an integration client holds.
// Empty strings stand for absent values; a zero ExpiryTime means unknown.
type Token struct {
	ID           string
	ClientID     string
	ClientSecret string
	RefreshToken string
	AccessToken  string
	GrantToken   string
	ExpiryTime   time.Time
	UserMail     string
	RedirectURL  string
}

// HasGrantToken reports whether the token still carries its authorization code.
func (t *Token) HasGrantToken() bool {
	return t != nil && t.GrantToken != ""
}

// Expired reports whether the access token is past its expiry at now.
// Tokens without an expiry are treated as expired.
func (t *Token) Expired(now time.Time) bool {
	if t == nil || t.ExpiryTime.IsZero() {
		return true
	}
	return !now.Before(t.ExpiryTime)
}

func (t *Token) Clone() *Token {
	if t == nil {
		return nil
	}
	cloned := *t
	return &cloned
}
