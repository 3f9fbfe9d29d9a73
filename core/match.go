package core

import (
	"fmt"
	"strings"
)

type MatchKind string

const (
	MatchByGrant   MatchKind = "grant_token"
	MatchByRefresh MatchKind = "refresh_token"
)

// MatchKey is the logical identity of a persisted token: user, client and
// either the grant token or the refresh token. Grant tokens are single use
// and take priority whenever the candidate carries one.
type MatchKey struct {
	Kind     MatchKind
	UserMail string
	ClientID string
	Value    string
}

// MatchKeyFor picks the match key for token on behalf of userMail. A blank
// userMail fails with ErrMissingIdentity before any storage is touched.
// Values are kept exactly as given; only the empty string is absent.
func MatchKeyFor(userMail string, token *Token) (MatchKey, error) {
	if strings.TrimSpace(userMail) == "" {
		return MatchKey{}, MissingIdentityError()
	}
	if token == nil {
		return MatchKey{}, InvalidTokenError("token is required")
	}
	if token.HasGrantToken() {
		return MatchKey{
			Kind:     MatchByGrant,
			UserMail: userMail,
			ClientID: token.ClientID,
			Value:    token.GrantToken,
		}, nil
	}
	return MatchKey{
		Kind:     MatchByRefresh,
		UserMail: userMail,
		ClientID: token.ClientID,
		Value:    token.RefreshToken,
	}, nil
}

// Column is the credential record column the key's Value is compared to.
func (k MatchKey) Column() string {
	switch k.Kind {
	case MatchByGrant:
		return "grant_token"
	default:
		return "refresh_token"
	}
}

func (k MatchKey) String() string {
	return fmt.Sprintf("%s/%s/%s", k.UserMail, k.ClientID, k.Kind)
}
