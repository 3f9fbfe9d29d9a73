package query

import (
	"strings"

	"github.com/goliatone/go-tokenstore/core"
)

const (
	TypeLookupByEnvironment = "tokenstore.query.token.lookup_by_environment"
	TypeLookupMatching      = "tokenstore.query.token.lookup_matching"
	TypeLookupByID          = "tokenstore.query.token.lookup_by_id"
	TypeListTokens          = "tokenstore.query.token.list"
)

// LookupByEnvironmentMessage finds the newest token an environment holds for
// a user and client. It is the bootstrap lookup used at startup.
type LookupByEnvironmentMessage struct {
	Environment string
	UserMail    string
	ClientID    string
}

func (LookupByEnvironmentMessage) Type() string { return TypeLookupByEnvironment }

func (m LookupByEnvironmentMessage) Validate() error {
	if strings.TrimSpace(m.Environment) == "" {
		return queryValidationError("environment", "environment is required")
	}
	if strings.TrimSpace(m.UserMail) == "" {
		return queryWrapValidation(core.MissingIdentityError(), "user_mail", "query: user mail is required")
	}
	return nil
}

type LookupMatchingMessage struct {
	UserMail  string
	Candidate *core.Token
}

func (LookupMatchingMessage) Type() string { return TypeLookupMatching }

func (m LookupMatchingMessage) Validate() error {
	if strings.TrimSpace(m.UserMail) == "" {
		return queryWrapValidation(core.MissingIdentityError(), "user_mail", "query: user mail is required")
	}
	if m.Candidate == nil {
		return queryValidationError("candidate", "candidate token is required")
	}
	return nil
}

// LookupByIDMessage fills Into when set, otherwise a new token.
type LookupByIDMessage struct {
	ID   string
	Into *core.Token
}

func (LookupByIDMessage) Type() string { return TypeLookupByID }

func (m LookupByIDMessage) Validate() error {
	if strings.TrimSpace(m.ID) == "" {
		return queryValidationError("id", "id is required")
	}
	return nil
}

type ListTokensMessage struct{}

func (ListTokensMessage) Type() string { return TypeListTokens }

func (ListTokensMessage) Validate() error { return nil }
