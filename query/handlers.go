package query

import (
	"context"

	"github.com/goliatone/go-tokenstore/core"
)

// TokenReader is the read side of a token store.
type TokenReader interface {
	LookupByEnvironmentUserClient(
		ctx context.Context,
		environment string,
		userMail string,
		clientID string,
	) (*core.Token, bool, error)
	LookupMatching(ctx context.Context, userMail string, candidate *core.Token) (*core.Token, bool, error)
	LookupByID(ctx context.Context, id string, into *core.Token) (*core.Token, error)
	ListAll(ctx context.Context) ([]*core.Token, error)
}

// LookupByEnvironmentQuery returns nil when no token is stored.
type LookupByEnvironmentQuery struct {
	reader TokenReader
}

func NewLookupByEnvironmentQuery(reader TokenReader) *LookupByEnvironmentQuery {
	return &LookupByEnvironmentQuery{reader: reader}
}

func (q *LookupByEnvironmentQuery) Query(ctx context.Context, msg LookupByEnvironmentMessage) (*core.Token, error) {
	if q == nil || q.reader == nil {
		return nil, queryDependencyError("query: token reader is required")
	}
	token, found, err := q.reader.LookupByEnvironmentUserClient(ctx, msg.Environment, msg.UserMail, msg.ClientID)
	if err != nil || !found {
		return nil, err
	}
	return token, nil
}

// LookupMatchingQuery returns the enriched candidate, or nil when nothing
// matches.
type LookupMatchingQuery struct {
	reader TokenReader
}

func NewLookupMatchingQuery(reader TokenReader) *LookupMatchingQuery {
	return &LookupMatchingQuery{reader: reader}
}

func (q *LookupMatchingQuery) Query(ctx context.Context, msg LookupMatchingMessage) (*core.Token, error) {
	if q == nil || q.reader == nil {
		return nil, queryDependencyError("query: token reader is required")
	}
	token, found, err := q.reader.LookupMatching(ctx, msg.UserMail, msg.Candidate)
	if err != nil || !found {
		return nil, err
	}
	return token, nil
}

type LookupByIDQuery struct {
	reader TokenReader
}

func NewLookupByIDQuery(reader TokenReader) *LookupByIDQuery {
	return &LookupByIDQuery{reader: reader}
}

func (q *LookupByIDQuery) Query(ctx context.Context, msg LookupByIDMessage) (*core.Token, error) {
	if q == nil || q.reader == nil {
		return nil, queryDependencyError("query: token reader is required")
	}
	return q.reader.LookupByID(ctx, msg.ID, msg.Into)
}

type ListTokensQuery struct {
	reader TokenReader
}

func NewListTokensQuery(reader TokenReader) *ListTokensQuery {
	return &ListTokensQuery{reader: reader}
}

func (q *ListTokensQuery) Query(ctx context.Context, _ ListTokensMessage) ([]*core.Token, error) {
	if q == nil || q.reader == nil {
		return nil, queryDependencyError("query: token reader is required")
	}
	return q.reader.ListAll(ctx)
}
