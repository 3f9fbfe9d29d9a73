package query

import (
	"context"
	"testing"

	"github.com/goliatone/go-tokenstore/core"
)

type stubTokenReader struct {
	byEnvironment func(ctx context.Context, environment, userMail, clientID string) (*core.Token, bool, error)
	matching      func(ctx context.Context, userMail string, candidate *core.Token) (*core.Token, bool, error)
	byID          func(ctx context.Context, id string, into *core.Token) (*core.Token, error)
	listAll       func(ctx context.Context) ([]*core.Token, error)
}

func (s stubTokenReader) LookupByEnvironmentUserClient(ctx context.Context, environment, userMail, clientID string) (*core.Token, bool, error) {
	return s.byEnvironment(ctx, environment, userMail, clientID)
}

func (s stubTokenReader) LookupMatching(ctx context.Context, userMail string, candidate *core.Token) (*core.Token, bool, error) {
	return s.matching(ctx, userMail, candidate)
}

func (s stubTokenReader) LookupByID(ctx context.Context, id string, into *core.Token) (*core.Token, error) {
	return s.byID(ctx, id, into)
}

func (s stubTokenReader) ListAll(ctx context.Context) ([]*core.Token, error) {
	return s.listAll(ctx)
}

func TestLookupByEnvironmentQuery(t *testing.T) {
	reader := stubTokenReader{
		byEnvironment: func(_ context.Context, environment, userMail, clientID string) (*core.Token, bool, error) {
			if environment != "us_dev" || userMail != "a@x.com" {
				t.Fatalf("unexpected lookup: %s %s %s", environment, userMail, clientID)
			}
			if clientID == "c1" {
				return &core.Token{ID: "t1"}, true, nil
			}
			return nil, false, nil
		},
	}
	q := NewLookupByEnvironmentQuery(reader)

	token, err := q.Query(context.Background(), LookupByEnvironmentMessage{Environment: "us_dev", UserMail: "a@x.com", ClientID: "c1"})
	if err != nil || token == nil || token.ID != "t1" {
		t.Fatalf("expected t1, got %#v (%v)", token, err)
	}

	token, err = q.Query(context.Background(), LookupByEnvironmentMessage{Environment: "us_dev", UserMail: "a@x.com", ClientID: "wrong-client"})
	if err != nil || token != nil {
		t.Fatalf("expected nil token for wrong client, got %#v (%v)", token, err)
	}
}

func TestLookupMatchingQuery_ReturnsCandidate(t *testing.T) {
	candidate := &core.Token{ClientID: "c1", GrantToken: "g1"}
	reader := stubTokenReader{
		matching: func(_ context.Context, userMail string, in *core.Token) (*core.Token, bool, error) {
			in.ID = "row-1"
			return in, true, nil
		},
	}
	token, err := NewLookupMatchingQuery(reader).Query(context.Background(), LookupMatchingMessage{UserMail: "a@x.com", Candidate: candidate})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if token != candidate || candidate.ID != "row-1" {
		t.Fatalf("expected enriched candidate, got %#v", token)
	}
}

func TestLookupByIDQuery_PropagatesNotFound(t *testing.T) {
	reader := stubTokenReader{
		byID: func(_ context.Context, id string, _ *core.Token) (*core.Token, error) {
			return nil, core.TokenNotFoundError(id)
		},
	}
	_, err := NewLookupByIDQuery(reader).Query(context.Background(), LookupByIDMessage{ID: "missing"})
	if !core.IsTokenNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListTokensQuery(t *testing.T) {
	reader := stubTokenReader{
		listAll: func(context.Context) ([]*core.Token, error) {
			return []*core.Token{{ID: "a"}, {ID: "b"}}, nil
		},
	}
	tokens, err := NewListTokensQuery(reader).Query(context.Background(), ListTokensMessage{})
	if err != nil || len(tokens) != 2 {
		t.Fatalf("expected two tokens, got %d (%v)", len(tokens), err)
	}
}
