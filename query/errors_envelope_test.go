package query

import (
	"context"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-tokenstore/core"
)

func TestLookupByIDMessage_ValidateReturnsRichError(t *testing.T) {
	err := (LookupByIDMessage{}).Validate()
	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		t.Fatalf("expected go-errors envelope, got %T", err)
	}
	if rich.Category != goerrors.CategoryValidation {
		t.Fatalf("expected validation category, got %q", rich.Category)
	}
	if rich.TextCode != core.TokenStoreErrorBadInput {
		t.Fatalf("expected %q text code, got %q", core.TokenStoreErrorBadInput, rich.TextCode)
	}
}

func TestLookupMessages_RequireUserMail(t *testing.T) {
	errs := []error{
		(LookupByEnvironmentMessage{Environment: "us_dev", ClientID: "c1"}).Validate(),
		(LookupMatchingMessage{Candidate: &core.Token{}}).Validate(),
	}
	for _, err := range errs {
		if !core.IsMissingIdentity(err) {
			t.Fatalf("expected missing identity, got %v", err)
		}
		var rich *goerrors.Error
		if !goerrors.As(err, &rich) {
			t.Fatalf("expected go-errors envelope, got %T", err)
		}
		if rich.Category != goerrors.CategoryValidation {
			t.Fatalf("expected validation category, got %q", rich.Category)
		}
		if rich.TextCode != core.TokenStoreErrorMissingIdentity {
			t.Fatalf("expected %q text code, got %q", core.TokenStoreErrorMissingIdentity, rich.TextCode)
		}
	}
	if err := (LookupByEnvironmentMessage{UserMail: "a@x.com"}).Validate(); err == nil {
		t.Fatalf("expected missing environment to be rejected")
	}
}

func TestListTokensQuery_NilReaderReturnsRichError(t *testing.T) {
	var q *ListTokensQuery
	_, err := q.Query(context.Background(), ListTokensMessage{})
	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		t.Fatalf("expected go-errors envelope, got %T", err)
	}
	if rich.Category != goerrors.CategoryInternal {
		t.Fatalf("expected internal category, got %q", rich.Category)
	}
}
