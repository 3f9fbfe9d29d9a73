package core

import (
	"testing"
	"time"
)

func TestToken_Expired(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		name  string
		token *Token
		want  bool
	}{
		{name: "nil token", token: nil, want: true},
		{name: "unknown expiry", token: &Token{}, want: true},
		{name: "future expiry", token: &Token{ExpiryTime: now.Add(time.Minute)}, want: false},
		{name: "exact expiry", token: &Token{ExpiryTime: now}, want: true},
		{name: "past expiry", token: &Token{ExpiryTime: now.Add(-time.Minute)}, want: true},
	}
	for _, tc := range cases {
		if got := tc.token.Expired(now); got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestToken_CloneIsIndependent(t *testing.T) {
	original := &Token{ID: "t1", AccessToken: "a1"}
	cloned := original.Clone()
	cloned.AccessToken = "a2"
	if original.AccessToken != "a1" {
		t.Fatalf("expected clone to be independent")
	}
	if (*Token)(nil).Clone() != nil {
		t.Fatalf("expected nil clone of nil token")
	}
}
