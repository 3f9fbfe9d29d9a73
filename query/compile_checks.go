package query

import (
	gocmd "github.com/goliatone/go-command"
	"github.com/goliatone/go-tokenstore/core"
)

var (
	_ gocmd.Querier[LookupByEnvironmentMessage, *core.Token] = (*LookupByEnvironmentQuery)(nil)
	_ gocmd.Querier[LookupMatchingMessage, *core.Token]      = (*LookupMatchingQuery)(nil)
	_ gocmd.Querier[LookupByIDMessage, *core.Token]          = (*LookupByIDQuery)(nil)
	_ gocmd.Querier[ListTokensMessage, []*core.Token]        = (*ListTokensQuery)(nil)
)
