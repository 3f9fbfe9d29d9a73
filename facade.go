package tokenstore

import (
	"fmt"

	tokencommand "github.com/goliatone/go-tokenstore/command"
	"github.com/goliatone/go-tokenstore/core"
	tokenquery "github.com/goliatone/go-tokenstore/query"
)

type Commands struct {
	Save      *tokencommand.SaveTokenCommand
	Delete    *tokencommand.DeleteTokenCommand
	DeleteAll *tokencommand.DeleteAllTokensCommand
}

type Queries struct {
	LookupByEnvironment *tokenquery.LookupByEnvironmentQuery
	LookupMatching      *tokenquery.LookupMatchingQuery
	LookupByID          *tokenquery.LookupByIDQuery
	List                *tokenquery.ListTokensQuery
}

// Facade exposes a token store as go-command commands and queries.
type Facade struct {
	store    core.TokenStore
	commands Commands
	queries  Queries
}

func NewFacade(store core.TokenStore) (*Facade, error) {
	if store == nil {
		return nil, fmt.Errorf("tokenstore: token store is required")
	}

	facade := &Facade{store: store}
	facade.commands = Commands{
		Save:      tokencommand.NewSaveTokenCommand(store),
		Delete:    tokencommand.NewDeleteTokenCommand(store),
		DeleteAll: tokencommand.NewDeleteAllTokensCommand(store),
	}
	facade.queries = Queries{
		LookupByEnvironment: tokenquery.NewLookupByEnvironmentQuery(store),
		LookupMatching:      tokenquery.NewLookupMatchingQuery(store),
		LookupByID:          tokenquery.NewLookupByIDQuery(store),
		List:                tokenquery.NewListTokensQuery(store),
	}
	return facade, nil
}

func (f *Facade) Commands() Commands {
	if f == nil {
		return Commands{}
	}
	return f.commands
}

func (f *Facade) Queries() Queries {
	if f == nil {
		return Queries{}
	}
	return f.queries
}

func (f *Facade) Store() core.TokenStore {
	if f == nil {
		return nil
	}
	return f.store
}
