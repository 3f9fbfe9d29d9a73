package command

import (
	"context"

	gocmd "github.com/goliatone/go-command"
	"github.com/goliatone/go-tokenstore/core"
)

// TokenWriter is the mutating side of a token store.
type TokenWriter interface {
	Save(ctx context.Context, userMail string, token *core.Token) error
	Delete(ctx context.Context, token *core.Token) error
	DeleteAll(ctx context.Context) error
}

type SaveTokenCommand struct {
	store TokenWriter
}

func NewSaveTokenCommand(store TokenWriter) *SaveTokenCommand {
	return &SaveTokenCommand{store: store}
}

// Execute saves the token and stores it, with its assigned id, in the
// result collector when one is attached to ctx.
func (c *SaveTokenCommand) Execute(ctx context.Context, msg SaveTokenMessage) error {
	if c == nil || c.store == nil {
		return commandDependencyError("command: token store is required")
	}
	if err := c.store.Save(ctx, msg.UserMail, msg.Token); err != nil {
		return err
	}
	storeResult(ctx, msg.Token)
	return nil
}

type DeleteTokenCommand struct {
	store TokenWriter
}

func NewDeleteTokenCommand(store TokenWriter) *DeleteTokenCommand {
	return &DeleteTokenCommand{store: store}
}

func (c *DeleteTokenCommand) Execute(ctx context.Context, msg DeleteTokenMessage) error {
	if c == nil || c.store == nil {
		return commandDependencyError("command: token store is required")
	}
	return c.store.Delete(ctx, msg.Token)
}

type DeleteAllTokensCommand struct {
	store TokenWriter
}

func NewDeleteAllTokensCommand(store TokenWriter) *DeleteAllTokensCommand {
	return &DeleteAllTokensCommand{store: store}
}

func (c *DeleteAllTokensCommand) Execute(ctx context.Context, _ DeleteAllTokensMessage) error {
	if c == nil || c.store == nil {
		return commandDependencyError("command: token store is required")
	}
	return c.store.DeleteAll(ctx)
}

func storeResult[T any](ctx context.Context, value T) {
	collector := gocmd.ResultFromContext[T](ctx)
	if collector == nil {
		return
	}
	collector.Store(value)
}
