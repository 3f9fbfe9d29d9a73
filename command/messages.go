package command

import (
	"strings"

	"github.com/goliatone/go-tokenstore/core"
)

const (
	TypeSaveToken       = "tokenstore.command.token.save"
	TypeDeleteToken     = "tokenstore.command.token.delete"
	TypeDeleteAllTokens = "tokenstore.command.token.delete_all"
)

type SaveTokenMessage struct {
	UserMail string
	Token    *core.Token
}

func (SaveTokenMessage) Type() string { return TypeSaveToken }

func (m SaveTokenMessage) Validate() error {
	if strings.TrimSpace(m.UserMail) == "" {
		return commandWrapValidation(core.MissingIdentityError(), "user_mail", "command: user mail is required")
	}
	if m.Token == nil {
		return commandValidationError("token", "token is required")
	}
	return nil
}

// DeleteTokenMessage deletes by the identity of Token, including its UserMail.
type DeleteTokenMessage struct {
	Token *core.Token
}

func (DeleteTokenMessage) Type() string { return TypeDeleteToken }

func (m DeleteTokenMessage) Validate() error {
	if m.Token == nil {
		return commandValidationError("token", "token is required")
	}
	if strings.TrimSpace(m.Token.UserMail) == "" {
		return commandWrapValidation(core.MissingIdentityError(), "token.user_mail", "command: token user mail is required")
	}
	return nil
}

type DeleteAllTokensMessage struct{}

func (DeleteAllTokensMessage) Type() string { return TypeDeleteAllTokens }

func (DeleteAllTokensMessage) Validate() error { return nil }
