package command

import gocmd "github.com/goliatone/go-command"

var (
	_ gocmd.Commander[SaveTokenMessage]       = (*SaveTokenCommand)(nil)
	_ gocmd.Commander[DeleteTokenMessage]     = (*DeleteTokenCommand)(nil)
	_ gocmd.Commander[DeleteAllTokensMessage] = (*DeleteAllTokensCommand)(nil)
)
