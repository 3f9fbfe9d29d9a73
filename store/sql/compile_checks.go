package sqlstore

import "github.com/goliatone/go-tokenstore/core"

var (
	_ core.TokenStore    = (*TokenStore)(nil)
	_ core.TokenSaver    = (*TokenStore)(nil)
	_ core.TokenReplacer = (*TokenStore)(nil)
)
