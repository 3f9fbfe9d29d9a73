package sqlstore

import (
	"time"

	"github.com/uptrace/bun"
)

type credentialRecord struct {
	bun.BaseModel `bun:"table:credential_records,alias:cr"`

	ID           string     `bun:"id,pk"`
	Environment  string     `bun:"environment,notnull"`
	UserMail     string     `bun:"user_mail,notnull"`
	ClientID     string     `bun:"client_id,nullzero"`
	ClientSecret string     `bun:"client_secret,nullzero"`
	RefreshToken string     `bun:"refresh_token,nullzero"`
	AccessToken  string     `bun:"access_token,nullzero"`
	GrantToken   string     `bun:"grant_token,nullzero"`
	ExpiryTime   *time.Time `bun:"expiry_time,nullzero"`
	RedirectURL  string     `bun:"redirect_url,nullzero"`
	CreatedAt    time.Time  `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}
