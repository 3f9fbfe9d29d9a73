package sqlstore

import (
	"github.com/goliatone/go-tokenstore/core"
	"github.com/uptrace/bun"
)

type condition struct {
	query string
	args  []any
}

// matchConditions renders a match key as WHERE clauses. An empty value
// matches both NULL and empty columns; any other value compares exactly.
func matchConditions(key core.MatchKey) []condition {
	return []condition{
		equalOrAbsent("user_mail", key.UserMail),
		equalOrAbsent("client_id", key.ClientID),
		equalOrAbsent(key.Column(), key.Value),
	}
}

func equalOrAbsent(column string, value string) condition {
	if value == "" {
		return condition{
			query: "(? IS NULL OR ? = '')",
			args:  []any{bun.Ident(column), bun.Ident(column)},
		}
	}
	return condition{
		query: "? = ?",
		args:  []any{bun.Ident(column), value},
	}
}

func applySelectConditions(q *bun.SelectQuery, conditions []condition) *bun.SelectQuery {
	for _, c := range conditions {
		q = q.Where(c.query, c.args...)
	}
	return q
}

func applyDeleteConditions(q *bun.DeleteQuery, conditions []condition) *bun.DeleteQuery {
	for _, c := range conditions {
		q = q.Where(c.query, c.args...)
	}
	return q
}
