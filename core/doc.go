// Package core holds the token store domain: the Token value, match keys,
// environments, error envelopes and configuration. Storage backends depend on
// this package; core never depends on them.
package core
