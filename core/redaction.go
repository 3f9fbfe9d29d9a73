package core

import "strings"

const RedactedValue = "[REDACTED]"

// RedactSensitiveMap masks credential material before it reaches a log line.
// Identity keys such as user_mail, client_id and token_id are kept.
func RedactSensitiveMap(metadata map[string]any) map[string]any {
	if len(metadata) == 0 {
		return map[string]any{}
	}
	return redactSensitiveMap(metadata)
}

func redactSensitiveMap(source map[string]any) map[string]any {
	target := make(map[string]any, len(source))
	for key, value := range source {
		if shouldRedactKey(key) {
			target[key] = RedactedValue
			continue
		}
		target[key] = redactSensitiveValue(value)
	}
	return target
}

func redactSensitiveValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		return redactSensitiveMap(typed)
	case []any:
		out := make([]any, len(typed))
		for i := range typed {
			out[i] = redactSensitiveValue(typed[i])
		}
		return out
	case *Token:
		return redactToken(typed)
	default:
		return value
	}
}

func redactToken(token *Token) map[string]any {
	if token == nil {
		return nil
	}
	return map[string]any{
		"token_id":  token.ID,
		"client_id": token.ClientID,
		"user_mail": token.UserMail,
		"grant":     token.HasGrantToken(),
	}
}

func shouldRedactKey(key string) bool {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" || isTraceabilityKey(key) {
		return false
	}
	sensitiveTokens := []string{
		"secret",
		"token",
		"authorization",
		"refresh",
		"grant",
		"access",
		"credential",
		"password",
	}
	for _, token := range sensitiveTokens {
		if strings.Contains(key, token) {
			return true
		}
	}
	return false
}

func isTraceabilityKey(key string) bool {
	switch key {
	case "token_id",
		"user_mail",
		"client_id",
		"environment",
		"operation",
		"match",
		"grant",
		"trace_id",
		"request_id":
		return true
	default:
		return false
	}
}
