package sqlstore

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/goliatone/go-tokenstore/core"
)

// observe records the outcome of an operation. Fields pass through
// core.RedactSensitiveMap so credential values never reach a log line.
func (s *TokenStore) observe(
	ctx context.Context,
	startedAt time.Time,
	operation string,
	err error,
	fields map[string]any,
) {
	if s == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "failure"
	}
	elapsed := time.Since(startedAt)

	contextFields := core.RedactSensitiveMap(fields)
	contextFields["operation"] = operation
	contextFields["status"] = status
	contextFields["duration_ms"] = elapsed.Milliseconds()
	if err != nil {
		contextFields["error"] = err.Error()
	}

	tags := map[string]string{
		"operation": operation,
		"status":    status,
	}
	if match := strings.TrimSpace(fmt.Sprint(contextFields["match"])); match != "" && match != "<nil>" {
		tags["match"] = match
	}
	metric := "tokenstore." + metricName(operation)
	s.recordCounter(ctx, metric+".total", 1, tags)
	s.recordHistogram(ctx, metric+".duration_ms", float64(elapsed.Milliseconds()), tags)

	switch {
	case err != nil:
		s.logWithLevel(ctx, "error", "token store "+operation+" failed", contextFields)
	case operation == core.OperationSave || operation == core.OperationReplace ||
		operation == core.OperationDelete || operation == core.OperationDeleteAll:
		s.logWithLevel(ctx, "info", "token store "+operation+" succeeded", contextFields)
	default:
		s.logWithLevel(ctx, "debug", "token store "+operation+" succeeded", contextFields)
	}
}

func keyFields(key core.MatchKey) map[string]any {
	return map[string]any{
		"user_mail": key.UserMail,
		"client_id": key.ClientID,
		"match":     string(key.Kind),
	}
}

func (s *TokenStore) recordCounter(ctx context.Context, name string, value int64, tags map[string]string) {
	if s == nil || s.metrics == nil {
		return
	}
	s.metrics.IncCounter(ctx, name, value, core.CloneTags(tags))
}

func (s *TokenStore) recordHistogram(ctx context.Context, name string, value float64, tags map[string]string) {
	if s == nil || s.metrics == nil {
		return
	}
	s.metrics.ObserveHistogram(ctx, name, value, core.CloneTags(tags))
}

func (s *TokenStore) logWithLevel(ctx context.Context, level string, message string, fields map[string]any) {
	if s == nil || s.logger == nil {
		return
	}
	logger := s.logger
	if ctx != nil {
		logger = logger.WithContext(ctx)
	}
	if fieldsLogger, ok := logger.(core.FieldsLogger); ok {
		logger = fieldsLogger.WithFields(fields)
	}
	args := flattenFields(fields)
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "error":
		logger.Error(message, args...)
	case "debug":
		logger.Debug(message, args...)
	default:
		logger.Info(message, args...)
	}
}

func flattenFields(fields map[string]any) []any {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	args := make([]any, 0, len(keys)*2)
	for _, key := range keys {
		args = append(args, key, fields[key])
	}
	return args
}

func metricName(operation string) string {
	return strings.ReplaceAll(strings.TrimSpace(strings.ToLower(operation)), "-", "_")
}
