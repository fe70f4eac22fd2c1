package audit

import (
	"context"
	"log/slog"

	"clubledger/pkg/requestcontext"
)

// LogAudit writes an audit-tagged log line. The request id is taken from the
// context unless the attributes already carry one.
func LogAudit(ctx context.Context, logger *slog.Logger, event string, attributes ...any) {
	if logger == nil {
		return
	}
	if stringAttr(attributes, "request_id") == "" {
		if requestID := requestcontext.RequestID(ctx); requestID != "" {
			attributes = append(attributes, "request_id", requestID)
		}
	}
	args := append(attributes, "event", event, "log_type", "audit")
	logger.InfoContext(ctx, event, args...)
}

// stringAttr returns the string value paired with key in a slog-style
// key/value list, or "" when absent or not a string.
func stringAttr(attributes []any, key string) string {
	for i := 0; i+1 < len(attributes); i += 2 {
		if k, ok := attributes[i].(string); ok && k == key {
			v, _ := attributes[i+1].(string)
			return v
		}
	}
	return ""
}
