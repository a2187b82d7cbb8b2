// Пакет ctxmeta — метаданные запроса в context.Context (request_id, trace_id, span_id).
// HTTP-слой кладёт, логгер читает; друг о друге они не знают.
package ctxmeta

import "context"

type ctxKey string

const (
	KeyRequestID ctxKey = "request_id"
)

// WithRequestID кладёт request_id в контекст (если пусто — ничего не делает).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil || requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext достаёт request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(KeyRequestID).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// LogFields — пары ключ/значение для структурного логгера.
// Отсутствующие значения пропускаются; для nil-контекста — nil.
func LogFields(ctx context.Context) []any {
	if ctx == nil {
		return nil
	}
	var fields []any
	if id, ok := RequestIDFromContext(ctx); ok {
		fields = append(fields, string(KeyRequestID), id)
	}
	if id, ok := TraceIDFromContext(ctx); ok {
		fields = append(fields, "trace_id", id)
	}
	if id, ok := SpanIDFromContext(ctx); ok {
		fields = append(fields, "span_id", id)
	}
	return fields
}
