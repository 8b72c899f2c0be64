package logger

import "context"

type ctxKey int

const (
	loggerKey ctxKey = iota
	fieldsKey
)

// fields are request-scoped values L adds to every line.
type fields struct {
	requestID string
	traceID   string
	clientID  string
}

func fieldsFrom(ctx context.Context) fields {
	f, _ := ctx.Value(fieldsKey).(fields)
	return f
}

func withFields(ctx context.Context, update func(*fields)) context.Context {
	f := fieldsFrom(ctx)
	update(&f)
	return context.WithValue(ctx, fieldsKey, f)
}

// WithLogger stores l in ctx.
func WithLogger(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext returns the logger stored in ctx, or Default.
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(loggerKey).(Logger); ok {
		return l
	}
	return Default()
}

// WithRequestID records the request ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return withFields(ctx, func(f *fields) { f.requestID = id })
}

// RequestIDFromContext returns the request ID, or "".
func RequestIDFromContext(ctx context.Context) string {
	return fieldsFrom(ctx).requestID
}

// WithTraceID records the trace ID of the active span.
func WithTraceID(ctx context.Context, id string) context.Context {
	return withFields(ctx, func(f *fields) { f.traceID = id })
}

// TraceIDFromContext returns the trace ID, or "".
func TraceIDFromContext(ctx context.Context) string {
	return fieldsFrom(ctx).traceID
}

// WithClientID records the public ID of the authorized access token.
// Never pass the token itself.
func WithClientID(ctx context.Context, id string) context.Context {
	return withFields(ctx, func(f *fields) { f.clientID = id })
}

// ClientIDFromContext returns the client ID, or "".
func ClientIDFromContext(ctx context.Context) string {
	return fieldsFrom(ctx).clientID
}

// L returns the context logger with request_id, trace_id and client_id
// attached when present.
func L(ctx context.Context) Logger {
	l := FromContext(ctx)
	f := fieldsFrom(ctx)

	var args []any
	if f.requestID != "" {
		args = append(args, "request_id", f.requestID)
	}
	if f.traceID != "" {
		args = append(args, "trace_id", f.traceID)
	}
	if f.clientID != "" {
		args = append(args, "client_id", f.clientID)
	}
	if len(args) == 0 {
		return l
	}
	return l.With(args...)
}
