package logger

import (
	"bytes"
	"context"
	"testing"
)

func TestContextFields(t *testing.T) {
	ctx := context.Background()
	if RequestIDFromContext(ctx) != "" || TraceIDFromContext(ctx) != "" || ClientIDFromContext(ctx) != "" {
		t.Fatal("empty context should have no fields")
	}

	ctx = WithRequestID(ctx, "req-1")
	ctx = WithTraceID(ctx, "4bf92f3577b34da6a3ce929d0e0e4736")
	child := WithClientID(ctx, "rd-01hzy")

	if got := RequestIDFromContext(child); got != "req-1" {
		t.Errorf("request id = %q", got)
	}
	if got := TraceIDFromContext(child); got != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Errorf("trace id = %q", got)
	}
	if got := ClientIDFromContext(child); got != "rd-01hzy" {
		t.Errorf("client id = %q", got)
	}

	// Deriving a child never changes the parent.
	if ClientIDFromContext(ctx) != "" {
		t.Error("parent context gained a client id")
	}
}

func TestFromContext(t *testing.T) {
	if FromContext(context.Background()) != Default() {
		t.Error("FromContext without a logger should return Default()")
	}

	l := NewNop()
	if FromContext(WithLogger(context.Background(), l)) != l {
		t.Error("FromContext did not return the stored logger")
	}
}

func TestL(t *testing.T) {
	tests := []struct {
		name string
		ctx  func(context.Context) context.Context
		want map[string]any
		none []string
	}{
		{
			name: "no fields",
			ctx:  func(c context.Context) context.Context { return c },
			none: []string{"request_id", "trace_id", "client_id"},
		},
		{
			name: "request only",
			ctx:  func(c context.Context) context.Context { return WithRequestID(c, "req-9") },
			want: map[string]any{"request_id": "req-9"},
			none: []string{"trace_id", "client_id"},
		},
		{
			name: "all fields",
			ctx: func(c context.Context) context.Context {
				c = WithRequestID(c, "req-9")
				c = WithTraceID(c, "trace-1")
				return WithClientID(c, "rd-abc")
			},
			want: map[string]any{"request_id": "req-9", "trace_id": "trace-1", "client_id": "rd-abc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base, err := New(Config{Output: &buf})
			if err != nil {
				t.Fatal(err)
			}
			ctx := tt.ctx(WithLogger(context.Background(), base))

			L(ctx).Info("line")

			rec := decodeLines(t, &buf)[0]
			for k, v := range tt.want {
				if rec[k] != v {
					t.Errorf("%s = %v, want %v", k, rec[k], v)
				}
			}
			for _, k := range tt.none {
				if _, ok := rec[k]; ok {
					t.Errorf("unexpected %s in %v", k, rec)
				}
			}
		})
	}
}
