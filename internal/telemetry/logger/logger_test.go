package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

// decodeLines parses JSON log output, one record per line.
func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			t.Fatalf("invalid JSON log line %q: %v", line, err)
		}
		out = append(out, rec)
	}
	return out
}

func newBufferLogger(t *testing.T, level string) (Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	l, err := New(Config{Level: level, Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { SetLevel("info") })
	return l, &buf
}

func TestNew_Formats(t *testing.T) {
	tests := []struct {
		format  string
		prefix  string
		wantErr bool
	}{
		{"", "{", false},
		{"json", "{", false},
		{"JSON", "{", false},
		{"text", "time=", false},
		{"console", "time=", false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			l, err := New(Config{Format: tt.format, Output: &buf})
			if tt.wantErr {
				if err == nil {
					t.Fatal("New() should reject the format")
				}
				return
			}
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			l.Info("hello")
			if !strings.HasPrefix(buf.String(), tt.prefix) {
				t.Errorf("output %q does not start with %q", buf.String(), tt.prefix)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"DEBUG", slog.LevelDebug, false},
		{"", slog.LevelInfo, false},
		{"info", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"chatty", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	if _, err := New(Config{Level: "chatty"}); err == nil {
		t.Error("New() should reject an unknown level")
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	l, buf := newBufferLogger(t, "warn")

	l.Debug("d")
	l.Info("i")
	l.Warn("w")
	l.Error("e")

	recs := decodeLines(t, buf)
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2: %s", len(recs), buf)
	}
	if recs[0]["level"] != "WARN" || recs[1]["level"] != "ERROR" {
		t.Errorf("levels = %v, %v", recs[0]["level"], recs[1]["level"])
	}
}

func TestSetLevel(t *testing.T) {
	l, buf := newBufferLogger(t, "info")

	l.Debug("hidden")
	SetLevel("debug")
	if GetLevel() != "debug" {
		t.Errorf("GetLevel() = %q, want debug", GetLevel())
	}
	l.Debug("shown")

	SetLevel("nonsense")
	if GetLevel() != "debug" {
		t.Errorf("unknown level changed the level to %q", GetLevel())
	}

	SetLevel("WARNING")
	if GetLevel() != "warn" {
		t.Errorf("GetLevel() = %q, want warn", GetLevel())
	}

	recs := decodeLines(t, buf)
	if len(recs) != 1 || recs[0]["msg"] != "shown" {
		t.Errorf("records = %v", recs)
	}
}

func TestLogger_AttrsAndWith(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Output: &buf, Attrs: []any{"service", "randapi-server"}})
	if err != nil {
		t.Fatal(err)
	}

	l.With("component", "registry").Info("issued", "count", 3)

	rec := decodeLines(t, &buf)[0]
	want := map[string]any{"service": "randapi-server", "component": "registry", "count": float64(3), "msg": "issued"}
	for k, v := range want {
		if rec[k] != v {
			t.Errorf("%s = %v, want %v", k, rec[k], v)
		}
	}
}

type ctxKeyProbe struct{}

// probeHandler records the context passed to Handle.
type probeHandler struct {
	slog.Handler
	seen any
}

func (h *probeHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *probeHandler) Handle(ctx context.Context, r slog.Record) error {
	h.seen = ctx.Value(ctxKeyProbe{})
	return nil
}

func TestLogger_WithContext(t *testing.T) {
	h := &probeHandler{Handler: slog.DiscardHandler}
	l := (&slogLogger{base: slog.New(h), ctx: context.Background()}).
		WithContext(context.WithValue(context.Background(), ctxKeyProbe{}, "ctx-value"))

	l.Error("x")
	if h.seen != "ctx-value" {
		t.Errorf("handler saw %v, want ctx-value", h.seen)
	}
}

func TestDefault(t *testing.T) {
	orig := Default()
	t.Cleanup(func() { SetDefault(orig) })

	if orig == nil {
		t.Fatal("Default() is nil before SetDefault")
	}

	nop := NewNop()
	SetDefault(nop)
	if Default() != nop {
		t.Error("SetDefault did not replace the default logger")
	}

	SetDefault(nil)
	if Default() != nop {
		t.Error("SetDefault(nil) should be ignored")
	}
}

func TestNewNop(t *testing.T) {
	l := NewNop()
	l.Error("discarded")
	l.With("k", "v").WithContext(context.Background()).Info("discarded")
}
