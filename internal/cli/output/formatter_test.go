package output

import (
	"bytes"
	"strings"
	"testing"
)

type sampleRecord struct {
	APIKey    string   `json:"apiKey"`
	Calls     int64    `json:"totalCalls"`
	Endpoints []string `json:"endpoints"`
	Internal  string   `json:"-" table:"-"`
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatTable, false},
		{"table", FormatTable, false},
		{"JSON", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewFormatter(t *testing.T) {
	if _, ok := NewFormatter(FormatJSON).(FormatterFunc); !ok {
		t.Error("expected JSON FormatterFunc")
	}
	if _, ok := NewFormatter(FormatYAML).(*YAMLFormatter); !ok {
		t.Error("expected YAMLFormatter")
	}
	if _, ok := NewFormatter(FormatTable).(*TableFormatter); !ok {
		t.Error("expected TableFormatter")
	}
	if _, ok := NewFormatter("unknown").(*TableFormatter); !ok {
		t.Error("unknown format should default to table")
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	err := NewFormatter(FormatJSON).Format(&buf, sampleRecord{APIKey: "abc", Calls: 1200})
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{`"apiKey": "abc"`, `"totalCalls": 1200`} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() = %s, missing %s", out, want)
		}
	}
}

func TestYAMLFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	data := sampleRecord{
		APIKey:    "abc",
		Calls:     3,
		Endpoints: []string{"/api/user", "/api/quote"},
	}
	if err := (&YAMLFormatter{}).Format(&buf, data); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "apiKey: abc\ntotalCalls: 3\nendpoints:\n  - /api/user\n  - /api/quote\n"
	if buf.String() != want {
		t.Errorf("Format() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestYAMLFormatter_QuotesAmbiguousStrings(t *testing.T) {
	var buf bytes.Buffer
	if err := (&YAMLFormatter{}).Format(&buf, map[string]string{"id": "1234"}); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(buf.String(), `id: "1234"`) {
		t.Errorf("numeric-looking string should stay a string: %s", buf.String())
	}
}
