package b64

import (
	"encoding/json"
	"testing"
)

func TestGetStringType(t *testing.T) {
	tests := []struct {
		in   string
		want StringType
	}{
		{"", PlainText},
		{" ", PlainText},
		{"\n", PlainText},
		{"\t", PlainText},
		{"Hello, World!", PlainText},
		{"test123", PlainText},
		{"café", PlainText},
		{"Hello 世界", PlainText},
		{"🚀", PlainText},
		{"SGVsbG8", PlainText},
		{"SGVsbG8!", PlainText},

		{"SGVsbG8=", Encoded},
		{"SGVsbG8sIFdvcmxkIQ==", Encoded},
		{"dGVzdA==", Encoded},
		{"SGVsbG8=\n", Encoded},

		{"\x00", Invalid},
		{"\x01", Invalid},
		{"hello\x00world", Invalid},
		{"\xc3\x28", Invalid},
	}

	codec := New(WithSecurity(NewSecurity()))
	for _, tt := range tests {
		if got := codec.GetStringType(tt.in); got != tt.want {
			t.Errorf("GetStringType(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestClassifyValue_NonString(t *testing.T) {
	codec := New(WithSecurity(NewSecurity()))
	for _, v := range []any{nil, 123, map[string]any{}, []any{}, 1.5} {
		if got := codec.ClassifyValue(v); got != Invalid {
			t.Errorf("ClassifyValue(%#v) = %v, want Invalid", v, got)
		}
	}
	if got := codec.ClassifyValue("SGVsbG8="); got != Encoded {
		t.Errorf("ClassifyValue(\"SGVsbG8=\") = %v, want Encoded", got)
	}
}

func TestStringType_String(t *testing.T) {
	if PlainText.String() != "plain-text" || Encoded.String() != "base64" || Invalid.String() != "invalid" {
		t.Errorf("unexpected names: %s %s %s", PlainText, Encoded, Invalid)
	}
	if got := StringType(42).String(); got != "StringType(42)" {
		t.Errorf("got %q", got)
	}
}

func TestStringType_JSON(t *testing.T) {
	data, err := json.Marshal(map[string]StringType{"type": Encoded})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `{"type":"base64"}` {
		t.Errorf("got %s", data)
	}

	var out map[string]StringType
	if err := json.Unmarshal([]byte(`{"type":"plain-text"}`), &out); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if out["type"] != PlainText {
		t.Errorf("got %v, want PlainText", out["type"])
	}

	if err := json.Unmarshal([]byte(`{"type":"hex"}`), &out); err == nil {
		t.Error("expected error for unknown type name")
	}
	if _, err := json.Marshal(StringType(9)); err == nil {
		t.Error("expected error marshaling unknown type")
	}
}
