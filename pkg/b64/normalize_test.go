package b64

import (
	"errors"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"SGVsbG8=", "SGVsbG8="},
		{"SGVsbG8= ", "SGVsbG8="},
		{"SGVsbG8=\n", "SGVsbG8="},
		{"SGVsbG8=\t", "SGVsbG8="},
		{"SGVsbG8=\r\n", "SGVsbG8="},
		{" SGVsbG8=", "SGVsbG8="},
		{" SGVsbG8= ", "SGVsbG8="},
		{"SGVs bG8s\nIFdv\tcmxk\r\nIQ==", "SGVsbG8sIFdvcmxkIQ=="},
		{"SGVsbG8sIFdvcmxkIQ==", "SGVsbG8sIFdvcmxkIQ=="},
	}

	codec := New(WithSecurity(NewSecurity()))
	for _, tt := range tests {
		got, err := codec.Normalize(tt.in)
		if err != nil {
			t.Fatalf("Normalize(%q): unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalize_Invalid(t *testing.T) {
	codec := New(WithSecurity(NewSecurity()))
	for _, in := range []string{"invalid!", "SGVsbG8", "SGVsbG8===", "", "  "} {
		if _, err := codec.Normalize(in); err != ErrInvalidFormat {
			t.Errorf("Normalize(%q): expected ErrInvalidFormat, got %v", in, err)
		}
	}
}

func TestNormalize_SizeLimit(t *testing.T) {
	codec := New(WithMaxInputSize(8))
	_, err := codec.Normalize("SGVsbG8=\n")
	if !errors.Is(err, ErrSizeLimitExceeded) {
		t.Fatalf("expected ErrSizeLimitExceeded, got %v", err)
	}
}

func TestNormalize_ThenDecode(t *testing.T) {
	codec := New(WithSecurity(NewSecurity()))
	n, err := codec.Normalize("SGVsbG8sIFdvcmxkIQ==\n")
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	got, err := codec.Decode(n)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if got != "Hello, World!" {
		t.Errorf("got %q", got)
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"abc", "abc"},
		{" a b\tc\r\nd ", "abcd"},
		{"\v\f", "\v\f"},
		{"\xff \xfe", "\xff\xfe"},
	}
	for _, tt := range tests {
		if got := clean(tt.in); got != tt.want {
			t.Errorf("clean(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	s := strings.Repeat("x", 32)
	if got := clean(s); got != s {
		t.Error("clean changed a string without whitespace")
	}
}
