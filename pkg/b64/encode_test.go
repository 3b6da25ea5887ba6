package b64

import (
	"errors"
	"strings"
	"testing"
)

func TestEncode_Known(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"Hello", "SGVsbG8="},
		{"Hello, World!", "SGVsbG8sIFdvcmxkIQ=="},
		{"test", "dGVzdA=="},
		{"A", "QQ=="},
		{"a", "YQ=="},
		{"!@#$%^&*()", "IUAjJCVeJiooKQ=="},
		{"+/-_=", "Ky8tXz0="},
		{"Hello 世界", "SGVsbG8g5LiW55WM"},
		{"🚀", "8J+agA=="},
		{"café", "Y2Fmw6k="},
		{"naïve", "bmHDr3Zl"},
		{"hello world", "aGVsbG8gd29ybGQ="},
		{"hello\nworld", "aGVsbG8Kd29ybGQ="},
		{"hello\tworld", "aGVsbG8Jd29ybGQ="},
		{"  spaces  ", "ICBzcGFjZXMgIA=="},
		{"1234567890", "MTIzNDU2Nzg5MA=="},
		{"0", "MA=="},
	}

	codec := New(WithSecurity(NewSecurity()))
	for _, tt := range tests {
		got, err := codec.Encode(tt.in)
		if err != nil {
			t.Fatalf("Encode(%q): unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("Encode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEncode_NoLineBreaks(t *testing.T) {
	codec := New(WithSecurity(NewSecurity()))
	got, err := codec.Encode(strings.Repeat("a", 1000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.ContainsAny(got, "\r\n") {
		t.Error("encoded output contains a line break")
	}
	if len(got)%4 != 0 {
		t.Errorf("encoded length %d is not a multiple of 4", len(got))
	}
}

func TestEncode_SizeLimit(t *testing.T) {
	codec := New(WithMaxInputSize(100))

	if _, err := codec.Encode(strings.Repeat("A", 50)); err != nil {
		t.Fatalf("50 bytes under a 100 byte limit: %v", err)
	}
	if _, err := codec.Encode(strings.Repeat("A", 100)); err != nil {
		t.Fatalf("exactly at the limit should pass: %v", err)
	}

	_, err := codec.Encode(strings.Repeat("A", 150))
	if !errors.Is(err, ErrSizeLimitExceeded) {
		t.Fatalf("expected ErrSizeLimitExceeded, got %v", err)
	}

	var sizeErr *SizeError
	if !errors.As(err, &sizeErr) {
		t.Fatalf("expected *SizeError, got %T", err)
	}
	if sizeErr.Size != 150 || sizeErr.Max != 100 {
		t.Errorf("got Size=%d Max=%d, want 150/100", sizeErr.Size, sizeErr.Max)
	}
}

func TestEncodeValue_TypeMismatch(t *testing.T) {
	codec := New(WithSecurity(NewSecurity()))
	for _, v := range []any{nil, 123, map[string]any{}, []any{}, []byte("Hello"), true} {
		_, err := codec.EncodeValue(v)
		if !errors.Is(err, ErrTypeMismatch) {
			t.Errorf("EncodeValue(%#v): expected ErrTypeMismatch, got %v", v, err)
		}
	}

	got, err := codec.EncodeValue("Hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "SGVsbG8=" {
		t.Errorf("got %q, want %q", got, "SGVsbG8=")
	}
}
