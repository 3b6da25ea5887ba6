package b64

import "fmt"

// StringType is the result of classifying a string.
type StringType int

const (
	// Invalid is neither base64 nor plain text.
	Invalid StringType = iota
	// PlainText is human-readable text that is not valid base64.
	PlainText
	// Encoded is valid base64.
	Encoded
)

func (t StringType) String() string {
	switch t {
	case PlainText:
		return "plain-text"
	case Encoded:
		return "base64"
	case Invalid:
		return "invalid"
	default:
		return fmt.Sprintf("StringType(%d)", int(t))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t StringType) MarshalText() ([]byte, error) {
	switch t {
	case PlainText, Encoded, Invalid:
		return []byte(t.String()), nil
	}
	return nil, fmt.Errorf("b64: unknown string type %d", int(t))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *StringType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "plain-text":
		*t = PlainText
	case "base64":
		*t = Encoded
	case "invalid":
		*t = Invalid
	default:
		return fmt.Errorf("b64: unknown string type %q", text)
	}
	return nil
}

// GetStringType classifies s. Base64 takes precedence over plain text.
func (c *Codec) GetStringType(s string) StringType {
	if c.IsEncoded(s) {
		return Encoded
	}
	if isText(s) {
		return PlainText
	}
	return Invalid
}

// ClassifyValue is GetStringType for untyped input. Non-strings are Invalid.
func (c *Codec) ClassifyValue(v any) StringType {
	s, ok := v.(string)
	if !ok {
		return Invalid
	}
	return c.GetStringType(s)
}

// GetStringType classifies s using the default codec.
func GetStringType(s string) StringType {
	return std.GetStringType(s)
}

// ClassifyValue classifies v using the default codec.
func ClassifyValue(v any) StringType {
	return std.ClassifyValue(v)
}
