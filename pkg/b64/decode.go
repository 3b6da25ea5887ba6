package b64

import (
	"strings"
	"unicode/utf8"
)

// Decode returns the text encoded in s.
//
// Whitespace (space, tab, \r, \n) anywhere in s is ignored. An s that is
// empty after removing whitespace decodes to "".
//
// Returns a *SizeError if s exceeds the size limit, and ErrInvalidFormat if
// s is not valid base64 or does not decode to valid UTF-8.
func (c *Codec) Decode(s string) (string, error) {
	data, err := c.decode(s)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		c.log.Debug("decoded payload is not valid utf-8", "length", len(data))
		return "", ErrInvalidFormat
	}
	return string(data), nil
}

// DecodeBytes is like Decode but returns the raw payload without
// requiring it to be UTF-8.
func (c *Codec) DecodeBytes(s string) ([]byte, error) {
	return c.decode(s)
}

// DecodeValue is Decode for untyped input. It returns ErrTypeMismatch
// unless v is a string.
func (c *Codec) DecodeValue(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", ErrTypeMismatch
	}
	return c.Decode(s)
}

func (c *Codec) decode(s string) ([]byte, error) {
	if err := c.security.Check(len(s)); err != nil {
		return nil, err
	}

	cleaned := clean(s)
	if cleaned == "" {
		return []byte{}, nil
	}

	data, ok := c.decodeCleaned(cleaned)
	if !ok {
		return nil, ErrInvalidFormat
	}
	return data, nil
}

// clean removes every whitespace byte from s.
func clean(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if isWhitespace(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) - n)
	for i := 0; i < len(s); i++ {
		if !isWhitespace(s[i]) {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// isWhitespace returns true if b is a whitespace character.
// Whitespace is defined as: space, tab, \n, \r
func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// Decode decodes s using the default codec.
func Decode(s string) (string, error) {
	return std.Decode(s)
}

// DecodeBytes decodes s using the default codec.
func DecodeBytes(s string) ([]byte, error) {
	return std.DecodeBytes(s)
}

// DecodeValue decodes v using the default codec.
func DecodeValue(v any) (string, error) {
	return std.DecodeValue(v)
}
