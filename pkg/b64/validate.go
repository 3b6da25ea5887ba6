package b64

import (
	"regexp"
	"unicode/utf8"
)

// Standard alphabet followed by at most two padding characters.
var encodedPattern = regexp.MustCompile(`^[A-Za-z0-9+/]*={0,2}$`)

// IsEncoded reports whether s is valid base64.
//
// Whitespace is ignored. Empty or whitespace-only strings and inputs over
// the size limit are not valid. Beyond the alphabet and padding rules the payload must
// actually decode, so inputs with stray trailing bits are rejected.
func (c *Codec) IsEncoded(s string) bool {
	if s == "" {
		return false
	}
	if err := c.security.Check(len(s)); err != nil {
		c.log.Debug("validation skipped: input too large", "size", len(s))
		return false
	}
	cleaned := clean(s)
	if cleaned == "" {
		return false
	}
	_, ok := c.decodeCleaned(cleaned)
	return ok
}

// IsEncodedValue is IsEncoded for untyped input. Non-strings are never encoded.
func (c *Codec) IsEncodedValue(v any) bool {
	s, ok := v.(string)
	return ok && c.IsEncoded(s)
}

// IsPlainText reports whether s is human-readable text.
//
// Valid base64 is never plain text. Otherwise every character must be a
// tab, \r, \n, printable ASCII or a code point at or above U+00A0.
// The empty string is plain text.
func (c *Codec) IsPlainText(s string) bool {
	return !c.IsEncoded(s) && isText(s)
}

// isText checks the character classes only.
func isText(s string) bool {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			// Not a character at all.
			return false
		}
		if !isTextRune(r) {
			return false
		}
		i += size
	}
	return true
}

// IsPlainTextValue is IsPlainText for untyped input. Non-strings are never plain text.
func (c *Codec) IsPlainTextValue(v any) bool {
	s, ok := v.(string)
	return ok && c.IsPlainText(s)
}

// decodeCleaned validates an already cleaned string and returns its payload.
func (c *Codec) decodeCleaned(cleaned string) ([]byte, bool) {
	if !encodedPattern.MatchString(cleaned) {
		return nil, false
	}
	if len(cleaned)%4 != 0 {
		return nil, false
	}

	data, err := c.transform.DecodeString(cleaned)
	if err != nil {
		c.log.Debug("base64 transform rejected input", "error", err)
		return nil, false
	}
	return data, true
}

// isTextRune excludes the C0 and C1 control ranges, keeping tab, \r and \n.
func isTextRune(r rune) bool {
	switch {
	case r == '\t', r == '\r', r == '\n':
		return true
	case r >= 0x20 && r <= 0x7E:
		return true
	default:
		return r >= 0xA0
	}
}

// IsEncoded reports whether s is valid base64 under the default codec.
func IsEncoded(s string) bool {
	return std.IsEncoded(s)
}

// IsPlainText reports whether s is plain text under the default codec.
func IsPlainText(s string) bool {
	return std.IsPlainText(s)
}
