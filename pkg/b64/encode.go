package b64

// Encode returns the base64 form of text's UTF-8 bytes.
//
// Returns a *SizeError if text exceeds the size limit.
//
// Example:
//
//	codec.Encode("Hello") // "SGVsbG8="
func (c *Codec) Encode(text string) (string, error) {
	if err := c.security.Check(len(text)); err != nil {
		return "", err
	}
	if text == "" {
		return "", nil
	}
	return c.transform.EncodeToString([]byte(text)), nil
}

// EncodeValue is Encode for untyped input. It returns ErrTypeMismatch
// unless v is a string.
func (c *Codec) EncodeValue(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", ErrTypeMismatch
	}
	return c.Encode(s)
}

// Encode encodes text using the default codec.
func Encode(text string) (string, error) {
	return std.Encode(text)
}

// EncodeValue encodes v using the default codec.
func EncodeValue(v any) (string, error) {
	return std.EncodeValue(v)
}
