package b64

// Normalize returns s with all whitespace removed, after checking that it
// is valid base64.
//
// Returns a *SizeError if s exceeds the size limit and ErrInvalidFormat if
// it is not valid base64. Normalize is idempotent.
func (c *Codec) Normalize(s string) (string, error) {
	if err := c.security.Check(len(s)); err != nil {
		return "", err
	}
	if !c.IsEncoded(s) {
		return "", ErrInvalidFormat
	}
	return clean(s), nil
}

// Normalize normalizes s using the default codec.
func Normalize(s string) (string, error) {
	return std.Normalize(s)
}
