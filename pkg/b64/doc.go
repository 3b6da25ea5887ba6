// Package b64 encodes, decodes, validates and classifies base64 text.
//
// The only accepted format is the RFC 4648 standard alphabet
// (A-Z, a-z, 0-9, '+', '/') with '=' padding to a multiple of 4 characters.
// URL-safe and unpadded forms are neither produced nor accepted.
//
// # Basic Usage
//
// The package-level functions use a shared codec bound to DefaultSecurity():
//
//	s, _ := b64.Encode("Hello")     // "SGVsbG8="
//	t, err := b64.Decode(s)         // "Hello"
//	b64.IsEncoded("SGVsbG8")        // false, not padded
//	b64.GetStringType("Hello!")     // b64.PlainText
//	n, err := b64.Normalize("SGVs\nbG8=\n") // "SGVsbG8="
//
// Callers that want their own limits build a Codec:
//
//	sec := b64.NewSecurity()
//	codec := b64.New(b64.WithSecurity(sec))
//	sec.Configure(b64.SecurityOptions{MaxInputSize: 4096})
//
// # Whitespace
//
// Decode, Normalize and IsEncoded strip space, tab, \r and \n anywhere in the
// input before validating. Encode never inserts line breaks.
//
// # Classification
//
// A string that is structurally valid base64 is always classified as Encoded,
// never PlainText, even if it reads like text ("abcd" is valid base64).
// Plain text is anything made only of tab, \r, \n, printable ASCII or code
// points at or above U+00A0. Everything else is Invalid.
//
// # Security
//
// Every operation checks input length against a Security limit before doing
// any work (default 10MiB, 0 disables it). Actions return ErrSizeLimitExceeded;
// predicates just report false.
//
// Decode failures always surface as ErrInvalidFormat with the same generic
// message. Errors from the underlying Transform are never returned to callers.
package b64
