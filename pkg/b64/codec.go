package b64

import (
	"encoding/base64"
	"io"
	"log/slog"
)

// Transform is the byte/text conversion a Codec delegates to.
//
// *base64.Encoding satisfies Transform. Validation and classification
// behave the same whichever Transform is used, but errors returned by
// DecodeString are never shown to callers.
type Transform interface {
	EncodeToString(src []byte) string
	DecodeString(s string) ([]byte, error)
}

// StdTransform is the default Transform: RFC 4648 standard alphabet with
// padding, rejecting non-zero trailing bits.
var StdTransform Transform = base64.StdEncoding.Strict()

// Codec encodes, decodes, validates and classifies base64 text.
//
// A Codec holds no per-call state and is safe for concurrent use.
type Codec struct {
	security  *Security
	transform Transform
	log       *slog.Logger
}

// New creates a Codec.
//
// Without options the Codec shares DefaultSecurity() and uses StdTransform.
//
// Example:
//
//	codec := b64.New(b64.WithMaxInputSize(64 * 1024))
func New(opts ...Option) *Codec {
	cfg := &config{
		security:  defaultSecurity,
		transform: StdTransform,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	log := cfg.logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Codec{
		security:  cfg.security,
		transform: cfg.transform,
		log:       log,
	}
}

// Security returns the Security this Codec consults.
func (c *Codec) Security() *Security {
	return c.security
}

var std = New()
