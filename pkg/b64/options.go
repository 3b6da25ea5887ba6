package b64

import "log/slog"

// config holds Codec construction settings.
type config struct {
	security  *Security
	transform Transform
	logger    *slog.Logger
}

// Option configures a Codec.
type Option func(*config)

// WithSecurity makes the Codec consult s. Later changes to s apply to the
// Codec immediately.
func WithSecurity(s *Security) Option {
	return func(c *config) {
		if s != nil {
			c.security = s
		}
	}
}

// WithMaxInputSize gives the Codec its own Security limited to n bytes.
// Zero means unlimited; negative values are treated as zero.
//
// Default: shares DefaultSecurity() (10MiB)
func WithMaxInputSize(n int) Option {
	return func(c *config) {
		if n < 0 {
			n = 0
		}
		s := &Security{}
		s.maxInputSize.Store(int64(n))
		c.security = s
	}
}

// WithTransform replaces the underlying byte/text conversion.
func WithTransform(t Transform) Option {
	return func(c *config) {
		if t != nil {
			c.transform = t
		}
	}
}

// WithLogger sets the logger used for debug output. Rejected inputs and
// transform failures are logged here, not returned.
//
// Default: discard
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}
