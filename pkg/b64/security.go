package b64

import "sync/atomic"

// DefaultMaxInputSize is the initial input size limit (10MiB).
const DefaultMaxInputSize = 10 * 1024 * 1024

// SecurityOptions is the argument to Configure.
type SecurityOptions struct {
	// MaxInputSize is the maximum accepted input length in bytes.
	// Zero disables the limit. Negative values are rejected.
	MaxInputSize int `json:"maxInputSize"`
}

// Security holds the input size limit consulted by every Codec operation.
//
// A Security is safe for concurrent use. Codecs read it on every call, so a
// Configure takes effect immediately for all codecs sharing it.
type Security struct {
	maxInputSize atomic.Int64
}

// NewSecurity returns a Security with the limit set to DefaultMaxInputSize.
func NewSecurity() *Security {
	s := &Security{}
	s.maxInputSize.Store(DefaultMaxInputSize)
	return s
}

// Configure replaces the current settings.
func (s *Security) Configure(opts SecurityOptions) error {
	if opts.MaxInputSize < 0 {
		return &ConfigError{Field: "maxInputSize", Value: opts.MaxInputSize}
	}
	s.maxInputSize.Store(int64(opts.MaxInputSize))
	return nil
}

// MaxInputSize returns the current limit. Zero means unlimited.
func (s *Security) MaxInputSize() int {
	return int(s.maxInputSize.Load())
}

// Check returns a *SizeError if n exceeds the current limit.
func (s *Security) Check(n int) error {
	// Load once so the comparison and the error agree.
	limit := s.MaxInputSize()
	if limit > 0 && n > limit {
		return &SizeError{Size: n, Max: limit}
	}
	return nil
}

var defaultSecurity = NewSecurity()

// DefaultSecurity returns the process-wide Security used by the package-level functions.
func DefaultSecurity() *Security {
	return defaultSecurity
}

// ConfigureSecurity configures DefaultSecurity().
func ConfigureSecurity(opts SecurityOptions) error {
	return defaultSecurity.Configure(opts)
}
