// Package tlsconfig builds TLS settings for the HTTP service.
package tlsconfig

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"os"
)

// Config holds TLS options for a listening server.
type Config struct {
	// CertFile and KeyFile are PEM files holding the server certificate
	// chain and its private key. Both empty means plain HTTP.
	CertFile string
	KeyFile  string

	// ClientCAFile is a PEM file of CAs trusted to sign client
	// certificates. When set, clients must present a certificate.
	ClientCAFile string
}

// Enabled reports whether TLS is configured.
func (c Config) Enabled() bool {
	return c.CertFile != "" || c.KeyFile != ""
}

// ServerTLS returns the *tls.Config for c, or nil if TLS is not enabled.
func (c Config) ServerTLS() (*tls.Config, error) {
	if !c.Enabled() {
		if c.ClientCAFile != "" {
			return nil, errors.New("client CA file requires a server certificate and key")
		}
		return nil, nil
	}
	if c.CertFile == "" || c.KeyFile == "" {
		return nil, errors.New("both certificate and key files are required for TLS")
	}

	cert, err := tls.LoadX509KeyPair(c.CertFile, c.KeyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load server certificate: %w", err)
	}

	tlsCfg := &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}

	if c.ClientCAFile != "" {
		caCert, err := os.ReadFile(c.ClientCAFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read client CA file %q: %w", c.ClientCAFile, err)
		}

		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(caCert) {
			return nil, fmt.Errorf("failed to parse client CA file %q: no valid certificates found", c.ClientCAFile)
		}

		tlsCfg.ClientCAs = pool
		tlsCfg.ClientAuth = tls.RequireAndVerifyClientCert
	}

	return tlsCfg, nil
}
