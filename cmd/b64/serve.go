package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/epithet-ssh/b64/pkg/b64"
	"github.com/epithet-ssh/b64/pkg/b64server"
	"github.com/epithet-ssh/b64/pkg/tlsconfig"
)

type ServeCLI struct {
	Listen      string `help:"Address to listen on" short:"l" env:"B64_LISTEN" default:"127.0.0.1:8080"`
	TLSCert     string `help:"PEM certificate chain for HTTPS" name:"tls-cert" env:"B64_TLS_CERT" type:"path"`
	TLSKey      string `help:"PEM private key for HTTPS" name:"tls-key" env:"B64_TLS_KEY" type:"path"`
	TLSClientCA string `help:"PEM CA bundle; when set, clients must present a certificate signed by it" name:"tls-client-ca" env:"B64_TLS_CLIENT_CA" type:"path"`
}

func (s *ServeCLI) tls() tlsconfig.Config {
	return tlsconfig.Config{CertFile: s.TLSCert, KeyFile: s.TLSKey, ClientCAFile: s.TLSClientCA}
}

func (s *ServeCLI) Run(logger *slog.Logger, codec *b64.Codec) error {
	tlsCfg, err := s.tls().ServerTLS()
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              s.Listen,
		Handler:           b64server.New(codec, logger, prometheus.NewRegistry()),
		ReadHeaderTimeout: 10 * time.Second,
		TLSConfig:         tlsCfg,
	}

	logger.Info("listening", "address", s.Listen, "tls", tlsCfg != nil, "max_input_size", codec.Security().MaxInputSize())
	if tlsCfg != nil {
		return srv.ListenAndServeTLS("", "")
	}
	return srv.ListenAndServe()
}
