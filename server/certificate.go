package server

import (
	"crypto/tls"
	"net/http"

	"golang.org/x/crypto/acme/autocert"
)

type (
	// Autocert configures automatic TLS certificates from Let's Encrypt.
	Autocert struct {
		// Host is the domain name certificates are requested for.
		Host string
		// CacheDir is the directory certificates are saved to so they are not requested each time the server starts.
		CacheDir string
	}

	// certificateManager provides certificates for https requests and handles challenges for them on http.
	certificateManager interface {
		TLSConfig() *tls.Config
		HTTPHandler(fallback http.Handler) http.Handler
	}
)

// enabled determines if certificates should be managed automatically.
func (a Autocert) enabled() bool {
	return len(a.Host) != 0
}

// manager creates a certificate manager for the host.  Nil is returned if Autocert is not enabled.
func (a Autocert) manager() certificateManager {
	if !a.enabled() {
		return nil
	}
	m := autocert.Manager{
		Prompt:     autocert.AcceptTOS,
		HostPolicy: autocert.HostWhitelist(a.Host),
	}
	if len(a.CacheDir) != 0 {
		m.Cache = autocert.DirCache(a.CacheDir)
	}
	return &m
}
