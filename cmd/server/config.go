package main

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jacobpatterson1549/chessboard/server"
	"github.com/jacobpatterson1549/chessboard/server/log"
	"github.com/jacobpatterson1549/chessboard/theme"
)

// serverConfig creates the server configuration.
// Files named by the flags are read with the readFileFunc.
func (m mainFlags) serverConfig(e embedParameters, readFileFunc func(name string) ([]byte, error)) (*server.Config, error) {
	tlsCertPEM, err := readOptionalFile(m.tlsCertFile, readFileFunc)
	if err != nil {
		return nil, fmt.Errorf("reading tls certificate: %w", err)
	}
	tlsKeyPEM, err := readOptionalFile(m.tlsKeyFile, readFileFunc)
	if err != nil {
		return nil, fmt.Errorf("reading tls key: %w", err)
	}
	colors, err := m.colors(readFileFunc)
	if err != nil {
		return nil, err
	}
	c := server.Challenge{
		Token: m.challengeToken,
		Key:   m.challengeKey,
	}
	a := server.Autocert{
		Host:     m.autocertHost,
		CacheDir: m.autocertCacheDir,
	}
	cfg := server.Config{
		HTTPPort:      m.httpPort,
		HTTPSPort:     m.httpsPort,
		StopDur:       time.Second,
		CacheSec:      m.cacheSec,
		Version:       e.Version,
		TLSCertPEM:    tlsCertPEM,
		TLSKeyPEM:     tlsKeyPEM,
		Challenge:     c,
		Autocert:      a,
		Colors:        *colors,
		NoTLSRedirect: m.noTLSRedirect,
	}
	return &cfg, nil
}

// serverParameters creates the parameters to the server using the embedded files.
func serverParameters(log log.Logger, e embedParameters) server.Parameters {
	p := server.Parameters{
		Logger:     log,
		StaticFS:   e.StaticFS,
		TemplateFS: e.TemplateFS,
	}
	return p
}

// colors reads the theme file, if it is specified.  The default colors are used if it is not.
func (m mainFlags) colors(readFileFunc func(name string) ([]byte, error)) (*theme.Colors, error) {
	if len(m.themeFile) == 0 {
		c := theme.Default()
		return &c, nil
	}
	b, err := readFileFunc(m.themeFile)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}
	c, err := theme.Read(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("reading theme file %v: %w", m.themeFile, err)
	}
	return c, nil
}

// readOptionalFile reads the named file.  An empty string is returned if the name is empty.
func readOptionalFile(name string, readFileFunc func(name string) ([]byte, error)) (string, error) {
	if len(name) == 0 {
		return "", nil
	}
	b, err := readFileFunc(name)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
