// Package server runs the http server which renders the chessboard for browsers.
package server

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"

	"github.com/jacobpatterson1549/chessboard/server/log"
	"github.com/jacobpatterson1549/chessboard/server/runner"
)

// Server runs the site
type Server struct {
	log         log.Logger
	runner      runner.Runner
	HTTPServer  *http.Server
	HTTPSServer *http.Server
	Config
}

// Run the server asynchronously until it receives a shutdown signal.
// When the HTTP/HTTPS servers stop, errors are logged to the error channel.
func (s *Server) Run(ctx context.Context) <-chan error {
	errC := make(chan error, 2)
	if err := s.runner.Run(); err != nil {
		errC <- fmt.Errorf("running server: %w", err)
		return errC
	}
	baseContext := func(net.Listener) context.Context {
		return ctx
	}
	s.HTTPServer.BaseContext = baseContext
	s.HTTPSServer.BaseContext = baseContext
	s.runHTTPServer(errC)
	s.runHTTPSServer(errC)
	return errC
}

// runHTTPServer runs the http server asynchronously, adding the return error to the channel when done.
// The server is only run if the HTTP address is valid.
func (s *Server) runHTTPServer(errC chan<- error) {
	if !s.validHTTPAddr() {
		return
	}
	s.log.Printf("starting http server at http://127.0.0.1%v", s.HTTPServer.Addr)
	go func() {
		errC <- s.HTTPServer.ListenAndServe()
	}()
}

// runHTTPSServer runs the https server asynchronously, adding the return error to the channel when done.
// The server only uses TLS if it has a certificate.  Otherwise, the server expects a proxy to terminate TLS connections.
func (s *Server) runHTTPSServer(errC chan<- error) {
	if s.HTTPSServer.TLSConfig == nil {
		s.log.Printf("starting server without tls at http://127.0.0.1%v", s.HTTPSServer.Addr)
		go func() {
			errC <- s.HTTPSServer.ListenAndServe()
		}()
		return
	}
	s.log.Printf("starting https server at https://127.0.0.1%v", s.HTTPSServer.Addr)
	go func() {
		errC <- s.HTTPSServer.ListenAndServeTLS("", "") // the certificates are in the TLSConfig
	}()
}

// Stop asks the server to shutdown and waits for the shutdown to complete.
// An error is returned if the server if the context times out.
func (s *Server) Stop(ctx context.Context) error {
	defer s.runner.Finish()
	ctx, cancelFunc := context.WithTimeout(ctx, s.StopDur)
	defer cancelFunc()
	httpsShutdownErr := s.HTTPSServer.Shutdown(ctx)
	httpShutdownErr := s.HTTPServer.Shutdown(ctx)
	switch {
	case httpsShutdownErr != nil:
		return fmt.Errorf("stopping https server: %w", httpsShutdownErr)
	case httpShutdownErr != nil:
		return fmt.Errorf("stopping http server: %w", httpShutdownErr)
	}
	return nil
}

// tlsConfig creates the configuration to serve https requests with.
// Nil is returned if the server does not have a certificate to use.
func (cfg Config) tlsConfig(m certificateManager) (*tls.Config, error) {
	switch {
	case m != nil:
		return m.TLSConfig(), nil
	case len(cfg.TLSCertPEM) == 0 && len(cfg.TLSKeyPEM) == 0:
		return nil, nil
	}
	certificate, err := tls.X509KeyPair([]byte(cfg.TLSCertPEM), []byte(cfg.TLSKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("loading tls certificate: %w", err)
	}
	tlsConfig := tls.Config{
		Certificates: []tls.Certificate{certificate},
	}
	return &tlsConfig, nil
}
