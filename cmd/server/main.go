// Package main serves the chessboard over http and https.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jacobpatterson1549/chessboard/server"
)

// boardServer is the part of the server main controls.
type boardServer interface {
	Run(ctx context.Context) <-chan error
	Stop(ctx context.Context) error
}

func main() {
	ctx := context.Background()
	logFlags := log.Ldate | log.Ltime | log.LUTC | log.Lshortfile | log.Lmsgprefix
	log := log.New(os.Stdout, "", logFlags)
	s, err := newServer(os.Args, os.LookupEnv, os.ReadFile, log)
	if err != nil {
		log.Fatal(err)
	}
	stop := make(chan os.Signal, 2)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	if err := runServer(ctx, s, stop, log); err != nil {
		log.Fatalf("running server: %v", err)
	}
	log.Println("chessboard server stopped")
}

// newServer builds the server from the embedded files, the command line, and the environment.
func newServer(osArgs []string, osLookupEnvFunc func(string) (string, bool), readFileFunc func(name string) ([]byte, error), log *log.Logger) (*server.Server, error) {
	e, err := newEmbedParameters(embeddedVersion, embeddedStaticFS, embeddedTemplateFS)
	if err != nil {
		return nil, fmt.Errorf("reading embedded files: %w", err)
	}
	m := newMainFlags(osArgs, osLookupEnvFunc)
	cfg, err := m.serverConfig(*e, readFileFunc)
	if err != nil {
		return nil, fmt.Errorf("configuring server: %w", err)
	}
	p := serverParameters(log, *e)
	s, err := cfg.NewServer(p)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// runServer blocks until the server fails or a signal is received, then stops the server.
// A server that stops because it was closed is not an error.
func runServer(ctx context.Context, s boardServer, stop <-chan os.Signal, log *log.Logger) error {
	var runErr error
	select {
	case err := <-s.Run(ctx):
		if !errors.Is(err, http.ErrServerClosed) {
			runErr = err
		}
	case sig := <-stop:
		log.Printf("stopping after %v signal", sig)
	}
	if err := s.Stop(ctx); err != nil {
		return fmt.Errorf("stopping server: %w", err)
	}
	return runErr
}
